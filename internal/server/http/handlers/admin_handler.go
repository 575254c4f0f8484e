package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkorobko/orderbot/internal/domain/errors"
	"github.com/mkorobko/orderbot/internal/server/http/dto"
)

// AdminHandler serves the management surface.
type AdminHandler struct {
	facade ShopFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade ShopFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// List handles GET /api/admin/orders.
func (h *AdminHandler) List(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles POST /api/admin/order/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.OrderNumber == 0 || req.Status == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SetOrderStatus(c.Request.Context(), req.OrderNumber, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.UpdateStatusResponse{
		OrderNumber: order.Number,
		Status:      string(order.Status),
		Success:     true,
	})
}
