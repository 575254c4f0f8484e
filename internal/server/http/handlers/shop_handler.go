package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkorobko/orderbot/internal/domain/errors"
	"github.com/mkorobko/orderbot/internal/server/http/dto"
	"github.com/mkorobko/orderbot/internal/usecase"
)

// ShopHandler serves the mini-app storefront API.
type ShopHandler struct {
	facade ShopFacade
}

// NewShopHandler constructs ShopHandler.
func NewShopHandler(facade ShopFacade) *ShopHandler {
	return &ShopHandler{facade: facade}
}

// Products handles GET /api/products.
func (h *ShopHandler) Products(c *gin.Context) {
	response := make(map[string]dto.CategoryResponse)
	for _, category := range h.facade.Categories() {
		products, err := h.facade.CategoryItems(category.Key)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		items := make(map[string]dto.ProductResponse, len(products))
		for _, p := range products {
			items[p.ID] = dto.ProductResponse{Name: p.Name, Price: p.Price}
		}
		response[category.Key] = dto.CategoryResponse{Name: category.Name, Items: items}
	}
	c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/order. Both the multi-item payload and the
// legacy flat single-item payload are accepted; prices always come from
// the catalog, never from the client.
func (h *ShopHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	selections := make([]usecase.Selection, 0, len(req.Items)+1)
	for _, it := range req.Items {
		selections = append(selections, usecase.Selection{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	if len(selections) == 0 && req.ItemID != "" {
		selections = append(selections, usecase.Selection{ItemID: req.ItemID, Quantity: req.Quantity})
	}
	if len(selections) == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), req.UserID, fallbackUsername(req.Username), selections)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrItemNotFound):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{
		OrderNumber: order.Number,
		TotalPrice:  order.Total,
		Status:      string(order.Status),
	})
}
