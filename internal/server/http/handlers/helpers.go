package handlers

import (
	"strings"

	"github.com/mkorobko/orderbot/internal/domain/model"
	"github.com/mkorobko/orderbot/internal/server/http/dto"
)

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ItemID:       it.ItemID,
			ItemName:     it.ItemName,
			Category:     it.Category,
			Quantity:     it.Quantity,
			PricePerUnit: it.UnitPrice,
			TotalPrice:   it.Total,
		})
	}
	return dto.OrderResponse{
		OrderNumber: order.Number,
		UserID:      order.UserID,
		Username:    order.Username,
		Items:       items,
		TotalPrice:  order.Total,
		Timestamp:   order.CreatedAt.Format("2006-01-02T15:04:05"),
		Status:      string(order.Status),
	}
}

func fallbackUsername(username string) string {
	if strings.TrimSpace(username) != "" {
		return username
	}
	return "unknown"
}
