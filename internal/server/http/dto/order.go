package dto

import "github.com/shopspring/decimal"

// OrderItemResponse is one line of an order as exposed over HTTP.
type OrderItemResponse struct {
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	Category     string          `json:"category,omitempty"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// OrderResponse mirrors a stored order for the admin panel.
type OrderResponse struct {
	OrderNumber int                 `json:"order_number"`
	UserID      int64               `json:"user_id"`
	Username    string              `json:"username"`
	Items       []OrderItemResponse `json:"items"`
	TotalPrice  decimal.Decimal     `json:"total_price"`
	Timestamp   string              `json:"timestamp"`
	Status      string              `json:"status"`
}

// CreateOrderItemRequest is one requested position of a mini-app order.
type CreateOrderItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest accepts both the multi-item payload and the legacy
// flat single-item payload.
type CreateOrderRequest struct {
	UserID   int64                    `json:"user_id"`
	Username string                   `json:"username"`
	Items    []CreateOrderItemRequest `json:"items"`

	// Legacy single-item form.
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderResponse confirms a placed order.
type CreateOrderResponse struct {
	OrderNumber int             `json:"order_number"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      string          `json:"status"`
}

// UpdateStatusRequest sets an order status directly.
type UpdateStatusRequest struct {
	OrderNumber int    `json:"order_number"`
	Status      string `json:"status"`
}

// UpdateStatusResponse confirms a status change.
type UpdateStatusResponse struct {
	OrderNumber int    `json:"order_number"`
	Status      string `json:"status"`
	Success     bool   `json:"success"`
}
