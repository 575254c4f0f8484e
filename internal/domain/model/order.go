package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	StatusCollecting OrderStatus = "COLLECTING"
	StatusPreparing  OrderStatus = "PREPARING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
)

// statusCycle fixes the tap-to-cycle ordering of statuses.
var statusCycle = [...]OrderStatus{
	StatusCollecting,
	StatusPreparing,
	StatusShipped,
	StatusDelivered,
}

// ParseStatus resolves a status token against the fixed enum.
func ParseStatus(raw string) (OrderStatus, bool) {
	for _, s := range statusCycle {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// Next returns the following status in the cycle. The cycle is circular:
// Delivered wraps around back to Collecting.
func (s OrderStatus) Next() OrderStatus {
	for i, cur := range statusCycle {
		if cur == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return StatusCollecting
}

// Label returns the human readable form shown in chat messages.
func (s OrderStatus) Label() string {
	switch s {
	case StatusCollecting:
		return "Collecting"
	case StatusPreparing:
		return "Preparing"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	}
	return string(s)
}

// LineItem is a single catalog position inside an order.
type LineItem struct {
	ItemID    string
	ItemName  string
	Category  string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Order describes a placed purchase order.
type Order struct {
	Number    int
	UserID    int64
	Username  string
	Items     []LineItem
	Total     decimal.Decimal
	CreatedAt time.Time
	Status    OrderStatus
}
