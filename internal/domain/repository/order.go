package repository

import (
	"context"

	"github.com/mkorobko/orderbot/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// Every mutation is a read-modify-write of the whole collection and must be
// serialized by the implementation; callers see each call as atomic.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Append(ctx context.Context, draft model.Order) (*model.Order, error)
	UpdateStatus(ctx context.Context, number int, status model.OrderStatus) (*model.Order, error)
	AdvanceStatus(ctx context.Context, number int) (*model.Order, error)
	// ListByUser filters orders by owner preserving insertion order.
	// An empty exclude keeps every status.
	ListByUser(ctx context.Context, userID int64, exclude model.OrderStatus) ([]model.Order, error)
}
