package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/mkorobko/orderbot/internal/domain/errors"
	"github.com/mkorobko/orderbot/internal/domain/model"
	"github.com/mkorobko/orderbot/internal/domain/repository"
)

// Selection is one requested catalog position.
type Selection struct {
	ItemID   string
	Quantity int
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders  repository.OrderRepository
	catalog repository.Catalog
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, catalog repository.Catalog) *OrderUseCase {
	return &OrderUseCase{orders: orders, catalog: catalog}
}

// Create resolves the selections against the catalog, prices each line and
// persists a new order. Single- and multi-item orders share this path.
func (u *OrderUseCase) Create(ctx context.Context, userID int64, username string, selections []Selection) (*model.Order, error) {
	if len(selections) == 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	draft := model.Order{
		UserID:    userID,
		Username:  username,
		Items:     make([]model.LineItem, 0, len(selections)),
		CreatedAt: time.Now(),
	}

	total := decimal.Zero
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidQuantity
		}

		product, err := u.catalog.Resolve(sel.ItemID)
		if err != nil {
			return nil, err
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(sel.Quantity)))
		draft.Items = append(draft.Items, model.LineItem{
			ItemID:    product.ID,
			ItemName:  product.Name,
			Category:  product.Category,
			Quantity:  sel.Quantity,
			UnitPrice: product.Price,
			Total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}
	draft.Total = total

	return u.orders.Append(ctx, draft)
}

// AdvanceStatus moves the order one step along the circular status cycle.
func (u *OrderUseCase) AdvanceStatus(ctx context.Context, number int) (*model.Order, error) {
	return u.orders.AdvanceStatus(ctx, number)
}

// SetStatus sets the status directly, bypassing the cycle. Administrative path.
func (u *OrderUseCase) SetStatus(ctx context.Context, number int, rawStatus string) (*model.Order, error) {
	status, ok := model.ParseStatus(rawStatus)
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, number, status)
}

// ListByUser returns the user's orders in insertion order. Delivered orders
// are hidden when excludeDelivered is set.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64, excludeDelivered bool) ([]model.Order, error) {
	exclude := model.OrderStatus("")
	if excludeDelivered {
		exclude = model.StatusDelivered
	}
	return u.orders.ListByUser(ctx, userID, exclude)
}

// ListAll returns every stored order.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}
