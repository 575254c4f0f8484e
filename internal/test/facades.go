// Package test provides shared stubs for unit tests.
package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkorobko/orderbot/internal/domain/model"
	"github.com/mkorobko/orderbot/internal/usecase"
)

// ShopFacadeStub provides controllable behaviour for router and handler tests.
type ShopFacadeStub struct {
	CreateFn     func(context.Context, int64, string, []usecase.Selection) (*model.Order, error)
	OrdersFn     func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn  func(context.Context) ([]model.Order, error)
	AdvanceFn    func(context.Context, int) (*model.Order, error)
	SetStatusFn  func(context.Context, int, string) (*model.Order, error)
	CategoriesFn func() []model.Category
	ItemsFn      func(string) ([]model.Product, error)
}

// SampleOrder builds a one-line order for stubs and assertions.
func SampleOrder(number int, userID int64, status model.OrderStatus) *model.Order {
	price := decimal.NewFromFloat(2.5)
	return &model.Order{
		Number:   number,
		UserID:   userID,
		Username: "tester",
		Items: []model.LineItem{{
			ItemID:    "a1",
			ItemName:  "Apples",
			Category:  "Fruits",
			Quantity:  12,
			UnitPrice: price,
			Total:     price.Mul(decimal.NewFromInt(12)),
		}},
		Total:     price.Mul(decimal.NewFromInt(12)),
		CreatedAt: time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
		Status:    status,
	}
}

// CreateOrder delegates to the provided function or returns a default order.
func (s ShopFacadeStub) CreateOrder(ctx context.Context, userID int64, username string, selections []usecase.Selection) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, username, selections)
	}
	return SampleOrder(1, userID, model.StatusCollecting), nil
}

// Orders returns predefined orders for given user.
func (s ShopFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{*SampleOrder(1, userID, model.StatusCollecting)}, nil
}

// AllOrders returns every stored order.
func (s ShopFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{*SampleOrder(1, 7, model.StatusCollecting)}, nil
}

// AdvanceStatus executes the configured advance handler.
func (s ShopFacadeStub) AdvanceStatus(ctx context.Context, number int) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, number)
	}
	return SampleOrder(number, 7, model.StatusPreparing), nil
}

// SetOrderStatus executes the configured set handler.
func (s ShopFacadeStub) SetOrderStatus(ctx context.Context, number int, status string) (*model.Order, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, number, status)
	}
	parsed, _ := model.ParseStatus(status)
	order := SampleOrder(number, 7, parsed)
	return order, nil
}

// Categories returns the configured category list.
func (s ShopFacadeStub) Categories() []model.Category {
	if s.CategoriesFn != nil {
		return s.CategoriesFn()
	}
	return []model.Category{{Key: "fruits", Name: "Fruits"}}
}

// CategoryItems returns the configured product list.
func (s ShopFacadeStub) CategoryItems(categoryKey string) ([]model.Product, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(categoryKey)
	}
	return []model.Product{{
		ID:          "a1",
		Name:        "Apples",
		Category:    "Fruits",
		CategoryKey: categoryKey,
		Price:       decimal.NewFromFloat(2.5),
	}}, nil
}
