package app

import (
	"context"

	"github.com/mkorobko/orderbot/internal/domain/model"
	"github.com/mkorobko/orderbot/internal/domain/repository"
	"github.com/mkorobko/orderbot/internal/usecase"
)

// ShopFacade aggregates the operations exposed to the chat router and the
// HTTP surface.
type ShopFacade struct {
	orders  *usecase.OrderUseCase
	catalog repository.Catalog
}

func NewShopFacade(orders *usecase.OrderUseCase, catalog repository.Catalog) *ShopFacade {
	return &ShopFacade{orders: orders, catalog: catalog}
}

func (f *ShopFacade) CreateOrder(ctx context.Context, userID int64, username string, selections []usecase.Selection) (*model.Order, error) {
	return f.orders.Create(ctx, userID, username, selections)
}

// Orders returns the user's undelivered orders, oldest first.
func (f *ShopFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID, true)
}

func (f *ShopFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *ShopFacade) AdvanceStatus(ctx context.Context, number int) (*model.Order, error) {
	return f.orders.AdvanceStatus(ctx, number)
}

func (f *ShopFacade) SetOrderStatus(ctx context.Context, number int, status string) (*model.Order, error) {
	return f.orders.SetStatus(ctx, number, status)
}

func (f *ShopFacade) Categories() []model.Category {
	return f.catalog.Categories()
}

func (f *ShopFacade) CategoryItems(categoryKey string) ([]model.Product, error) {
	return f.catalog.Items(categoryKey)
}

func (f *ShopFacade) Product(itemID string) (*model.Product, error) {
	return f.catalog.Resolve(itemID)
}
