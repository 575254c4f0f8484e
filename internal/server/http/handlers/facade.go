package handlers

import (
	"context"

	"github.com/mkorobko/orderbot/internal/domain/model"
	"github.com/mkorobko/orderbot/internal/usecase"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID int64, username string, selections []usecase.Selection) (*model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	SetOrderStatus(ctx context.Context, number int, status string) (*model.Order, error)
}

// CatalogFacade provides read-only catalog access.
type CatalogFacade interface {
	Categories() []model.Category
	CategoryItems(categoryKey string) ([]model.Product, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	OrderFacade
	CatalogFacade
}
