package repository

import "github.com/mkorobko/orderbot/internal/domain/model"

// Catalog resolves read-only product data.
type Catalog interface {
	Resolve(itemID string) (*model.Product, error)
	Categories() []model.Category
	Items(categoryKey string) ([]model.Product, error)
}
