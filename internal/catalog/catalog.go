// Package catalog reads the product catalog from a products.json file.
//
// The file is read-only and assumed well-formed: a map of category keys to
// {"name": ..., "items": {id: {"name": ..., "price": ...}}}.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"

	domainErrors "github.com/mkorobko/orderbot/internal/domain/errors"
	"github.com/mkorobko/orderbot/internal/domain/model"
)

type itemEntry struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type categoryEntry struct {
	Name  string               `json:"name"`
	Items map[string]itemEntry `json:"items"`
}

// Catalog is an in-memory snapshot of the product file.
type Catalog struct {
	categories []model.Category
	byCategory map[string][]model.Product
	byItem     map[string]model.Product
}

// Load reads and indexes the catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries map[string]categoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		byCategory: make(map[string][]model.Product, len(entries)),
		byItem:     make(map[string]model.Product),
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entry := entries[key]
		c.categories = append(c.categories, model.Category{Key: key, Name: entry.Name})

		ids := make([]string, 0, len(entry.Items))
		for id := range entry.Items {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		products := make([]model.Product, 0, len(ids))
		for _, id := range ids {
			item := entry.Items[id]
			product := model.Product{
				ID:          id,
				Name:        item.Name,
				Category:    entry.Name,
				CategoryKey: key,
				Price:       item.Price,
			}
			products = append(products, product)
			c.byItem[id] = product
		}
		c.byCategory[key] = products
	}

	return c, nil
}

// Resolve looks an item up by identifier across all categories.
func (c *Catalog) Resolve(itemID string) (*model.Product, error) {
	product, ok := c.byItem[itemID]
	if !ok {
		return nil, domainErrors.ErrItemNotFound
	}
	return &product, nil
}

// Categories returns all categories in stable key order.
func (c *Catalog) Categories() []model.Category {
	return c.categories
}

// Items returns the products of one category in stable id order.
func (c *Catalog) Items(categoryKey string) ([]model.Product, error) {
	products, ok := c.byCategory[categoryKey]
	if !ok {
		return nil, domainErrors.ErrItemNotFound
	}
	return products, nil
}
