package model

import "github.com/shopspring/decimal"

// Category groups catalog products.
type Category struct {
	Key  string
	Name string
}

// Product is a read-only catalog position.
type Product struct {
	ID          string
	Name        string
	Category    string
	CategoryKey string
	Price       decimal.Decimal
}
