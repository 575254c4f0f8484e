package dto

import "github.com/shopspring/decimal"

// ProductResponse is one catalog item as served to the mini-app.
type ProductResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CategoryResponse mirrors one category of the catalog file.
type CategoryResponse struct {
	Name  string                     `json:"name"`
	Items map[string]ProductResponse `json:"items"`
}
