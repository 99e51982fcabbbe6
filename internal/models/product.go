package models

import "github.com/shopspring/decimal"

// Product is a catalog entry. The catalog is seeded at startup and
// read-only afterwards.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
}
