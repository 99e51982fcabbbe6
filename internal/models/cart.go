package models

import "github.com/shopspring/decimal"

// CartItem is a line in a user's cart. UnitPrice is snapshotted from the
// catalog when the line is first added; later catalog changes do not touch
// existing lines.
type CartItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// Subtotal returns UnitPrice × Quantity.
func (c CartItem) Subtotal() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
