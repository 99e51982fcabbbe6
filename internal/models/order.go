package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable record of a completed checkout.
// TotalAmount is the gross (pre-discount) figure; FinalAmount is what was
// actually charged.
type Order struct {
	ID             string          `json:"id"`
	Items          []CartItem      `json:"items"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalAmount    decimal.Decimal `json:"finalAmount"`
	DiscountCode   string          `json:"discountCode,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ItemCount sums the quantities across all lines.
func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
