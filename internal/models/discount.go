package models

// DiscountCode is a single-use token granting a percentage reduction on one
// future order. Used flips false→true exactly once, when the code is
// consumed by a successful checkout, and never reverts.
type DiscountCode struct {
	Code          string `json:"code"`
	Percentage    int    `json:"percentage"`
	Used          bool   `json:"isUsed"`
	OriginOrderID string `json:"-"`
}

// Validation is the outcome of a discount-code lookup. Validation alone
// never consumes the code.
type Validation struct {
	Valid      bool `json:"valid"`
	Percentage int  `json:"percentage,omitempty"`
}
