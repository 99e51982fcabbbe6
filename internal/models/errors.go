package models

import "github.com/go-faster/errors"

// Caller-facing error taxonomy. Handlers map these to 4xx responses;
// anything else surfaces as a generic 500.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidDiscount = errors.New("invalid or already used discount code")
	ErrMilestoneNotDue = errors.New("milestone condition not satisfied or code already exists for this milestone")
)
