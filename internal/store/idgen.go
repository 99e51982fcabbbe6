package store

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator supplies identifiers for orders and discount codes. Injected so
// tests can provide deterministic sequences while production uses random UUIDs.
type IDGenerator interface {
	OrderID() string
	DiscountCode() string
}

// UUIDGenerator is the production IDGenerator.
type UUIDGenerator struct{}

func (UUIDGenerator) OrderID() string {
	return "ord_" + uuid.NewString()
}

func (UUIDGenerator) DiscountCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "DISC-" + raw[:10]
}
