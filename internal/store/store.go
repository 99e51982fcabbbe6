// Package store owns all mutable state for the storefront: the seeded
// catalog, per-user carts, the order ledger and the discount-code registry.
// State is volatile; everything resets to the seed on process restart.
//
// All access goes through View (shared lock) or Update (exclusive lock)
// closures. A checkout runs inside a single Update, which is what makes
// "read cart → append order → clear cart → consume code → maybe issue code"
// behave as one atomic transaction without finer-grained locking.
package store

import (
	"sync"

	"github.com/beanbarn/storefront/internal/models"
)

// Config holds the reward-engine constants, fixed at construction.
type Config struct {
	// MilestoneInterval is N: every Nth order in the ledger mints a reward code.
	MilestoneInterval int
	// RewardPercentage is the discount carried by minted codes.
	RewardPercentage int
}

type state struct {
	products []models.Product
	orders   []models.Order
	codes    []models.DiscountCode
	carts    map[string][]models.CartItem
}

// Store is the single owner of mutable storefront state.
type Store struct {
	mu  sync.RWMutex
	ids IDGenerator
	cfg Config
	st  state
}

// New builds a Store seeded with the given catalog and an empty ledger,
// registry and cart map.
func New(cfg Config, ids IDGenerator, catalog []models.Product) *Store {
	return &Store{
		ids: ids,
		cfg: cfg,
		st: state{
			products: catalog,
			carts:    make(map[string][]models.CartItem),
		},
	}
}

// Config returns the reward-engine constants.
func (s *Store) Config() Config { return s.cfg }

// View runs fn under the shared lock. fn must not mutate state.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{st: &s.st, ids: s.ids})
}

// Update runs fn under the exclusive lock. If fn returns an error the caller
// must not have mutated state first; there is no rollback.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{st: &s.st, ids: s.ids})
}

// Tx exposes state primitives inside a View or Update closure. It is only
// valid for the duration of the closure.
type Tx struct {
	st  *state
	ids IDGenerator
}

// Products returns a copy of the catalog.
func (tx *Tx) Products() []models.Product {
	out := make([]models.Product, len(tx.st.products))
	copy(out, tx.st.products)
	return out
}

// Product looks up a catalog entry by id.
func (tx *Tx) Product(id string) (models.Product, bool) {
	for _, p := range tx.st.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Cart returns a copy of the user's cart lines; an empty slice if the user
// has no cart yet.
func (tx *Tx) Cart(userID string) []models.CartItem {
	items := tx.st.carts[userID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// AddToCart adds quantity of productID to the user's cart, snapshotting the
// unit price from the catalog on first add. Repeated adds of the same
// product increment the existing line and leave its price untouched.
func (tx *Tx) AddToCart(userID, productID string, quantity int) error {
	product, ok := tx.Product(productID)
	if !ok {
		return models.ErrProductNotFound
	}

	items := tx.st.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			return nil
		}
	}
	tx.st.carts[userID] = append(items, models.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: product.Price,
	})
	return nil
}

// ClearCart empties the user's cart. Idempotent.
func (tx *Tx) ClearCart(userID string) {
	tx.st.carts[userID] = nil
}

// AppendOrder adds an order to the end of the ledger. The checkout service
// is the only writer and guarantees validity.
func (tx *Tx) AppendOrder(order models.Order) {
	tx.st.orders = append(tx.st.orders, order)
}

// Orders returns a copy of the ledger in insertion order.
func (tx *Tx) Orders() []models.Order {
	out := make([]models.Order, len(tx.st.orders))
	copy(out, tx.st.orders)
	return out
}

// OrderCount is the authoritative order count for milestone arithmetic.
func (tx *Tx) OrderCount() int { return len(tx.st.orders) }

// LastOrder returns the most recently appended order.
func (tx *Tx) LastOrder() (models.Order, bool) {
	if len(tx.st.orders) == 0 {
		return models.Order{}, false
	}
	return tx.st.orders[len(tx.st.orders)-1], true
}

// DiscountCodes returns a copy of every issued code, consumed or not.
func (tx *Tx) DiscountCodes() []models.DiscountCode {
	out := make([]models.DiscountCode, len(tx.st.codes))
	copy(out, tx.st.codes)
	return out
}

// ValidateDiscount reports whether code exists and is unconsumed. Never
// mutates state.
func (tx *Tx) ValidateDiscount(code string) models.Validation {
	for _, dc := range tx.st.codes {
		if dc.Code == code && !dc.Used {
			return models.Validation{Valid: true, Percentage: dc.Percentage}
		}
	}
	return models.Validation{}
}

// ConsumeDiscount marks the matching unconsumed code as used. No-op if no
// such code exists; callers validate first inside the same Update.
func (tx *Tx) ConsumeDiscount(code string) {
	for i := range tx.st.codes {
		if tx.st.codes[i].Code == code && !tx.st.codes[i].Used {
			tx.st.codes[i].Used = true
			return
		}
	}
}

// IssueCode mints a fresh unconsumed discount code attributed to the order
// that triggered it.
func (tx *Tx) IssueCode(percentage int, originOrderID string) models.DiscountCode {
	dc := models.DiscountCode{
		Code:          tx.ids.DiscountCode(),
		Percentage:    percentage,
		OriginOrderID: originOrderID,
	}
	tx.st.codes = append(tx.st.codes, dc)
	return dc
}

// HasCodeForOrder reports whether any code, consumed or not, was already
// issued for the given order. Guards the manual-generation path against
// double-issuing for the same milestone.
func (tx *Tx) HasCodeForOrder(orderID string) bool {
	for _, dc := range tx.st.codes {
		if dc.OriginOrderID == orderID {
			return true
		}
	}
	return false
}

// NewOrderID returns a fresh unique order identifier.
func (tx *Tx) NewOrderID() string { return tx.ids.OrderID() }
