package service

import (
	"context"
	"log/slog"

	"github.com/beanbarn/storefront/internal/models"
	"github.com/beanbarn/storefront/internal/store"
)

// CartService manages per-user carts.
type CartService struct {
	store *store.Store
	log   *slog.Logger
}

func NewCartService(st *store.Store, log *slog.Logger) *CartService {
	return &CartService{store: st, log: log}
}

// GetCart returns the user's cart lines; empty if no cart exists yet.
func (s *CartService) GetCart(ctx context.Context, userID string) []models.CartItem {
	var items []models.CartItem
	_ = s.store.View(func(tx *store.Tx) error {
		items = tx.Cart(userID)
		return nil
	})
	return items
}

// AddItem adds quantity of productID to the user's cart and returns the
// updated cart. Fails with ErrInvalidQuantity for non-positive quantities
// and ErrProductNotFound for unknown products.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) ([]models.CartItem, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	var items []models.CartItem
	err := s.store.Update(func(tx *store.Tx) error {
		if err := tx.AddToCart(userID, productID, quantity); err != nil {
			return err
		}
		items = tx.Cart(userID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("item added to cart",
		"user", userID, "product", productID, "quantity", quantity)
	return items, nil
}

// Clear empties the user's cart. Idempotent.
func (s *CartService) Clear(ctx context.Context, userID string) {
	_ = s.store.Update(func(tx *store.Tx) error {
		tx.ClearCart(userID)
		return nil
	})
}
