package service

import (
	"context"

	"github.com/beanbarn/storefront/internal/models"
	"github.com/beanbarn/storefront/internal/store"
)

// ProductService serves the read-only catalog.
type ProductService struct {
	store *store.Store
}

func NewProductService(st *store.Store) *ProductService {
	return &ProductService{store: st}
}

// All returns every catalog entry.
func (s *ProductService) All(ctx context.Context) []models.Product {
	var products []models.Product
	_ = s.store.View(func(tx *store.Tx) error {
		products = tx.Products()
		return nil
	})
	return products
}
