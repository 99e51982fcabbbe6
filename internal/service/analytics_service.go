package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/beanbarn/storefront/internal/concurrency"
	"github.com/beanbarn/storefront/internal/models"
	"github.com/beanbarn/storefront/internal/store"
)

// statsWorkers bounds the fan-out when summarizing the ledger.
const statsWorkers = 4

// OrderSummary is one ledger entry in the stats payload.
type OrderSummary struct {
	ID        string          `json:"id"`
	Total     decimal.Decimal `json:"total"`
	Discount  decimal.Decimal `json:"discount"`
	Items     int             `json:"items"`
	Timestamp time.Time       `json:"timestamp"`
}

// CodeSummary is the public view of a discount code. The originating order
// id is internal attribution and deliberately not exposed.
type CodeSummary struct {
	Code       string `json:"code"`
	Used       bool   `json:"isUsed"`
	Percentage int    `json:"percentage"`
}

// StoreStats aggregates the whole order history. TotalRevenue reports gross
// (pre-discount) amounts.
type StoreStats struct {
	TotalItemsPurchased int             `json:"totalItemsPurchased"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalDiscountGiven  decimal.Decimal `json:"totalDiscountGiven"`
	Orders              []OrderSummary  `json:"orders"`
	DiscountCodes       []CodeSummary   `json:"discountCodes"`
}

// AnalyticsService derives stats from the ledger and the code registry on
// demand; nothing is cached, so two calls without an intervening checkout
// return identical results.
type AnalyticsService struct {
	store *store.Store
}

func NewAnalyticsService(st *store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

// Stats summarizes every order and discount code. Orders come back in
// reverse-chronological (newest first) order.
func (s *AnalyticsService) Stats(ctx context.Context) StoreStats {
	var orders []models.Order
	var codes []models.DiscountCode
	_ = s.store.View(func(tx *store.Tx) error {
		orders = tx.Orders()
		codes = tx.DiscountCodes()
		return nil
	})

	// Each worker writes only its own index, so the slice needs no lock.
	summaries := make([]OrderSummary, len(orders))
	concurrency.ForEach(ctx, statsWorkers, len(orders), func(_ context.Context, i int) {
		o := orders[len(orders)-1-i]
		summaries[i] = OrderSummary{
			ID:        o.ID,
			Total:     o.TotalAmount,
			Discount:  o.DiscountAmount,
			Items:     o.ItemCount(),
			Timestamp: o.CreatedAt,
		}
	})

	stats := StoreStats{
		TotalRevenue:       decimal.Zero,
		TotalDiscountGiven: decimal.Zero,
		Orders:             summaries,
		DiscountCodes:      make([]CodeSummary, 0, len(codes)),
	}
	for _, sum := range summaries {
		stats.TotalItemsPurchased += sum.Items
		stats.TotalRevenue = stats.TotalRevenue.Add(sum.Total)
		stats.TotalDiscountGiven = stats.TotalDiscountGiven.Add(sum.Discount)
	}
	for _, dc := range codes {
		stats.DiscountCodes = append(stats.DiscountCodes, CodeSummary{
			Code:       dc.Code,
			Used:       dc.Used,
			Percentage: dc.Percentage,
		})
	}
	return stats
}
