package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/beanbarn/storefront/internal/metrics"
	"github.com/beanbarn/storefront/internal/models"
	"github.com/beanbarn/storefront/internal/store"
)

var oneHundred = decimal.NewFromInt(100)

// CheckoutResult carries the created order and, when the checkout landed on
// a milestone, the freshly minted reward code.
type CheckoutResult struct {
	Order      models.Order
	RewardCode string
}

// CheckoutService converts carts into orders and drives the reward engine.
type CheckoutService struct {
	store *store.Store
	log   *slog.Logger
}

func NewCheckoutService(st *store.Store, log *slog.Logger) *CheckoutService {
	return &CheckoutService{store: st, log: log}
}

// Checkout runs the full checkout transaction for userID under a single
// exclusive store lock: re-validate the discount code, compute totals,
// append the order, clear the cart, consume the code, and evaluate the
// milestone rule. Validation failures leave state untouched.
//
// The discount code is validated inside the same critical section that
// consumes it, so a validate-then-checkout pair of requests cannot race a
// second checkout for the same code.
func (s *CheckoutService) Checkout(ctx context.Context, userID, discountCode string) (CheckoutResult, error) {
	cfg := s.store.Config()

	var res CheckoutResult
	err := s.store.Update(func(tx *store.Tx) error {
		items := tx.Cart(userID)
		if len(items) == 0 {
			metrics.CheckoutRejections.WithLabelValues("empty_cart").Inc()
			return models.ErrEmptyCart
		}

		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.Subtotal())
		}

		// Validate before any mutation so a rejected checkout has zero effects.
		discount := decimal.Zero
		if discountCode != "" {
			v := tx.ValidateDiscount(discountCode)
			if !v.Valid {
				metrics.CheckoutRejections.WithLabelValues("invalid_discount").Inc()
				return models.ErrInvalidDiscount
			}
			discount = total.Mul(decimal.NewFromInt(int64(v.Percentage))).Div(oneHundred)
		}

		order := models.Order{
			ID:             tx.NewOrderID(),
			Items:          items,
			TotalAmount:    total,
			DiscountAmount: discount,
			FinalAmount:    total.Sub(discount),
			DiscountCode:   discountCode,
			CreatedAt:      time.Now().UTC(),
		}

		// Order first, then cart, then code: if anything later fails the
		// ledger and the order's discountCode field already agree.
		tx.AppendOrder(order)
		tx.ClearCart(userID)
		if discountCode != "" {
			tx.ConsumeDiscount(discountCode)
			metrics.DiscountCodesConsumed.Inc()
		}

		res.Order = order
		metrics.OrdersTotal.Inc()

		// Milestone rule counts the whole ledger, not per user, and fires
		// even when this checkout itself redeemed a code.
		if n := tx.OrderCount(); n%cfg.MilestoneInterval == 0 {
			dc := tx.IssueCode(cfg.RewardPercentage, order.ID)
			res.RewardCode = dc.Code
			metrics.DiscountCodesIssued.Inc()
		}
		return nil
	})
	if err != nil {
		s.log.Warn("checkout rejected", "user", userID, "error", err)
		return CheckoutResult{}, err
	}

	s.log.Info("checkout completed",
		"user", userID,
		"order", res.Order.ID,
		"total", res.Order.TotalAmount,
		"final", res.Order.FinalAmount,
		"reward", res.RewardCode != "")
	return res, nil
}
