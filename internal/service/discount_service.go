package service

import (
	"context"
	"log/slog"

	"github.com/beanbarn/storefront/internal/metrics"
	"github.com/beanbarn/storefront/internal/models"
	"github.com/beanbarn/storefront/internal/store"
)

// MilestoneInfo reports where the ledger stands relative to the next reward
// milestone. Returned to operators when a manual generation is refused.
type MilestoneInfo struct {
	CurrentOrderCount int `json:"currentOrderCount"`
	NextMilestone     int `json:"nextMilestone"`
}

// DiscountService exposes the discount-code registry: validation for
// shoppers and manual milestone issuance for operators.
type DiscountService struct {
	store *store.Store
	log   *slog.Logger
}

func NewDiscountService(st *store.Store, log *slog.Logger) *DiscountService {
	return &DiscountService{store: st, log: log}
}

// Validate reports whether code exists and is still unconsumed. Read-only;
// checkout re-validates inside its own transaction before consuming.
func (s *DiscountService) Validate(ctx context.Context, code string) models.Validation {
	var v models.Validation
	_ = s.store.View(func(tx *store.Tx) error {
		v = tx.ValidateDiscount(code)
		return nil
	})
	return v
}

// ManualGenerate issues a reward code for the most recent order if it sits
// exactly on a milestone boundary and no code was already issued for it.
// Lets an operator recover a missed automatic trigger without double-issuing.
// Returns ErrMilestoneNotDue (with milestone counters) otherwise.
func (s *DiscountService) ManualGenerate(ctx context.Context) (string, MilestoneInfo, error) {
	cfg := s.store.Config()

	var code string
	var info MilestoneInfo
	err := s.store.Update(func(tx *store.Tx) error {
		n := tx.OrderCount()
		info = MilestoneInfo{
			CurrentOrderCount: n,
			NextMilestone:     (n/cfg.MilestoneInterval + 1) * cfg.MilestoneInterval,
		}

		last, ok := tx.LastOrder()
		if !ok || n%cfg.MilestoneInterval != 0 || tx.HasCodeForOrder(last.ID) {
			return models.ErrMilestoneNotDue
		}

		dc := tx.IssueCode(cfg.RewardPercentage, last.ID)
		code = dc.Code
		metrics.DiscountCodesIssued.Inc()
		return nil
	})
	if err != nil {
		return "", info, err
	}

	s.log.Info("discount code generated manually", "code", code)
	return code, info, nil
}
