package handlers

import (
	"net/http"

	"github.com/beanbarn/storefront/internal/service"
)

type AdminHandler struct {
	analytics *service.AnalyticsService
	discounts *service.DiscountService
}

func NewAdminHandler(analytics *service.AnalyticsService, discounts *service.DiscountService) *AdminHandler {
	return &AdminHandler{analytics: analytics, discounts: discounts}
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.analytics.Stats(r.Context()))
}

// GenerateCode handles POST /api/admin/generate-code: issues a reward code
// for the latest order if the milestone condition holds and no code exists
// for it yet.
func (h *AdminHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	code, info, err := h.discounts.ManualGenerate(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":             "Condition not satisfied or code already exists for this milestone.",
			"currentOrderCount": info.CurrentOrderCount,
			"nextMilestone":     info.NextMilestone,
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Discount code generated successfully.",
		"code":    code,
	})
}
