package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/beanbarn/storefront/internal/service"
)

type ValidateRequest struct {
	Code string `json:"code"`
}

type ValidateResponse struct {
	Valid      bool   `json:"valid"`
	Percentage int    `json:"percentage,omitempty"`
	Message    string `json:"message,omitempty"`
}

type DiscountHandler struct {
	discounts *service.DiscountService
}

func NewDiscountHandler(discounts *service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discounts: discounts}
}

// Validate handles POST /api/discount/validate
func (h *DiscountHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Discount code is required"})
		return
	}

	v := h.discounts.Validate(r.Context(), req.Code)
	if !v.Valid {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"valid": false,
			"error": "Invalid or already used discount code",
		})
		return
	}
	writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:      true,
		Percentage: v.Percentage,
		Message:    fmt.Sprintf("Success! %d%% discount applied.", v.Percentage),
	})
}
