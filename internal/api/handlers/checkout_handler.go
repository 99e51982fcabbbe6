package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/beanbarn/storefront/internal/models"
	"github.com/beanbarn/storefront/internal/service"
)

type CheckoutRequest struct {
	DiscountCode string `json:"discountCode"`
}

type RewardNotice struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type CheckoutResponse struct {
	Message string        `json:"message"`
	Order   models.Order  `json:"order"`
	Reward  *RewardNotice `json:"reward"`
}

type CheckoutHandler struct {
	checkout *service.CheckoutService
}

func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout handles POST /api/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	// An empty body means checkout without a discount code.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	res, err := h.checkout.Checkout(r.Context(), defaultUserID, req.DiscountCode)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := CheckoutResponse{Message: "Checkout successful", Order: res.Order}
	if res.RewardCode != "" {
		resp.Reward = &RewardNotice{
			Message: "Congratulations! You've received a discount code for being our nth customer!",
			Code:    res.RewardCode,
		}
	}
	writeJSON(w, http.StatusCreated, resp)
}
