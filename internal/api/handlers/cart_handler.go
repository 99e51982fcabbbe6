package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/beanbarn/storefront/internal/models"
	"github.com/beanbarn/storefront/internal/service"
)

type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CartResponse struct {
	Message string            `json:"message"`
	Cart    []models.CartItem `json:"cart"`
}

type CartHandler struct {
	carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get handles GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.carts.GetCart(r.Context(), defaultUserID))
}

// AddItem handles POST /api/cart/add
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "productId is required"})
		return
	}

	cart, err := h.carts.AddItem(r.Context(), defaultUserID, req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CartResponse{Message: "Item added to cart", Cart: cart})
}
