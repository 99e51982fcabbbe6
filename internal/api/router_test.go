package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/beanbarn/storefront/internal/api"
	"github.com/beanbarn/storefront/internal/api/handlers"
	"github.com/beanbarn/storefront/internal/models"
	"github.com/beanbarn/storefront/internal/service"
	"github.com/beanbarn/storefront/internal/store"
)

type seqIDs struct{ orders, codes int }

func (g *seqIDs) OrderID() string {
	g.orders++
	return fmt.Sprintf("ord_%d", g.orders)
}

func (g *seqIDs) DiscountCode() string {
	g.codes++
	return fmt.Sprintf("DISC-%d", g.codes)
}

func newTestRouter(t *testing.T, interval int) (http.Handler, *store.Store) {
	t.Helper()
	st := store.New(store.Config{MilestoneInterval: interval, RewardPercentage: 10},
		&seqIDs{}, store.DefaultCatalog())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return api.NewRouter(st, log), st
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestListProducts(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decode(t, rec, &products)
	require.Len(t, products, 8)
	require.Equal(t, "Premium Coffee Beans", products[0].Name)
}

func TestGetCartInitiallyEmpty(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart []models.CartItem
	decode(t, rec, &cart)
	require.Empty(t, cart)
}

func TestAddToCart(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodPost, "/api/cart/add",
		handlers.AddItemRequest{ProductID: "1", Quantity: 2})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.CartResponse
	decode(t, rec, &resp)
	require.Equal(t, "Item added to cart", resp.Message)
	require.Len(t, resp.Cart, 1)
	require.Equal(t, 2, resp.Cart[0].Quantity)
}

func TestAddToCartRejections(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	cases := []struct {
		name string
		body interface{}
		want int
	}{
		{"zero quantity", handlers.AddItemRequest{ProductID: "1", Quantity: 0}, http.StatusBadRequest},
		{"negative quantity", handlers.AddItemRequest{ProductID: "1", Quantity: -3}, http.StatusBadRequest},
		{"missing product id", handlers.AddItemRequest{Quantity: 1}, http.StatusBadRequest},
		{"unknown product", handlers.AddItemRequest{ProductID: "999", Quantity: 1}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/cart/add", tc.body)
			require.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestAddToCartMalformedBody(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodPost, "/api/checkout", handlers.CheckoutRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// Full scenario: checkout mints a reward on every order (interval 1), the
// reward redeems at 10% with exact fractional amounts, and a consumed code
// stops validating.
func TestCheckoutRewardScenario(t *testing.T) {
	r, _ := newTestRouter(t, 1)

	rec := doJSON(t, r, http.MethodPost, "/api/cart/add",
		handlers.AddItemRequest{ProductID: "1", Quantity: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/checkout", handlers.CheckoutRequest{})
	require.Equal(t, http.StatusCreated, rec.Code)

	var first handlers.CheckoutResponse
	decode(t, rec, &first)
	require.Equal(t, "Checkout successful", first.Message)
	require.True(t, first.Order.TotalAmount.Equal(decimal.NewFromInt(25)))
	require.True(t, first.Order.FinalAmount.Equal(decimal.NewFromInt(25)))
	require.NotNil(t, first.Reward)
	require.NotEmpty(t, first.Reward.Code)

	// The fresh code validates.
	rec = doJSON(t, r, http.MethodPost, "/api/discount/validate",
		handlers.ValidateRequest{Code: first.Reward.Code})
	require.Equal(t, http.StatusOK, rec.Code)
	var v handlers.ValidateResponse
	decode(t, rec, &v)
	require.True(t, v.Valid)
	require.Equal(t, 10, v.Percentage)

	// Redeem it on a second order.
	rec = doJSON(t, r, http.MethodPost, "/api/cart/add",
		handlers.AddItemRequest{ProductID: "1", Quantity: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/checkout",
		handlers.CheckoutRequest{DiscountCode: first.Reward.Code})
	require.Equal(t, http.StatusCreated, rec.Code)

	var second handlers.CheckoutResponse
	decode(t, rec, &second)
	require.True(t, second.Order.DiscountAmount.Equal(decimal.RequireFromString("2.5")))
	require.True(t, second.Order.FinalAmount.Equal(decimal.RequireFromString("22.5")))
	require.NotNil(t, second.Reward)

	// Consumed: validation now fails.
	rec = doJSON(t, r, http.MethodPost, "/api/discount/validate",
		handlers.ValidateRequest{Code: first.Reward.Code})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// And reuse at checkout fails too.
	rec = doJSON(t, r, http.MethodPost, "/api/cart/add",
		handlers.AddItemRequest{ProductID: "1", Quantity: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/checkout",
		handlers.CheckoutRequest{DiscountCode: first.Reward.Code})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutWithoutBody(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodPost, "/api/cart/add",
		handlers.AddItemRequest{ProductID: "2", Quantity: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	out := httptest.NewRecorder()
	r.ServeHTTP(out, req)
	require.Equal(t, http.StatusCreated, out.Code)
}

func TestValidateDiscountRequiresCode(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodPost, "/api/discount/validate", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminStats(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodPost, "/api/cart/add",
		handlers.AddItemRequest{ProductID: "1", Quantity: 3})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/checkout", handlers.CheckoutRequest{})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats service.StoreStats
	decode(t, rec, &stats)
	require.Equal(t, 3, stats.TotalItemsPurchased)
	require.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(75)))
	require.Len(t, stats.Orders, 1)
}

func TestAdminGenerateCodeNotDue(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodPost, "/api/admin/generate-code", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error             string `json:"error"`
		CurrentOrderCount int    `json:"currentOrderCount"`
		NextMilestone     int    `json:"nextMilestone"`
	}
	decode(t, rec, &body)
	require.NotEmpty(t, body.Error)
	require.Equal(t, 0, body.CurrentOrderCount)
	require.Equal(t, 2, body.NextMilestone)
}

func TestAdminGenerateCodeRecoversMissedMilestone(t *testing.T) {
	r, st := newTestRouter(t, 2)

	// Simulate a ledger that reached a milestone without a code being issued.
	require.NoError(t, st.Update(func(tx *store.Tx) error {
		tx.AppendOrder(models.Order{ID: tx.NewOrderID()})
		tx.AppendOrder(models.Order{ID: tx.NewOrderID()})
		return nil
	}))

	rec := doJSON(t, r, http.MethodPost, "/api/admin/generate-code", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	require.NotEmpty(t, body["code"])

	// Second trigger for the same milestone is refused.
	rec = doJSON(t, r, http.MethodPost, "/api/admin/generate-code", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodGet, "/api/unknown", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	require.Equal(t, "Endpoint not found", body["error"])
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	r, _ := newTestRouter(t, 2)

	rec := doJSON(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
