package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/beanbarn/storefront/internal/api/handlers"
	"github.com/beanbarn/storefront/internal/api/middleware"
	"github.com/beanbarn/storefront/internal/service"
	"github.com/beanbarn/storefront/internal/store"
)

// NewRouter builds the HTTP router for the storefront.
func NewRouter(st *store.Store, log *slog.Logger) http.Handler {
	products := handlers.NewProductHandler(service.NewProductService(st))
	carts := handlers.NewCartHandler(service.NewCartService(st, log))
	checkout := handlers.NewCheckoutHandler(service.NewCheckoutService(st, log))
	discounts := service.NewDiscountService(st, log)
	discountHandler := handlers.NewDiscountHandler(discounts)
	admin := handlers.NewAdminHandler(service.NewAnalyticsService(st), discounts)

	r := chi.NewRouter()
	r.Use(middleware.Logger(log))
	r.Use(chimw.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", products.List)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", carts.Get)
			r.Post("/add", carts.AddItem)
		})

		r.Post("/checkout", checkout.Checkout)
		r.Post("/discount/validate", discountHandler.Validate)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", admin.Stats)
			r.Post("/generate-code", admin.GenerateCode)
		})
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Endpoint not found"}`))
	})

	return r
}
