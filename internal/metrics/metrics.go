// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_total",
		Help: "Completed checkouts since process start.",
	})

	CheckoutRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkout_rejections_total",
		Help: "Checkouts rejected before any state change, by reason.",
	}, []string{"reason"})

	DiscountCodesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_discount_codes_issued_total",
		Help: "Discount codes minted by the reward engine, automatic or manual.",
	})

	DiscountCodesConsumed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_discount_codes_consumed_total",
		Help: "Discount codes consumed by successful checkouts.",
	})
)
