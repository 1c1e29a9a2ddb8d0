package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Checkout metrics
	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Total number of orders successfully created",
		},
	)

	OrderFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_order_failures_total",
			Help: "Total number of rejected or failed checkouts",
		},
		[]string{"reason"},
	)

	// Stock ledger metrics
	StockConflictRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_stock_conflict_retries_total",
			Help: "Total number of optimistic stock updates retried after a version conflict",
		},
	)
)
