// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register against the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure" (credential mismatches and unknown
//     emails are deliberately indistinguishable, so both count as "failure")
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// OrdersCreatedTotal counts successfully created orders.
// Label:
//   - payment_method: "Credit Card" or "Cash on Delivery"
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by payment method.",
	},
	[]string{"payment_method"},
)

// OrdersRejectedTotal counts order requests rejected before persistence.
// Label:
//   - reason: short description of the failure (e.g. "missing_fields")
var OrdersRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_rejected_total",
		Help:      "Total number of order requests rejected by validation.",
	},
	[]string{"reason"},
)

// OrderStatusUpdatesTotal counts admin status changes.
// Label:
//   - status: the new status applied (e.g. "Shipped")
var OrderStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Total number of order status updates, by new status.",
	},
	[]string{"status"},
)

// StoreWriteDuration measures how long one full snapshot write takes.
var StoreWriteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_write_duration_seconds",
		Help:      "Duration of a full snapshot write to the JSON store.",
		Buckets:   prometheus.DefBuckets,
	},
)
