// Package metrics defines and registers all custom Prometheus metrics for the
// restaurant API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default registry at init time via
// promauto; importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "inactive"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts authorization gate denials.
// Labels:
//   - resource: the page or resource that was denied
//   - role: the role of the denied user
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by the authorization gate.",
	},
	[]string{"resource", "role"},
)

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - status: the initial lifecycle status (usually "pending")
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by initial status.",
	},
	[]string{"status"},
)

// OrdersPaidTotal counts orders marked as paid.
var OrdersPaidTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_paid_total",
		Help:      "Total number of orders marked as paid.",
	},
)

// OrderRevenue observes the total of each paid order.
var OrderRevenue = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_revenue",
		Help:      "Distribution of order totals at payment time.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000},
	},
)
