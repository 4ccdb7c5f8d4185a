// Package metrics exposes Prometheus counters for the order lifecycle.
// Counters are registered on the default registry and served from /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersAdvanced counts orders moved one step forward by the advancement job.
	OrdersAdvanced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "oms",
		Subsystem: "advancer",
		Name:      "orders_advanced_total",
		Help:      "Number of orders advanced one lifecycle step.",
	})

	// OrdersExcepted counts orders routed to CANCELED or FRAUD by the exception branch.
	OrdersExcepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "oms",
		Subsystem: "advancer",
		Name:      "orders_excepted_total",
		Help:      "Number of orders moved to an exception state, by state.",
	}, []string{"state"})

	// PipelineResults counts commerce validation outcomes by result.
	PipelineResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "oms",
		Subsystem: "commerce",
		Name:      "pipeline_results_total",
		Help:      "Number of validation pipeline runs, by outcome.",
	}, []string{"outcome"})
)
