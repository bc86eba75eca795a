// Package metrics exposes Prometheus counters for the data access layer
// and the recompute pass.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StatementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hnl",
		Subsystem: "store",
		Name:      "statements_total",
		Help:      "Executed read/write statements by operation.",
	}, []string{"op"})

	StatementErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hnl",
		Subsystem: "store",
		Name:      "statement_errors_total",
		Help:      "Failed statements by operation.",
	}, []string{"op"})

	RecomputePasses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hnl",
		Subsystem: "analytics",
		Name:      "recompute_passes_total",
		Help:      "Completed threat score recompute passes.",
	})

	RecomputeRowErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hnl",
		Subsystem: "analytics",
		Name:      "recompute_row_errors_total",
		Help:      "Rows that failed to persist during recompute.",
	})
)
