package fibonacci

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for engine-level observability.
var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibonacci_calculations_total",
			Help: "The total number of Fibonacci calculations processed",
		},
		[]string{"algorithm", "status"},
	)
	calculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fibonacci_calculation_duration_seconds",
			Help: "The duration of Fibonacci calculations in seconds",
		},
		[]string{"algorithm"},
	)
	memoCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibonacci_memo_cache_hits_total",
		Help: "The number of memoization cache hits",
	})
	memoCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibonacci_memo_cache_misses_total",
		Help: "The number of memoization cache misses",
	})
)
