package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recommendation pipeline Prometheus metrics.
var (
	PipelineRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adengine",
			Name:      "pipeline_requests_total",
			Help:      "Total number of recommendation pipeline runs",
		},
		[]string{"status"},
	)

	PipelineDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "adengine",
			Name:      "pipeline_duration_seconds",
			Help:      "End-to-end pipeline duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	MatchesReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "adengine",
			Name:      "matches_returned",
			Help:      "Number of ads returned per recommendation",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		},
	)

	InventorySize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "adengine",
			Name:      "inventory_ads",
			Help:      "Number of ads currently in the inventory",
		},
	)

	ResultCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adengine",
			Name:      "result_cache_total",
			Help:      "Result cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers Prometheus pipeline metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(PipelineRequestsTotal)
	prometheus.MustRegister(PipelineDuration)
	prometheus.MustRegister(MatchesReturned)
	prometheus.MustRegister(InventorySize)
	prometheus.MustRegister(ResultCacheTotal)
	engineMetricsRegistered = true
}
