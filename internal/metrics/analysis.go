package metrics

import "github.com/prometheus/client_golang/prometheus"

// Analysis Prometheus metrics.
var (
	AnalysisRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lisan",
			Name:      "analysis_requests_total",
			Help:      "Total number of analysis operations",
		},
		[]string{"operation", "language", "status"},
	)

	AnalysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lisan",
			Name:      "analysis_duration_seconds",
			Help:      "Analysis operation duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	AnalysisTextWords = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lisan",
			Name:      "analysis_text_words",
			Help:      "Word count of analyzed texts",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		},
		[]string{"operation"},
	)

	AnalysisCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lisan",
			Name:      "analysis_cache_total",
			Help:      "Analysis cache hits and misses",
		},
		[]string{"operation", "result"}, // result: "hit" / "miss"
	)
)

var analysisMetricsRegistered bool

// RegisterAnalysisMetrics registers Prometheus analysis metrics. Must be called once from main.
func RegisterAnalysisMetrics() {
	if analysisMetricsRegistered {
		return
	}
	prometheus.MustRegister(AnalysisRequestsTotal)
	prometheus.MustRegister(AnalysisDuration)
	prometheus.MustRegister(AnalysisTextWords)
	prometheus.MustRegister(AnalysisCacheTotal)
	analysisMetricsRegistered = true
}
