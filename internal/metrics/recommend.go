package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recommendation Prometheus metrics.
var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "recommend_requests_total",
			Help:      "Total number of recommendation computations",
		},
		[]string{"engine", "status"}, // engine: "tfidf" / "also_bought"
	)

	RecommendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "recommend_duration_seconds",
			Help:      "Recommendation computation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"engine"},
	)

	RecommendCorpusSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "recommend_corpus_size",
			Help:      "Comparison population size per TF-IDF request",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"engine"},
	)
)

var recMetricsRegistered bool

// RegisterRecommendMetrics registers Prometheus recommendation metrics. Must be called once from main.
func RegisterRecommendMetrics() {
	if recMetricsRegistered {
		return
	}
	prometheus.MustRegister(RecommendRequestsTotal)
	prometheus.MustRegister(RecommendDuration)
	prometheus.MustRegister(RecommendCorpusSize)
	recMetricsRegistered = true
}
