package metrics

import "github.com/prometheus/client_golang/prometheus"

// Language model Prometheus metrics.
var (
	ModelRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moradia",
			Name:      "model_requests_total",
			Help:      "Total number of language model requests",
		},
		[]string{"provider", "model", "status"},
	)

	ModelRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "moradia",
			Name:      "model_request_duration_seconds",
			Help:      "Language model request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model"},
	)

	ModelTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moradia",
			Name:      "model_tokens_total",
			Help:      "Total language model tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)

	ModelErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moradia",
			Name:      "model_errors_total",
			Help:      "Total language model errors",
		},
		[]string{"provider", "model", "error_type"},
	)
)

var modelMetricsRegistered bool

// RegisterModelMetrics registers Prometheus model metrics. Must be called once from main.
func RegisterModelMetrics() {
	if modelMetricsRegistered {
		return
	}
	prometheus.MustRegister(ModelRequestsTotal)
	prometheus.MustRegister(ModelRequestDuration)
	prometheus.MustRegister(ModelTokensTotal)
	prometheus.MustRegister(ModelErrorsTotal)
	modelMetricsRegistered = true
}
