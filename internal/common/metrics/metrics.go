// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundscope_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fundscope_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"endpoint"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundscope_cache_hits_total",
			Help: "Result cache hits per view",
		},
		[]string{"view"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundscope_cache_misses_total",
			Help: "Result cache misses per view",
		},
		[]string{"view"},
	)

	DatasetCompanies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fundscope_dataset_companies",
			Help: "Number of companies in the loaded dataset",
		},
	)

	DatasetMilestones = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fundscope_dataset_milestones",
			Help: "Number of milestones in the loaded dataset",
		},
	)
)
