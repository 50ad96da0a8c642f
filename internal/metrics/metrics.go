// metrics — прометеевские метрики newsportal.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IngestRuns — количество проходов приёма новостей по провайдерам и исходу.
	IngestRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsportal",
		Subsystem: "ingest",
		Name:      "runs_total",
		Help:      "News ingest runs by provider and outcome.",
	}, []string{"provider", "outcome"})

	// IngestItems — количество новостей, сохранённых за проходы.
	IngestItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsportal",
		Subsystem: "ingest",
		Name:      "items_total",
		Help:      "News items upserted by provider.",
	}, []string{"provider"})

	// HTTPRequests — количество HTTP-запросов по маршруту, методу и статусу.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsportal",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "code"})

	// HTTPDuration — длительность HTTP-запросов.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "newsportal",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)
