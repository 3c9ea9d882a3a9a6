package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	HTTPRequests          *prometheus.CounterVec
	WSSessions            prometheus.Gauge
	OverviewComputeTime   prometheus.Histogram
	DetailedStatusUpdates prometheus.Counter
	ErrorsCount           *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of handled HTTP requests",
		}, []string{"route", "code"}),
		WSSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ws_sessions",
			Help:      "Number of open job overview websocket sessions",
		}),
		OverviewComputeTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "overview_compute_seconds",
			Help:      "Time taken to compute the job overview counters",
			Buckets:   prometheus.DefBuckets,
		}),
		DetailedStatusUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detailed_status_updates_total",
			Help:      "The total number of jobs whose detailed_status was rewritten",
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
