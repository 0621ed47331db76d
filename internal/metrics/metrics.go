// Package metrics счетчики Prometheus: HTTP запросы и события смартлинков.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smartlink"

var (
	// Количество HTTP запросов в разрезе метода, маршрута и статуса.
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	httpInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	viewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "views_total",
			Help:      "Total number of smartlink views",
		},
		[]string{"source"},
	)

	clicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clicks_total",
			Help:      "Total number of smartlink clicks, platform clicks included",
		},
	)

	platformClicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "platform_clicks_total",
			Help:      "Total number of clicks on smartlink platforms",
		},
	)
)

// Источники просмотров.
const (
	ViewSourceRecord  = "record"
	ViewSourceLanding = "landing"
)

// Recorder пишет события смартлинков в глобальный реестр Prometheus.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (Recorder) View(source string) {
	viewsTotal.WithLabelValues(source).Inc()
}

func (Recorder) Click() {
	clicksTotal.Inc()
}

func (Recorder) PlatformClick() {
	clicksTotal.Inc()
	platformClicksTotal.Inc()
}
