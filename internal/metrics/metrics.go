package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bookshop"

// Metrics holds the collectors of the API. A nil *Metrics records nothing.
type Metrics struct {
	Requests          *prometheus.CounterVec
	LatencyMS         *prometheus.HistogramVec
	UpstreamCalls     *prometheus.CounterVec
	UpstreamLatencyMS *prometheus.HistogramVec
	OrdersCreated     prometheus.Counter
}

var latencyBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   latencyBuckets,
		}, []string{"route"}),
		UpstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Calls to third-party APIs by outcome.",
		}, []string{"service", "operation", "outcome"}),
		UpstreamLatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_call_duration_ms",
			Help:      "Third-party API latency in milliseconds.",
			Buckets:   latencyBuckets,
		}, []string{"service", "operation"}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders committed.",
		}),
	}

	reg.MustRegister(m.Requests, m.LatencyMS, m.UpstreamCalls, m.UpstreamLatencyMS, m.OrdersCreated)
	return m
}

func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, method, status).Inc()
	m.LatencyMS.WithLabelValues(route).Observe(float64(d.Milliseconds()))
}

func (m *Metrics) ObserveUpstream(service, operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamCalls.WithLabelValues(service, operation, outcome).Inc()
	m.UpstreamLatencyMS.WithLabelValues(service, operation).Observe(float64(d.Milliseconds()))
}

func (m *Metrics) OrderCreated() {
	if m == nil {
		return
	}
	m.OrdersCreated.Inc()
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
