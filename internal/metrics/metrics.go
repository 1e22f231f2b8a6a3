// Package metrics records Prometheus metrics for backend API calls made by
// the client.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the API client reports into.
type Recorder interface {
	RecordResponse(operation string, statusCode int, latency time.Duration)
	RecordTransportError(operation string)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	responses       *prometheus.CounterVec
	transportErrors *prometheus.CounterVec
	latency         *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "myrecords_api_responses_total",
			Help: "Backend responses by operation and HTTP status code.",
		}, []string{"operation", "status_code"}),
		transportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "myrecords_api_transport_errors_total",
			Help: "Backend calls that failed before a response arrived.",
		}, []string{"operation"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "myrecords_api_latency_seconds",
			Help:    "Backend call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(c.responses, c.transportErrors, c.latency)
	return c
}

func (c *Collector) RecordResponse(operation string, statusCode int, latency time.Duration) {
	c.responses.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(operation).Observe(latency.Seconds())
}

func (c *Collector) RecordTransportError(operation string) {
	c.transportErrors.WithLabelValues(operation).Inc()
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordResponse(string, int, time.Duration) {}
func (Nop) RecordTransportError(string)               {}

// Handler serves the gathered metrics under /metrics.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}
