package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"glitchsdk/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, outcome string)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	ObservePayloadBytes(endpoint string, size int)
	IncProbeMisses(key string)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	payloadBytes    *prometheus.HistogramVec
	probeMisses     *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, outcome string) {
	m.requestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) ObservePayloadBytes(endpoint string, size int) {
	m.payloadBytes.WithLabelValues(endpoint).Observe(float64(size))
}

func (m *MetricsProvider) IncProbeMisses(key string) {
	m.probeMisses.WithLabelValues(key).Inc()
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "glitchsdk_requests_total",
			Help: "Total number of ingestion requests",
		}, []string{"endpoint", "outcome"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "glitchsdk_request_duration_seconds",
			Help:    "Ingestion request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		payloadBytes: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "glitchsdk_payload_bytes",
			Help:    "Serialized payload size in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}, []string{"endpoint"}),

		probeMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "glitchsdk_probe_misses_total",
			Help: "System facts that could not be obtained",
		}, []string{"key"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ string)               {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) ObservePayloadBytes(_ string, _ int)               {}
func (n *noopMetrics) IncProbeMisses(_ string)                           {}
