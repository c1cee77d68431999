package cmd

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus metrics recorded during a benchmark run.
// Each run uses its own registry so repeated runs in one process never
// collide.
type Metrics struct {
	registry *prometheus.Registry

	opsTotal   *prometheus.CounterVec
	opDuration *prometheus.HistogramVec
	bytesTotal *prometheus.CounterVec
}

// NewMetrics creates and registers the benchmark metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		opsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "valbin_codec_operations_total",
				Help: "Total number of codec operations",
			},
			[]string{"operation", "status"},
		),

		opDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "valbin_codec_operation_duration_seconds",
				Help:    "Codec operation duration in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
			},
			[]string{"operation"},
		),

		bytesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "valbin_codec_bytes_total",
				Help: "Total bytes produced or consumed by codec operations",
			},
			[]string{"operation"},
		),
	}
}

// ObserveEncode records one encode operation.
func (m *Metrics) ObserveEncode(d time.Duration, bytes int) {
	m.opsTotal.WithLabelValues("encode", statusSuccess).Inc()
	m.opDuration.WithLabelValues("encode").Observe(d.Seconds())
	m.bytesTotal.WithLabelValues("encode").Add(float64(bytes))
}

// ObserveDecode records one decode operation.
func (m *Metrics) ObserveDecode(d time.Duration, bytes int, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.opsTotal.WithLabelValues("decode", status).Inc()
	m.opDuration.WithLabelValues("decode").Observe(d.Seconds())
	m.bytesTotal.WithLabelValues("decode").Add(float64(bytes))
}

// WriteTo renders the collected metrics in Prometheus text exposition
// format, the form the external harness scrapes from a file.
func (m *Metrics) WriteTo(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
