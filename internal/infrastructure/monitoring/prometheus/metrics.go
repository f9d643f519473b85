// Package prometheus registers and exposes the service's metrics: one set
// for conversion outcomes and one for the HTTP layer.  All metrics live on a
// private registry so tests can construct isolated instances.
package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "peptigraph"

// DefaultDurationBuckets covers the expected conversion and request
// latencies, from sub-millisecond builds to pathological sequences.
var DefaultDurationBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// Metrics holds every instrument the service records.
type Metrics struct {
	registry *prometheus.Registry

	// ConversionsTotal counts finished conversions by outcome: "ok" or
	// the error code of the failure.
	ConversionsTotal *prometheus.CounterVec

	// ConversionDuration observes end-to-end build+emit time in seconds.
	ConversionDuration prometheus.Histogram

	// SequenceLength observes the residue count of accepted requests.
	SequenceLength prometheus.Histogram

	// GraphAtoms observes the heavy-atom count of emitted graphs.
	GraphAtoms prometheus.Histogram

	// GraphBonds observes the bond count of emitted graphs.
	GraphBonds prometheus.Histogram

	// HTTPRequestsTotal counts HTTP requests by method, path and status.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes HTTP handler latency by method and path.
	HTTPRequestDuration *prometheus.HistogramVec
}

// New constructs a Metrics set on its own registry, with the Go runtime and
// process collectors attached.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		ConversionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Finished conversions by outcome.",
		}, []string{"outcome"}),
		ConversionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "End-to-end conversion latency.",
			Buckets:   DefaultDurationBuckets,
		}),
		SequenceLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sequence_length_residues",
			Help:      "Residue count of accepted sequences.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 250, 500, 1000},
		}),
		GraphAtoms: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_heavy_atoms",
			Help:      "Heavy-atom count of emitted graphs.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
		GraphBonds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_bonds",
			Help:      "Bond count of emitted graphs.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP handler latency by method and path.",
			Buckets:   DefaultDurationBuckets,
		}, []string{"method", "path"}),
	}

	reg.MustRegister(
		m.ConversionsTotal,
		m.ConversionDuration,
		m.SequenceLength,
		m.GraphAtoms,
		m.GraphBonds,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)
	return m
}

// ObserveConversion records one finished conversion.
func (m *Metrics) ObserveConversion(outcome string, residues, atoms, bonds int, elapsed time.Duration) {
	m.ConversionsTotal.WithLabelValues(outcome).Inc()
	m.ConversionDuration.Observe(elapsed.Seconds())
	if residues > 0 {
		m.SequenceLength.Observe(float64(residues))
	}
	if atoms > 0 {
		m.GraphAtoms.Observe(float64(atoms))
	}
	if bonds > 0 {
		m.GraphBonds.Observe(float64(bonds))
	}
}

// Handler returns the /metrics scrape handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
