package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type (
	Registry      = prometheus.Registry
	Registerer    = prometheus.Registerer
	Gatherer      = prometheus.Gatherer
	Collector     = prometheus.Collector
	Labels        = prometheus.Labels
	Counter       = prometheus.Counter
	CounterOpts   = prometheus.CounterOpts
	CounterVec    = prometheus.CounterVec
	Gauge         = prometheus.Gauge
	GaugeOpts     = prometheus.GaugeOpts
	Histogram     = prometheus.Histogram
	HistogramOpts = prometheus.HistogramOpts
	HistogramVec  = prometheus.HistogramVec

	RegisterGatherer interface {
		Registerer
		Gatherer
	}
)

var (
	NewCounter         = prometheus.NewCounter
	NewCounterVec      = prometheus.NewCounterVec
	NewGauge           = prometheus.NewGauge
	NewHistogram       = prometheus.NewHistogram
	NewHistogramVec    = prometheus.NewHistogramVec
	ExponentialBuckets = prometheus.ExponentialBuckets

	Default = NewRegistry()
)

// NewRegistry returns a registry with the process and runtime collectors.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func MustRegister(cs ...Collector) {
	Default.MustRegister(cs...)
}
