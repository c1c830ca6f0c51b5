// Package metrics records board activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the board and the persister report to.
type Recorder interface {
	IncAdjustments(direction string)
	SetCounters(count int)
	ObserveWrite(duration time.Duration, err error)
	IncLoadFailures()
}

// Noop discards everything. It is the default when metrics are not served.
type Noop struct{}

func (Noop) IncAdjustments(string)             {}
func (Noop) SetCounters(int)                   {}
func (Noop) ObserveWrite(time.Duration, error) {}
func (Noop) IncLoadFailures()                  {}

// Prometheus implements Recorder on its own registry so several boards (and
// tests) never collide on the global one.
type Prometheus struct {
	registry      *prometheus.Registry
	adjustments   *prometheus.CounterVec
	counters      prometheus.Gauge
	writeDuration prometheus.Histogram
	writeFailures prometheus.Counter
	loadFailures  prometheus.Counter
}

// NewPrometheus registers the tally metrics on a fresh registry.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Prometheus{
		registry: reg,
		adjustments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tally_adjustments_total",
			Help: "Score adjustments applied, by direction",
		}, []string{"direction"}),
		counters: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tally_counters",
			Help: "Counters currently on the board",
		}),
		writeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tally_persist_duration_seconds",
			Help:    "Duration of slot writes in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		writeFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "tally_persist_failures_total",
			Help: "Slot writes that failed",
		}),
		loadFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "tally_load_failures_total",
			Help: "Slot reads that degraded to an empty board",
		}),
	}
}

func (p *Prometheus) IncAdjustments(direction string) {
	p.adjustments.WithLabelValues(direction).Inc()
}

func (p *Prometheus) SetCounters(count int) {
	p.counters.Set(float64(count))
}

func (p *Prometheus) ObserveWrite(duration time.Duration, err error) {
	p.writeDuration.Observe(duration.Seconds())
	if err != nil {
		p.writeFailures.Inc()
	}
}

func (p *Prometheus) IncLoadFailures() {
	p.loadFailures.Inc()
}

// Registry exposes the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
