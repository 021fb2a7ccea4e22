// Package metrics counts cache and dispatch activity and tracks dispatch latency.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*Recorder)(nil)

const (
	outcomeOK    = "ok"
	outcomeError = "error"

	// DefaultRelativeAccuracy is the quantile accuracy used by New.
	DefaultRelativeAccuracy = 0.01
)

// Recorder implements ports.Metrics with Prometheus counters on a private
// registry and a DDSketch latency tracker per strategy.
type Recorder struct {
	registry   *prometheus.Registry
	hits       *prometheus.CounterVec
	misses     prometheus.Counter
	dispatches *prometheus.CounterVec
	evicted    prometheus.Counter
	latency    *LatencyTracker
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "csspipe",
			Name:      "cache_hits_total",
			Help:      "Lookups answered by a cache tier.",
		}, []string{"tier"}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csspipe",
			Name:      "cache_misses_total",
			Help:      "Lookups that fell through every enabled tier.",
		}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "csspipe",
			Name:      "dispatches_total",
			Help:      "Toolchain runs by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csspipe",
			Name:      "memory_evicted_entries_total",
			Help:      "Memory tier entries dropped by a consumer table reset.",
		}),
		latency: NewLatencyTracker(DefaultRelativeAccuracy),
	}
	r.registry.MustRegister(r.hits, r.misses, r.dispatches, r.evicted)
	return r
}

// Registry exposes the private registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Latency exposes the dispatch latency tracker.
func (r *Recorder) Latency() *LatencyTracker {
	return r.latency
}

// CacheHit counts a lookup answered by source.
func (r *Recorder) CacheHit(source domain.Source) {
	r.hits.WithLabelValues(string(source)).Inc()
}

// CacheMiss counts a full miss.
func (r *Recorder) CacheMiss() {
	r.misses.Inc()
}

// MemoryCleared counts the entries dropped when a consumer's memory table was reset.
func (r *Recorder) MemoryCleared(dropped int) {
	r.evicted.Add(float64(dropped))
}

// Dispatched counts one dispatch and records its latency.
func (r *Recorder) Dispatched(strategy domain.Strategy, d time.Duration, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	r.dispatches.WithLabelValues(string(strategy), outcome).Inc()
	r.latency.Record("dispatch."+string(strategy), d)
}

// WriteSummary prints every non-zero counter followed by the latency quantiles.
func (r *Recorder) WriteSummary(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return zerr.Wrap(err, "failed to gather metrics")
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if _, err := fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), formatLabels(m.GetLabel()), m.GetCounter().GetValue()); err != nil {
				return zerr.Wrap(err, "failed to write metrics")
			}
		}
	}

	for _, s := range r.latency.AllStats() {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return zerr.Wrap(err, "failed to write metrics")
		}
	}
	return nil
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	out := "{"
	for i, l := range labels {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
	}
	return out + "}"
}
