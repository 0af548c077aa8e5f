// Package status collects session counters written from the tick loop and
// the agent's request goroutine.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys
const (
	Ticks          = "game.ticks"
	RoundsWon      = "game.rounds_won"
	RoundsLost     = "game.rounds_lost"
	Screenshots    = "game.screenshots"
	AgentRequests  = "agent.requests"
	AgentFailures  = "agent.failures"
	AgentLatencyMs = "agent.latency_ms"
	AgentPeakMs    = "agent.latency_peak_ms"
)

// Registry holds counters and gauges. A nil *Registry accepts and drops
// every write.
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
	}
}

// Inc adds one to a counter
func (r *Registry) Inc(key string) {
	if r == nil {
		return
	}
	r.Counters.Get(key).Add(1)
}

// Count reads a counter
func (r *Registry) Count(key string) int64 {
	if r == nil {
		return 0
	}
	return r.Counters.Get(key).Load()
}

// Observe sets a gauge and raises its peak companion, if peakKey is set
func (r *Registry) Observe(key, peakKey string, val float64) {
	if r == nil {
		return
	}
	r.Gauges.Get(key).Set(val)
	if peakKey != "" {
		r.Gauges.Get(peakKey).Max(val)
	}
}

// Gauge reads a gauge
func (r *Registry) Gauge(key string) float64 {
	if r == nil {
		return 0
	}
	return r.Gauges.Get(key).Get()
}

// Summary renders every metric as sorted key=value pairs
func (r *Registry) Summary() string {
	if r == nil {
		return ""
	}
	var parts []string
	r.Counters.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Gauges.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	return strings.Join(parts, " ")
}
