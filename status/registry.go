// Package status holds lock-free view metrics
// The frame goroutine writes through cached pointers, readers format them at shutdown or in tests
package status

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Metric keys recorded by the constellation view
const (
	KeyFrames     = "frame.count"
	KeyFrameMs    = "frame.ms"
	KeyFPS        = "frame.fps"
	KeyUnlocks    = "unlock.ok"
	KeyDenied     = "unlock.denied"
	KeyExpansions = "frontier.expansions"
	KeyNodes      = "tree.nodes"
	KeyParticles  = "fx.particles"
	KeyLastIntent = "input.last"
	KeyMuted      = "audio.muted"
	KeyPaused     = "clock.paused"
)

// Registry is the central metrics facade
// Callers cache pointers during init; update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// String renders every metric as key=value pairs sorted by key
func (r *Registry) String() string {
	pairs := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		pairs = append(pairs, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		pairs = append(pairs, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		pairs = append(pairs, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		pairs = append(pairs, fmt.Sprintf("%s=%q", k, v.Load()))
	})
	sort.Strings(pairs)
	return strings.Join(pairs, " ")
}
