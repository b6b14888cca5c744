// Package stats keeps a rolling window of page render latencies.
package stats

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	at       time.Time
	duration time.Duration
	route    string
}

// Snapshot aggregates the samples currently inside the window.
type Snapshot struct {
	Count   int            `json:"count"`
	MinMs   float64        `json:"min_ms"`
	MaxMs   float64        `json:"max_ms"`
	AvgMs   float64        `json:"avg_ms"`
	P50Ms   float64        `json:"p50_ms"`
	P95Ms   float64        `json:"p95_ms"`
	P99Ms   float64        `json:"p99_ms"`
	ByRoute map[string]int `json:"by_route"`
}

// Recorder tracks render durations within a rolling window.
type Recorder struct {
	mu      sync.Mutex
	samples []sample
	window  time.Duration
	now     func() time.Time
}

// NewRecorder returns a Recorder keeping samples for window (1h when <= 0).
func NewRecorder(window time.Duration) *Recorder {
	if window <= 0 {
		window = time.Hour
	}
	return &Recorder{
		samples: make([]sample, 0, 256),
		window:  window,
		now:     time.Now,
	}
}

// Record adds one render of route that took d. Negative durations count as zero.
func (r *Recorder) Record(route string, d time.Duration) {
	if d < 0 {
		d = 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.pruneLocked(now)
	r.samples = append(r.samples, sample{at: now, duration: d, route: route})
}

// Snapshot returns aggregates over the live window.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(r.now())
	snap := Snapshot{ByRoute: map[string]int{}}
	if len(r.samples) == 0 {
		return snap
	}

	values := make([]float64, 0, len(r.samples))
	var sum float64
	for _, s := range r.samples {
		ms := float64(s.duration) / float64(time.Millisecond)
		values = append(values, ms)
		sum += ms
		snap.ByRoute[s.route]++
	}
	sort.Float64s(values)

	snap.Count = len(values)
	snap.MinMs = values[0]
	snap.MaxMs = values[len(values)-1]
	snap.AvgMs = sum / float64(len(values))
	snap.P50Ms = percentile(values, 50)
	snap.P95Ms = percentile(values, 95)
	snap.P99Ms = percentile(values, 99)
	return snap
}

func (r *Recorder) pruneLocked(now time.Time) {
	cutoff := now.Add(-r.window)
	keep := r.samples[:0]
	for _, s := range r.samples {
		if !s.at.Before(cutoff) {
			keep = append(keep, s)
		}
	}
	r.samples = keep
}

// percentile interpolates linearly between closest ranks of sorted.
func percentile(sorted []float64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return sorted[0]
	}
	if pct >= 100 {
		return sorted[len(sorted)-1]
	}
	idx := float64(len(sorted)-1) * pct / 100
	lo := int(idx)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	w := idx - float64(lo)
	return sorted[lo] + (sorted[lo+1]-sorted[lo])*w
}
