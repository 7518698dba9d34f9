package pipeline

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	format     Format
	durationMs int64
}

// StatsSnapshot is a point-in-time aggregate of render latency samples.
type StatsSnapshot struct {
	Count    int            `json:"count"`
	MinMs    int64          `json:"min_ms"`
	MaxMs    int64          `json:"max_ms"`
	AvgMs    float64        `json:"avg_ms"`
	P50Ms    float64        `json:"p50_ms"`
	P95Ms    float64        `json:"p95_ms"`
	P99Ms    float64        `json:"p99_ms"`
	ByFormat map[Format]int `json:"by_format"`
}

// RenderStats tracks recent export render latencies within a rolling window.
type RenderStats struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
	now     func() time.Time
}

func NewRenderStats(maxAge time.Duration) *RenderStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &RenderStats{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// Record adds one render duration for format f.
func (s *RenderStats) Record(f Format, d time.Duration) {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)
	s.samples = append(s.samples, sample{
		timestamp:  now,
		format:     f,
		durationMs: ms,
	})
}

func (s *RenderStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(s.now())
	snap := StatsSnapshot{ByFormat: map[Format]int{}}
	if len(s.samples) == 0 {
		return snap
	}

	values := make([]int64, 0, len(s.samples))
	var sum int64
	for _, sm := range s.samples {
		values = append(values, sm.durationMs)
		sum += sm.durationMs
		snap.ByFormat[sm.format]++
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	snap.Count = len(values)
	snap.MinMs = values[0]
	snap.MaxMs = values[len(values)-1]
	snap.AvgMs = float64(sum) / float64(len(values))
	snap.P50Ms = percentile(values, 50)
	snap.P95Ms = percentile(values, 95)
	snap.P99Ms = percentile(values, 99)
	return snap
}

func (s *RenderStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	writeIdx := 0
	for _, sm := range s.samples {
		if !sm.timestamp.Before(cutoff) {
			s.samples[writeIdx] = sm
			writeIdx++
		}
	}
	s.samples = s.samples[:writeIdx]
}

// percentile interpolates linearly between the closest ranks.
func percentile(sorted []int64, pct float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return 0
	case pct <= 0:
		return float64(sorted[0])
	case pct >= 100:
		return float64(sorted[n-1])
	}

	index := float64(n-1) * pct / 100
	lower := int(index)
	if lower+1 >= n {
		return float64(sorted[lower])
	}
	weight := index - float64(lower)
	lo, hi := float64(sorted[lower]), float64(sorted[lower+1])
	return lo + (hi-lo)*weight
}
