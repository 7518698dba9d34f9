package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStats_Empty(t *testing.T) {
	snap := NewRenderStats(time.Hour).Snapshot()
	assert.Equal(t, 0, snap.Count)
	assert.Equal(t, int64(0), snap.MaxMs)
	assert.NotNil(t, snap.ByFormat)
}

func TestRenderStats_Aggregates(t *testing.T) {
	s := NewRenderStats(time.Hour)
	for _, ms := range []int{40, 10, 30, 20} {
		s.Record(FormatMarkdown, time.Duration(ms)*time.Millisecond)
	}
	s.Record(FormatDOCX, -time.Second)

	snap := s.Snapshot()
	require.Equal(t, 5, snap.Count)
	assert.Equal(t, int64(0), snap.MinMs)
	assert.Equal(t, int64(40), snap.MaxMs)
	assert.Equal(t, 20.0, snap.AvgMs)
	assert.Equal(t, 20.0, snap.P50Ms)
	assert.Equal(t, map[Format]int{FormatMarkdown: 4, FormatDOCX: 1}, snap.ByFormat)
}

func TestRenderStats_PrunesOldSamples(t *testing.T) {
	s := NewRenderStats(time.Minute)
	now := time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Record(FormatMarkdown, 100*time.Millisecond)
	now = now.Add(2 * time.Minute)
	s.Record(FormatMarkdown, 5*time.Millisecond)

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Count)
	assert.Equal(t, int64(5), snap.MaxMs)
}

func TestPercentile(t *testing.T) {
	values := []int64{10, 20, 30, 40}
	tests := []struct {
		pct  float64
		want float64
	}{
		{0, 10},
		{50, 25},
		{100, 40},
		{150, 40},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, percentile(values, tt.pct), "percentile(%v)", tt.pct)
	}
	assert.Equal(t, 0.0, percentile(nil, 50))
	assert.Equal(t, 7.0, percentile([]int64{7}, 95))
}
