package datagen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slam-datagen/internal/datagen"
	"slam-datagen/internal/simulation"
)

func TestCoverageTracker(t *testing.T) {
	c := datagen.NewCoverageTracker(3)
	assert.False(t, c.IsComplete())
	assert.Equal(t, []int{0, 1, 2}, c.Missing())

	c.MarkSeen(1)
	c.MarkSeen(1)
	c.MarkSeen(-1)
	c.MarkSeen(3)
	assert.Equal(t, 1, c.Seen(), "duplicates and out of range indices do not count")
	assert.Equal(t, []int{0, 2}, c.Missing())

	c.MarkSeen(0)
	c.MarkSeen(2)
	assert.True(t, c.IsComplete())
	assert.Empty(t, c.Missing())

	c.Reset()
	assert.Equal(t, 0, c.Seen())
	assert.False(t, c.IsComplete())
}

func TestHeadingSamplerLengthAndSpread(t *testing.T) {
	h := datagen.NewHeadingSampler(rand.New(rand.NewSource(4)), 2.5)
	var quadrants [4]int
	for i := 0; i < 400; i++ {
		m := h.Sample()
		require.InDelta(t, 2.5, math.Hypot(m.DX, m.DY), 1e-12)
		q := 0
		if m.DX < 0 {
			q++
		}
		if m.DY < 0 {
			q += 2
		}
		quadrants[q]++
	}
	for q, n := range quadrants {
		assert.Greater(t, n, 50, "quadrant %d is underrepresented", q)
	}
}

func TestSummarize(t *testing.T) {
	d := datagen.Dataset{
		{Measurements: []simulation.Measurement{{Index: 0}, {Index: 1}}, Motion: datagen.Motion{DX: 3, DY: 4}},
		{Measurements: nil, Motion: datagen.Motion{DX: 0, DY: 5}},
		{Measurements: []simulation.Measurement{{Index: 1}}, Motion: datagen.Motion{DX: -5, DY: 0}},
	}
	s := datagen.Summarize(d)
	assert.Equal(t, 3, s.Steps)
	assert.Equal(t, 3, s.Measurements)
	assert.InDelta(t, 1.0, s.MeanPerStep, 1e-12)
	assert.InDelta(t, 1.0, s.StdDevPerStep, 1e-12)
	assert.Equal(t, 0, s.MinPerStep)
	assert.Equal(t, 2, s.MaxPerStep)
	assert.InDelta(t, 5.0, s.MeanMotionLength, 1e-12)
	assert.Equal(t, map[int]int{0: 1, 1: 2}, s.ObservationsPerIndex)

	assert.Equal(t, 0, datagen.Summarize(nil).Steps)
	assert.Equal(t, 0.0, datagen.Summarize(d[:1]).StdDevPerStep)
}

func TestDatasetCoverage(t *testing.T) {
	d := datagen.Dataset{
		{Measurements: []simulation.Measurement{{Index: 2}}},
		{Measurements: []simulation.Measurement{{Index: 0}, {Index: 2}}},
	}
	assert.Equal(t, []int{1}, d.Coverage(3).Missing())
	assert.True(t, d.Coverage(1).IsComplete())
}
