package estimate_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"slam-datagen/internal/common"
	"slam-datagen/internal/datagen"
	"slam-datagen/internal/estimate"
	"slam-datagen/internal/simulation"
)

func TestPosesAndLandmarksLayout(t *testing.T) {
	mu := mat.NewVecDense(10, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	poses, landmarks := estimate.PosesAndLandmarks(mu, 3, 2)
	assert.Equal(t, []common.Vector{{1, 2}, {3, 4}, {5, 6}}, poses)
	assert.Equal(t, []common.Vector{{7, 8}, {9, 10}}, landmarks)

	// Extra trailing entries are ignored, there is no shape validation.
	poses, landmarks = estimate.PosesAndLandmarks(mu, 1, 1)
	assert.Equal(t, []common.Vector{{1, 2}}, poses)
	assert.Equal(t, []common.Vector{{3, 4}}, landmarks)

	assert.Panics(t, func() { estimate.PosesAndLandmarks(mu, 5, 1) })
}

func TestFlattenRoundTrip(t *testing.T) {
	poses := []common.Vector{{0.5, 1}, {2, 3.25}}
	landmarks := []common.Vector{{9, 9}}
	mu := estimate.Flatten(poses, landmarks)
	require.Equal(t, 6, mu.Len())
	assert.True(t, floats.Equal([]float64{0.5, 1, 2, 3.25, 9, 9}, mu.RawVector().Data))

	gotPoses, gotLandmarks := estimate.PosesAndLandmarks(mu, 2, 1)
	assert.Equal(t, poses, gotPoses)
	assert.Equal(t, landmarks, gotLandmarks)
}

func TestFormatAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, estimate.FormatAll(&buf,
		[]common.Vector{{50, 50}, {37.9732, 33.4514}},
		[]common.Vector{{33.1, 27.0004}},
	))
	want := "\nEstimated Poses:\n[50.000, 50.000]\n[37.973, 33.451]\n\nEstimated Landmarks:\n[33.100, 27.000]\n"
	assert.Equal(t, want, buf.String())
}

func TestLocalizationError(t *testing.T) {
	truth := []common.Vector{{0, 0}, {10, 10}}
	est := []common.Vector{{3, 4}, {10, 10}}
	mean, worst, err := estimate.LocalizationError(truth, est)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, mean, 1e-12)
	assert.InDelta(t, 5.0, worst, 1e-12)

	_, _, err = estimate.LocalizationError(truth, est[:1])
	assert.Error(t, err)
	_, _, err = estimate.LocalizationError(nil, nil)
	assert.Error(t, err)
}

func TestOdometryBaselineNoiseless(t *testing.T) {
	p := datagen.Params{N: 30, NumLandmarks: 4, WorldSize: 20, MeasurementRange: simulation.UnlimitedRange, Distance: 2}
	res, err := datagen.New(datagen.WithSeed(8)).Generate(p)
	require.NoError(t, err)

	mu, err := estimate.OdometryBaseline(res.Data, res.Trajectory[0], p.NumLandmarks)
	require.NoError(t, err)
	poses, landmarks := estimate.PosesAndLandmarks(mu, p.N, p.NumLandmarks)

	mean, _, err := estimate.LocalizationError(res.Trajectory, poses)
	require.NoError(t, err)
	assert.InDelta(t, 0, mean, 1e-9, "without noise dead reckoning is exact")

	mean, _, err = estimate.LocalizationError(res.Landmarks(), landmarks)
	require.NoError(t, err)
	assert.InDelta(t, 0, mean, 1e-9)
}

func TestOdometryBaselineUnobserved(t *testing.T) {
	d := datagen.Dataset{
		{Measurements: []simulation.Measurement{{Index: 0, DX: 1, DY: 1}}, Motion: datagen.Motion{DX: 1}},
	}
	mu, err := estimate.OdometryBaseline(d, common.NewVector2(0, 0), 2)
	require.NoError(t, err)
	_, landmarks := estimate.PosesAndLandmarks(mu, 2, 2)
	assert.Equal(t, common.Vector{1, 1}, landmarks[0])
	assert.True(t, math.IsNaN(landmarks[1].X()))

	_, err = estimate.OdometryBaseline(d, common.Vector{0, 0, 0}, 2)
	assert.Error(t, err, "start pose must be 2D")
}
