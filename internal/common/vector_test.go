package common_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slam-datagen/internal/common"
)

func TestVectorArithmetic(t *testing.T) {
	a := common.NewVector2(1, 2)
	b := common.NewVector2(4, 6)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, common.Vector{5, 8}, sum)

	diff, err := b.Subtract(a)
	require.NoError(t, err)
	assert.Equal(t, common.Vector{3, 4}, diff)

	d, err := a.Distance(b)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)
	assert.InDelta(t, 5.0, diff.Norm(), 1e-12)
	assert.InDelta(t, 25.0, diff.NormSq(), 1e-12)

	assert.Equal(t, common.Vector{2, 4}, a.MultiplyByScalar(2))
	assert.Equal(t, common.Vector{1, 2}, a, "operands must not be modified")
}

func TestVectorDimensionMismatch(t *testing.T) {
	a := common.NewVector2(1, 2)
	b := common.NewVector(3)

	_, err := a.Add(b)
	assert.Error(t, err)
	_, err = a.Subtract(b)
	assert.Error(t, err)
	_, err = a.Distance(b)
	assert.Error(t, err)
}

func TestVectorWithin(t *testing.T) {
	bounds := common.SquareBounds(10)

	assert.True(t, common.NewVector2(0, 0).Within(bounds))
	assert.True(t, common.NewVector2(10, 10).Within(bounds), "edges are inside")
	assert.True(t, common.NewVector2(3.5, 9.99).Within(bounds))
	assert.False(t, common.NewVector2(-0.001, 5).Within(bounds))
	assert.False(t, common.NewVector2(5, 10.001).Within(bounds))
	assert.False(t, common.NewVector(3).Within(bounds), "dimension mismatch is never inside")
}

func TestNewRandomVector(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bounds := []float64{-5, 5, 10, 20}
	for i := 0; i < 100; i++ {
		v, err := common.NewRandomVector(rng, 2, bounds)
		require.NoError(t, err)
		assert.True(t, v.Within(bounds), "vector %s outside %v", v, bounds)
	}

	_, err := common.NewRandomVector(rng, 3, bounds)
	assert.Error(t, err)
	_, err = common.NewRandomVector(nil, 2, bounds)
	assert.Error(t, err)
}

func TestVectorCloneAndRound(t *testing.T) {
	v := common.NewVector2(1.4, 2.6)
	c := v.Clone()
	c[0] = 9
	assert.Equal(t, 1.4, v.X())
	assert.Equal(t, common.Vector{1, 3}, v.Round())
	assert.Equal(t, "[1.400, 2.600]", v.String())
}
