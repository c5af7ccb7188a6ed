package metric_test

import (
	"math"
	"slices"
	"testing"
	"testing/quick"

	"github.com/katalvlaran/eop/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSquaredDistance sums squares, never differences.
func TestSquaredDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xs   []int
		want int
	}{
		{"empty", nil, 0},
		{"single", []int{-3}, 9},
		{"pair", []int{3, 4}, 25},
		{"not a difference", []int{5, 5}, 50},
		{"triple", []int{1, 2, 2}, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, metric.SquaredDistance(tc.xs...))
		})
	}
}

// TestEuclideanNorm covers the 3-4-5 triangle in several element types.
func TestEuclideanNorm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, metric.EuclideanNorm(3, 4))
	assert.Equal(t, 5.0, metric.EuclideanNorm(3.0, 4.0))
	assert.Equal(t, float32(5), metric.EuclideanNorm[float32](3, 4))
	assert.Equal(t, uint8(3), metric.EuclideanNorm[uint8](1, 2, 2))
	assert.Equal(t, 5.0, metric.EuclideanNorm2(3.0, 4.0))
	assert.InDelta(t, math.Sqrt2, metric.EuclideanNorm(1.0, 1.0), 1e-15)
	assert.Equal(t, 5, metric.EuclideanNorm(3, 5), "integer results truncate: √34 → 5")
}

// TestNorm checks the arity-parameterized functor.
func TestNorm(t *testing.T) {
	t.Parallel()

	_, err := metric.NewNorm[float64](0)
	require.ErrorIs(t, err, metric.ErrBadArity)

	n2, err := metric.NewNorm[float64](2)
	require.NoError(t, err)
	assert.Equal(t, 2, n2.Arity())

	got, err := n2.Apply(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	_, err = n2.Apply(1, 2, 3)
	require.ErrorIs(t, err, metric.ErrArityMismatch)

	n3, err := metric.NewNorm[int](3)
	require.NoError(t, err)
	got3, err := n3.Apply(2, 3, 6)
	require.NoError(t, err)
	assert.Equal(t, 7, got3)
}

// TestSquaredDistance_Laws checks non-negativity and permutation invariance.
func TestSquaredDistance_Laws(t *testing.T) {
	t.Parallel()

	nonNegative := func(xs []float64) bool {
		return metric.SquaredDistance(xs...) >= 0
	}
	permutation := func(xs []int16) bool {
		wide := make([]int64, len(xs))
		for i, x := range xs {
			wide[i] = int64(x)
		}
		rev := slices.Clone(wide)
		slices.Reverse(rev)
		sorted := slices.Clone(wide)
		slices.Sort(sorted)
		d := metric.SquaredDistance(wide...)
		return d == metric.SquaredDistance(rev...) && d == metric.SquaredDistance(sorted...)
	}

	require.NoError(t, quick.Check(nonNegative, nil))
	require.NoError(t, quick.Check(permutation, nil))
}
