package momentdist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsoluteRelativeDefault(t *testing.T) {
	m, err := NewAbsoluteRelative()
	require.NoError(t, err)

	t.Run("Scalars", func(t *testing.T) {
		got, err := m.Distance(1.0, 2.0)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-12)
	})

	t.Run("Vectors", func(t *testing.T) {
		got, err := m.Distance([]float64{3, 4}, []float64{0, 0})
		require.NoError(t, err)
		assert.InDelta(t, 5.0, got, 1e-12)
	})

	t.Run("SelfDistance", func(t *testing.T) {
		got, err := m.Distance([]float64{1, 2, 3}, []float64{1, 2, 3})
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := m.Distance([]float64{1, 2}, []float64{1, 2, 3})
		var sm *ErrShapeMismatch
		require.ErrorAs(t, err, &sm)
		assert.Equal(t, []int{2}, sm.Data)
		assert.Equal(t, []int{3}, sm.Model)
	})

	t.Run("UnsupportedOperand", func(t *testing.T) {
		_, err := m.Distance("x", []float64{1})
		var uo *ErrUnsupportedOperand
		assert.ErrorAs(t, err, &uo)
	})
}

func TestAbsoluteRelativeAdjusted(t *testing.T) {
	t.Run("RelativeRegime", func(t *testing.T) {
		// c·A = 12 > 1, so the distance is scaled relative.
		m, err := NewAbsoluteRelative(WithRelativeAdjustment(1))
		require.NoError(t, err)
		got, err := m.Distance(10.0, 12.0)
		require.NoError(t, err)
		assert.InDelta(t, 2.0/12.0, got, 1e-12)
	})

	t.Run("AbsoluteRegime", func(t *testing.T) {
		// c·A = 0.12 < 1, so the max(1, ...) clamp keeps it absolute.
		m, err := NewAbsoluteRelative(WithRelativeAdjustment(0.01))
		require.NoError(t, err)
		got, err := m.Distance(10.0, 12.0)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got, 1e-12)
	})

	t.Run("SelfDistance", func(t *testing.T) {
		m, err := NewAbsoluteRelative(WithRelativeAdjustment(0.5))
		require.NoError(t, err)
		got, err := m.Distance(3.0, 3.0)
		require.NoError(t, err)
		assert.Zero(t, got)
	})
}

func TestAbsoluteRelativeInfiniteAdjustment(t *testing.T) {
	m, err := NewAbsoluteRelative(WithRelativeAdjustment(math.Inf(1)))
	require.NoError(t, err)

	t.Run("PureRelative", func(t *testing.T) {
		got, err := m.Distance(10.0, 12.0)
		require.NoError(t, err)
		assert.InDelta(t, 2.0/12.0, got, 1e-12)
	})

	t.Run("ZeroData", func(t *testing.T) {
		got, err := m.Distance(0.0, 2.0)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-12)
	})

	t.Run("DegenerateTieIsNaN", func(t *testing.T) {
		// Both norms are zero: 0/0 surfaces as NaN, not as an error.
		got, err := m.Distance(0.0, 0.0)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})

	t.Run("SelfDistanceNonzero", func(t *testing.T) {
		got, err := m.Distance([]float64{1, 2}, []float64{1, 2})
		require.NoError(t, err)
		assert.Zero(t, got)
	})
}

func TestAbsoluteRelativeCustomNorm(t *testing.T) {
	l1 := func(v []float64) float64 {
		var sum float64
		for _, x := range v {
			sum += math.Abs(x)
		}
		return sum
	}

	m, err := NewAbsoluteRelative(WithNorm(l1))
	require.NoError(t, err)
	got, err := m.Distance([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got, 1e-12)
}

func TestNewAbsoluteRelativeValidation(t *testing.T) {
	tests := []struct {
		name       string
		adjustment float64
	}{
		{"Negative", -1},
		{"NaN", math.NaN()},
		{"NegativeInf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAbsoluteRelative(WithRelativeAdjustment(tt.adjustment))
			var ia *ErrInvalidAdjustment
			assert.ErrorAs(t, err, &ia)
		})
	}
}

func TestEuclideanNorm(t *testing.T) {
	assert.InDelta(t, 5.0, EuclideanNorm([]float64{3, 4}), 1e-12)
	assert.Zero(t, EuclideanNorm(nil))
}
