package momentdist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time variant checks.
var (
	_ Metric = AbsoluteDifference{}
	_ Metric = RelativeDifference{}
	_ Metric = (*AbsoluteRelative)(nil)
	_ Metric = (*Weighted)(nil)
	_ Metric = (*ElementwiseMean)(nil)
	_ Metric = (*PNorm)(nil)
	_ Metric = (*NamedSum)(nil)
	_ Metric = (*NamedPNorm)(nil)
)

func TestZeroSelfDistance(t *testing.T) {
	absRel, err := NewAbsoluteRelative()
	require.NoError(t, err)
	absRelAdj, err := NewAbsoluteRelative(WithRelativeAdjustment(0.5))
	require.NoError(t, err)
	absRelInf, err := NewAbsoluteRelative(WithRelativeAdjustment(math.Inf(1)))
	require.NoError(t, err)
	weighted, err := NewWeighted(AbsoluteDifference{}, 3.5)
	require.NoError(t, err)

	rec := map[string]any{"a": 0.4, "b": -1.2}

	tests := []struct {
		name    string
		metric  Metric
		operand any
	}{
		{"AbsoluteDifference", AbsoluteDifference{}, 1.3},
		{"RelativeDifference", RelativeDifference{}, -0.7},
		{"AbsoluteRelative", absRel, []float64{1, -2, 3}},
		{"AbsoluteRelativeAdjusted", absRelAdj, []float64{1, -2, 3}},
		{"AbsoluteRelativeInf", absRelInf, []float64{1, -2, 3}},
		{"Weighted", weighted, 0.9},
		{"ElementwiseMean", NewElementwiseMean(AbsoluteDifference{}), []float64{1, 2, 3}},
		{"PNorm", NewEuclidean(AbsoluteDifference{}), []float64{1, 2, 3}},
		{"NamedSum", NewNamedSum(
			NamedField{Name: "a", Metric: AbsoluteDifference{}},
			NamedField{Name: "b", Metric: RelativeDifference{}},
		), rec},
		{"NamedPNorm", NewNamedEuclidean(
			NamedField{Name: "a", Metric: AbsoluteDifference{}},
			NamedField{Name: "b", Metric: RelativeDifference{}},
		), rec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.metric.Distance(tt.operand, tt.operand)
			require.NoError(t, err)
			assert.Zero(t, got)
		})
	}
}

func TestConcurrentEvaluation(t *testing.T) {
	// A constructed tree carries no evaluation state; hammer it from many
	// goroutines and require identical results.
	m := NewNamedEuclidean(
		NamedField{Name: "mean", Metric: AbsoluteDifference{}},
		NamedField{Name: "acv", Metric: NewEuclidean(AbsoluteDifference{})},
	)
	data := map[string]any{"mean": 1.0, "acv": []float64{0.5, 0.25}}
	model := map[string]any{"mean": 1.5, "acv": []float64{0.4, 0.3}}

	want, err := m.Distance(data, model)
	require.NoError(t, err)

	const workers = 16
	results := make(chan float64, workers)
	for i := 0; i < workers; i++ {
		go func() {
			d, err := m.Distance(data, model)
			if err != nil {
				results <- math.NaN()
				return
			}
			results <- d
		}()
	}
	for i := 0; i < workers; i++ {
		assert.Equal(t, want, <-results)
	}
}
