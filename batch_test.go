package momentdist

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/momentdist/testutil"
)

func TestDistanceBatch(t *testing.T) {
	ctx := context.Background()
	m := NewEuclidean(AbsoluteDifference{})

	rng := testutil.NewRNG(42)
	data := rng.GaussianVectors(64, 8)
	model := rng.NoisyCopies(data, 0.1)

	pairs := make([]Pair, len(data))
	for i := range data {
		pairs[i] = Pair{Data: data[i], Model: model[i]}
	}

	got, err := DistanceBatch(ctx, m, pairs)
	require.NoError(t, err)
	require.Len(t, got, len(pairs))

	// Batch evaluation matches the serial loop exactly.
	for i, p := range pairs {
		want, err := m.Distance(p.Data, p.Model)
		require.NoError(t, err)
		assert.Equal(t, want, got[i])
	}

	t.Run("SerialLimit", func(t *testing.T) {
		serial, err := DistanceBatch(ctx, m, pairs, WithConcurrency(1))
		require.NoError(t, err)
		assert.Equal(t, got, serial)
	})

	t.Run("Empty", func(t *testing.T) {
		dists, err := DistanceBatch(ctx, m, nil)
		require.NoError(t, err)
		assert.Empty(t, dists)
	})

	t.Run("NilLoggerOption", func(t *testing.T) {
		dists, err := DistanceBatch(ctx, m, pairs[:4], WithBatchLogger(nil))
		require.NoError(t, err)
		assert.Len(t, dists, 4)
	})
}

func TestDistanceBatchError(t *testing.T) {
	ctx := context.Background()

	pairs := []Pair{
		{Data: 0.2, Model: 0.3},
		{Data: 0.0, Model: math.NaN()},
	}

	_, err := DistanceBatch(ctx, AbsoluteDifference{}, pairs, WithConcurrency(1))
	var nf *ErrNonFiniteInput
	require.ErrorAs(t, err, &nf)
	assert.ErrorContains(t, err, "pair 1")
}

func TestDistanceBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pairs := []Pair{{Data: 0.2, Model: 0.3}}
	_, err := DistanceBatch(ctx, AbsoluteDifference{}, pairs)
	assert.ErrorIs(t, err, context.Canceled)
}
