package momentdist

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Pair is one data/model operand pair, e.g. one simulation draw in an
// estimation loop.
type Pair struct {
	Data  any
	Model any
}

// DistanceBatch evaluates m over all pairs and returns the distances in pair
// order.
//
// Pairs are evaluated concurrently; metric trees are immutable after
// construction, so no locking is needed. The first error cancels outstanding
// work and is returned, wrapped with the index of the failing pair. Context
// cancellation stops the batch.
func DistanceBatch(ctx context.Context, m Metric, pairs []Pair, optFns ...BatchOption) ([]float64, error) {
	o := applyBatchOptions(optFns)

	results := make([]float64, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.limit)

	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := m.Distance(p.Data, p.Model)
			if err != nil {
				o.logger.LogPairError(ctx, i, err)
				return fmt.Errorf("pair %d: %w", i, err)
			}
			results[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.LogBatch(ctx, len(pairs))

	return results, nil
}
