// Package momentdist provides composable distance metrics between observed
// data and model-simulated counterparts, for indirect-inference style
// parameter estimation.
//
// A metric in this package is a configured distance-computation strategy, not
// a mathematical metric: it may be asymmetric. The guarantees are that the
// distance between any value and itself is zero and that results are finite,
// except for the documented relative-distance singularity of AbsoluteRelative.
//
// # Quick Start
//
// Build a metric tree once, evaluate it many times:
//
//	metric := momentdist.NewNamedEuclidean(
//	    momentdist.NamedField{Name: "Mean", Metric: momentdist.AbsoluteDifference{}},
//	    momentdist.NamedField{Name: "ACF", Metric: momentdist.NewEuclidean(momentdist.AbsoluteDifference{})},
//	)
//	d, err := metric.Distance(data, simulated)
//
// # Combinators
//
// Leaves compare scalars or vectors directly:
//
//	momentdist.AbsoluteDifference{}            // |a - b|
//	momentdist.RelativeDifference{}            // |a - b| / |a|
//	momentdist.NewAbsoluteRelative(...)        // norm-based, optional relative scaling
//
// Combinators wrap child metrics:
//
//	momentdist.NewWeighted(m, 0.5)             // scales a child's distance
//	momentdist.NewElementwiseMean(m)           // mean over container positions
//	momentdist.NewPNorm(m, p)                  // p-norm over container positions
//	momentdist.NewNamedSum(fields...)          // sum over record fields
//	momentdist.NewNamedPNorm(p, fields...)     // p-norm over record fields
//
// Nesting Weighted inside Weighted collapses algebraically: the tree stays
// shallow and weights multiply.
//
// # Operands
//
// Scalar operands are any Go numeric type. Container operands are []float64,
// []float32, rectangular [][]float64, *Dense, or any Container
// implementation. Record operands are map[string]any, structs with exported
// fields, or any Record implementation. Operands are borrowed per call and
// never retained.
//
// # Summaries
//
// Summarize renders an indented trace of how a composite distance was
// computed, mirroring the evaluation exactly:
//
//	s, err := momentdist.Summarize(metric, data, simulated)
//
// # Batch Evaluation
//
// Metric trees are immutable after construction and safe for concurrent use.
// DistanceBatch evaluates one tree over many simulation draws in parallel:
//
//	dists, err := momentdist.DistanceBatch(ctx, metric, pairs)
package momentdist
