package momentdist

// Metric is a configured distance-computation strategy between a data
// observation and a model-simulated counterpart.
//
// Metrics form trees: combinators (Weighted, ElementwiseMean, PNorm,
// NamedSum, NamedPNorm) exclusively own their child metrics, leaves
// (AbsoluteDifference, RelativeDifference, AbsoluteRelative) compare operands
// directly. Trees are immutable after construction, carry no evaluation
// state, and are safe to evaluate concurrently.
//
// All parameter validation (weights, exponents, adjustments) happens at
// construction time: a successfully constructed tree never fails those checks
// during evaluation.
//
// The variant set is closed; all implementations live in this package.
type Metric interface {
	// Distance computes the distance between data and model.
	//
	// Operands are borrowed for the duration of the call and never
	// retained. Failure modes are the error kinds in errors.go, propagated
	// unchanged through enclosing combinators.
	Distance(data, model any) (float64, error)

	// writeSummary is the parallel rendering dispatch used by Summarize.
	writeSummary(w *summaryWriter, data, model any) error
}

// NamedField pairs a record field name with the metric used to compare that
// field. Declaration order is the evaluation and rendering order of
// NamedSum and NamedPNorm.
type NamedField struct {
	Name   string
	Metric Metric
}
