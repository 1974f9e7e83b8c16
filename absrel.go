package momentdist

import "math"

// NormFunc maps a vector to a non-negative scalar. Scalar operands are
// presented to it as length-1 vectors.
type NormFunc func(v []float64) float64

// EuclideanNorm is the default NormFunc: sqrt(Σ v_i²).
func EuclideanNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// AbsoluteRelative is a generic leaf combining absolute and optional relative
// normalization, working on scalars and vectors alike through an injected
// norm.
//
// With no relative adjustment the distance is norm(x-y). With a finite
// adjustment c it is norm(x-y) / max(1, c·A) where A = max(norm(x), norm(y)):
// absolute near the origin, relative away from it. With c = +Inf it is the
// pure relative distance norm(x-y) / A; the 0/0 indeterminate at two
// zero-norm operands surfaces as NaN and is deliberately not clamped.
type AbsoluteRelative struct {
	norm       NormFunc
	adjustment float64 // 0 means disabled
}

// AbsoluteRelativeOption configures NewAbsoluteRelative.
type AbsoluteRelativeOption func(*AbsoluteRelative)

// WithNorm overrides the Euclidean default norm. Nil is ignored.
func WithNorm(norm NormFunc) AbsoluteRelativeOption {
	return func(m *AbsoluteRelative) {
		if norm != nil {
			m.norm = norm
		}
	}
}

// WithRelativeAdjustment enables relative scaling with the given positive
// constant. math.Inf(1) selects the pure relative branch; zero leaves
// relative scaling disabled.
func WithRelativeAdjustment(c float64) AbsoluteRelativeOption {
	return func(m *AbsoluteRelative) {
		m.adjustment = c
	}
}

// NewAbsoluteRelative constructs an AbsoluteRelative leaf.
func NewAbsoluteRelative(optFns ...AbsoluteRelativeOption) (*AbsoluteRelative, error) {
	m := &AbsoluteRelative{norm: EuclideanNorm}
	for _, fn := range optFns {
		if fn != nil {
			fn(m)
		}
	}
	if c := m.adjustment; c != 0 && (math.IsNaN(c) || c < 0) {
		return nil, &ErrInvalidAdjustment{Adjustment: c}
	}
	return m, nil
}

// RelativeAdjustment returns the configured adjustment, or 0 when disabled.
func (m *AbsoluteRelative) RelativeAdjustment() float64 { return m.adjustment }

// Distance implements Metric.
func (m *AbsoluteRelative) Distance(data, model any) (float64, error) {
	x, err := asVector(data)
	if err != nil {
		return 0, err
	}
	y, err := asVector(model)
	if err != nil {
		return 0, err
	}
	if len(x) != len(y) {
		return 0, &ErrShapeMismatch{Data: []int{len(x)}, Model: []int{len(y)}}
	}
	diff := make([]float64, len(x))
	for i := range x {
		diff[i] = x[i] - y[i]
	}
	delta := m.norm(diff)
	if m.adjustment == 0 {
		return delta, nil
	}
	amplitude := math.Max(m.norm(x), m.norm(y))
	if math.IsInf(m.adjustment, 1) {
		// 0/0 at two zero-norm operands is a genuine mathematical
		// indeterminate; let it propagate as NaN.
		return delta / amplitude, nil
	}
	return delta / math.Max(1, m.adjustment*amplitude), nil
}
