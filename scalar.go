package momentdist

import "math"

// AbsoluteDifference is the scalar leaf |a - b|.
//
// The zero value is ready to use.
type AbsoluteDifference struct{}

// Distance implements Metric. Both operands must be finite.
func (AbsoluteDifference) Distance(data, model any) (float64, error) {
	a, b, err := scalarPair(data, model)
	if err != nil {
		return 0, err
	}
	return math.Abs(a - b), nil
}

// RelativeDifference is the scalar leaf |a - b| / |a|, normalizing by the
// data reference value. The reference must be nonzero.
//
// The zero value is ready to use.
type RelativeDifference struct{}

// Distance implements Metric. Both operands must be finite and the data
// reference must be nonzero.
func (RelativeDifference) Distance(data, model any) (float64, error) {
	a, b, err := scalarPair(data, model)
	if err != nil {
		return 0, err
	}
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return math.Abs(a-b) / math.Abs(a), nil
}

// scalarPair coerces both operands and rejects non-finite values.
func scalarPair(data, model any) (float64, float64, error) {
	a, err := toScalar(data)
	if err != nil {
		return 0, 0, err
	}
	b, err := toScalar(model)
	if err != nil {
		return 0, 0, err
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0, 0, &ErrNonFiniteInput{Operand: "data", Value: a}
	}
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, 0, &ErrNonFiniteInput{Operand: "model", Value: b}
	}
	return a, b, nil
}
