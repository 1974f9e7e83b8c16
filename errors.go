package momentdist

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when RelativeDifference receives a zero
	// data value: division by the reference is undefined.
	ErrDivisionByZero = errors.New("relative difference: data reference value is zero")
)

// ErrNonFiniteInput indicates a scalar primitive received NaN or an infinity.
type ErrNonFiniteInput struct {
	Operand string // "data" or "model"
	Value   float64
}

func (e *ErrNonFiniteInput) Error() string {
	return fmt.Sprintf("non-finite %s operand: %v", e.Operand, e.Value)
}

// ErrInvalidWeight indicates a weight passed to NewWeighted that is not a
// positive finite number.
type ErrInvalidWeight struct {
	Weight float64
}

func (e *ErrInvalidWeight) Error() string {
	return fmt.Sprintf("invalid weight %v: must be positive and finite", e.Weight)
}

// ErrInvalidExponent indicates a p-norm exponent below 1.
type ErrInvalidExponent struct {
	P float64
}

func (e *ErrInvalidExponent) Error() string {
	return fmt.Sprintf("invalid p-norm exponent %v: must be a finite number >= 1", e.P)
}

// ErrInvalidAdjustment indicates a relative adjustment passed to
// NewAbsoluteRelative that is neither a positive number nor +Inf.
type ErrInvalidAdjustment struct {
	Adjustment float64
}

func (e *ErrInvalidAdjustment) Error() string {
	return fmt.Sprintf("invalid relative adjustment %v: must be positive (may be +Inf)", e.Adjustment)
}

// ErrShapeMismatch indicates container operands whose shapes differ under an
// elementwise aggregator.
type ErrShapeMismatch struct {
	Data  []int
	Model []int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: data %v vs model %v", e.Data, e.Model)
}

// ErrMissingField indicates a field declared on a named aggregator that is
// absent from a record operand.
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("record operand is missing field %q", e.Field)
}

// ErrUnsupportedOperand indicates an operand whose Go type the metric cannot
// consume.
type ErrUnsupportedOperand struct {
	Value any
}

func (e *ErrUnsupportedOperand) Error() string {
	return fmt.Sprintf("unsupported operand type %T", e.Value)
}
