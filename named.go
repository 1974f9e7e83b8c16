package momentdist

import (
	"fmt"
	"math"
	"slices"
)

// NamedSum compares two records field by field with per-field child metrics
// and sums the distances, in declaration order.
//
// Fields present on the operands beyond the declared set are ignored; a
// declared field absent from an operand is an error.
type NamedSum struct {
	fields []NamedField
}

// NewNamedSum declares the compared fields. Declaration order determines
// evaluation and rendering order.
func NewNamedSum(fields ...NamedField) *NamedSum {
	return &NamedSum{fields: slices.Clone(fields)}
}

// Fields returns the declared fields in declaration order.
func (m *NamedSum) Fields() []NamedField { return slices.Clone(m.fields) }

// Distance implements Metric.
func (m *NamedSum) Distance(data, model any) (float64, error) {
	dists, err := fieldDistances(m.fields, data, model)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, d := range dists {
		sum += d
	}
	return sum, nil
}

// NamedPNorm compares two records field by field with per-field child metrics
// and reduces by (Σ|d_k|^p)^(1/p), in declaration order.
type NamedPNorm struct {
	fields []NamedField
	p      float64
}

// NewNamedPNorm declares the compared fields with exponent p >= 1.
func NewNamedPNorm(p float64, fields ...NamedField) (*NamedPNorm, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 1 {
		return nil, &ErrInvalidExponent{P: p}
	}
	return &NamedPNorm{fields: slices.Clone(fields), p: p}, nil
}

// NewNamedEuclidean returns the named p-norm with the default exponent 2.
func NewNamedEuclidean(fields ...NamedField) *NamedPNorm {
	return &NamedPNorm{fields: slices.Clone(fields), p: 2}
}

// Fields returns the declared fields in declaration order.
func (m *NamedPNorm) Fields() []NamedField { return slices.Clone(m.fields) }

// P returns the exponent.
func (m *NamedPNorm) P() float64 { return m.p }

// Distance implements Metric.
func (m *NamedPNorm) Distance(data, model any) (float64, error) {
	dists, err := fieldDistances(m.fields, data, model)
	if err != nil {
		return 0, err
	}
	return pnormReduce(dists, m.p), nil
}

// fieldDistances evaluates each declared field in declaration order.
func fieldDistances(fields []NamedField, data, model any) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		fx, err := fieldValue(data, f.Name)
		if err != nil {
			return nil, err
		}
		fy, err := fieldValue(model, f.Name)
		if err != nil {
			return nil, err
		}
		d, err := f.Metric.Distance(fx, fy)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out[i] = d
	}
	return out, nil
}
