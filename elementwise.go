package momentdist

import (
	"fmt"
	"math"
	"slices"
)

// ElementwiseMean applies a child metric at every matching position of two
// same-shaped containers and reduces by the arithmetic mean, in row-major
// order.
type ElementwiseMean struct {
	child Metric
}

// NewElementwiseMean wraps child as a per-element metric.
func NewElementwiseMean(child Metric) *ElementwiseMean {
	return &ElementwiseMean{child: child}
}

// Child returns the per-element metric.
func (m *ElementwiseMean) Child() Metric { return m.child }

// Distance implements Metric. Empty containers compare as zero.
func (m *ElementwiseMean) Distance(data, model any) (float64, error) {
	dists, _, err := elementDistances(m.child, data, model)
	if err != nil {
		return 0, err
	}
	if len(dists) == 0 {
		return 0, nil
	}
	var sum float64
	for _, d := range dists {
		sum += d
	}
	return sum / float64(len(dists)), nil
}

// PNorm applies a child metric at every matching position of two same-shaped
// containers and reduces by (Σ|d_i|^p)^(1/p), in row-major order.
type PNorm struct {
	child Metric
	p     float64
}

// NewPNorm wraps child as a per-element metric with exponent p >= 1.
func NewPNorm(child Metric, p float64) (*PNorm, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 1 {
		return nil, &ErrInvalidExponent{P: p}
	}
	return &PNorm{child: child, p: p}, nil
}

// NewEuclidean returns the elementwise p-norm with the default exponent 2.
func NewEuclidean(child Metric) *PNorm {
	return &PNorm{child: child, p: 2}
}

// Child returns the per-element metric.
func (m *PNorm) Child() Metric { return m.child }

// P returns the exponent.
func (m *PNorm) P() float64 { return m.p }

// Distance implements Metric.
func (m *PNorm) Distance(data, model any) (float64, error) {
	dists, _, err := elementDistances(m.child, data, model)
	if err != nil {
		return 0, err
	}
	return pnormReduce(dists, m.p), nil
}

// elementDistances evaluates child at every matching position of two
// same-shaped containers, in row-major order.
func elementDistances(child Metric, data, model any) ([]float64, []int, error) {
	cx, err := asContainer(data)
	if err != nil {
		return nil, nil, err
	}
	cy, err := asContainer(model)
	if err != nil {
		return nil, nil, err
	}
	if !slices.Equal(cx.Shape(), cy.Shape()) {
		return nil, nil, &ErrShapeMismatch{
			Data:  slices.Clone(cx.Shape()),
			Model: slices.Clone(cy.Shape()),
		}
	}
	shape := cx.Shape()
	n := numElements(shape)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		d, err := child.Distance(cx.At(i), cy.At(i))
		if err != nil {
			return nil, nil, fmt.Errorf("element %v: %w", unravel(i, shape), err)
		}
		out[i] = d
	}
	return out, shape, nil
}

func pnormReduce(dists []float64, p float64) float64 {
	var sum float64
	for _, d := range dists {
		sum += math.Pow(math.Abs(d), p)
	}
	return math.Pow(sum, 1/p)
}
