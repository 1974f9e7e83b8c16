package momentdist

import "math"

// Weighted scales the distance of its child metric by a positive constant.
//
// Construction flattens nested weights: wrapping a Weighted with another
// weight multiplies the weights instead of deepening the tree, so printed
// summaries stay canonical.
type Weighted struct {
	child  Metric
	weight float64
}

// NewWeighted wraps child, scaling its distance by weight. The weight must be
// positive and finite.
func NewWeighted(child Metric, weight float64) (*Weighted, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return nil, &ErrInvalidWeight{Weight: weight}
	}
	if w, ok := child.(*Weighted); ok {
		return &Weighted{child: w.child, weight: w.weight * weight}, nil
	}
	return &Weighted{child: child, weight: weight}, nil
}

// Scale is the multiplication convenience metric × real; it is equivalent to
// NewWeighted(m, w).
func Scale(m Metric, w float64) (*Weighted, error) {
	return NewWeighted(m, w)
}

// Weight returns the effective (flattened) weight.
func (m *Weighted) Weight() float64 { return m.weight }

// Child returns the wrapped metric.
func (m *Weighted) Child() Metric { return m.child }

// Distance implements Metric.
func (m *Weighted) Distance(data, model any) (float64, error) {
	d, err := m.child.Distance(data, model)
	if err != nil {
		return 0, err
	}
	return m.weight * d, nil
}
