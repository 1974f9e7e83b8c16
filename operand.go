package momentdist

import (
	"fmt"
	"reflect"
	"slices"
)

// Container is the contract elementwise aggregators consume: a fixed-shape
// collection addressed by flat row-major position in [0, number of elements).
//
// Shape returns the per-axis extents; implementations must treat the returned
// slice as read-only.
type Container interface {
	Shape() []int
	At(i int) any
}

// Record is the contract named aggregators consume: read access to named
// fields. Field reports whether the field exists.
type Record interface {
	Field(name string) (any, bool)
}

// Dense is an n-dimensional container of float64 values in row-major order.
type Dense struct {
	shape []int
	data  []float64
}

// NewDense builds a Dense with the given shape over row-major data.
// len(data) must equal the product of the extents.
func NewDense(shape []int, data []float64) (*Dense, error) {
	n := 1
	for _, ext := range shape {
		if ext < 0 {
			return nil, fmt.Errorf("negative extent %d in shape %v", ext, shape)
		}
		n *= ext
	}
	if n != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, data has %d", shape, n, len(data))
	}
	return &Dense{shape: slices.Clone(shape), data: data}, nil
}

// Shape implements Container.
func (d *Dense) Shape() []int { return d.shape }

// At implements Container.
func (d *Dense) At(i int) any { return d.data[i] }

// toScalar coerces a scalar operand to float64. Named numeric types are
// handled through the reflect fallback.
func toScalar(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	}
	return 0, &ErrUnsupportedOperand{Value: v}
}

// asVector coerces an AbsoluteRelative operand to a flat float64 vector.
// Scalars become length-1 vectors.
func asVector(v any) ([]float64, error) {
	switch x := v.(type) {
	case []float64:
		return x, nil
	case []float32:
		out := make([]float64, len(x))
		for i, f := range x {
			out[i] = float64(f)
		}
		return out, nil
	}
	if s, err := toScalar(v); err == nil {
		return []float64{s}, nil
	}
	c, err := asContainer(v)
	if err != nil {
		return nil, err
	}
	n := numElements(c.Shape())
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		s, err := toScalar(c.At(i))
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// asContainer adapts a container operand to the Container contract.
func asContainer(v any) (Container, error) {
	switch x := v.(type) {
	case Container:
		return x, nil
	case []float64:
		return float64Slice(x), nil
	case []float32:
		return float32Slice(x), nil
	case []any:
		return anySlice(x), nil
	case [][]float64:
		return newMatrix(x)
	}
	return nil, &ErrUnsupportedOperand{Value: v}
}

type float64Slice []float64

func (s float64Slice) Shape() []int { return []int{len(s)} }
func (s float64Slice) At(i int) any { return s[i] }

type float32Slice []float32

func (s float32Slice) Shape() []int { return []int{len(s)} }
func (s float32Slice) At(i int) any { return s[i] }

type anySlice []any

func (s anySlice) Shape() []int { return []int{len(s)} }
func (s anySlice) At(i int) any { return s[i] }

// matrix adapts a rectangular [][]float64 as a 2-D container.
type matrix struct {
	rows [][]float64
	cols int
}

func newMatrix(rows [][]float64) (Container, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for _, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("ragged rows: %w", &ErrUnsupportedOperand{Value: rows})
		}
	}
	return &matrix{rows: rows, cols: cols}, nil
}

func (m *matrix) Shape() []int { return []int{len(m.rows), m.cols} }
func (m *matrix) At(i int) any { return m.rows[i/m.cols][i%m.cols] }

// numElements returns the product of the extents.
func numElements(shape []int) int {
	n := 1
	for _, ext := range shape {
		n *= ext
	}
	return n
}

// unravel converts a flat row-major position to a multi-dimensional index.
func unravel(i int, shape []int) []int {
	idx := make([]int, len(shape))
	for k := len(shape) - 1; k >= 0; k-- {
		idx[k] = i % shape[k]
		i /= shape[k]
	}
	return idx
}

// fieldValue reads a declared field from a record operand. Supported operand
// shapes: Record implementations, map[string]any, and structs (exported
// fields, optionally behind pointers).
func fieldValue(v any, name string) (any, error) {
	switch x := v.(type) {
	case Record:
		if fv, ok := x.Field(name); ok {
			return fv, nil
		}
		return nil, &ErrMissingField{Field: name}
	case map[string]any:
		if fv, ok := x[name]; ok {
			return fv, nil
		}
		return nil, &ErrMissingField{Field: name}
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		f := rv.FieldByName(name)
		if f.IsValid() && f.CanInterface() {
			return f.Interface(), nil
		}
		return nil, &ErrMissingField{Field: name}
	}
	return nil, &ErrUnsupportedOperand{Value: v}
}
