package momentdist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// indentStep is the number of spaces per nesting level.
const indentStep = 2

// Summarize renders an indented, human-readable trace of how m compares data
// against model.
//
// The trace mirrors the Distance computation exactly: distances are
// recomputed independently at every level (nothing is cached), so a summary
// fails exactly when the underlying Distance calls would. This path is
// diagnostic-only; the recomputation cost is deliberate.
func Summarize(m Metric, data, model any, optFns ...SummaryOption) (string, error) {
	w := &summaryWriter{opts: applySummaryOptions(optFns)}
	if err := m.writeSummary(w, data, model); err != nil {
		return "", err
	}
	return strings.TrimSuffix(w.sb.String(), "\n"), nil
}

// summaryWriter accumulates trace lines at a given nesting level.
type summaryWriter struct {
	sb     strings.Builder
	indent int
	opts   summaryOptions
}

// line writes one line at the writer's own level.
func (w *summaryWriter) line(format string, args ...any) {
	w.sb.WriteString(strings.Repeat(" ", w.indent*indentStep))
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

// raw appends pre-indented lines verbatim.
func (w *summaryWriter) raw(lines []string) {
	for _, ln := range lines {
		w.sb.WriteString(ln)
		w.sb.WriteByte('\n')
	}
}

// renderChild renders m at the given nesting level and returns its lines.
func (w *summaryWriter) renderChild(m Metric, data, model any, indent int) ([]string, error) {
	sub := &summaryWriter{indent: indent, opts: w.opts}
	if err := m.writeSummary(sub, data, model); err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(sub.sb.String(), "\n"), "\n"), nil
}

// number formats a distance value with the configured significant digits.
func (w *summaryWriter) number(x float64) string {
	return formatFloat(x, w.opts.significantDigits)
}

// value formats a leaf operand: scalars and vectors are rounded to the
// configured significant digits, anything else renders through fmt and is
// truncated to its first text line.
func (w *summaryWriter) value(v any) string {
	if s, err := toScalar(v); err == nil {
		return w.number(s)
	}
	if vec, err := asVector(v); err == nil {
		parts := make([]string, len(vec))
		for i, x := range vec {
			parts[i] = w.number(x)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return firstLine(fmt.Sprint(v))
}

// writeLeaf renders the ‹x ↔ y: d› form shared by all leaf metrics.
func writeLeaf(w *summaryWriter, m Metric, data, model any) error {
	d, err := m.Distance(data, model)
	if err != nil {
		return err
	}
	w.line("‹%s ↔ %s: %s›", w.value(data), w.value(model), w.number(d))
	return nil
}

func (m AbsoluteDifference) writeSummary(w *summaryWriter, data, model any) error {
	return writeLeaf(w, m, data, model)
}

func (m RelativeDifference) writeSummary(w *summaryWriter, data, model any) error {
	return writeLeaf(w, m, data, model)
}

func (m *AbsoluteRelative) writeSummary(w *summaryWriter, data, model any) error {
	return writeLeaf(w, m, data, model)
}

func (m *Weighted) writeSummary(w *summaryWriter, data, model any) error {
	d, err := m.Distance(data, model)
	if err != nil {
		return err
	}
	w.line("weighted: %s", w.number(d))
	lines, err := w.renderChild(m.child, data, model, w.indent+1)
	if err != nil {
		return err
	}
	w.raw(lines)
	return nil
}

func (m *ElementwiseMean) writeSummary(w *summaryWriter, data, model any) error {
	d, err := m.Distance(data, model)
	if err != nil {
		return err
	}
	w.line("elementwise mean distance: %s", w.number(d))
	return writeElementBlock(w, m.child, data, model)
}

func (m *PNorm) writeSummary(w *summaryWriter, data, model any) error {
	d, err := m.Distance(data, model)
	if err != nil {
		return err
	}
	w.line("elementwise p-norm distance: %s", w.number(d))
	return writeElementBlock(w, m.child, data, model)
}

func (m *NamedSum) writeSummary(w *summaryWriter, data, model any) error {
	d, err := m.Distance(data, model)
	if err != nil {
		return err
	}
	w.line("total: %s", w.number(d))
	return writeFieldBlocks(w, m.fields, data, model)
}

func (m *NamedPNorm) writeSummary(w *summaryWriter, data, model any) error {
	d, err := m.Distance(data, model)
	if err != nil {
		return err
	}
	w.line("total: %s", w.number(d))
	return writeFieldBlocks(w, m.fields, data, model)
}

// writeElementBlock renders one indented line per container position,
// prefixed by its multi-dimensional index padded to a fixed width per axis.
// Multi-line child summaries continue one level deeper than the prefix.
func writeElementBlock(w *summaryWriter, child Metric, data, model any) error {
	// Shapes were already validated by the Distance call in the caller.
	cx, err := asContainer(data)
	if err != nil {
		return err
	}
	cy, err := asContainer(model)
	if err != nil {
		return err
	}
	shape := cx.Shape()
	widths := axisWidths(shape)
	prefix := strings.Repeat(" ", (w.indent+1)*indentStep)
	n := numElements(shape)
	for i := 0; i < n; i++ {
		idx := unravel(i, shape)
		lines, err := w.renderChild(child, cx.At(i), cy.At(i), w.indent+2)
		if err != nil {
			return fmt.Errorf("element %v: %w", idx, err)
		}
		w.sb.WriteString(prefix)
		w.sb.WriteString(formatIndex(idx, widths))
		w.sb.WriteByte(' ')
		w.sb.WriteString(strings.TrimLeft(lines[0], " "))
		w.sb.WriteByte('\n')
		w.raw(lines[1:])
	}
	return nil
}

// writeFieldBlocks renders a "from <field>:" header per declared field,
// followed by the doubly-indented recursive summary.
func writeFieldBlocks(w *summaryWriter, fields []NamedField, data, model any) error {
	header := strings.Repeat(" ", (w.indent+1)*indentStep)
	for _, f := range fields {
		fx, err := fieldValue(data, f.Name)
		if err != nil {
			return err
		}
		fy, err := fieldValue(model, f.Name)
		if err != nil {
			return err
		}
		lines, err := w.renderChild(f.Metric, fx, fy, w.indent+2)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		w.sb.WriteString(header)
		w.sb.WriteString("from ")
		w.sb.WriteString(f.Name)
		w.sb.WriteString(":\n")
		w.raw(lines)
	}
	return nil
}

// axisWidths returns the text width of the widest index of each axis.
func axisWidths(shape []int) []int {
	widths := make([]int, len(shape))
	for k, ext := range shape {
		last := ext - 1
		if last < 0 {
			last = 0
		}
		widths[k] = len(strconv.Itoa(last))
	}
	return widths
}

// formatIndex renders a multi-dimensional index like "[0 1]" with per-axis
// padding.
func formatIndex(idx, widths []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for k, v := range idx {
		if k > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%*d", widths[k], v)
	}
	b.WriteByte(']')
	return b.String()
}

// formatFloat rounds to the given significant digits. Integral results keep a
// trailing ".0" so numbers remain visibly floating point.
func formatFloat(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	s := strconv.FormatFloat(x, 'g', digits, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// firstLine truncates multi-line text to its first line with an ellipsis
// marker.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
