package layout

import (
	"fmt"
	"math"
)

// widthTolerance absorbs floating point noise when comparing column sums.
const widthTolerance = 1e-6

// Column is one column of a hierarchical table.
type Column struct {
	Label string
	Width float64
	Align Align
}

// ColumnDef declares a column by relative weight.
type ColumnDef struct {
	Label  string
	Weight float64
	Align  Align
}

// ColumnSpec is the ordered list of columns of a table instance.
type ColumnSpec []Column

// NewColumnSpec distributes total across defs proportionally to their
// weights. The last column absorbs rounding so the widths sum to total.
func NewColumnSpec(total float64, defs ...ColumnDef) ColumnSpec {
	var weights float64
	for _, d := range defs {
		weights += d.Weight
	}

	spec := make(ColumnSpec, len(defs))
	var used float64
	for i, d := range defs {
		w := math.Round(total*d.Weight/weights*100) / 100
		if i == len(defs)-1 {
			w = total - used
		}
		spec[i] = Column{Label: d.Label, Width: w, Align: d.Align}
		used += w
	}
	return spec
}

// Total returns the sum of the column widths.
func (s ColumnSpec) Total() float64 {
	var sum float64
	for _, c := range s {
		sum += c.Width
	}
	return sum
}

// Offsets returns the left edge of each column relative to the table's left
// edge.
func (s ColumnSpec) Offsets() []float64 {
	offsets := make([]float64, len(s))
	var x float64
	for i, c := range s {
		offsets[i] = x
		x += c.Width
	}
	return offsets
}

// Validate checks that the columns exactly span width.
func (s ColumnSpec) Validate(width float64) error {
	if len(s) == 0 {
		return fmt.Errorf("column spec is empty")
	}
	for _, c := range s {
		if c.Width <= 0 {
			return fmt.Errorf("column %q has non-positive width %.2f", c.Label, c.Width)
		}
	}
	if total := s.Total(); math.Abs(total-width) > widthTolerance {
		return fmt.Errorf("column widths sum to %.4f, want %.4f", total, width)
	}
	return nil
}
