package layout

import "strings"

// ---------------------------------------------------------------------------
// Hierarchical Table Model
// ---------------------------------------------------------------------------

// GroupKind describes one kind of leaf group (indicators, alignments,
// activities) and how it is presented.
type GroupKind struct {
	Name         string
	Label        string
	Color        Color
	EmptyMessage string
}

// Field is one labelled value of a leaf record.
type Field struct {
	Label string
	Value string
}

// LeafRecord is a flat record rendered as one summarized row.
type LeafRecord struct {
	Fields []Field
}

// Summary joins the non-empty fields as "Label: Value" separated by " | ".
func (r LeafRecord) Summary() string {
	parts := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		if f.Value == "" {
			continue
		}
		if f.Label == "" {
			parts = append(parts, f.Value)
			continue
		}
		parts = append(parts, f.Label+": "+f.Value)
	}
	return strings.Join(parts, " | ")
}

// LeafGroup is an ordered collection of leaf records under a branch.
type LeafGroup struct {
	Kind    GroupKind
	Records []LeafRecord
}

// Branch is a mid-level table row with one cell per column and its leaf
// groups in display order.
type Branch struct {
	Cells  []string
	Groups []LeafGroup
}

// ---------------------------------------------------------------------------
// Hierarchical Table Renderer
// ---------------------------------------------------------------------------

// TableRenderer draws branch rows followed by their leaf groups, breaking
// pages between branches and between leaf rows.
type TableRenderer struct {
	cfg     Config
	surface Surface
}

// NewTableRenderer creates a table renderer drawing on surface.
func NewTableRenderer(cfg Config, surface Surface) *TableRenderer {
	return &TableRenderer{cfg: cfg, surface: surface}
}

// Estimate returns the height a branch needs including all its leaf groups.
func (r *TableRenderer) Estimate(b Branch) float64 {
	h := r.cfg.BranchRowHeight
	for _, g := range b.Groups {
		h += r.cfg.GroupHeaderHeight
		if n := len(g.Records); n > 0 {
			h += float64(n) * r.cfg.LeafRowHeight
		} else {
			h += r.cfg.PlaceholderHeight
		}
	}
	return h + r.cfg.InterGroupSpacing
}

// Render draws the table header once, then every branch, and returns the y
// below the table. The header is not repeated on continuation pages.
func (r *TableRenderer) Render(c *Cursor, cols ColumnSpec, branches []Branch) float64 {
	r.drawHeader(c, cols)

	for i, b := range branches {
		if r.Estimate(b) > c.Remaining(r.cfg.RowSafety) {
			c.PageBreak()
		}
		r.drawBranch(c, cols, i, b)
		for _, g := range b.Groups {
			r.drawGroup(c, g)
		}
		c.Advance(r.cfg.InterGroupSpacing)
	}

	c.Advance(r.cfg.TrailingSpacing)
	return c.Y()
}

func (r *TableRenderer) drawHeader(c *Cursor, cols ColumnSpec) {
	s := r.surface
	x := r.cfg.Margin
	h := r.cfg.TableHeaderHeight

	s.SetFillColor(ColorHeaderFill)
	s.DrawRect(x, c.Y(), r.cfg.UsableWidth(), h, FillStroke)
	r.drawSeparators(c.Y(), h, cols)

	s.SetBold(true)
	s.SetFontSize(r.cfg.BodyFontSize)
	s.SetTextColor(ColorText)
	y := r.cfg.TextTop(c.Y(), h, r.cfg.BodyFontSize)
	for i, off := range cols.Offsets() {
		r.drawCell(x+off, y, cols[i].Width, cols[i].Label, AlignCenter)
	}
	s.SetBold(false)

	c.Advance(h)
}

func (r *TableRenderer) drawBranch(c *Cursor, cols ColumnSpec, index int, b Branch) {
	s := r.surface
	x := r.cfg.Margin
	h := r.cfg.BranchRowHeight
	width := r.cfg.UsableWidth()

	if index%2 == 1 {
		s.SetFillColor(ColorAltRow)
		s.DrawRect(x, c.Y(), width, h, Fill)
	}
	s.DrawRect(x, c.Y(), width, h, Stroke)
	r.drawSeparators(c.Y(), h, cols)

	s.SetFontSize(r.cfg.BodyFontSize)
	s.SetTextColor(ColorText)
	y := r.cfg.TextTop(c.Y(), h, r.cfg.BodyFontSize)
	for i, off := range cols.Offsets() {
		var text string
		if i < len(b.Cells) {
			text = b.Cells[i]
		}
		r.drawCell(x+off, y, cols[i].Width, text, cols[i].Align)
	}

	c.Advance(h)
}

func (r *TableRenderer) drawGroup(c *Cursor, g LeafGroup) {
	s := r.surface
	x := r.cfg.Margin
	width := r.cfg.UsableWidth()
	pad := r.cfg.CellPadding

	// Sub-header band
	hh := r.cfg.GroupHeaderHeight
	s.SetFillColor(g.Kind.Color)
	s.DrawRect(x, c.Y(), width, hh, Fill)
	s.SetBold(true)
	s.SetFontSize(r.cfg.SmallFontSize)
	s.SetTextColor(ColorGroupText)
	s.DrawText(g.Kind.Label, x+pad, r.cfg.TextTop(c.Y(), hh, r.cfg.SmallFontSize), TextOptions{Width: width - 2*pad, Ellipsis: true})
	s.SetBold(false)
	c.Advance(hh)

	// The placeholder is drawn without a page-break check.
	if len(g.Records) == 0 {
		ph := r.cfg.PlaceholderHeight
		s.DrawRect(x, c.Y(), width, ph, Stroke)
		s.SetTextColor(ColorWarning)
		s.DrawText(g.Kind.EmptyMessage, x+pad, r.cfg.TextTop(c.Y(), ph, r.cfg.SmallFontSize), TextOptions{Width: width - 2*pad, Ellipsis: true})
		c.Advance(ph)
		return
	}

	lh := r.cfg.LeafRowHeight
	s.SetTextColor(ColorText)
	for i, rec := range g.Records {
		if lh > c.Remaining(r.cfg.RowSafety) {
			c.PageBreak()
		}
		if i%2 == 1 {
			s.SetFillColor(ColorAltRow)
			s.DrawRect(x, c.Y(), width, lh, Fill)
		}
		s.DrawRect(x, c.Y(), width, lh, Stroke)
		s.DrawText(rec.Summary(), x+pad, r.cfg.TextTop(c.Y(), lh, r.cfg.SmallFontSize), TextOptions{Width: width - 2*pad, Ellipsis: true})
		c.Advance(lh)
	}
}

func (r *TableRenderer) drawSeparators(top, h float64, cols ColumnSpec) {
	x := r.cfg.Margin
	for i, off := range cols.Offsets() {
		if i == 0 {
			continue
		}
		r.surface.DrawLine(x+off, top, x+off, top+h)
	}
}

func (r *TableRenderer) drawCell(x, y, width float64, text string, align Align) {
	pad := r.cfg.CellPadding
	r.surface.DrawText(text, x+pad, y, TextOptions{Width: width - 2*pad, Align: align, Ellipsis: true})
}
