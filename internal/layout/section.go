package layout

// Pair is one label/value row of a section table.
type Pair struct {
	Label string
	Value string
}

// Section header labels.
const (
	sectionLabelHeader = "Campo"
	sectionValueHeader = "Valor"
)

// SectionRenderer draws titled two-column key/value tables.
type SectionRenderer struct {
	cfg     Config
	surface Surface
}

// NewSectionRenderer creates a section renderer drawing on surface.
func NewSectionRenderer(cfg Config, surface Surface) *SectionRenderer {
	return &SectionRenderer{cfg: cfg, surface: surface}
}

// Height returns the vertical space a section with rows pairs occupies,
// trailing spacing included.
func (r *SectionRenderer) Height(rows int) float64 {
	return r.cfg.TitleHeight + r.cfg.RowHeight*float64(rows+1) + r.cfg.SectionSpacing
}

// Render draws the section at the cursor and returns the y below it. It does
// not paginate: the caller must make sure Height(len(pairs)) fits first.
func (r *SectionRenderer) Render(c *Cursor, title string, pairs []Pair) float64 {
	s := r.surface
	x := r.cfg.Margin
	width := r.cfg.UsableWidth()
	half := width / 2

	// Title
	s.SetBold(true)
	s.SetFontSize(r.cfg.SectionFontSize)
	s.SetTextColor(ColorText)
	s.DrawText(title, x, r.cfg.TextTop(c.Y(), r.cfg.TitleHeight, r.cfg.SectionFontSize), TextOptions{Width: width, Ellipsis: true})
	c.Advance(r.cfg.TitleHeight)

	// Header row
	s.SetFillColor(ColorHeaderFill)
	s.DrawRect(x, c.Y(), width, r.cfg.RowHeight, FillStroke)
	s.DrawLine(x+half, c.Y(), x+half, c.Y()+r.cfg.RowHeight)
	s.SetFontSize(r.cfg.BodyFontSize)
	r.drawCells(c.Y(), sectionLabelHeader, sectionValueHeader)
	c.Advance(r.cfg.RowHeight)

	// Body rows
	s.SetBold(false)
	for i, p := range pairs {
		if i%2 == 1 {
			s.SetFillColor(ColorAltRow)
			s.DrawRect(x, c.Y(), width, r.cfg.RowHeight, Fill)
		}
		s.DrawRect(x, c.Y(), width, r.cfg.RowHeight, Stroke)
		s.DrawLine(x+half, c.Y(), x+half, c.Y()+r.cfg.RowHeight)
		r.drawCells(c.Y(), p.Label, p.Value)
		c.Advance(r.cfg.RowHeight)
	}

	c.Advance(r.cfg.SectionSpacing)
	return c.Y()
}

func (r *SectionRenderer) drawCells(top float64, label, value string) {
	pad := r.cfg.CellPadding
	half := r.cfg.UsableWidth() / 2
	y := r.cfg.TextTop(top, r.cfg.RowHeight, r.cfg.BodyFontSize)
	opts := TextOptions{Width: half - 2*pad, Ellipsis: true}

	r.surface.DrawText(label, r.cfg.Margin+pad, y, opts)
	r.surface.DrawText(value, r.cfg.Margin+half+pad, y, opts)
}
