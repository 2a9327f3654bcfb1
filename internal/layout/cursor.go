package layout

// Cursor tracks the vertical position on the current page and the page
// index. It is only moved by Advance and PageBreak.
type Cursor struct {
	cfg     Config
	surface Surface

	y    float64
	page int
}

// NewCursor returns a cursor at the top margin of page 0. The surface is
// expected to have its first page already open.
func NewCursor(cfg Config, surface Surface) *Cursor {
	return &Cursor{cfg: cfg, surface: surface, y: cfg.Margin}
}

// Y returns the current vertical offset.
func (c *Cursor) Y() float64 { return c.y }

// Page returns the 0-based index of the current page.
func (c *Cursor) Page() int { return c.page }

// Advance moves the cursor down by height.
func (c *Cursor) Advance(height float64) {
	c.y += height
}

// PageBreak opens a new page and moves the cursor to its top margin.
func (c *Cursor) PageBreak() {
	c.surface.AddPage()
	c.y = c.cfg.Margin
	c.page++
}

// Remaining returns the height left above the bottom margin after
// reserving safety. It is negative once the cursor is inside the reserve.
func (c *Cursor) Remaining(safety float64) float64 {
	return c.cfg.PageHeight - c.cfg.Margin - c.y - safety
}

// Fits reports whether a block of the given height fits above the reserve.
func (c *Cursor) Fits(height, safety float64) bool {
	return height <= c.Remaining(safety)
}
