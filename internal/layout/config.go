// Package layout implements the paginated table layout used by the planning
// reports: page geometry, a vertical cursor, a two-column section renderer and
// a hierarchical branch/leaf table renderer. Everything is drawn through the
// Surface interface, so pagination can be tested without encoding a PDF.
package layout

// ---------------------------------------------------------------------------
// Geometry Configuration
// ---------------------------------------------------------------------------

// Config holds the page geometry and every height constant the layout
// depends on. Units are PDF points.
type Config struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	// Section renderer
	TitleHeight    float64
	RowHeight      float64
	SectionSpacing float64

	// Hierarchical table renderer
	TableHeaderHeight float64
	BranchRowHeight   float64
	GroupHeaderHeight float64
	LeafRowHeight     float64
	PlaceholderHeight float64
	InterGroupSpacing float64
	TrailingSpacing   float64

	// Safety margins reserved at the bottom of the page
	RowSafety    float64
	FooterSafety float64
	TableSafety  float64

	// Report header
	LogoX        float64
	LogoY        float64
	LogoSize     float64
	HeaderHeight float64

	// Text
	TitleFontSize   float64
	SectionFontSize float64
	BodyFontSize    float64
	SmallFontSize   float64
	CellPadding     float64
	LineFactor      float64
}

// DefaultConfig returns the A4 portrait geometry used by the portal.
func DefaultConfig() Config {
	return Config{
		PageWidth:  595.28,
		PageHeight: 841.89,
		Margin:     50,

		TitleHeight:    30,
		RowHeight:      25,
		SectionSpacing: 20,

		TableHeaderHeight: 25,
		BranchRowHeight:   40,
		GroupHeaderHeight: 20,
		LeafRowHeight:     18,
		PlaceholderHeight: 18,
		InterGroupSpacing: 10,
		TrailingSpacing:   10,

		RowSafety:    100,
		FooterSafety: 80,
		TableSafety:  700,

		LogoX:        50,
		LogoY:        40,
		LogoSize:     60,
		HeaderHeight: 70,

		TitleFontSize:   16,
		SectionFontSize: 12,
		BodyFontSize:    9,
		SmallFontSize:   8,
		CellPadding:     5,
		LineFactor:      1.2,
	}
}

// UsableWidth is the page width between the left and right margins.
func (c Config) UsableWidth() float64 {
	return c.PageWidth - 2*c.Margin
}

// UsableHeight is the page height between the top and bottom margins.
func (c Config) UsableHeight() float64 {
	return c.PageHeight - 2*c.Margin
}

// LineHeight returns the height of one line of text at the given font size.
func (c Config) LineHeight(fontSize float64) float64 {
	return fontSize * c.LineFactor
}

// TextTop returns the y at which a single line of text is vertically
// centered inside a row starting at top.
func (c Config) TextTop(top, rowHeight, fontSize float64) float64 {
	return top + (rowHeight-c.LineHeight(fontSize))/2
}
