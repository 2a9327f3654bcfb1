package layout

// Color is an RGB triple in the 0-255 range.
type Color struct {
	R, G, B int
}

// Fixed report palette.
var (
	ColorWhite       = Color{255, 255, 255}
	ColorText        = Color{44, 62, 80}    // Dark text
	ColorMuted       = Color{127, 140, 141} // Muted text
	ColorHeaderFill  = Color{226, 232, 240} // Table and section header band
	ColorAltRow      = Color{245, 247, 250} // Alternating row
	ColorWarning     = Color{192, 57, 43}   // "No data" messages
	ColorIndicators  = Color{52, 152, 219}  // Blue
	ColorAlignments  = Color{46, 204, 113}  // Green
	ColorActivities  = Color{155, 89, 182}  // Purple
	ColorGroupText   = Color{255, 255, 255}
	ColorMessageFill = Color{253, 237, 236}
)

// Align is the horizontal alignment of text inside its bounding width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	default:
		return "L"
	}
}

// RectStyle selects how a rectangle is painted.
type RectStyle int

const (
	Stroke RectStyle = iota
	Fill
	FillStroke
)

func (s RectStyle) String() string {
	switch s {
	case Fill:
		return "F"
	case FillStroke:
		return "FD"
	default:
		return "D"
	}
}

// TextOptions bound a single line of text.
type TextOptions struct {
	// Width is the bounding width. Zero means unbounded.
	Width float64
	Align Align
	// Ellipsis truncates text wider than Width and appends an ellipsis marker.
	Ellipsis bool
}

// Surface is the drawing backend the layout engine paints on. The origin is
// the top-left corner of the page and y grows downwards.
//
// Primitive failures are sticky: the first failure is retained, later calls
// become no-ops and Err and Finalize report it. A freshly created Surface has
// its first page open.
type Surface interface {
	SetFontSize(size float64)
	SetBold(bold bool)
	SetFillColor(c Color)
	SetTextColor(c Color)
	DrawText(text string, x, y float64, opts TextOptions)
	DrawRect(x, y, w, h float64, style RectStyle)
	DrawLine(x1, y1, x2, y2 float64)
	AddPage()
	// EmbedImage places the image at path inside the w×h box. A failure is
	// returned to the caller and does not poison the surface.
	EmbedImage(path string, x, y, w, h float64) error
	Err() error
	Finalize() ([]byte, error)
}
