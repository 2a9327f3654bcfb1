// Package pdfsurface implements layout.Surface on top of go-pdf/fpdf.
package pdfsurface

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"planreport/internal/layout"
)

// ---------------------------------------------------------------------------
// PDF Settings
// ---------------------------------------------------------------------------

const (
	fontFamily = "Helvetica"
	unit       = "pt"
)

// Surface draws on an in-memory fpdf document. Units are points with the
// origin at the top-left corner of the page.
type Surface struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	cfg       layout.Config

	fontSize float64
	bold     bool
	images   int
}

// New creates a surface sized by cfg with its first page open.
func New(cfg layout.Config) *Surface {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        unit,
		Size:           fpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	// Pagination is decided by the layout engine, never by fpdf.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetFont(fontFamily, "", cfg.BodyFontSize)
	pdf.SetDrawColor(189, 195, 199)
	pdf.AddPage()

	return &Surface{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		cfg:       cfg,
		fontSize:  cfg.BodyFontSize,
	}
}

func (s *Surface) SetFontSize(size float64) {
	s.fontSize = size
	s.pdf.SetFontSize(size)
}

func (s *Surface) SetBold(bold bool) {
	s.bold = bold
	style := ""
	if bold {
		style = "B"
	}
	s.pdf.SetFont(fontFamily, style, s.fontSize)
}

func (s *Surface) SetFillColor(c layout.Color) {
	s.pdf.SetFillColor(c.R, c.G, c.B)
}

func (s *Surface) SetTextColor(c layout.Color) {
	s.pdf.SetTextColor(c.R, c.G, c.B)
}

// DrawText writes one line of text with its top edge at y. Ellipsis fitting
// runs on the UTF-8 text; only the fitted result is converted to the core
// font encoding.
func (s *Surface) DrawText(text string, x, y float64, opts layout.TextOptions) {
	width := opts.Width
	if width > 0 && opts.Ellipsis {
		text = layout.Ellipsize(text, width, s.measure)
	}
	txt := s.translate(text)
	if width <= 0 {
		width = s.pdf.GetStringWidth(txt)
	}

	s.pdf.SetXY(x, y)
	s.pdf.CellFormat(width, s.cfg.LineHeight(s.fontSize), txt, "", 0, opts.Align.String(), false, 0, "")
}

// measure returns the width of UTF-8 text in the current font.
func (s *Surface) measure(text string) float64 {
	return s.pdf.GetStringWidth(s.translate(text))
}

func (s *Surface) DrawRect(x, y, w, h float64, style layout.RectStyle) {
	s.pdf.Rect(x, y, w, h, style.String())
}

func (s *Surface) DrawLine(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *Surface) AddPage() {
	s.pdf.AddPage()
}

// EmbedImage loads, normalizes and places the image at path centered in the
// w×h box. Errors are returned without poisoning the document.
func (s *Surface) EmbedImage(path string, x, y, w, h float64) error {
	if err := s.pdf.Error(); err != nil {
		return err
	}

	logo, err := loadLogo(path, w, h)
	if err != nil {
		return err
	}

	s.images++
	name := fmt.Sprintf("logo-%d", s.images)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(logo.png))
	if err := s.pdf.Error(); err != nil {
		s.pdf.ClearError()
		return fmt.Errorf("register image %s: %w", path, err)
	}

	s.pdf.ImageOptions(name, x+(w-logo.width)/2, y+(h-logo.height)/2, logo.width, logo.height, false, opts, 0, "")
	return nil
}

// Err returns the first drawing failure, if any.
func (s *Surface) Err() error {
	return s.pdf.Error()
}

// PageCount returns the number of pages created so far.
func (s *Surface) PageCount() int {
	return s.pdf.PageCount()
}

// Finalize serializes the document. It fails if any drawing call failed.
func (s *Surface) Finalize() ([]byte, error) {
	if err := s.pdf.Error(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output error: %w", err)
	}
	return buf.Bytes(), nil
}
