// Package layouttest provides a recording layout.Surface for tests.
package layouttest

import (
	"errors"
	"fmt"

	"planreport/internal/layout"
)

// Op kinds recorded by Recorder.
const (
	OpFontSize  = "fontSize"
	OpBold      = "bold"
	OpFillColor = "fillColor"
	OpTextColor = "textColor"
	OpText      = "text"
	OpRect      = "rect"
	OpLine      = "line"
	OpAddPage   = "addPage"
	OpImage     = "image"
)

// charWidthFactor approximates the advance of one rune as a fraction of the
// font size.
const charWidthFactor = 0.5

// Op is one recorded drawing call.
type Op struct {
	Kind  string
	Page  int
	Text  string
	X, Y  float64
	W, H  float64
	X2    float64
	Y2    float64
	Size  float64
	Bold  bool
	Color layout.Color
	Style layout.RectStyle
	Align layout.Align
}

func (o Op) String() string {
	switch o.Kind {
	case OpText:
		return fmt.Sprintf("p%d text %q @(%.2f,%.2f) w=%.2f", o.Page, o.Text, o.X, o.Y, o.W)
	case OpRect:
		return fmt.Sprintf("p%d rect %s @(%.2f,%.2f) %.2fx%.2f", o.Page, o.Style, o.X, o.Y, o.W, o.H)
	default:
		return fmt.Sprintf("p%d %s", o.Page, o.Kind)
	}
}

// Recorder is a layout.Surface that records every call instead of drawing.
// Text drawn with an ellipsis is recorded already fitted, using a fixed
// per-rune width.
type Recorder struct {
	Ops []Op

	// ImageErr is returned by EmbedImage when set.
	ImageErr error

	// FailAfter poisons the surface on the Nth recorded op when positive.
	FailAfter int
	FailErr   error

	page     int
	fontSize float64
	bold     bool
	err      error
}

// NewRecorder returns a recorder with its first page open.
func NewRecorder() *Recorder {
	return &Recorder{fontSize: 10}
}

// Measure returns the width the recorder assigns to text at the current font
// size.
func (r *Recorder) Measure(text string) float64 {
	return float64(len([]rune(text))) * r.fontSize * charWidthFactor
}

func (r *Recorder) record(op Op) {
	if r.err != nil {
		return
	}
	op.Page = r.page
	r.Ops = append(r.Ops, op)
	if r.FailAfter > 0 && len(r.Ops) >= r.FailAfter {
		r.err = r.FailErr
		if r.err == nil {
			r.err = errors.New("layouttest: injected failure")
		}
	}
}

func (r *Recorder) SetFontSize(size float64) {
	if r.err == nil {
		r.fontSize = size
	}
	r.record(Op{Kind: OpFontSize, Size: size})
}

func (r *Recorder) SetBold(bold bool) {
	if r.err == nil {
		r.bold = bold
	}
	r.record(Op{Kind: OpBold, Bold: bold})
}

func (r *Recorder) SetFillColor(c layout.Color) {
	r.record(Op{Kind: OpFillColor, Color: c})
}

func (r *Recorder) SetTextColor(c layout.Color) {
	r.record(Op{Kind: OpTextColor, Color: c})
}

func (r *Recorder) DrawText(text string, x, y float64, opts layout.TextOptions) {
	if opts.Ellipsis && opts.Width > 0 {
		text = layout.Ellipsize(text, opts.Width, r.Measure)
	}
	r.record(Op{Kind: OpText, Text: text, X: x, Y: y, W: opts.Width, Size: r.fontSize, Bold: r.bold, Align: opts.Align})
}

func (r *Recorder) DrawRect(x, y, w, h float64, style layout.RectStyle) {
	r.record(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Style: style})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.record(Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

func (r *Recorder) AddPage() {
	if r.err != nil {
		return
	}
	r.page++
	r.record(Op{Kind: OpAddPage})
}

func (r *Recorder) EmbedImage(path string, x, y, w, h float64) error {
	if r.ImageErr != nil {
		return r.ImageErr
	}
	r.record(Op{Kind: OpImage, Text: path, X: x, Y: y, W: w, H: h})
	return nil
}

func (r *Recorder) Err() error {
	return r.err
}

// Finalize returns a fixed marker payload, or the recorded failure.
func (r *Recorder) Finalize() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-recorded"), nil
}

// ---------------------------------------------------------------------------
// Query Helpers
// ---------------------------------------------------------------------------

// Pages returns the number of pages, counting the initial one.
func (r *Recorder) Pages() int {
	return r.page + 1
}

// Filter returns the ops matching keep.
func (r *Recorder) Filter(keep func(Op) bool) []Op {
	var out []Op
	for _, op := range r.Ops {
		if keep(op) {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the text ops whose text equals s.
func (r *Recorder) Texts(s string) []Op {
	return r.Filter(func(op Op) bool { return op.Kind == OpText && op.Text == s })
}

// IndexOf returns the index of the first op matching keep at or after from,
// or -1.
func (r *Recorder) IndexOf(from int, keep func(Op) bool) int {
	for i := from; i < len(r.Ops); i++ {
		if keep(r.Ops[i]) {
			return i
		}
	}
	return -1
}
