package report

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"planreport/internal/layout"
)

// phase names the stages of a render, in order.
type phase string

const (
	phaseHeader   phase = "header"
	phaseInfo     phase = "info blocks"
	phaseBranches phase = "branch table"
	phaseFooter   phase = "footer"
	phaseFinalize phase = "finalize"
)

// Assembler renders one Document onto one Surface. It is single use.
type Assembler struct {
	cfg       layout.Config
	surface   layout.Surface
	formatter Formatter
	logger    *zap.Logger
	logoPath  string
	now       func() time.Time

	cursor   *layout.Cursor
	sections *layout.SectionRenderer
	table    *layout.TableRenderer
}

// Option configures an Assembler or a Generator.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	logoPath string
	now      func() time.Time
	workdays WorkdayCounter
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLogo sets the image embedded in the header logo box.
func WithLogo(path string) Option {
	return func(o *options) { o.logoPath = path }
}

// WithClock overrides the time source of the footer timestamp.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithWorkdays sets the working-day counter used for period rows.
func WithWorkdays(w WorkdayCounter) Option {
	return func(o *options) { o.workdays = w }
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// NewAssembler creates an assembler drawing on surface.
func NewAssembler(cfg layout.Config, surface layout.Surface, f Formatter, opts ...Option) *Assembler {
	o := buildOptions(opts)
	return &Assembler{
		cfg:       cfg,
		surface:   surface,
		formatter: f,
		logger:    o.logger,
		logoPath:  o.logoPath,
		now:       o.now,
		cursor:    layout.NewCursor(cfg, surface),
		sections:  layout.NewSectionRenderer(cfg, surface),
		table:     layout.NewTableRenderer(cfg, surface),
	}
}

// Render lays out doc and returns the finalized document bytes. Any drawing
// failure aborts the render; no partial output is returned.
func (a *Assembler) Render(doc Document) ([]byte, error) {
	if err := doc.Columns.Validate(a.cfg.UsableWidth()); err != nil {
		return nil, fmt.Errorf("render %s %d: %w", doc.Kind, doc.ID, err)
	}

	steps := []struct {
		phase phase
		run   func(Document)
	}{
		{phaseHeader, a.header},
		{phaseInfo, a.infoBlocks},
		{phaseBranches, a.branchTable},
		{phaseFooter, a.footer},
	}
	for _, step := range steps {
		step.run(doc)
		if err := a.surface.Err(); err != nil {
			return nil, a.fail(doc, step.phase, err)
		}
	}

	data, err := a.surface.Finalize()
	if err != nil {
		return nil, a.fail(doc, phaseFinalize, err)
	}

	a.logger.Debug("report rendered",
		zap.String("report", doc.Kind),
		zap.Int64("id", doc.ID),
		zap.Int("pages", a.cursor.Page()+1),
		zap.Int("bytes", len(data)))
	return data, nil
}

func (a *Assembler) fail(doc Document, p phase, err error) error {
	a.logger.Error("report render failed",
		zap.String("report", doc.Kind),
		zap.Int64("id", doc.ID),
		zap.String("phase", string(p)),
		zap.Error(err))
	return fmt.Errorf("render %s %d: %s: %w", doc.Kind, doc.ID, p, err)
}

// ---------------------------------------------------------------------------
// Phases
// ---------------------------------------------------------------------------

func (a *Assembler) header(doc Document) {
	s := a.surface
	c := a.cfg

	s.DrawRect(c.LogoX, c.LogoY, c.LogoSize, c.LogoSize, layout.Stroke)
	if a.logoPath != "" {
		if err := s.EmbedImage(a.logoPath, c.LogoX, c.LogoY, c.LogoSize, c.LogoSize); err != nil {
			a.logger.Warn("logo not embedded",
				zap.String("path", a.logoPath),
				zap.Error(err))
		}
	}

	x := c.LogoX + c.LogoSize + 15
	width := c.PageWidth - c.Margin - x
	s.SetBold(true)
	s.SetFontSize(c.TitleFontSize)
	s.SetTextColor(layout.ColorText)
	s.DrawText(doc.Title, x, c.LogoY+8, layout.TextOptions{Width: width, Ellipsis: true})

	s.SetBold(false)
	s.SetFontSize(c.SectionFontSize)
	s.SetTextColor(layout.ColorMuted)
	s.DrawText(doc.Name, x, c.LogoY+8+c.LineHeight(c.TitleFontSize)+4, layout.TextOptions{Width: width, Ellipsis: true})

	a.cursor.Advance(c.HeaderHeight)
}

func (a *Assembler) infoBlocks(doc Document) {
	a.section(doc.Info)
	if doc.Related != nil {
		a.section(*doc.Related)
	}
	a.section(doc.Audit)
}

func (a *Assembler) section(sec Section) {
	if !a.cursor.Fits(a.sections.Height(len(sec.Pairs)), a.cfg.RowSafety) {
		a.cursor.PageBreak()
	}
	a.sections.Render(a.cursor, sec.Title, sec.Pairs)
}

func (a *Assembler) branchTable(doc Document) {
	if a.cursor.Remaining(a.cfg.TableSafety) < 0 {
		a.cursor.PageBreak()
	}
	if len(doc.Branches) == 0 {
		a.emptyMessage(doc.EmptyMessage)
		return
	}
	a.table.Render(a.cursor, doc.Columns, doc.Branches)
}

func (a *Assembler) emptyMessage(msg string) {
	s := a.surface
	c := a.cfg
	h := 2 * c.RowHeight

	s.SetFillColor(layout.ColorMessageFill)
	s.DrawRect(c.Margin, a.cursor.Y(), c.UsableWidth(), h, layout.FillStroke)
	s.SetFontSize(c.BodyFontSize)
	s.SetTextColor(layout.ColorWarning)
	s.DrawText(msg, c.Margin+c.CellPadding, c.TextTop(a.cursor.Y(), h, c.BodyFontSize),
		layout.TextOptions{Width: c.UsableWidth() - 2*c.CellPadding, Align: layout.AlignCenter, Ellipsis: true})

	a.cursor.Advance(h + c.SectionSpacing)
}

func (a *Assembler) footer(Document) {
	s := a.surface
	c := a.cfg

	if !a.cursor.Fits(c.RowHeight, c.FooterSafety) {
		a.cursor.PageBreak()
	}
	s.SetFontSize(c.SmallFontSize)
	s.SetTextColor(layout.ColorMuted)
	s.DrawText("Generado el "+a.formatter.FormatDateTime(a.now()), c.Margin, c.TextTop(a.cursor.Y(), c.RowHeight, c.SmallFontSize),
		layout.TextOptions{Width: c.UsableWidth(), Align: layout.AlignCenter})
	a.cursor.Advance(c.RowHeight)
}
