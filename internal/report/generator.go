package report

import (
	"go.uber.org/zap"

	"planreport/internal/layout"
	"planreport/internal/planning"
)

// Output is a finished report ready to be served or sent.
type Output struct {
	Filename string
	Data     []byte
}

// SurfaceFactory creates a fresh drawing surface for one render.
type SurfaceFactory func() layout.Surface

// Generator builds documents from planning records and renders each on its
// own surface. It holds no per-render state and is safe for concurrent use.
type Generator struct {
	cfg        layout.Config
	newSurface SurfaceFactory
	formatter  Formatter
	opts       []Option
	workdays   WorkdayCounter
	logger     *zap.Logger
}

// NewGenerator creates a generator.
func NewGenerator(cfg layout.Config, newSurface SurfaceFactory, f Formatter, opts ...Option) *Generator {
	o := buildOptions(opts)
	return &Generator{
		cfg:        cfg,
		newSurface: newSurface,
		formatter:  f,
		opts:       opts,
		workdays:   o.workdays,
		logger:     o.logger,
	}
}

// Plan renders the institutional plan report.
func (g *Generator) Plan(p *planning.Plan) (Output, error) {
	return g.render(NewPlanDocument(g.cfg, p, g.formatter, g.workdays))
}

// Program renders the program report.
func (g *Generator) Program(p *planning.Program) (Output, error) {
	return g.render(NewProgramDocument(g.cfg, p, g.formatter, g.workdays))
}

func (g *Generator) render(doc Document) (Output, error) {
	g.logger.Info("rendering report",
		zap.String("report", doc.Kind),
		zap.Int64("id", doc.ID),
		zap.Int("branches", len(doc.Branches)))

	data, err := NewAssembler(g.cfg, g.newSurface(), g.formatter, g.opts...).Render(doc)
	if err != nil {
		return Output{}, err
	}
	return Output{Filename: Filename(doc.Name, doc.ID), Data: data}, nil
}
