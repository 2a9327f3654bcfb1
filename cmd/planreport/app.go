package main

import (
	"context"
	"fmt"
	"strconv"

	"planreport/internal/calendar"
	"planreport/internal/config"
	"planreport/internal/layout"
	"planreport/internal/locale"
	"planreport/internal/pdfsurface"
	"planreport/internal/report"
	"planreport/internal/store"
)

// report kinds accepted by render and send
const (
	kindPlan    = "plan"
	kindProgram = "program"
)

var reportKinds = []string{kindPlan, kindProgram}

// newGenerator wires the PDF surface, locale formatter and business calendar.
func newGenerator(cfg *config.Config) (*report.Generator, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	formatter, err := locale.New(cfg.Report.Locale, cfg.Report.Currency, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize formatter: %w", err)
	}

	layoutCfg := layout.DefaultConfig()
	newSurface := func() layout.Surface { return pdfsurface.New(layoutCfg) }

	return report.NewGenerator(layoutCfg, newSurface, formatter,
		report.WithLogger(logger),
		report.WithLogo(cfg.Report.LogoPath),
		report.WithWorkdays(calendar.New(cfg.Report.Holidays)),
	), nil
}

// parseID parses a positive record id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// buildReport loads the record of kind with id and renders it.
func buildReport(ctx context.Context, kind, arg string) (report.Output, error) {
	id, err := parseID(arg)
	if err != nil {
		return report.Output{}, err
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return report.Output{}, err
	}
	defer st.Close()

	gen, err := newGenerator(cfg)
	if err != nil {
		return report.Output{}, err
	}

	switch kind {
	case kindPlan:
		p, err := st.Plan(ctx, id)
		if err != nil {
			return report.Output{}, err
		}
		return gen.Plan(p)
	case kindProgram:
		p, err := st.Program(ctx, id)
		if err != nil {
			return report.Output{}, err
		}
		return gen.Program(p)
	default:
		return report.Output{}, fmt.Errorf("unknown report kind %q", kind)
	}
}
