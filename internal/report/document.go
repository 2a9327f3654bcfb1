// Package report assembles plan and program PDF reports from planning
// records using the layout engine.
package report

import (
	"planreport/internal/layout"
	"planreport/internal/planning"
)

// Section is a titled key/value block.
type Section struct {
	Title string
	Pairs []layout.Pair
}

// Document is the renderer-neutral description of one report.
type Document struct {
	// Kind names the report type in logs ("plan", "program").
	Kind string
	ID   int64
	Name string

	Title   string
	Info    Section
	Related *Section
	Audit   Section

	Columns      layout.ColumnSpec
	Branches     []layout.Branch
	EmptyMessage string
}

func entitySection(e *planning.PublicEntity) *Section {
	if e == nil {
		return nil
	}
	return &Section{
		Title: "Entidad pública",
		Pairs: []layout.Pair{
			{Label: "Nombre", Value: textOrNA(e.Name)},
			{Label: "Siglas", Value: textOrNA(e.Acronym)},
			{Label: "Sector", Value: textOrNA(e.Sector)},
		},
	}
}

func auditSection(f Formatter, a planning.Audit) Section {
	return Section{
		Title: "Información de auditoría",
		Pairs: []layout.Pair{
			{Label: "Creado por", Value: textOrNA(a.CreatedBy)},
			{Label: "Fecha de creación", Value: dateTimeOrNA(f, a.CreatedAt)},
			{Label: "Última actualización", Value: dateTimeOrNA(f, a.UpdatedAt)},
		},
	}
}
