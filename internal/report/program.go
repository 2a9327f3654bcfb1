package report

import (
	"planreport/internal/layout"
	"planreport/internal/planning"
)

// ActivitiesGroup is the only leaf group of the program report.
var ActivitiesGroup = layout.GroupKind{
	Name:         "activities",
	Label:        "Actividades",
	Color:        layout.ColorActivities,
	EmptyMessage: "Sin actividades registradas",
}

// ProgramColumns returns the project table columns for width.
func ProgramColumns(width float64) layout.ColumnSpec {
	return layout.NewColumnSpec(width,
		layout.ColumnDef{Label: "Código", Weight: 1},
		layout.ColumnDef{Label: "Proyecto", Weight: 3},
		layout.ColumnDef{Label: "Estado", Weight: 1.2},
		layout.ColumnDef{Label: "Presupuesto", Weight: 1.4, Align: layout.AlignRight},
		layout.ColumnDef{Label: "Período", Weight: 2.2, Align: layout.AlignCenter},
	)
}

// NewProgramDocument maps a program onto a report document. workdays may be
// nil.
func NewProgramDocument(cfg layout.Config, p *planning.Program, f Formatter, workdays WorkdayCounter) Document {
	doc := Document{
		Kind:  "program",
		ID:    p.ID,
		Name:  p.Name,
		Title: "Programa",
		Info: Section{
			Title: "Información del programa",
			Pairs: []layout.Pair{
				{Label: "Nombre", Value: textOrNA(p.Name)},
				{Label: "Presupuesto", Value: currencyOrNA(f, p.Budget)},
				{Label: "Período", Value: periodOrNA(f, p.Start, p.End)},
				{Label: "Días laborables", Value: workdaysOrNA(workdays, p.Start, p.End)},
				{Label: "Coordinador", Value: textOrNA(p.Coordinator)},
				{Label: "Estado", Value: textOrNA(p.Status)},
			},
		},
		Related:      entitySection(p.Entity),
		Audit:        auditSection(f, p.Audit),
		Columns:      ProgramColumns(cfg.UsableWidth()),
		EmptyMessage: "Este programa no tiene proyectos registrados",
	}

	doc.Branches = make([]layout.Branch, 0, len(p.Projects))
	for _, pr := range p.Projects {
		doc.Branches = append(doc.Branches, projectBranch(f, pr))
	}
	return doc
}

func projectBranch(f Formatter, p planning.Project) layout.Branch {
	activities := make([]layout.LeafRecord, 0, len(p.Activities))
	for _, a := range p.Activities {
		activities = append(activities, layout.LeafRecord{Fields: []layout.Field{
			{Label: "Actividad", Value: textOrNA(a.Name)},
			{Label: "Responsable", Value: a.Responsible},
			{Label: "Estado", Value: a.Status},
			{Label: "Presupuesto", Value: currencyOrNA(f, a.Budget)},
			{Label: "Período", Value: periodOrNA(f, a.Start, a.End)},
		}})
	}

	return layout.Branch{
		Cells: []string{
			textOrNA(p.Code),
			textOrNA(p.Name),
			textOrNA(p.Status),
			currencyOrNA(f, p.Budget),
			periodOrNA(f, p.Start, p.End),
		},
		Groups: []layout.LeafGroup{
			{Kind: ActivitiesGroup, Records: activities},
		},
	}
}
