package report

import (
	"planreport/internal/layout"
	"planreport/internal/planning"
)

// Leaf group kinds of the plan report, in display order.
var (
	IndicatorsGroup = layout.GroupKind{
		Name:         "indicators",
		Label:        "Indicadores",
		Color:        layout.ColorIndicators,
		EmptyMessage: "Sin indicadores registrados",
	}
	AlignmentsGroup = layout.GroupKind{
		Name:         "alignments",
		Label:        "Alineación PND / ODS",
		Color:        layout.ColorAlignments,
		EmptyMessage: "Sin alineaciones registradas",
	}
)

// PlanColumns returns the objective table columns for width.
func PlanColumns(width float64) layout.ColumnSpec {
	return layout.NewColumnSpec(width,
		layout.ColumnDef{Label: "Código", Weight: 1},
		layout.ColumnDef{Label: "Objetivo estratégico", Weight: 3.6},
		layout.ColumnDef{Label: "Ponderación", Weight: 1.2, Align: layout.AlignCenter},
		layout.ColumnDef{Label: "Período", Weight: 2.2, Align: layout.AlignCenter},
	)
}

// NewPlanDocument maps an institutional plan onto a report document.
// workdays may be nil.
func NewPlanDocument(cfg layout.Config, p *planning.Plan, f Formatter, workdays WorkdayCounter) Document {
	doc := Document{
		Kind:  "plan",
		ID:    p.ID,
		Name:  p.Name,
		Title: "Plan Institucional",
		Info: Section{
			Title: "Información del plan",
			Pairs: []layout.Pair{
				{Label: "Nombre", Value: textOrNA(p.Name)},
				{Label: "Versión", Value: textOrNA(p.Version)},
				{Label: "Presupuesto", Value: currencyOrNA(f, p.Budget)},
				{Label: "Período", Value: periodOrNA(f, p.Start, p.End)},
				{Label: "Días laborables", Value: workdaysOrNA(workdays, p.Start, p.End)},
				{Label: "Estado", Value: textOrNA(p.Status)},
			},
		},
		Related:      entitySection(p.Entity),
		Audit:        auditSection(f, p.Audit),
		Columns:      PlanColumns(cfg.UsableWidth()),
		EmptyMessage: "Este plan no tiene objetivos estratégicos registrados",
	}

	doc.Branches = make([]layout.Branch, 0, len(p.Objectives))
	for _, o := range p.Objectives {
		doc.Branches = append(doc.Branches, objectiveBranch(f, o))
	}
	return doc
}

func objectiveBranch(f Formatter, o planning.StrategicObjective) layout.Branch {
	indicators := make([]layout.LeafRecord, 0, len(o.Indicators))
	for _, ind := range o.Indicators {
		indicators = append(indicators, layout.LeafRecord{Fields: []layout.Field{
			{Label: "Indicador", Value: textOrNA(ind.Name)},
			{Label: "Unidad", Value: ind.Unit},
			{Label: "Línea base", Value: ind.Baseline},
			{Label: "Meta", Value: ind.Target},
			{Label: "Frecuencia", Value: ind.Frequency},
		}})
	}

	alignments := make([]layout.LeafRecord, 0, len(o.Alignments))
	for _, a := range o.Alignments {
		alignments = append(alignments, layout.LeafRecord{Fields: []layout.Field{
			{Label: "PND", Value: textOrNA(a.PNDObjective)},
			{Label: "Política", Value: a.PNDPolicy},
			{Label: "ODS", Value: textOrNA(a.ODSGoal)},
			{Label: "Meta ODS", Value: a.ODSTarget},
		}})
	}

	return layout.Branch{
		Cells: []string{
			textOrNA(o.Code),
			textOrNA(o.Name),
			percentOrNA(o.Weight),
			periodOrNA(f, o.Start, o.End),
		},
		Groups: []layout.LeafGroup{
			{Kind: IndicatorsGroup, Records: indicators},
			{Kind: AlignmentsGroup, Records: alignments},
		},
	}
}
