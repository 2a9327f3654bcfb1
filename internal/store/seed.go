package store

import (
	"context"
	"fmt"
)

// SeedDemo inserts a sample entity, plan and program for local testing.
// Existing rows with the same ids are left untouched.
func (s *Store) SeedDemo(ctx context.Context) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	exec := func(query string, args ...any) {
		if err != nil {
			return
		}
		if _, e := tx.ExecContext(ctx, query, args...); e != nil {
			err = fmt.Errorf("failed to seed demo data: %w", e)
		}
	}

	exec(`INSERT OR IGNORE INTO public_entities (id, name, acronym, sector) VALUES (?, ?, ?, ?)`,
		1, "Secretaría Nacional de Planificación", "SNP", "Planificación")

	exec(`INSERT OR IGNORE INTO plans
		(id, name, version, status, budget, start_date, end_date, entity_id, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		1, "Plan Estratégico Institucional 2024-2027", "1.0", "Aprobado", "1250000.50",
		"2024-01-01", "2027-12-31", 1, "planificacion@snp.gob.ec", "2024-01-15T09:30:00Z", "2024-03-02T16:45:00Z")

	objectives := []struct {
		id                     int64
		code, name, weight     string
		indicators, alignments int
	}{
		{1, "OEI-1", "Fortalecer la gestión institucional orientada a resultados", "40", 3, 2},
		{2, "OEI-2", "Incrementar la eficiencia en la ejecución presupuestaria", "35", 2, 0},
		{3, "OEI-3", "Mejorar la articulación territorial de la planificación", "25", 0, 1},
	}
	for _, o := range objectives {
		exec(`INSERT OR IGNORE INTO strategic_objectives
			(id, plan_id, code, name, weight, start_date, end_date)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			o.id, 1, o.code, o.name, o.weight, "2024-01-01", "2027-12-31")
		for i := 1; i <= o.indicators; i++ {
			exec(`INSERT OR IGNORE INTO indicators (id, objective_id, name, unit, baseline, target, frequency)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				o.id*100+int64(i), o.id, fmt.Sprintf("Indicador %s.%d", o.code, i), "Porcentaje", "60", "85", "Anual")
		}
		for i := 1; i <= o.alignments; i++ {
			exec(`INSERT OR IGNORE INTO alignments (id, objective_id, pnd_objective, pnd_policy, ods_goal, ods_target)
				VALUES (?, ?, ?, ?, ?, ?)`,
				o.id*100+int64(i), o.id, fmt.Sprintf("Objetivo PND %d", i), fmt.Sprintf("Política %d.%d", i, o.id),
				"ODS 16", "16.6")
		}
	}

	exec(`INSERT OR IGNORE INTO programs
		(id, name, status, budget, coordinator, start_date, end_date, entity_id, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		1, "Programa Nacional de Fortalecimiento Territorial", "En ejecución", "480000", "María Fernanda Castro",
		"2024-02-01", "2025-11-30", 1, "programas@snp.gob.ec", "2024-01-20T11:00:00Z", nil)

	projects := []struct {
		id         int64
		code, name string
		activities int
	}{
		{1, "PRY-01", "Capacitación a gobiernos autónomos descentralizados", 2},
		{2, "PRY-02", "Sistema de seguimiento territorial", 28},
		{3, "PRY-03", "Estudio de factibilidad de nuevas sedes", 0},
	}
	for _, p := range projects {
		exec(`INSERT OR IGNORE INTO projects (id, program_id, code, name, status, budget, start_date, end_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.id, 1, p.code, p.name, "Planificado", fmt.Sprintf("%d", p.id*40000), "2024-03-01", "2025-06-30")
		for i := 1; i <= p.activities; i++ {
			exec(`INSERT OR IGNORE INTO activities (id, project_id, name, responsible, status, budget, start_date, end_date)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				p.id*100+int64(i), p.id, fmt.Sprintf("Actividad %d del %s", i, p.code), "Equipo técnico",
				"Pendiente", "1500", "2024-04-01", nil)
		}
	}

	if err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
