package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"planreport/internal/planning"
)

// Plan loads the plan with its entity, objectives, indicators and alignments.
func (s *Store) Plan(ctx context.Context, id int64) (*planning.Plan, error) {
	var (
		p                          planning.Plan
		version, status, budget    sql.NullString
		start, end                 sql.NullString
		entityID                   sql.NullInt64
		createdBy, created, update sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, version, status, budget, start_date, end_date, entity_id,
		       created_by, created_at, updated_at
		FROM plans WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &version, &status, &budget, &start, &end, &entityID,
		&createdBy, &created, &update)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", id, err)
	}

	p.Version = version.String
	p.Status = status.String
	p.Budget = budget.String
	p.Start, p.End = parseTime(start), parseTime(end)
	p.Audit = planning.Audit{CreatedBy: createdBy.String, CreatedAt: parseTime(created), UpdatedAt: parseTime(update)}

	if p.Entity, err = s.entity(ctx, entityID); err != nil {
		return nil, err
	}
	if p.Objectives, err = s.objectives(ctx, p.ID); err != nil {
		return nil, err
	}
	for i := range p.Objectives {
		o := &p.Objectives[i]
		if o.Indicators, err = s.indicators(ctx, o.ID); err != nil {
			return nil, err
		}
		if o.Alignments, err = s.alignments(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// entity returns nil for plans and programs without an owning entity.
func (s *Store) entity(ctx context.Context, id sql.NullInt64) (*planning.PublicEntity, error) {
	if !id.Valid {
		return nil, nil
	}
	var (
		e               planning.PublicEntity
		acronym, sector sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, acronym, sector FROM public_entities WHERE id = ?`, id.Int64,
	).Scan(&e.ID, &e.Name, &acronym, &sector)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load entity %d: %w", id.Int64, err)
	}
	e.Acronym, e.Sector = acronym.String, sector.String
	return &e, nil
}

func (s *Store) objectives(ctx context.Context, planID int64) ([]planning.StrategicObjective, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, code, name, weight, start_date, end_date
		FROM strategic_objectives WHERE plan_id = ? ORDER BY id`, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query objectives of plan %d: %w", planID, err)
	}
	defer rows.Close()

	var out []planning.StrategicObjective
	for rows.Next() {
		var (
			o            planning.StrategicObjective
			code, weight sql.NullString
			start, end   sql.NullString
		)
		if err := rows.Scan(&o.ID, &code, &o.Name, &weight, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan objective: %w", err)
		}
		o.Code, o.Weight = code.String, weight.String
		o.Start, o.End = parseTime(start), parseTime(end)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *Store) indicators(ctx context.Context, objectiveID int64) ([]planning.Indicator, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, unit, baseline, target, frequency
		FROM indicators WHERE objective_id = ? ORDER BY id`, objectiveID)
	if err != nil {
		return nil, fmt.Errorf("failed to query indicators of objective %d: %w", objectiveID, err)
	}
	defer rows.Close()

	var out []planning.Indicator
	for rows.Next() {
		var (
			in                                planning.Indicator
			unit, baseline, target, frequency sql.NullString
		)
		if err := rows.Scan(&in.ID, &in.Name, &unit, &baseline, &target, &frequency); err != nil {
			return nil, fmt.Errorf("failed to scan indicator: %w", err)
		}
		in.Unit, in.Baseline, in.Target, in.Frequency = unit.String, baseline.String, target.String, frequency.String
		out = append(out, in)
	}
	return out, rows.Err()
}

func (s *Store) alignments(ctx context.Context, objectiveID int64) ([]planning.Alignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, pnd_objective, pnd_policy, ods_goal, ods_target
		FROM alignments WHERE objective_id = ? ORDER BY id`, objectiveID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alignments of objective %d: %w", objectiveID, err)
	}
	defer rows.Close()

	var out []planning.Alignment
	for rows.Next() {
		var (
			a                      planning.Alignment
			pndObj, pndPol, g, tgt sql.NullString
		)
		if err := rows.Scan(&a.ID, &pndObj, &pndPol, &g, &tgt); err != nil {
			return nil, fmt.Errorf("failed to scan alignment: %w", err)
		}
		a.PNDObjective, a.PNDPolicy, a.ODSGoal, a.ODSTarget = pndObj.String, pndPol.String, g.String, tgt.String
		out = append(out, a)
	}
	return out, rows.Err()
}
