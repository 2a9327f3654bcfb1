package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"planreport/internal/planning"
)

// Program loads the program with its entity, projects and activities.
func (s *Store) Program(ctx context.Context, id int64) (*planning.Program, error) {
	var (
		p                           planning.Program
		status, budget, coordinator sql.NullString
		start, end                  sql.NullString
		entityID                    sql.NullInt64
		createdBy, created, update  sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, status, budget, coordinator, start_date, end_date, entity_id,
		       created_by, created_at, updated_at
		FROM programs WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &status, &budget, &coordinator, &start, &end, &entityID,
		&createdBy, &created, &update)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("program %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load program %d: %w", id, err)
	}

	p.Status, p.Budget, p.Coordinator = status.String, budget.String, coordinator.String
	p.Start, p.End = parseTime(start), parseTime(end)
	p.Audit = planning.Audit{CreatedBy: createdBy.String, CreatedAt: parseTime(created), UpdatedAt: parseTime(update)}

	if p.Entity, err = s.entity(ctx, entityID); err != nil {
		return nil, err
	}
	if p.Projects, err = s.projects(ctx, p.ID); err != nil {
		return nil, err
	}
	for i := range p.Projects {
		pr := &p.Projects[i]
		if pr.Activities, err = s.activities(ctx, pr.ID); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func (s *Store) projects(ctx context.Context, programID int64) ([]planning.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, code, name, status, budget, start_date, end_date
		FROM projects WHERE program_id = ? ORDER BY id`, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects of program %d: %w", programID, err)
	}
	defer rows.Close()

	var out []planning.Project
	for rows.Next() {
		var (
			p                    planning.Project
			code, status, budget sql.NullString
			start, end           sql.NullString
		)
		if err := rows.Scan(&p.ID, &code, &p.Name, &status, &budget, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.Code, p.Status, p.Budget = code.String, status.String, budget.String
		p.Start, p.End = parseTime(start), parseTime(end)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) activities(ctx context.Context, projectID int64) ([]planning.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, responsible, status, budget, start_date, end_date
		FROM activities WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities of project %d: %w", projectID, err)
	}
	defer rows.Close()

	var out []planning.Activity
	for rows.Next() {
		var (
			a                           planning.Activity
			responsible, status, budget sql.NullString
			start, end                  sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Name, &responsible, &status, &budget, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.Responsible, a.Status, a.Budget = responsible.String, status.String, budget.String
		a.Start, a.End = parseTime(start), parseTime(end)
		out = append(out, a)
	}
	return out, rows.Err()
}
