package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "planning.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planning.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	require.NoError(t, s.Close())
}

func TestPlanNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Plan(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Program(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeededPlan(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SeedDemo(ctx))
	require.NoError(t, s.SeedDemo(ctx), "seeding twice must not fail")

	p, err := s.Plan(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "Plan Estratégico Institucional 2024-2027", p.Name)
	assert.Equal(t, "1250000.50", p.Budget)
	require.NotNil(t, p.Entity)
	assert.Equal(t, "SNP", p.Entity.Acronym)
	require.NotNil(t, p.Start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *p.Start)
	require.NotNil(t, p.Audit.CreatedAt)
	assert.Equal(t, "planificacion@snp.gob.ec", p.Audit.CreatedBy)

	require.Len(t, p.Objectives, 3)
	assert.Equal(t, "OEI-1", p.Objectives[0].Code)
	assert.Equal(t, "Fortalecer la gestión institucional orientada a resultados", p.Objectives[0].Name)
	assert.Equal(t, "40", p.Objectives[0].Weight)
	require.NotNil(t, p.Objectives[0].End)
	assert.Equal(t, time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC), *p.Objectives[0].End)
	assert.Len(t, p.Objectives[0].Indicators, 3)
	assert.Len(t, p.Objectives[0].Alignments, 2)
	assert.Empty(t, p.Objectives[1].Alignments)
	assert.Empty(t, p.Objectives[2].Indicators)
	assert.Equal(t, "ODS 16", p.Objectives[2].Alignments[0].ODSGoal)
}

func TestSeededProgram(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SeedDemo(ctx))

	p, err := s.Program(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "María Fernanda Castro", p.Coordinator)
	assert.Nil(t, p.Audit.UpdatedAt)
	require.Len(t, p.Projects, 3)
	assert.Len(t, p.Projects[0].Activities, 2)
	assert.Len(t, p.Projects[1].Activities, 28)
	assert.Empty(t, p.Projects[2].Activities)

	a := p.Projects[1].Activities[0]
	assert.Equal(t, "Actividad 1 del PRY-02", a.Name)
	assert.NotNil(t, a.Start)
	assert.Nil(t, a.End)
}

func TestPlanWithoutEntity(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO plans (id, name, budget, start_date) VALUES (5, 'Plan sin entidad', 'abc', 'not a date')`)
	require.NoError(t, err)

	p, err := s.Plan(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, p.Entity)
	assert.Nil(t, p.Start, "malformed dates load as missing")
	assert.Equal(t, "abc", p.Budget)
	assert.Empty(t, p.Objectives)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
		want  *time.Time
	}{
		{"null", "", false, nil},
		{"blank", "  ", true, nil},
		{"date", "2024-05-24", true, ptr(time.Date(2024, 5, 24, 0, 0, 0, 0, time.UTC))},
		{"timestamp", "2024-05-24 08:15:00", true, ptr(time.Date(2024, 5, 24, 8, 15, 0, 0, time.UTC))},
		{"rfc3339", "2024-05-24T08:15:00Z", true, ptr(time.Date(2024, 5, 24, 8, 15, 0, 0, time.UTC))},
		{"garbage", "24/05/2024", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTime(sqlString(tt.raw, tt.valid))
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "parseTime(%q) = %v, want %v", tt.raw, *got, *tt.want)
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }

func sqlString(s string, valid bool) sql.NullString {
	return sql.NullString{String: s, Valid: valid}
}
