package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"planreport/internal/config"
	"planreport/internal/layout"
	"planreport/internal/layout/layouttest"
	"planreport/internal/planning"
	"planreport/internal/report"
	"planreport/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeFormatter struct{}

func (fakeFormatter) FormatCurrency(v float64) string   { return fmt.Sprintf("$%.2f", v) }
func (fakeFormatter) FormatDate(t time.Time) string     { return t.Format("02/01/2006") }
func (fakeFormatter) FormatDateTime(t time.Time) string { return t.Format("02/01/2006 15:04") }

type fakeSource struct {
	plans    map[int64]*planning.Plan
	programs map[int64]*planning.Program
	err      error
}

func (f *fakeSource) Plan(_ context.Context, id int64) (*planning.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.plans[id]
	if !ok {
		return nil, fmt.Errorf("plan %d: %w", id, store.ErrNotFound)
	}
	return p, nil
}

func (f *fakeSource) Program(_ context.Context, id int64) (*planning.Program, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.programs[id]
	if !ok {
		return nil, fmt.Errorf("program %d: %w", id, store.ErrNotFound)
	}
	return p, nil
}

func newSource() *fakeSource {
	return &fakeSource{
		plans: map[int64]*planning.Plan{
			7: {ID: 7, Name: "Plan 2024/25!", Budget: "1000"},
		},
		programs: map[int64]*planning.Program{
			12: {ID: 12, Name: "Programa Nacional", Projects: []planning.Project{{Code: "P1", Name: "Proyecto"}}},
		},
	}
}

func newTestServer(source Source, newSurface report.SurfaceFactory, logger *zap.Logger) *Server {
	gen := report.NewGenerator(layout.DefaultConfig(), newSurface, fakeFormatter{},
		report.WithClock(func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }))
	return New(config.Default().Server, source, gen, logger)
}

func recorderSurface() layout.Surface { return layouttest.NewRecorder() }

func TestReportRoutes(t *testing.T) {
	h := newTestServer(newSource(), recorderSurface, nil).Handler()

	tests := []struct {
		name        string
		path        string
		status      int
		disposition string
	}{
		{"plan", "/plans/7/report.pdf", http.StatusOK, `attachment; filename="Plan-202425-7.pdf"`},
		{"program", "/programs/12/report.pdf", http.StatusOK, `attachment; filename="ProgramaNacional-12.pdf"`},
		{"missing plan", "/plans/8/report.pdf", http.StatusNotFound, ""},
		{"missing program", "/programs/1/report.pdf", http.StatusNotFound, ""},
		{"non numeric id", "/plans/abc/report.pdf", http.StatusBadRequest, ""},
		{"zero id", "/programs/0/report.pdf", http.StatusBadRequest, ""},
		{"unknown route", "/plans/7", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status != http.StatusOK {
				return
			}
			assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.disposition, rec.Header().Get("Content-Disposition"))
			assert.Equal(t, "%PDF-recorded", rec.Body.String())
			assert.Equal(t, "13", rec.Header().Get("Content-Length"))
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(newSource(), recorderSurface, nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/plans/7/report.pdf", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSourceFailureIsInternalError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	source := &fakeSource{err: errors.New("database is locked")}
	h := newTestServer(source, recorderSurface, zap.New(core)).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plans/7/report.pdf", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "database is locked")
	assert.Equal(t, 1, logs.FilterMessage("report failed").Len())
}

func TestRenderFailureIsInternalError(t *testing.T) {
	failing := func() layout.Surface {
		r := layouttest.NewRecorder()
		r.FailAfter = 5
		return r
	}
	h := newTestServer(newSource(), failing, nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/programs/12/report.pdf", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}

func TestRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := newTestServer(newSource(), recorderSurface, zap.New(core)).Handler()

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("propagated", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/plans/7/report.pdf", nil)
		req.Header.Set(requestIDHeader, id)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, id, rec.Header().Get(requestIDHeader))
		entries := logs.FilterMessage("request").FilterField(zap.String("request_id", id)).All()
		require.Len(t, entries, 1)
		assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
	})
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := newTestServer(newSource(), recorderSurface, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/plans/7/report.pdf")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "%PDF-recorded", string(body))
	http.DefaultClient.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
