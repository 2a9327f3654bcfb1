// Package server serves rendered reports over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"planreport/internal/config"
	"planreport/internal/planning"
	"planreport/internal/report"
	"planreport/internal/store"
)

// shutdownTimeout bounds the wait for in-flight renders on shutdown.
const shutdownTimeout = 15 * time.Second

// Source loads the record trees to render.
type Source interface {
	Plan(ctx context.Context, id int64) (*planning.Plan, error)
	Program(ctx context.Context, id int64) (*planning.Program, error)
}

// Server renders one report per request. Each request gets its own surface.
type Server struct {
	cfg       config.ServerConfig
	source    Source
	generator *report.Generator
	logger    *zap.Logger
}

// New creates a server. A nil logger disables logging.
func New(cfg config.ServerConfig, source Source, generator *report.Generator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{cfg: cfg, source: source, generator: generator, logger: logger}
}

// Handler returns the routes wrapped in the access log middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /plans/{id}/report.pdf", s.handlePlan)
	mux.HandleFunc("GET /programs/{id}/report.pdf", s.handleProgram)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return s.withRequestLog(mux)
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. At most MaxConnections connections are served at once.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConnections)
	}

	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		ErrorLog:     zap.NewStdLog(s.logger.Named("http")),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	s.serveReport(w, r, "plan", func(ctx context.Context, id int64) (report.Output, error) {
		p, err := s.source.Plan(ctx, id)
		if err != nil {
			return report.Output{}, err
		}
		return s.generator.Plan(p)
	})
}

func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	s.serveReport(w, r, "program", func(ctx context.Context, id int64) (report.Output, error) {
		p, err := s.source.Program(ctx, id)
		if err != nil {
			return report.Output{}, err
		}
		return s.generator.Program(p)
	})
}

func (s *Server) serveReport(w http.ResponseWriter, r *http.Request, kind string,
	build func(ctx context.Context, id int64) (report.Output, error)) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	out, err := build(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, kind+" not found", http.StatusNotFound)
		return
	case err != nil:
		s.logger.Error("report failed",
			zap.String("report", kind),
			zap.Int64("id", id),
			zap.String("request_id", requestID(r.Context())),
			zap.Error(err))
		http.Error(w, "report could not be generated", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/pdf")
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	h.Set("Content-Length", strconv.Itoa(len(out.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.Data); err != nil {
		s.logger.Debug("response write failed", zap.Error(err))
	}
}
