// Package server drives a gridwork workspace over HTTP.
//
// The server is a headless host: pointer events arrive as JSON requests and
// are applied to the workspace one at a time, exactly as an interactive host
// would deliver them from its event loop. It is meant for scripted testing
// and for inspecting the drag-and-drop state from other tools.
//
//	GET  /state                  current drag state
//	GET  /grids                  column and row order of every grid
//	GET  /grids/{name}           one grid
//	GET  /render                 the viewport as text (?ansi=1 for colour)
//	GET  /stats                  transition and cache counters
//	GET  /version                build information
//	POST /pointer/{action}       move, press or release at {"x", "y"}
//	POST /zoom                   {"factor", "x", "y"}
//	POST /grids/{name}/cells     {"column", "row", "value"}
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridwork/pkg/observability"
	"github.com/matzehuels/gridwork/pkg/workspace"
)

const shutdownTimeout = 5 * time.Second

// Server serializes HTTP requests onto a workspace.
type Server struct {
	mu       sync.Mutex
	ws       *workspace.Workspace
	counters *observability.Counters
	logger   *log.Logger
	router   chi.Router
}

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCounters reports c on /stats and feeds it every request. Pass the
// same counters to the workspace to include dnd transitions.
func WithCounters(c *observability.Counters) Option {
	return func(s *Server) { s.counters = c }
}

// New creates a server for ws.
func New(ws *workspace.Workspace, opts ...Option) *Server {
	s := &Server{
		ws:     ws,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.counters == nil {
		s.counters = observability.NewCounters()
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/state", s.handleState)
	r.Get("/grids", s.handleGrids)
	r.Get("/grids/{name}", s.handleGrid)
	r.Post("/grids/{name}/cells", s.handleCell)
	r.Get("/render", s.handleRender)
	r.Get("/stats", s.handleStats)
	r.Get("/version", s.handleVersion)
	r.Post("/pointer/{action}", s.handlePointer)
	r.Post("/zoom", s.handleZoom)
	return r
}

// observe logs every request and reports it to the HTTP hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Method, r.URL.Path)
		s.counters.OnRequest(r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		hooks.OnResponse(r.Method, r.URL.Path, status, d)
		s.counters.OnResponse(r.Method, r.URL.Path, status, d)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "duration", d)
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(sctx)
	}
}
