package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridwork/pkg/buildinfo"
	"github.com/matzehuels/gridwork/pkg/cache"
	"github.com/matzehuels/gridwork/pkg/errors"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/httputil"
	"github.com/matzehuels/gridwork/pkg/observability"
	"github.com/matzehuels/gridwork/pkg/render/term"
	"github.com/matzehuels/gridwork/pkg/workspace"
)

// Pointer actions accepted by POST /pointer/{action}.
const (
	ActionMove    = "move"
	ActionPress   = "press"
	ActionRelease = "release"
)

// PointerRequest is a device point.
type PointerRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointerResponse reports whether the event was consumed and the state
// after it.
type PointerResponse struct {
	Handled bool                `json:"handled"`
	State   workspace.DragState `json:"state"`
}

// ZoomRequest scales the viewport around a device point.
type ZoomRequest struct {
	Factor float64 `json:"factor"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// CellRequest edits one cell through the column's editor.
type CellRequest struct {
	Column string `json:"column"`
	Row    int    `json:"row"`
	Value  string `json:"value"`
}

// Stats is the /stats response.
type Stats struct {
	DnD   observability.Snapshot `json:"dnd"`
	Cells cache.CellStats        `json:"cells"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	httputil.WriteJSON(w, http.StatusOK, s.ws.DragState())
}

func (s *Server) handleGrids(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	httputil.WriteJSON(w, http.StatusOK, s.ws.Views())
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, err := s.grid(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, g.View())
}

func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	var req CellRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	g, err := s.grid(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	cell, err := g.Edit(req.Column, req.Row)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	cell.Input.SetValue(req.Value)
	if err := g.Commit(req.Column); err != nil {
		httputil.WriteError(w, err)
		return
	}
	s.logger.Debug("cell edited", "grid", g.Name(), "column", req.Column, "row", req.Row)
	httputil.WriteJSON(w, http.StatusOK, g.View())
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	screen := s.ws.Draw()
	s.mu.Unlock()

	out := screen.String()
	if r.URL.Query().Get("ansi") == "1" {
		out = screen.Render(term.DefaultTheme())
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	httputil.WriteJSON(w, http.StatusOK, Stats{
		DnD:   s.counters.Snapshot(),
		Cells: s.ws.CellStats(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	var req PointerRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	p := geom.Point{X: req.X, Y: req.Y}

	s.mu.Lock()
	defer s.mu.Unlock()
	var handled bool
	switch action {
	case ActionMove:
		s.ws.Move(p)
		handled = true
	case ActionPress:
		handled = s.ws.Press(p)
	case ActionRelease:
		handled = s.ws.Release()
	default:
		httputil.WriteError(w, errors.New(errors.ErrCodeInvalidInput, "unknown pointer action %q", action))
		return
	}
	s.logger.Debug("pointer", "action", action, "x", req.X, "y", req.Y, "operation", s.ws.State.Operation())
	httputil.WriteJSON(w, http.StatusOK, PointerResponse{Handled: handled, State: s.ws.DragState()})
}

func (s *Server) handleZoom(w http.ResponseWriter, r *http.Request) {
	var req ZoomRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidInput, "zoom factor", req.Factor); err != nil {
		httputil.WriteError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	handled := s.ws.ZoomAt(req.Factor, geom.Point{X: req.X, Y: req.Y})
	httputil.WriteJSON(w, http.StatusOK, PointerResponse{Handled: handled, State: s.ws.DragState()})
}

func (s *Server) grid(r *http.Request) (*workspace.Grid, error) {
	name := chi.URLParam(r, "name")
	g := s.ws.Grid(name)
	if g == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "grid %q", name)
	}
	return g, nil
}
