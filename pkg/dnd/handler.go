package dnd

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridwork/pkg/canvas"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/observability"
)

// DefaultResizeTolerance is how close, in local units, the pointer must be
// to a column's right edge to grab it.
const DefaultResizeTolerance = 5.0

type config struct {
	tolerance float64
	logger    *log.Logger
	hooks     observability.DnDHooks
}

// Option configures a [Handler] or [PressHandler].
type Option func(*config)

// WithLogger sets the logger for state transitions and rejected updates.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithResizeTolerance overrides [DefaultResizeTolerance]. Non-positive
// values are ignored.
func WithResizeTolerance(t float64) Option {
	return func(c *config) {
		if t > 0 {
			c.tolerance = t
		}
	}
}

// WithHooks routes events to h instead of the globally registered hooks.
func WithHooks(h observability.DnDHooks) Option {
	return func(c *config) {
		if h != nil {
			c.hooks = h
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		tolerance: DefaultResizeTolerance,
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
		hooks:     observability.DnD(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Handler interprets pointer moves over the widgets of one layer.
type Handler struct {
	layer *canvas.Layer
	state *State
	cfg   config
}

// NewHandler creates a move handler for layer operating on st.
func NewHandler(layer *canvas.Layer, st *State, opts ...Option) *Handler {
	return &Handler{layer: layer, state: st, cfg: newConfig(opts)}
}

// State returns the shared drag-and-drop state.
func (h *Handler) State() *State { return h.state }

// OnPointerMove handles a pointer move at a device position.
func (h *Handler) OnPointerMove(device geom.Point) {
	switch h.state.op {
	case ColumnResize:
		h.updateColumnResize(device)
	case ColumnMove:
		h.updateColumnMove(device)
	case RowMove:
		h.updateRowMove(device)
	default:
		h.findTarget(device)
	}
}

func (h *Handler) setOperation(op Operation) {
	setOperation(h.state, &h.cfg, op)
}

func (h *Handler) setCursor(c canvas.Cursor) {
	setCursor(h.layer, h.state, c)
}

func (h *Handler) batch() {
	h.layer.Batch()
}

func setOperation(st *State, cfg *config, op Operation) {
	from := st.op
	st.op = op
	if from == op {
		return
	}
	cfg.logger.Debug("dnd transition", "from", from, "to", op)
	cfg.hooks.OnOperation(from.String(), op.String())
}

// setCursor is a no-op while a viewport mediator is dragging, so a pan
// keeps its own cursor.
func setCursor(layer *canvas.Layer, st *State, c canvas.Cursor) {
	vp := layer.Viewport()
	if vp.Panning() {
		return
	}
	vp.SetCursor(c)
	st.cursor = c
}
