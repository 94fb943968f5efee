package canvas

import (
	"math"

	"github.com/google/uuid"

	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
	"github.com/matzehuels/gridwork/pkg/layout"
)

// Renderer is the part of a grid renderer the interaction code needs.
type Renderer interface {
	// HeaderHeight returns the total height of all header rows.
	HeaderHeight() float64
}

// FixedHeader is a Renderer with a constant header height.
type FixedHeader float64

// HeaderHeight implements [Renderer].
func (h FixedHeader) HeaderHeight() float64 { return float64(h) }

// Header is the optional header region of a widget. Y is the header's
// offset inside the widget, non-zero when the header sticks to the top of
// the visible area while the body scrolls underneath.
type Header struct {
	Y float64
}

// Refresher is implemented by layout providers that need a layout pass
// before they can answer.
type Refresher interface {
	Refresh(minX, maxX float64)
}

// Widget is a positioned grid on a layer.
type Widget struct {
	id       uuid.UUID
	name     string
	x, y     float64
	visible  bool
	data     *grid.Data
	renderer Renderer
	header   *Header
	layout   layout.Provider
}

// WidgetOption configures a Widget.
type WidgetOption func(*Widget)

// WithName sets a human-readable name.
func WithName(name string) WidgetOption {
	return func(w *Widget) { w.name = name }
}

// At positions the widget in layer space.
func At(x, y float64) WidgetOption {
	return func(w *Widget) { w.x, w.y = x, y }
}

// WithHeader gives the widget a header region.
func WithHeader(h Header) WidgetOption {
	return func(w *Widget) { w.header = &h }
}

// WithLayout replaces the default [layout.Helper].
func WithLayout(p layout.Provider) WidgetOption {
	return func(w *Widget) { w.layout = p }
}

// NewWidget creates a visible widget for d drawn by r.
func NewWidget(d *grid.Data, r Renderer, opts ...WidgetOption) *Widget {
	w := &Widget{
		id:       uuid.New(),
		visible:  true,
		data:     d,
		renderer: r,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.layout == nil {
		w.layout = layout.NewHelper(d)
	}
	if w.name == "" {
		w.name = w.id.String()[:8]
	}
	return w
}

// ID returns the widget's unique identifier.
func (w *Widget) ID() uuid.UUID { return w.id }

// Name returns the widget's display name.
func (w *Widget) Name() string { return w.name }

// Model returns the grid data.
func (w *Widget) Model() *grid.Data { return w.data }

// Renderer returns the renderer.
func (w *Widget) Renderer() Renderer { return w.renderer }

// Header returns the header region or nil.
func (w *Widget) Header() *Header { return w.header }

// Layout returns the block layout provider.
func (w *Widget) Layout() layout.Provider { return w.layout }

// Visible reports whether the widget is shown.
func (w *Widget) Visible() bool { return w.visible }

// SetVisible shows or hides the widget.
func (w *Widget) SetVisible(v bool) { w.visible = v }

// Location returns the top-left corner in layer space.
func (w *Widget) Location() geom.Point { return geom.Point{X: w.x, Y: w.y} }

// SetLocation moves the widget.
func (w *Widget) SetLocation(p geom.Point) { w.x, w.y = p.X, p.Y }

// X returns the left edge in layer space.
func (w *Widget) X() float64 { return w.x }

// Y returns the top edge in layer space.
func (w *Widget) Y() float64 { return w.y }

// HeaderHeight returns the renderer's header height.
func (w *Widget) HeaderHeight() float64 {
	if w.renderer == nil {
		return 0
	}
	return w.renderer.HeaderHeight()
}

// HeaderBand returns the Y range [min, max) occupied by the header.
func (w *Widget) HeaderBand() (minY, maxY float64) {
	h := w.HeaderHeight()
	if w.header == nil {
		return 0, h
	}
	return w.header.Y, w.header.Y + h
}

// Width returns the sum of visible column widths.
func (w *Widget) Width() float64 {
	total := 0.0
	for _, c := range w.data.Columns() {
		if c.Visible() {
			total += c.Width()
		}
	}
	return total
}

// Height returns the header height plus every row's height.
func (w *Widget) Height() float64 {
	total := w.HeaderHeight()
	for _, r := range w.data.Rows() {
		total += r.Height()
	}
	return total
}

// Bounds returns the widget rectangle in layer space.
func (w *Widget) Bounds() geom.Rect {
	return geom.Rect{X: w.x, Y: w.y, Width: w.Width(), Height: w.Height()}
}

// ToLocal converts a device point into this widget's local space as seen
// through v.
func (w *Widget) ToLocal(v *Viewport, device geom.Point) geom.Point {
	return geom.ToLocal(v.Transform(), w.Location(), device)
}

// refreshLayout runs a layout pass for the part of the widget visible in v.
func (w *Widget) refreshLayout(v *Viewport) {
	r, ok := w.layout.(Refresher)
	if !ok {
		return
	}
	vis := v.VisibleBounds()
	maxX := math.Inf(1)
	if !math.IsInf(vis.Width, 1) {
		maxX = vis.Right() - w.x
	}
	r.Refresh(vis.X-w.x, maxX)
}
