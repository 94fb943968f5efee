package canvas

import (
	"math"

	"github.com/matzehuels/gridwork/pkg/geom"
)

// Cursor is the pointer style shown over the viewport.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorColResize
	CursorMove
)

// String returns the CSS-like cursor name.
func (c Cursor) String() string {
	switch c {
	case CursorColResize:
		return "col-resize"
	case CursorMove:
		return "move"
	default:
		return "default"
	}
}

// Mediator is a viewport interaction (pan, zoom) that can be switched off
// while something else owns the pointer.
type Mediator interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// Dragger is implemented by mediators that run a pointer drag of their own.
type Dragger interface {
	Dragging() bool
}

// Viewport is the window through which a layer is drawn.
type Viewport struct {
	transform     geom.Transform
	width, height float64
	mediators     []Mediator
	cursor        Cursor
}

// NewViewport creates a viewport of the given device size with the identity
// transform. A zero size means "unbounded".
func NewViewport(width, height float64) *Viewport {
	return &Viewport{transform: geom.Identity(), width: width, height: height}
}

// Transform returns the current pan/zoom transform.
func (v *Viewport) Transform() geom.Transform { return v.transform }

// SetTransform replaces the pan/zoom transform.
func (v *Viewport) SetTransform(t geom.Transform) { v.transform = t }

// Size returns the device size.
func (v *Viewport) Size() (width, height float64) { return v.width, v.height }

// SetSize updates the device size, e.g. on terminal resize.
func (v *Viewport) SetSize(width, height float64) { v.width, v.height = width, height }

// VisibleBounds returns the visible area in layer space.
func (v *Viewport) VisibleBounds() geom.Rect {
	inv := v.transform.Inverse()
	tl := inv.Apply(geom.Point{})
	w, h := math.Inf(1), math.Inf(1)
	if v.width > 0 && v.height > 0 {
		br := inv.Apply(geom.Point{X: v.width, Y: v.height})
		w, h = br.X-tl.X, br.Y-tl.Y
	}
	return geom.Rect{X: tl.X, Y: tl.Y, Width: w, Height: h}
}

// AddMediator registers an interaction mediator.
func (v *Viewport) AddMediator(m Mediator) { v.mediators = append(v.mediators, m) }

// Mediators returns the registered mediators.
func (v *Viewport) Mediators() []Mediator { return v.mediators }

// SetMediatorsEnabled switches every mediator on or off.
func (v *Viewport) SetMediatorsEnabled(enabled bool) {
	for _, m := range v.mediators {
		m.SetEnabled(enabled)
	}
}

// Panning reports whether any mediator is in the middle of a drag.
func (v *Viewport) Panning() bool {
	for _, m := range v.mediators {
		if d, ok := m.(Dragger); ok && d.Dragging() {
			return true
		}
	}
	return false
}

// Cursor returns the current pointer style.
func (v *Viewport) Cursor() Cursor { return v.cursor }

// SetCursor changes the pointer style.
func (v *Viewport) SetCursor(c Cursor) { v.cursor = c }
