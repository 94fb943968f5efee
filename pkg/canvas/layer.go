package canvas

import (
	"github.com/google/uuid"
)

// Layer holds grid widgets drawn through one viewport.
type Layer struct {
	viewport *Viewport
	widgets  []*Widget

	listeners []func()
	batches   int
}

// NewLayer creates an empty layer drawn through v.
func NewLayer(v *Viewport) *Layer {
	if v == nil {
		v = NewViewport(0, 0)
	}
	return &Layer{viewport: v}
}

// Viewport returns the layer's viewport.
func (l *Layer) Viewport() *Viewport { return l.viewport }

// Add appends w to the enumeration order.
func (l *Layer) Add(w *Widget) { l.widgets = append(l.widgets, w) }

// Widgets returns the widgets in enumeration order.
func (l *Layer) Widgets() []*Widget { return l.widgets }

// Widget finds a widget by id.
func (l *Layer) Widget(id uuid.UUID) *Widget {
	for _, w := range l.widgets {
		if w.id == id {
			return w
		}
	}
	return nil
}

// WidgetByName finds a widget by name.
func (l *Layer) WidgetByName(name string) *Widget {
	for _, w := range l.widgets {
		if w.name == name {
			return w
		}
	}
	return nil
}

// OnBatch registers fn to run after every batch.
func (l *Layer) OnBatch(fn func()) { l.listeners = append(l.listeners, fn) }

// Layout runs a layout pass over every widget.
func (l *Layer) Layout() {
	for _, w := range l.widgets {
		w.refreshLayout(l.viewport)
	}
}

// Batch requests a redraw: it re-runs layout and notifies listeners.
func (l *Layer) Batch() {
	l.batches++
	l.Layout()
	for _, fn := range l.listeners {
		fn()
	}
}

// Batches returns how many redraws have been requested.
func (l *Layer) Batches() int { return l.batches }
