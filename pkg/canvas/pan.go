package canvas

import "github.com/matzehuels/gridwork/pkg/geom"

// PanMediator pans the viewport while the pan button is held.
type PanMediator struct {
	viewport *Viewport
	enabled  bool
	dragging bool
	last     geom.Point
}

// NewPanMediator creates an enabled pan mediator for v.
func NewPanMediator(v *Viewport) *PanMediator {
	return &PanMediator{viewport: v, enabled: true}
}

// Enabled implements [Mediator].
func (p *PanMediator) Enabled() bool { return p.enabled }

// SetEnabled implements [Mediator]. Disabling ends any drag in progress.
func (p *PanMediator) SetEnabled(enabled bool) {
	p.enabled = enabled
	if !enabled {
		p.dragging = false
	}
}

// Dragging implements [Dragger].
func (p *PanMediator) Dragging() bool { return p.dragging }

// Press starts a pan at device point at. It reports whether the pan started.
func (p *PanMediator) Press(at geom.Point) bool {
	if !p.enabled {
		return false
	}
	p.dragging = true
	p.last = at
	return true
}

// Move pans by the distance travelled since the last event.
func (p *PanMediator) Move(at geom.Point) bool {
	if !p.dragging {
		return false
	}
	d := at.Sub(p.last)
	p.last = at
	p.viewport.SetTransform(p.viewport.Transform().Translate(d.X, d.Y))
	return true
}

// Release ends the pan.
func (p *PanMediator) Release() { p.dragging = false }

// ZoomMediator scales the viewport around a device point.
type ZoomMediator struct {
	viewport *Viewport
	enabled  bool
	min, max float64
}

// NewZoomMediator creates an enabled zoom mediator clamped to [min, max].
func NewZoomMediator(v *Viewport, min, max float64) *ZoomMediator {
	return &ZoomMediator{viewport: v, enabled: true, min: min, max: max}
}

// Enabled implements [Mediator].
func (z *ZoomMediator) Enabled() bool { return z.enabled }

// SetEnabled implements [Mediator].
func (z *ZoomMediator) SetEnabled(enabled bool) { z.enabled = enabled }

// Zoom scales by factor around at, keeping the scale within bounds.
func (z *ZoomMediator) Zoom(factor float64, at geom.Point) bool {
	if !z.enabled || factor <= 0 {
		return false
	}
	t := z.viewport.Transform()
	next := t.ScaleX * factor
	if next < z.min {
		factor = z.min / t.ScaleX
	} else if next > z.max {
		factor = z.max / t.ScaleX
	}
	z.viewport.SetTransform(t.Scale(factor, at))
	return true
}
