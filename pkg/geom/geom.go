// Package geom provides the small amount of 2D geometry the grid needs:
// points, axis-aligned rectangles and the pan/zoom transform of a viewport.
//
// Two coordinate spaces matter:
//   - device space: where pointer events arrive (terminal cells, screen pixels)
//   - local space: a grid widget's own space, origin at its top-left corner
//
// [ToLocal] converts between them and must be applied before any geometric
// comparison against column or row edges.
package geom

import "math"

// Point is a position in a 2D coordinate space.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Transform maps local coordinates to device coordinates:
//
//	device = local*Scale + Translate
//
// Scale is applied per axis so the zero value is not usable; start from
// [Identity].
type Transform struct {
	ScaleX, ScaleY         float64
	TranslateX, TranslateY float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Apply maps p from local to device space.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: p.X*t.ScaleX + t.TranslateX,
		Y: p.Y*t.ScaleY + t.TranslateY,
	}
}

// Invertible reports whether both scale factors are non-zero and finite.
func (t Transform) Invertible() bool {
	return t.ScaleX != 0 && t.ScaleY != 0 &&
		!math.IsInf(t.ScaleX, 0) && !math.IsInf(t.ScaleY, 0) &&
		!math.IsNaN(t.ScaleX) && !math.IsNaN(t.ScaleY)
}

// Inverse returns the transform mapping device space back to local space.
// A non-invertible transform yields [Identity].
func (t Transform) Inverse() Transform {
	if !t.Invertible() {
		return Identity()
	}
	return Transform{
		ScaleX:     1 / t.ScaleX,
		ScaleY:     1 / t.ScaleY,
		TranslateX: -t.TranslateX / t.ScaleX,
		TranslateY: -t.TranslateY / t.ScaleY,
	}
}

// Translate returns t panned by (dx, dy) device units.
func (t Transform) Translate(dx, dy float64) Transform {
	t.TranslateX += dx
	t.TranslateY += dy
	return t
}

// Scale returns t zoomed by factor around the device point c.
func (t Transform) Scale(factor float64, c Point) Transform {
	if factor <= 0 {
		return t
	}
	t.ScaleX *= factor
	t.ScaleY *= factor
	t.TranslateX = c.X - (c.X-t.TranslateX)*factor
	t.TranslateY = c.Y - (c.Y-t.TranslateY)*factor
	return t
}

// ToLocal converts a device point into the local space of a widget whose
// top-left corner sits at origin in layer space, with the layer drawn through
// the viewport transform t.
func ToLocal(t Transform, origin, device Point) Point {
	return t.Inverse().Apply(device).Sub(origin)
}
