package geom

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{X: 15, Y: 25}, true},
		{"top-left corner", Point{X: 10, Y: 20}, true},
		{"bottom-right corner", Point{X: 40, Y: 60}, true},
		{"left of", Point{X: 9, Y: 25}, false},
		{"below", Point{X: 15, Y: 61}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTransformInverse(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
	}{
		{"identity", Identity()},
		{"pan", Identity().Translate(12, -7)},
		{"zoom", Identity().Scale(2, Point{X: 0, Y: 0})},
		{"zoom around point", Identity().Translate(5, 5).Scale(1.5, Point{X: 30, Y: 40})},
		{"anisotropic", Transform{ScaleX: 2, ScaleY: 0.5, TranslateX: 3, TranslateY: 4}},
	}

	pts := []Point{{0, 0}, {10, 20}, {-4.5, 99}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.t.Inverse()
			for _, p := range pts {
				back := inv.Apply(tt.t.Apply(p))
				if !approx(back.X, p.X) || !approx(back.Y, p.Y) {
					t.Errorf("Inverse(Apply(%v)) = %v", p, back)
				}
			}
		})
	}
}

func TestTransformInverseDegenerate(t *testing.T) {
	if got := (Transform{}).Inverse(); got != Identity() {
		t.Errorf("zero transform Inverse() = %v, want identity", got)
	}
}

func TestScaleKeepsCenterFixed(t *testing.T) {
	c := Point{X: 50, Y: 25}
	tr := Identity().Translate(7, 3)
	local := tr.Inverse().Apply(c)

	zoomed := tr.Scale(3, c)
	got := zoomed.Apply(local)
	if !approx(got.X, c.X) || !approx(got.Y, c.Y) {
		t.Errorf("zoom center moved: got %v, want %v", got, c)
	}
}

func TestToLocal(t *testing.T) {
	tests := []struct {
		name   string
		t      Transform
		origin Point
		device Point
		want   Point
	}{
		{
			name:   "identity",
			t:      Identity(),
			origin: Point{X: 10, Y: 5},
			device: Point{X: 25, Y: 15},
			want:   Point{X: 15, Y: 10},
		},
		{
			name:   "panned viewport",
			t:      Identity().Translate(-20, 0),
			origin: Point{X: 10, Y: 0},
			device: Point{X: 5, Y: 3},
			want:   Point{X: 15, Y: 3},
		},
		{
			name:   "zoomed viewport",
			t:      Transform{ScaleX: 2, ScaleY: 2},
			origin: Point{X: 0, Y: 0},
			device: Point{X: 100, Y: 40},
			want:   Point{X: 50, Y: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToLocal(tt.t, tt.origin, tt.device)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("ToLocal() = %v, want %v", got, tt.want)
			}
		})
	}
}
