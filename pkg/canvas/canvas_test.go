package canvas

import (
	"math"
	"testing"

	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
)

func sampleWidget(opts ...WidgetOption) *Widget {
	d := grid.NewData()
	d.AppendColumn(grid.NewColumn("a", 50))
	d.AppendColumn(grid.NewColumn("b", 80))
	d.AppendColumn(grid.NewColumn("c", 100, grid.Hidden()))
	d.AppendRow(grid.NewRow("r0", 20))
	d.AppendRow(grid.NewRow("r1", 20))
	return NewWidget(d, FixedHeader(30), opts...)
}

func TestWidgetGeometry(t *testing.T) {
	w := sampleWidget(At(10, 5))

	if got := w.Width(); got != 130 {
		t.Errorf("Width() = %v, want 130", got)
	}
	if got := w.Height(); got != 70 {
		t.Errorf("Height() = %v, want 70", got)
	}
	if b := w.Bounds(); b.X != 10 || b.Y != 5 {
		t.Errorf("Bounds() origin = (%v, %v), want (10, 5)", b.X, b.Y)
	}
	if w.Name() == "" {
		t.Error("widget should get a default name")
	}
}

func TestWidgetHeaderBand(t *testing.T) {
	tests := []struct {
		name    string
		opts    []WidgetOption
		wantMin float64
		wantMax float64
	}{
		{"no header region", nil, 0, 30},
		{"sticky header", []WidgetOption{WithHeader(Header{Y: 12})}, 12, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minY, maxY := sampleWidget(tt.opts...).HeaderBand()
			if minY != tt.wantMin || maxY != tt.wantMax {
				t.Errorf("HeaderBand() = (%v, %v), want (%v, %v)", minY, maxY, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestWidgetToLocal(t *testing.T) {
	w := sampleWidget(At(100, 50))
	v := NewViewport(0, 0)
	v.SetTransform(geom.Transform{ScaleX: 2, ScaleY: 2, TranslateX: -40})

	got := w.ToLocal(v, geom.Point{X: 180, Y: 120})
	if got.X != 10 || got.Y != 10 {
		t.Errorf("ToLocal() = %v, want (10, 10)", got)
	}
}

type fakeMediator struct {
	enabled  bool
	dragging bool
}

func (m *fakeMediator) Enabled() bool     { return m.enabled }
func (m *fakeMediator) SetEnabled(v bool) { m.enabled = v }
func (m *fakeMediator) Dragging() bool    { return m.dragging }

func TestViewportMediators(t *testing.T) {
	v := NewViewport(80, 24)
	m := &fakeMediator{enabled: true}
	v.AddMediator(m)
	v.AddMediator(NewZoomMediator(v, 0.5, 4))

	v.SetMediatorsEnabled(false)
	for _, med := range v.Mediators() {
		if med.Enabled() {
			t.Errorf("mediator %T still enabled", med)
		}
	}

	if v.Panning() {
		t.Error("Panning() should be false without a drag")
	}
	m.dragging = true
	if !v.Panning() {
		t.Error("Panning() should report a dragging mediator")
	}
}

func TestVisibleBounds(t *testing.T) {
	v := NewViewport(80, 24)
	v.SetTransform(geom.Identity().Translate(-20, -4))

	b := v.VisibleBounds()
	if b.X != 20 || b.Y != 4 || b.Width != 80 || b.Height != 24 {
		t.Errorf("VisibleBounds() = %+v", b)
	}

	unbounded := NewViewport(0, 0).VisibleBounds()
	if !math.IsInf(unbounded.Width, 1) {
		t.Errorf("zero-size viewport should be unbounded, got %+v", unbounded)
	}
}

func TestPanMediator(t *testing.T) {
	v := NewViewport(80, 24)
	p := NewPanMediator(v)

	if p.Move(geom.Point{X: 5}) {
		t.Error("Move without Press should not pan")
	}
	p.Press(geom.Point{X: 10, Y: 10})
	p.Move(geom.Point{X: 4, Y: 12})
	if tr := v.Transform(); tr.TranslateX != -6 || tr.TranslateY != 2 {
		t.Errorf("transform after pan = %+v", tr)
	}
	p.SetEnabled(false)
	if p.Dragging() {
		t.Error("disabling should end the drag")
	}
	if p.Press(geom.Point{}) {
		t.Error("disabled mediator should not start a pan")
	}
}

func TestZoomMediatorClamps(t *testing.T) {
	v := NewViewport(80, 24)
	z := NewZoomMediator(v, 0.5, 2)

	z.Zoom(10, geom.Point{})
	if got := v.Transform().ScaleX; got != 2 {
		t.Errorf("scale = %v, want clamp to 2", got)
	}
	z.Zoom(0.01, geom.Point{})
	if got := v.Transform().ScaleX; got != 0.5 {
		t.Errorf("scale = %v, want clamp to 0.5", got)
	}
}

func TestLayerBatchRunsLayout(t *testing.T) {
	l := NewLayer(NewViewport(0, 0))
	w := sampleWidget()
	l.Add(w)

	if _, ok := w.Layout().Info(); ok {
		t.Fatal("layout should not be ready before the first pass")
	}

	calls := 0
	l.OnBatch(func() { calls++ })
	l.Batch()

	if _, ok := w.Layout().Info(); !ok {
		t.Error("Batch should run a layout pass")
	}
	if calls != 1 || l.Batches() != 1 {
		t.Errorf("listener calls = %d, batches = %d, want 1/1", calls, l.Batches())
	}
	if l.Widget(w.ID()) != w || l.WidgetByName(w.Name()) != w {
		t.Error("widget lookup failed")
	}
}

func TestCursorString(t *testing.T) {
	for c, want := range map[Cursor]string{
		CursorDefault:   "default",
		CursorColResize: "col-resize",
		CursorMove:      "move",
	} {
		if got := c.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", c, got, want)
		}
	}
}
