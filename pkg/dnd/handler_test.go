package dnd

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridwork/pkg/canvas"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
	"github.com/matzehuels/gridwork/pkg/layout"
	"github.com/matzehuels/gridwork/pkg/observability"
)

const headerHeight = 20

type countingResources struct{ destroyed int }

func (r *countingResources) DestroyResources() { r.destroyed++ }

type fixture struct {
	layer  *canvas.Layer
	widget *canvas.Widget
	state  *State
	moves  *Handler
	clicks *PressHandler
	pan    *canvas.PanMediator
	zoom   *canvas.ZoomMediator
	stats  *observability.Counters
}

func newFixture(d *grid.Data, opts ...Option) *fixture {
	vp := canvas.NewViewport(0, 0)
	pan := canvas.NewPanMediator(vp)
	zoom := canvas.NewZoomMediator(vp, 0.5, 4)
	vp.AddMediator(pan)
	vp.AddMediator(zoom)

	layer := canvas.NewLayer(vp)
	w := canvas.NewWidget(d, canvas.FixedHeader(headerHeight))
	layer.Add(w)
	layer.Layout()

	stats := observability.NewCounters()
	opts = append([]Option{WithHooks(stats)}, opts...)
	st := NewState()
	return &fixture{
		layer:  layer,
		widget: w,
		state:  st,
		moves:  NewHandler(layer, st, opts...),
		clicks: NewPressHandler(layer, st, opts...),
		pan:    pan,
		zoom:   zoom,
		stats:  stats,
	}
}

// scroll pans the viewport so local X offset is the left edge of the view.
func (f *fixture) scroll(offset float64) {
	f.layer.Viewport().SetTransform(geom.Identity().Translate(-offset, 0))
	f.layer.Layout()
}

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func addRows(d *grid.Data, n int, height float64) {
	for i := 0; i < n; i++ {
		d.AppendRow(grid.NewRow(string(rune('0'+i)), height))
	}
}

// resizeGrid is three columns a, b, c of widths 50, 80, 100 headed G1, G1,
// G2, with three rows of height 10.
func resizeGrid() (*grid.Data, []*countingResources) {
	d := grid.NewData()
	var res []*countingResources
	for _, c := range []struct {
		id    string
		width float64
		group string
	}{{"a", 50, "G1"}, {"b", 80, "G1"}, {"c", 100, "G2"}} {
		r := &countingResources{}
		res = append(res, r)
		d.AppendColumn(grid.NewColumn(c.id, c.width, grid.WithHeaders(grid.Header(c.group)), grid.WithResources(r)))
	}
	addRows(d, 3, 10)
	return d, res
}

func widths(d *grid.Data) []float64 {
	var out []float64
	for _, c := range d.Columns() {
		out = append(out, c.Width())
	}
	return out
}

func columnOrder(d *grid.Data) []string {
	var out []string
	for _, c := range d.Columns() {
		out = append(out, c.ID())
	}
	return out
}

func rowOrder(d *grid.Data) []string {
	var out []string
	for _, r := range d.Rows() {
		out = append(out, r.ID())
	}
	return out
}

func TestColumnResizeScenario(t *testing.T) {
	d, res := resizeGrid()
	f := newFixture(d)

	f.moves.OnPointerMove(pt(130, 25))
	if got := f.state.Operation(); got != ColumnResizePending {
		t.Fatalf("Operation() = %v, want %v", got, ColumnResizePending)
	}
	if cols := f.state.Columns(); len(cols) != 1 || cols[0].ID() != "b" {
		t.Fatalf("Columns() = %v, want [b]", columnIDs(cols))
	}
	if got := f.layer.Viewport().Cursor(); got != canvas.CursorColResize {
		t.Errorf("viewport cursor = %v, want %v", got, canvas.CursorColResize)
	}

	if !f.clicks.OnPointerPress(pt(130, 25)) {
		t.Fatal("OnPointerPress() = false, want true")
	}
	if f.state.Operation() != ColumnResize || f.state.InitialX() != 130 || f.state.InitialColumnWidth() != 80 {
		t.Fatalf("after press: op=%v x=%v width=%v", f.state.Operation(), f.state.InitialX(), f.state.InitialColumnWidth())
	}

	f.moves.OnPointerMove(pt(150, 25))
	if got, want := widths(d), []float64{50, 100, 100}; !slices.Equal(got, want) {
		t.Errorf("widths = %v, want %v", got, want)
	}
	for i, r := range res {
		if r.destroyed != 1 {
			t.Errorf("column %d destroyed %d times, want 1", i, r.destroyed)
		}
	}
	if f.layer.Batches() != 1 {
		t.Errorf("Batches() = %d, want 1", f.layer.Batches())
	}
	if f.stats.Snapshot().Resizes != 1 {
		t.Errorf("Resizes = %d, want 1", f.stats.Snapshot().Resizes)
	}

	if !f.clicks.OnPointerRelease() {
		t.Fatal("OnPointerRelease() = false, want true")
	}
	if f.state.Operation() != None || f.state.Widget() != nil {
		t.Errorf("after release: op=%v widget=%v", f.state.Operation(), f.state.Widget())
	}
	if !f.pan.Enabled() {
		t.Error("release should re-enable mediators")
	}
}

func TestColumnResizeClamp(t *testing.T) {
	tests := []struct {
		name string
		opts []grid.ColumnOption
		dx   float64
		want float64
	}{
		{"grow within", []grid.ColumnOption{grid.WithMinWidth(60), grid.WithMaxWidth(90)}, 5, 85},
		{"grow past max", []grid.ColumnOption{grid.WithMinWidth(60), grid.WithMaxWidth(90)}, 20, 90},
		{"shrink past min", []grid.ColumnOption{grid.WithMinWidth(60), grid.WithMaxWidth(90)}, -50, 60},
		{"min only", []grid.ColumnOption{grid.WithMinWidth(60)}, 500, 580},
		{"max only", []grid.ColumnOption{grid.WithMaxWidth(90)}, -70, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := grid.NewData()
			d.AppendColumn(grid.NewColumn("a", 50))
			d.AppendColumn(grid.NewColumn("b", 80, tt.opts...))
			d.AppendColumn(grid.NewColumn("c", 100))
			addRows(d, 3, 10)
			f := newFixture(d)

			f.moves.OnPointerMove(pt(130, 25))
			f.clicks.OnPointerPress(pt(130, 25))
			f.moves.OnPointerMove(pt(130+tt.dx, 25))

			col := d.ColumnByID("b")
			if col.Width() != tt.want {
				t.Errorf("width = %v, want %v", col.Width(), tt.want)
			}
			if lo, ok := col.MinimumWidth(); ok && col.Width() < lo {
				t.Errorf("width %v below minimum %v", col.Width(), lo)
			}
			if hi, ok := col.MaximumWidth(); ok && col.Width() > hi {
				t.Errorf("width %v above maximum %v", col.Width(), hi)
			}
		})
	}
}

func TestColumnResizeNonPositiveRejected(t *testing.T) {
	d, _ := resizeGrid()
	f := newFixture(d)

	f.moves.OnPointerMove(pt(130, 25))
	f.clicks.OnPointerPress(pt(130, 25))
	f.moves.OnPointerMove(pt(20, 25))

	if got := d.ColumnByID("b").Width(); got != 80 {
		t.Errorf("width = %v, want 80 (unchanged)", got)
	}
	if f.layer.Batches() != 0 {
		t.Errorf("Batches() = %d, want 0", f.layer.Batches())
	}
}

func TestMultiColumnResizeIsNoop(t *testing.T) {
	d, res := resizeGrid()
	f := newFixture(d)

	f.state.widget = f.widget
	f.state.columns = []*grid.Column{d.Column(0), d.Column(1)}
	f.state.op = ColumnResize
	f.state.initialX = 50
	f.state.initialWidth = 50

	f.moves.OnPointerMove(pt(90, 25))

	if got, want := widths(d), []float64{50, 80, 100}; !slices.Equal(got, want) {
		t.Errorf("widths = %v, want %v", got, want)
	}
	if res[0].destroyed != 0 || f.layer.Batches() != 0 {
		t.Error("multi-column resize should not touch resources or redraw")
	}
}

func TestResizeTolerance(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		x    float64
		want Operation
	}{
		{"inside default", nil, 134, ColumnResizePending},
		{"on default bound", nil, 135, None},
		{"inside left", nil, 126, ColumnResizePending},
		{"narrow tolerance", []Option{WithResizeTolerance(2)}, 134, None},
		{"ignored tolerance", []Option{WithResizeTolerance(-1)}, 134, ColumnResizePending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := resizeGrid()
			f := newFixture(d, tt.opts...)
			f.moves.OnPointerMove(pt(tt.x, 25))
			if got := f.state.Operation(); got != tt.want {
				t.Errorf("Operation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResizeSkipsFixedAndHiddenColumns(t *testing.T) {
	d := grid.NewData()
	d.AppendColumn(grid.NewColumn("a", 50, grid.NotResizable()))
	d.AppendColumn(grid.NewColumn("hidden", 30, grid.Hidden()))
	d.AppendColumn(grid.NewColumn("b", 80))
	addRows(d, 1, 10)
	f := newFixture(d)

	f.moves.OnPointerMove(pt(50, 25))
	if f.state.Operation() != None {
		t.Errorf("non-resizable edge: Operation() = %v, want NONE", f.state.Operation())
	}

	f.moves.OnPointerMove(pt(130, 25))
	if cols := f.state.Columns(); len(cols) != 1 || cols[0].ID() != "b" {
		t.Errorf("Columns() = %v, want [b]", columnIDs(cols))
	}
}

func TestHeaderBlockScenario(t *testing.T) {
	tests := []struct {
		x     float64
		want  []string
		group string
	}{
		{25, []string{"a", "b"}, "G1"},
		{100, []string{"a", "b"}, "G1"},
		{200, []string{"c"}, "G2"},
	}
	for _, tt := range tests {
		d, _ := resizeGrid()
		f := newFixture(d)

		f.moves.OnPointerMove(pt(tt.x, 5))
		if got := f.state.Operation(); got != ColumnMovePending {
			t.Fatalf("x=%v: Operation() = %v, want %v", tt.x, got, ColumnMovePending)
		}
		if got := columnIDs(f.state.Columns()); !slices.Equal(got, tt.want) {
			t.Errorf("x=%v: block = %v, want %v", tt.x, got, tt.want)
		}
		if md, _ := f.state.HeaderMetaData(); md.Group != tt.group {
			t.Errorf("x=%v: header group = %q, want %q", tt.x, md.Group, tt.group)
		}
		if f.state.Cursor() != canvas.CursorMove {
			t.Errorf("x=%v: Cursor() = %v, want move", tt.x, f.state.Cursor())
		}
	}
}

func TestHeaderRowsSplitHeight(t *testing.T) {
	d := grid.NewData()
	d.AppendColumn(grid.NewColumn("a", 50, grid.WithHeaders(grid.Header("top"), grid.Header("a"))))
	d.AppendColumn(grid.NewColumn("b", 50, grid.WithHeaders(grid.Header("top"), grid.Header("b"))))
	addRows(d, 1, 10)
	f := newFixture(d)

	f.moves.OnPointerMove(pt(25, 5))
	if got := columnIDs(f.state.Columns()); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("top header row: block = %v, want [a b]", got)
	}

	f.moves.OnPointerMove(pt(25, 15))
	if got := columnIDs(f.state.Columns()); !slices.Equal(got, []string{"a"}) {
		t.Errorf("second header row: block = %v, want [a]", got)
	}
}

func TestNotMovableColumnHasNoBlock(t *testing.T) {
	d := grid.NewData()
	d.AppendColumn(grid.NewColumn("a", 50, grid.NotMovable(), grid.WithHeaders(grid.Header("G1"))))
	addRows(d, 1, 10)
	f := newFixture(d)

	f.moves.OnPointerMove(pt(25, 5))
	if f.state.Operation() != None {
		t.Errorf("Operation() = %v, want NONE", f.state.Operation())
	}
}

func TestColumnMove(t *testing.T) {
	d, res := resizeGrid()
	f := newFixture(d)

	f.moves.OnPointerMove(pt(25, 5))
	if !f.clicks.OnPointerPress(pt(25, 5)) {
		t.Fatal("OnPointerPress() = false, want true")
	}
	if got, want := f.state.Highlight(), (geom.Rect{X: 0, Y: 0, Width: 130, Height: 50}); got != want {
		t.Errorf("Highlight() = %+v, want %+v", got, want)
	}

	f.moves.OnPointerMove(pt(150, 5))
	if got, want := columnOrder(d), []string{"c", "a", "b"}; !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if got := f.state.Highlight().X; got != 100 {
		t.Errorf("Highlight().X = %v, want 100", got)
	}
	for i, r := range res {
		if r.destroyed != 1 {
			t.Errorf("column %d destroyed %d times, want 1", i, r.destroyed)
		}
	}

	// The block now sits where the pointer is; nothing else to swap with.
	f.moves.OnPointerMove(pt(150, 5))
	if f.layer.Batches() != 1 {
		t.Errorf("Batches() = %d, want 1", f.layer.Batches())
	}
	if f.stats.Snapshot().ColumnMoves != 1 {
		t.Errorf("ColumnMoves = %d, want 1", f.stats.Snapshot().ColumnMoves)
	}
}

func TestColumnMoveMidpoint(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want []string
	}{
		{"left half", 90, []string{"b", "c", "a"}},
		{"exact midpoint", 100, []string{"b", "a", "c"}},
		{"right half", 110, []string{"b", "a", "c"}},
		{"outside window", 70, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := grid.NewData()
			d.AppendColumn(grid.NewColumn("a", 50, grid.WithHeaders(grid.Header("G1"))))
			d.AppendColumn(grid.NewColumn("b", 40, grid.WithHeaders(grid.Header("G2"))))
			d.AppendColumn(grid.NewColumn("c", 60, grid.WithHeaders(grid.Header("G2"))))
			addRows(d, 1, 10)
			f := newFixture(d)

			f.moves.OnPointerMove(pt(25, 5))
			f.clicks.OnPointerPress(pt(25, 5))
			f.moves.OnPointerMove(pt(tt.x, 5))

			if got := columnOrder(d); !slices.Equal(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColumnMoveRespectsScope(t *testing.T) {
	d := grid.NewData()
	d.AppendColumn(grid.NewColumn("a", 50, grid.WithHeaders(grid.HeaderMetaData{Group: "G1", Scope: "left"})))
	d.AppendColumn(grid.NewColumn("b", 50, grid.WithHeaders(grid.HeaderMetaData{Group: "G2", Scope: "right"})))
	addRows(d, 1, 10)
	f := newFixture(d)

	f.moves.OnPointerMove(pt(25, 5))
	f.clicks.OnPointerPress(pt(25, 5))
	f.moves.OnPointerMove(pt(75, 5))

	if got := columnOrder(d); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("order = %v, want [a b]", got)
	}
}

// floatingGrid has a floatable column f and columns b, c; scrolled by 60 the
// floating block spans local X (60, 110) and the body starts at b.
func floatingGrid(fGroup string) *grid.Data {
	d := grid.NewData()
	d.AppendColumn(grid.NewColumn("f", 50, grid.Floatable(), grid.WithHeaders(grid.Header(fGroup))))
	d.AppendColumn(grid.NewColumn("b", 80, grid.WithHeaders(grid.Header("G1"))))
	d.AppendColumn(grid.NewColumn("c", 100, grid.WithHeaders(grid.Header("G2"))))
	addRows(d, 3, 10)
	return d
}

func TestBlockStraddlingFloatingIsRejected(t *testing.T) {
	d := floatingGrid("G1")
	f := newFixture(d)
	f.scroll(60)

	info, ok := f.widget.Layout().Info()
	if !ok || !info.Floating.Contains(d.ColumnByID("f")) || info.Floating.Right() != 110 {
		t.Fatalf("unexpected layout: %+v", info)
	}

	// local X 120 is over b, whose block includes the floating column f.
	f.moves.OnPointerMove(pt(60, 5))
	if f.state.Operation() != None {
		t.Errorf("Operation() = %v, want NONE", f.state.Operation())
	}
	if !f.pan.Enabled() {
		t.Error("mediators should stay enabled without a target")
	}
}

func TestColumnMoveRejectsFloatingRegion(t *testing.T) {
	d := floatingGrid("F")
	f := newFixture(d)
	f.scroll(60)

	// local X 200 is over c.
	f.moves.OnPointerMove(pt(140, 5))
	if got := columnIDs(f.state.Columns()); !slices.Equal(got, []string{"c"}) {
		t.Fatalf("block = %v, want [c]", got)
	}
	f.clicks.OnPointerPress(pt(140, 5))

	// local X 90 and 100 are inside the floating block.
	for _, x := range []float64{30, 40} {
		f.moves.OnPointerMove(pt(x, 5))
		if got := columnOrder(d); !slices.Equal(got, []string{"f", "b", "c"}) {
			t.Fatalf("device x=%v: order = %v, want unchanged", x, got)
		}
	}
	if f.layer.Batches() != 0 {
		t.Errorf("Batches() = %d, want 0", f.layer.Batches())
	}

	// local X 120 is over b, right of the floating block.
	f.moves.OnPointerMove(pt(60, 5))
	if got, want := columnOrder(d), []string{"f", "c", "b"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if got := columnOrder(d)[0]; got != "f" {
		t.Errorf("floating column moved to %q", got)
	}
}

func TestColumnMoveSkipsFloatingCandidate(t *testing.T) {
	d := grid.NewData()
	d.AppendColumn(grid.NewColumn("a", 20, grid.Floatable(), grid.WithHeaders(grid.Header("P"))))
	d.AppendColumn(grid.NewColumn("b", 20, grid.WithHeaders(grid.Header("P"))))
	d.AppendColumn(grid.NewColumn("c", 40, grid.WithHeaders(grid.Header("Q"))))
	addRows(d, 2, 10)
	f := newFixture(d)
	f.scroll(10)

	info, ok := f.widget.Layout().Info()
	if !ok || !info.Floating.Contains(d.ColumnByID("a")) || info.Floating.Right() != 30 {
		t.Fatalf("unexpected layout: %+v", info)
	}

	// local X 60 is over c.
	f.moves.OnPointerMove(pt(50, 5))
	f.clicks.OnPointerPress(pt(50, 5))
	if got := columnIDs(f.state.Columns()); !slices.Equal(got, []string{"c"}) {
		t.Fatalf("block = %v, want [c]", got)
	}

	// local X 35 is right of the floating column but inside block P.
	f.moves.OnPointerMove(pt(25, 5))
	if got, want := columnOrder(d), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if f.layer.Batches() != 0 {
		t.Errorf("Batches() = %d, want 0", f.layer.Batches())
	}
}

func TestResizePrefersFloatingColumns(t *testing.T) {
	d := floatingGrid("F")
	f := newFixture(d)
	f.scroll(60)

	// local X 110 is the floating column's right edge.
	f.moves.OnPointerMove(pt(50, 25))
	if cols := f.state.Columns(); len(cols) != 1 || cols[0].ID() != "f" {
		t.Errorf("Columns() = %v, want [f]", columnIDs(cols))
	}
}

// rowGrid has a row-drag handle column and rows 0..3 of height 10, with
// row 2 collapsed.
func rowGrid() *grid.Data {
	d := grid.NewData()
	d.AppendColumn(grid.NewColumn("handle", 10, grid.WithRowDragHandle(), grid.NotResizable()))
	d.AppendColumn(grid.NewColumn("a", 50))
	d.AppendColumn(grid.NewColumn("b", 50))
	addRows(d, 4, 10)
	d.Row(2).SetCollapsed(true)
	return d
}

func TestRowHitCollapsedScenario(t *testing.T) {
	tests := []struct {
		name string
		at   geom.Point
		want []string
		op   Operation
	}{
		{"row 1 takes collapsed row 2", pt(5, 35), []string{"1", "2"}, RowMovePending},
		{"row 0 alone", pt(5, 25), []string{"0"}, RowMovePending},
		{"last row", pt(5, 58), []string{"3"}, RowMovePending},
		{"collapsed row selects its anchor", pt(5, 45), []string{"1", "2"}, RowMovePending},
		{"outside handle", pt(30, 35), nil, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(rowGrid())
			f.moves.OnPointerMove(tt.at)
			if f.state.Operation() != tt.op {
				t.Fatalf("Operation() = %v, want %v", f.state.Operation(), tt.op)
			}
			if got := rowIDs(f.state.Rows()); !slices.Equal(got, tt.want) && len(tt.want) > 0 {
				t.Errorf("Rows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRowMove(t *testing.T) {
	d := rowGrid()
	f := newFixture(d)

	f.moves.OnPointerMove(pt(5, 35))
	f.clicks.OnPointerPress(pt(5, 35))
	if got, want := f.state.Highlight(), (geom.Rect{X: 0, Y: 30, Width: 110, Height: 20}); got != want {
		t.Errorf("Highlight() = %+v, want %+v", got, want)
	}

	f.moves.OnPointerMove(pt(5, 58))
	if got, want := rowOrder(d), []string{"0", "3", "1", "2"}; !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if got := f.state.Highlight().Y; got != 40 {
		t.Errorf("Highlight().Y = %v, want 40", got)
	}
	if f.stats.Snapshot().RowMoves != 1 {
		t.Errorf("RowMoves = %d, want 1", f.stats.Snapshot().RowMoves)
	}
}

func TestRowMoveKeepsCollapsedRunsTogether(t *testing.T) {
	tests := []struct {
		name     string
		hover    geom.Point
		to       geom.Point
		want     []string
		wantRows []string
	}{
		{"drag from collapsed row", pt(5, 45), pt(5, 22), []string{"1", "2", "0", "3"}, []string{"1", "2"}},
		{"drop below anchor", pt(5, 25), pt(5, 38), []string{"1", "2", "0", "3"}, []string{"0"}},
		{"drop over collapsed row", pt(5, 58), pt(5, 42), []string{"0", "3", "1", "2"}, []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := rowGrid()
			f := newFixture(d)
			f.moves.OnPointerMove(tt.hover)
			f.clicks.OnPointerPress(tt.hover)
			if got := rowIDs(f.state.Rows()); !slices.Equal(got, tt.wantRows) {
				t.Fatalf("Rows() = %v, want %v", got, tt.wantRows)
			}

			f.moves.OnPointerMove(tt.to)
			if got := rowOrder(d); !slices.Equal(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDestroyedResourcesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	d, res := resizeGrid()
	f := newFixture(d, WithLogger(logger))

	f.moves.OnPointerMove(pt(130, 25))
	f.clicks.OnPointerPress(pt(130, 25))
	f.moves.OnPointerMove(pt(150, 25))

	for i, r := range res {
		if r.destroyed != 1 {
			t.Errorf("column %d destroyed %d times, want 1", i, r.destroyed)
		}
	}
	if !strings.Contains(buf.String(), "cell resources destroyed") || !strings.Contains(buf.String(), "columns=3") {
		t.Errorf("log output missing resource count:\n%s", buf.String())
	}
}

func TestRowMoveHysteresis(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want []string
	}{
		{"down, upper half", 52, []string{"0", "1", "2", "3"}},
		{"down, lower half", 58, []string{"0", "3", "1", "2"}},
		{"over lead row", 33, []string{"0", "1", "2", "3"}},
		{"over collapsed row", 45, []string{"0", "1", "2", "3"}},
		{"up, upper half", 22, []string{"1", "2", "0", "3"}},
		{"up, lower half", 28, []string{"0", "1", "2", "3"}},
		{"in header", 15, []string{"0", "1", "2", "3"}},
		{"below grid", 75, []string{"0", "1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := rowGrid()
			f := newFixture(d)
			f.moves.OnPointerMove(pt(5, 35))
			f.clicks.OnPointerPress(pt(5, 35))

			f.moves.OnPointerMove(pt(5, tt.y))
			if got := rowOrder(d); !slices.Equal(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdempotentMiss(t *testing.T) {
	d, _ := resizeGrid()
	f := newFixture(d)

	f.moves.OnPointerMove(pt(130, 25))
	if f.state.Operation() != ColumnResizePending {
		t.Fatalf("Operation() = %v, want %v", f.state.Operation(), ColumnResizePending)
	}

	for i := 0; i < 2; i++ {
		f.moves.OnPointerMove(pt(1000, 1000))
		st := f.state
		if st.Operation() != None || st.Widget() != nil || st.Columns() != nil || st.Rows() != nil {
			t.Errorf("pass %d: state not cleared: op=%v", i, st.Operation())
		}
		if _, ok := st.HeaderMetaData(); ok {
			t.Errorf("pass %d: header metadata not cleared", i)
		}
		if st.Cursor() != canvas.CursorDefault {
			t.Errorf("pass %d: Cursor() = %v, want default", i, st.Cursor())
		}
	}

	tr := f.stats.Snapshot().Transitions
	if tr["COLUMN_RESIZE_PENDING"] != 1 || tr["NONE"] != 1 {
		t.Errorf("transitions = %v", tr)
	}
}

func TestMissingLayoutIsNoop(t *testing.T) {
	d, _ := resizeGrid()
	f := newFixture(d)
	f.widget.Layout().(*layout.Helper).Invalidate()

	for _, p := range []geom.Point{pt(130, 25), pt(25, 5)} {
		f.moves.OnPointerMove(p)
		if f.state.Operation() != None {
			t.Errorf("%v: Operation() = %v, want NONE", p, f.state.Operation())
		}
	}

	f.state.targetColumnMove(f.widget, []*grid.Column{d.Column(0), d.Column(1)}, grid.Header("G1"))
	f.state.op = ColumnMove
	f.moves.OnPointerMove(pt(150, 5))
	if got := columnOrder(d); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("order = %v, want unchanged", got)
	}
}

func TestCursorSuppressedWhilePanning(t *testing.T) {
	d, _ := resizeGrid()
	f := newFixture(d)
	f.pan.Press(pt(0, 0))

	f.moves.OnPointerMove(pt(130, 25))
	if f.state.Operation() != ColumnResizePending {
		t.Fatalf("Operation() = %v, want %v", f.state.Operation(), ColumnResizePending)
	}
	if got := f.layer.Viewport().Cursor(); got != canvas.CursorDefault {
		t.Errorf("viewport cursor = %v, want default", got)
	}
	if got := f.state.Cursor(); got != canvas.CursorDefault {
		t.Errorf("state cursor = %v, want default", got)
	}
}

func TestMediatorsToggle(t *testing.T) {
	d, _ := resizeGrid()
	f := newFixture(d)

	f.moves.OnPointerMove(pt(130, 25))
	if f.pan.Enabled() || f.zoom.Enabled() {
		t.Error("mediators should be disabled over a target")
	}

	f.moves.OnPointerMove(pt(90, 25))
	if !f.pan.Enabled() || !f.zoom.Enabled() {
		t.Error("mediators should be enabled without a target")
	}
}

func TestZoomedViewport(t *testing.T) {
	d, _ := resizeGrid()
	f := newFixture(d)
	f.layer.Viewport().SetTransform(geom.Identity().Scale(2, geom.Point{}))
	f.layer.Layout()

	f.moves.OnPointerMove(pt(260, 50))
	if f.state.Operation() != ColumnResizePending {
		t.Fatalf("Operation() = %v, want %v", f.state.Operation(), ColumnResizePending)
	}
	f.clicks.OnPointerPress(pt(260, 50))
	f.moves.OnPointerMove(pt(300, 50))

	if got := d.ColumnByID("b").Width(); got != 100 {
		t.Errorf("width = %v, want 100", got)
	}
}

func TestWidgetEnumeration(t *testing.T) {
	d1, _ := resizeGrid()
	d2, _ := resizeGrid()
	f := newFixture(d1)
	second := canvas.NewWidget(d2, canvas.FixedHeader(headerHeight), canvas.WithName("second"))
	f.layer.Add(second)
	f.layer.Layout()

	f.moves.OnPointerMove(pt(130, 25))
	if f.state.Widget() != f.widget {
		t.Errorf("first widget should win")
	}

	f.widget.SetVisible(false)
	f.moves.OnPointerMove(pt(130, 25))
	if f.state.Widget() != second {
		t.Errorf("hidden widget should be skipped")
	}

	f.widget.SetVisible(true)
	d1.SetColumnDraggingEnabled(false)
	f.moves.OnPointerMove(pt(130, 25))
	if f.state.Widget() != second {
		t.Errorf("widget with dragging disabled should be skipped")
	}
}

func TestWidgetOffset(t *testing.T) {
	d, _ := resizeGrid()
	f := newFixture(d)
	f.widget.SetLocation(pt(100, 100))
	f.layer.Layout()

	f.moves.OnPointerMove(pt(130, 25))
	if f.state.Operation() != None {
		t.Errorf("Operation() = %v, want NONE", f.state.Operation())
	}
	f.moves.OnPointerMove(pt(230, 125))
	if f.state.Operation() != ColumnResizePending {
		t.Errorf("Operation() = %v, want %v", f.state.Operation(), ColumnResizePending)
	}
}

func TestPressAndReleaseWithoutTarget(t *testing.T) {
	d, _ := resizeGrid()
	f := newFixture(d)

	if f.clicks.OnPointerPress(pt(90, 25)) {
		t.Error("OnPointerPress() without a pending target = true, want false")
	}
	if f.clicks.OnPointerRelease() {
		t.Error("OnPointerRelease() with nothing to end = true, want false")
	}
}
