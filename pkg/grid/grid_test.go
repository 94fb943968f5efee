package grid

import (
	"testing"

	"github.com/matzehuels/gridwork/pkg/errors"
)

func ids(cols []*Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.ID()
	}
	return out
}

func rowIDs(rows []*Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newData(colIDs ...string) *Data {
	d := NewData()
	for _, id := range colIDs {
		d.AppendColumn(NewColumn(id, 10))
	}
	return d
}

func TestColumnSetWidth(t *testing.T) {
	c := NewColumn("a", 50)

	if err := c.SetWidth(70); err != nil {
		t.Fatalf("SetWidth(70) error: %v", err)
	}
	if c.Width() != 70 {
		t.Errorf("Width() = %v, want 70", c.Width())
	}

	for _, w := range []float64{0, -5} {
		err := c.SetWidth(w)
		if !errors.Is(err, errors.ErrCodeInvalidWidth) {
			t.Errorf("SetWidth(%v) error = %v, want %s", w, err, errors.ErrCodeInvalidWidth)
		}
		if c.Width() != 70 {
			t.Errorf("SetWidth(%v) changed width to %v", w, c.Width())
		}
	}
}

func TestNewColumnDefaults(t *testing.T) {
	c := NewColumn("a", -1)
	if c.Width() != 1 {
		t.Errorf("non-positive width should become 1, got %v", c.Width())
	}
	if !c.Visible() || !c.Resizable() || !c.Movable() {
		t.Error("new column should be visible, resizable and movable")
	}
	if c.IsRowDragHandle() || c.Resources() != nil {
		t.Error("new column should carry no capabilities")
	}
	if c.Title() != "a" {
		t.Errorf("Title() = %q, want id", c.Title())
	}
}

func TestColumnClampWidth(t *testing.T) {
	tests := []struct {
		name string
		opts []ColumnOption
		in   float64
		want float64
	}{
		{"unbounded", nil, 500, 500},
		{"below min", []ColumnOption{WithMinWidth(20)}, 5, 20},
		{"above max", []ColumnOption{WithMaxWidth(40)}, 90, 40},
		{"within bounds", []ColumnOption{WithMinWidth(20), WithMaxWidth(40)}, 30, 30},
		{"min only leaves top open", []ColumnOption{WithMinWidth(20)}, 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewColumn("c", 30, tt.opts...)
			if got := c.ClampWidth(tt.in); got != tt.want {
				t.Errorf("ClampWidth(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRowSetHeight(t *testing.T) {
	r := NewRow("r", 2)
	if err := r.SetHeight(0); !errors.Is(err, errors.ErrCodeInvalidHeight) {
		t.Errorf("SetHeight(0) error = %v", err)
	}
	if err := r.SetHeight(3); err != nil || r.Height() != 3 {
		t.Errorf("SetHeight(3) = %v, height %v", err, r.Height())
	}
}

func TestMoveColumnsTo(t *testing.T) {
	tests := []struct {
		name  string
		index int
		move  []string
		want  []string
	}{
		{"left single", 0, []string{"c"}, []string{"c", "a", "b", "d", "e"}},
		{"right single", 3, []string{"b"}, []string{"a", "c", "d", "b", "e"}},
		{"left block", 0, []string{"c", "d"}, []string{"c", "d", "a", "b", "e"}},
		{"right block ends at index", 4, []string{"b", "c"}, []string{"a", "d", "e", "b", "c"}},
		{"same position", 1, []string{"b", "c"}, []string{"a", "b", "c", "d", "e"}},
		{"right inside own run", 2, []string{"b", "c"}, []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newData("a", "b", "c", "d", "e")
			var move []*Column
			for _, id := range tt.move {
				move = append(move, d.ColumnByID(id))
			}
			if err := d.MoveColumnsTo(tt.index, move); err != nil {
				t.Fatalf("MoveColumnsTo() error: %v", err)
			}
			if got := ids(d.Columns()); !equalStrings(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveColumnsToRejects(t *testing.T) {
	d := newData("a", "b", "c")
	stranger := NewColumn("x", 10)

	tests := []struct {
		name  string
		index int
		move  []*Column
		code  errors.Code
	}{
		{"index too large", 3, []*Column{d.Column(0)}, errors.ErrCodeInvalidIndex},
		{"negative index", -1, []*Column{d.Column(0)}, errors.ErrCodeInvalidIndex},
		{"unknown column", 0, []*Column{stranger}, errors.ErrCodeNotFound},
		{"not contiguous", 1, []*Column{d.Column(0), d.Column(2)}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.MoveColumnsTo(tt.index, tt.move)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
			if got := ids(d.Columns()); !equalStrings(got, []string{"a", "b", "c"}) {
				t.Errorf("rejected move changed order to %v", got)
			}
		})
	}
}

func TestMoveRowsToKeepsRunOrder(t *testing.T) {
	d := NewData()
	for _, id := range []string{"r0", "r1", "r2", "r3", "r4"} {
		d.AppendRow(NewRow(id, 1))
	}
	d.Row(2).SetCollapsed(true)

	run := []*Row{d.Row(1), d.Row(2)}
	if err := d.MoveRowsTo(4, run); err != nil {
		t.Fatalf("MoveRowsTo() error: %v", err)
	}
	want := []string{"r0", "r3", "r4", "r1", "r2"}
	if got := rowIDs(d.Rows()); !equalStrings(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	if err := d.MoveRowsTo(0, run); err != nil {
		t.Fatalf("MoveRowsTo() error: %v", err)
	}
	want = []string{"r1", "r2", "r0", "r3", "r4"}
	if got := rowIDs(d.Rows()); !equalStrings(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if !d.Row(1).Collapsed() {
		t.Error("collapsed row should still follow its anchor")
	}
}

func TestHeaderRowCount(t *testing.T) {
	d := NewData()
	d.AppendColumn(NewColumn("a", 1, WithHeaders(Header("g"), Header("a"))))
	d.AppendColumn(NewColumn("b", 1, WithHeaders(Header("b"))))
	if got := d.HeaderRowCount(); got != 2 {
		t.Errorf("HeaderRowCount() = %d, want 2", got)
	}
}

func TestColumnDraggingSwitch(t *testing.T) {
	d := NewData()
	if !d.ColumnDraggingEnabled() {
		t.Error("column dragging should default to enabled")
	}
	d.SetColumnDraggingEnabled(false)
	if d.ColumnDraggingEnabled() {
		t.Error("SetColumnDraggingEnabled(false) had no effect")
	}
}
