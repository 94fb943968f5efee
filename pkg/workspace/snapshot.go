package workspace

import (
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
)

// Rect is a JSON-friendly rectangle in layer space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func rectOf(r geom.Rect) *Rect {
	if r.Empty() {
		return nil
	}
	return &Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Header is a header row entry as reported in snapshots.
type Header struct {
	Group string `json:"group"`
	Scope string `json:"scope,omitempty"`
}

// DragState is a point-in-time view of the shared dnd state.
type DragState struct {
	Operation string   `json:"operation"`
	Grid      string   `json:"grid,omitempty"`
	Columns   []string `json:"columns,omitempty"`
	Header    *Header  `json:"header,omitempty"`
	Rows      []string `json:"rows,omitempty"`
	Highlight *Rect    `json:"highlight,omitempty"`
	Cursor    string   `json:"cursor"`
	Batches   int      `json:"batches"`
}

// ColumnView describes one column of a grid.
type ColumnView struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Width     float64  `json:"width"`
	Visible   bool     `json:"visible"`
	Resizable bool     `json:"resizable"`
	Movable   bool     `json:"movable"`
	Floatable bool     `json:"floatable,omitempty"`
	RowHandle bool     `json:"row_handle,omitempty"`
	Headers   []Header `json:"headers,omitempty"`
}

// RowView describes one row of a grid.
type RowView struct {
	ID        string  `json:"id"`
	Height    float64 `json:"height"`
	Collapsed bool    `json:"collapsed,omitempty"`
}

// GridView describes a grid's current column and row order.
type GridView struct {
	Name           string       `json:"name"`
	Bounds         Rect         `json:"bounds"`
	ColumnDragging bool         `json:"column_dragging"`
	HeaderHeight   float64      `json:"header_height"`
	Columns        []ColumnView `json:"columns"`
	Rows           []RowView    `json:"rows"`
}

// DragState reports the shared dnd state.
func (ws *Workspace) DragState() DragState {
	st := ws.State
	ds := DragState{
		Operation: st.Operation().String(),
		Highlight: rectOf(st.Highlight()),
		Cursor:    ws.Cursor().String(),
		Batches:   ws.Layer.Batches(),
	}
	if w := st.Widget(); w != nil {
		ds.Grid = w.Name()
	}
	for _, c := range st.Columns() {
		ds.Columns = append(ds.Columns, c.ID())
	}
	if md, ok := st.HeaderMetaData(); ok {
		ds.Header = &Header{Group: md.Group, Scope: md.Scope}
	}
	for _, r := range st.Rows() {
		ds.Rows = append(ds.Rows, r.ID())
	}
	return ds
}

// View describes the grid's model.
func (g *Grid) View() GridView {
	w := g.Widget
	d := w.Model()
	b := w.Bounds()
	v := GridView{
		Name:           w.Name(),
		Bounds:         Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height},
		ColumnDragging: d.ColumnDraggingEnabled(),
		HeaderHeight:   w.HeaderHeight(),
		Columns:        make([]ColumnView, 0, d.ColumnCount()),
		Rows:           make([]RowView, 0, d.RowCount()),
	}
	for _, c := range d.Columns() {
		v.Columns = append(v.Columns, columnView(c))
	}
	for _, r := range d.Rows() {
		v.Rows = append(v.Rows, RowView{ID: r.ID(), Height: r.Height(), Collapsed: r.Collapsed()})
	}
	return v
}

func columnView(c *grid.Column) ColumnView {
	cv := ColumnView{
		ID:        c.ID(),
		Title:     c.Title(),
		Width:     c.Width(),
		Visible:   c.Visible(),
		Resizable: c.Resizable(),
		Movable:   c.Movable(),
		Floatable: c.IsFloatable(),
		RowHandle: c.IsRowDragHandle(),
	}
	for _, md := range c.HeaderMetaData() {
		cv.Headers = append(cv.Headers, Header{Group: md.Group, Scope: md.Scope})
	}
	return cv
}

// Views describes every grid in enumeration order.
func (ws *Workspace) Views() []GridView {
	out := make([]GridView, 0, len(ws.grids))
	for _, g := range ws.grids {
		out = append(out, g.View())
	}
	return out
}
