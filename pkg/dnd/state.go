package dnd

import (
	"slices"

	"github.com/matzehuels/gridwork/pkg/canvas"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
)

// Operation is the drag-and-drop state machine's current state.
type Operation int

const (
	None Operation = iota
	ColumnResizePending
	ColumnResize
	ColumnMovePending
	ColumnMove
	RowMovePending
	RowMove
)

var operationNames = [...]string{
	None:                "NONE",
	ColumnResizePending: "COLUMN_RESIZE_PENDING",
	ColumnResize:        "COLUMN_RESIZE",
	ColumnMovePending:   "COLUMN_MOVE_PENDING",
	ColumnMove:          "COLUMN_MOVE",
	RowMovePending:      "ROW_MOVE_PENDING",
	RowMove:             "ROW_MOVE",
}

// String returns the upper-case state name.
func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationNames) {
		return "UNKNOWN"
	}
	return operationNames[o]
}

// Pending reports whether o is a hover state waiting for a press.
func (o Operation) Pending() bool {
	return o == ColumnResizePending || o == ColumnMovePending || o == RowMovePending
}

// Active reports whether o is a committed drag.
func (o Operation) Active() bool {
	return o == ColumnResize || o == ColumnMove || o == RowMove
}

// Activate returns the active state a pending state commits to, and false
// for every other state.
func (o Operation) Activate() (Operation, bool) {
	switch o {
	case ColumnResizePending:
		return ColumnResize, true
	case ColumnMovePending:
		return ColumnMove, true
	case RowMovePending:
		return RowMove, true
	}
	return o, false
}

// State is the drag-and-drop state of one layer. There is at most one
// pending or active drag per State.
type State struct {
	op     Operation
	widget *canvas.Widget

	columns   []*grid.Column
	header    grid.HeaderMetaData
	hasHeader bool
	rows      []*grid.Row

	initialX     float64
	initialWidth float64

	highlight geom.Rect
	cursor    canvas.Cursor
}

// NewState returns a cleared state.
func NewState() *State {
	return &State{}
}

// Operation returns the current operation.
func (s *State) Operation() Operation { return s.op }

// Widget returns the widget targeted by the current operation, or nil.
func (s *State) Widget() *canvas.Widget { return s.widget }

// Columns returns a copy of the targeted columns.
func (s *State) Columns() []*grid.Column { return slices.Clone(s.columns) }

// HeaderMetaData returns the header cell grabbed by a column move.
func (s *State) HeaderMetaData() (grid.HeaderMetaData, bool) { return s.header, s.hasHeader }

// Rows returns a copy of the targeted rows, lead row first.
func (s *State) Rows() []*grid.Row { return slices.Clone(s.rows) }

// InitialX returns the local pointer X recorded when the drag started.
func (s *State) InitialX() float64 { return s.initialX }

// InitialColumnWidth returns the resized column's width when the drag started.
func (s *State) InitialColumnWidth() float64 { return s.initialWidth }

// Highlight returns the marker drawn over the dragged columns or rows, in
// layer space. It is empty unless a move is active.
func (s *State) Highlight() geom.Rect { return s.highlight }

// Cursor returns the last cursor the handlers set.
func (s *State) Cursor() canvas.Cursor { return s.cursor }

// Reset clears every target and returns to [None]. The cursor is kept.
func (s *State) Reset() {
	s.clearTargets()
	s.op = None
}

func (s *State) clearTargets() {
	s.widget = nil
	s.columns = nil
	s.header, s.hasHeader = grid.HeaderMetaData{}, false
	s.rows = nil
	s.initialX, s.initialWidth = 0, 0
	s.highlight = geom.Rect{}
}

func (s *State) targetResize(w *canvas.Widget, c *grid.Column) {
	s.clearTargets()
	s.widget = w
	s.columns = []*grid.Column{c}
}

func (s *State) targetColumnMove(w *canvas.Widget, block []*grid.Column, md grid.HeaderMetaData) {
	s.clearTargets()
	s.widget = w
	s.columns = block
	s.header, s.hasHeader = md, true
}

func (s *State) targetRows(w *canvas.Widget, rows []*grid.Row) {
	s.clearTargets()
	s.widget = w
	s.rows = rows
}
