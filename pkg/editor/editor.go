// Package editor provides in-place text editing of grid cells.
//
// An [Editor] belongs to one column. Opening it on a row binds a
// bubbles/textinput model to that row's index; committing writes the input
// back to the row at the same index. Because the binding is positional, an
// open cell must be thrown away when rows or columns move, and Editor
// implements [grid.Resources] for exactly that.
package editor

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/gridwork/pkg/errors"
	"github.com/matzehuels/gridwork/pkg/grid"
)

// DefaultCharLimit bounds the length of an edited value.
const DefaultCharLimit = 256

// Cell is an open editor bound to a row index.
type Cell struct {
	Row   int
	Input textinput.Model
}

// Editor edits the cells of one column.
type Editor struct {
	data   *grid.Data
	column string
	active *Cell

	destroyed int
}

// New creates an editor for the column with the given id.
func New(d *grid.Data, columnID string) *Editor {
	return &Editor{data: d, column: columnID}
}

// Column returns the edited column's id.
func (e *Editor) Column() string { return e.column }

// Open starts editing the cell at row, replacing any open cell.
func (e *Editor) Open(row int, width int) (*Cell, error) {
	r := e.data.Row(row)
	if r == nil {
		return nil, errors.New(errors.ErrCodeInvalidIndex, "row %d out of range [0, %d)", row, e.data.RowCount())
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = DefaultCharLimit
	ti.Width = max(width, 1)
	ti.SetValue(r.Cell(e.column))
	ti.Focus()

	e.active = &Cell{Row: row, Input: ti}
	return e.active, nil
}

// Active returns the open cell or nil.
func (e *Editor) Active() *Cell { return e.active }

// Update forwards a message to the open cell's input.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	if e.active == nil {
		return nil
	}
	var cmd tea.Cmd
	e.active.Input, cmd = e.active.Input.Update(msg)
	return cmd
}

// View renders the open cell, or nothing.
func (e *Editor) View() string {
	if e.active == nil {
		return ""
	}
	return e.active.Input.View()
}

// Commit writes the open cell's value to its row and closes it.
func (e *Editor) Commit() error {
	if e.active == nil {
		return errors.New(errors.ErrCodeNotFound, "no open cell in column %s", e.column)
	}
	c := e.active
	e.active = nil

	r := e.data.Row(c.Row)
	if r == nil {
		return errors.New(errors.ErrCodeInvalidIndex, "row %d no longer exists", c.Row)
	}
	r.SetCell(e.column, c.Input.Value())
	return nil
}

// Cancel closes the open cell without writing.
func (e *Editor) Cancel() { e.active = nil }

// DestroyResources closes the open cell without writing.
func (e *Editor) DestroyResources() {
	if e.active != nil {
		e.destroyed++
	}
	e.active = nil
}

// Destroyed returns how many open cells were dropped by DestroyResources.
func (e *Editor) Destroyed() int { return e.destroyed }

var _ grid.Resources = (*Editor)(nil)
