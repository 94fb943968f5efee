// Package layout computes where a grid's columns are drawn.
//
// A grid is drawn in two horizontal blocks:
//   - the body block: the scrollable columns that intersect the visible area
//   - the floating block: leading floatable columns pinned to the left edge
//     of the visible area once the grid has scrolled past them
//
// Consumers go through [Provider]; [Helper] is the default implementation
// used by every widget in this module. Before its first layout pass a
// Helper reports no information, and consumers are expected to treat that
// as "nothing to do" rather than as an error.
package layout

import (
	"math"

	"github.com/matzehuels/gridwork/pkg/grid"
)

// BlockInfo describes one horizontal block of rendered columns.
// All coordinates are in the widget's local units.
type BlockInfo struct {
	Columns []*grid.Column
	X       float64
	Width   float64
}

// Right returns the X coordinate of the block's right edge.
func (b BlockInfo) Right() float64 { return b.X + b.Width }

// Contains reports whether c is rendered in this block.
func (b BlockInfo) Contains(c *grid.Column) bool {
	for _, bc := range b.Columns {
		if bc == c {
			return true
		}
	}
	return false
}

// Info is the result of one layout pass.
type Info struct {
	Body     BlockInfo
	Floating BlockInfo
}

// Provider supplies block layout for a single widget.
type Provider interface {
	// Info returns the most recent layout pass; ok is false before the first.
	Info() (info Info, ok bool)

	// ColumnOffset returns the X of the column at index in the unscrolled
	// grid, i.e. the sum of widths of the visible columns before it.
	ColumnOffset(index int) float64

	// RowOffset returns the Y of the row at index below the header.
	RowOffset(index int) float64
}

// Helper is the default [Provider], computing blocks from a [grid.Data].
type Helper struct {
	data  *grid.Data
	info  Info
	ready bool
}

// NewHelper creates a helper with no layout yet.
func NewHelper(d *grid.Data) *Helper {
	return &Helper{data: d}
}

// Info implements [Provider].
func (h *Helper) Info() (Info, bool) {
	return h.info, h.ready
}

// Invalidate drops the current layout until the next [Helper.Refresh].
func (h *Helper) Invalidate() {
	h.info = Info{}
	h.ready = false
}

// ColumnOffset implements [Provider].
func (h *Helper) ColumnOffset(index int) float64 {
	x := 0.0
	for i, c := range h.data.Columns() {
		if i >= index {
			break
		}
		if c.Visible() {
			x += c.Width()
		}
	}
	return x
}

// RowOffset implements [Provider].
func (h *Helper) RowOffset(index int) float64 {
	y := 0.0
	for i, r := range h.data.Rows() {
		if i >= index {
			break
		}
		y += r.Height()
	}
	return y
}

// Refresh runs a layout pass for the visible span [minX, maxX] expressed in
// the widget's local units. Use math.Inf(1) for maxX when the visible width
// is unknown.
func (h *Helper) Refresh(minX, maxX float64) {
	h.info = Info{
		Floating: h.floating(minX),
		Body:     h.body(minX, maxX),
	}
	h.ready = true
}

func (h *Helper) floating(minX float64) BlockInfo {
	if minX <= 0 {
		return BlockInfo{}
	}
	b := BlockInfo{X: minX}
	for _, c := range h.data.Columns() {
		if !c.Visible() {
			continue
		}
		if !c.IsFloatable() {
			break
		}
		b.Columns = append(b.Columns, c)
		b.Width += c.Width()
	}
	if len(b.Columns) == 0 {
		return BlockInfo{}
	}
	return b
}

func (h *Helper) body(minX, maxX float64) BlockInfo {
	if math.IsNaN(maxX) {
		maxX = math.Inf(1)
	}
	cols := h.data.Columns()
	first, last := -1, -1
	x := 0.0
	for i, c := range cols {
		if !c.Visible() {
			continue
		}
		left, right := x, x+c.Width()
		x = right
		if right <= minX || left >= maxX {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return BlockInfo{}
	}
	b := BlockInfo{
		Columns: append([]*grid.Column(nil), cols[first:last+1]...),
		X:       h.ColumnOffset(first),
	}
	for _, c := range b.Columns {
		if c.Visible() {
			b.Width += c.Width()
		}
	}
	return b
}
