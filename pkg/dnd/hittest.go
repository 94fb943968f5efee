package dnd

import (
	"github.com/matzehuels/gridwork/pkg/canvas"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
	"github.com/matzehuels/gridwork/pkg/layout"
)

// findTarget clears the state and searches the layer's widgets, in order,
// for something under the pointer. The first widget with a target wins.
func (h *Handler) findTarget(device geom.Point) {
	h.state.clearTargets()
	h.setOperation(None)
	h.setCursor(canvas.CursorDefault)

	vp := h.layer.Viewport()
	for _, w := range h.layer.Widgets() {
		if !w.Visible() || !w.Model().ColumnDraggingEnabled() {
			continue
		}

		headerHeight := w.HeaderHeight()
		headerMinY, headerMaxY := w.HeaderBand()

		p := w.ToLocal(vp, device)
		if p.X < 0 || p.X > w.Width() {
			continue
		}
		if p.Y < headerMinY || p.Y > w.Height() {
			continue
		}

		if p.Y < headerMaxY {
			h.findMovableColumns(w, headerHeight, headerMinY, p)
		} else {
			h.findMovableRows(w, p)
			h.findResizableColumn(w, p.X)
		}
		if h.state.widget != nil {
			break
		}
	}

	vp.SetMediatorsEnabled(h.state.widget == nil)
}

// findResizableColumn looks for a column whose right edge is within the
// tolerance of cx. Floating columns are tried first; body columns hidden
// under the floating block are skipped.
func (h *Handler) findResizableColumn(w *canvas.Widget, cx float64) {
	info, ok := w.Layout().Info()
	if !ok {
		return
	}

	col := h.resizeEdge(info.Floating.Columns, info.Floating.X, cx, -1)
	if col == nil {
		col = h.resizeEdge(info.Body.Columns, info.Body.X, cx, info.Floating.Right())
	}
	if col == nil {
		return
	}

	h.state.targetResize(w, col)
	h.setOperation(ColumnResizePending)
	h.setCursor(canvas.CursorColResize)
}

// resizeEdge walks cols from offsetX and returns the first visible,
// resizable column whose right edge is near cx and lies beyond minRight.
func (h *Handler) resizeEdge(cols []*grid.Column, offsetX, cx, minRight float64) *grid.Column {
	tol := h.cfg.tolerance
	for _, c := range cols {
		if !c.Visible() {
			continue
		}
		edge := offsetX + c.Width()
		if c.Resizable() && edge > minRight && cx > edge-tol && cx < edge+tol {
			return c
		}
		offsetX = edge
	}
	return nil
}

// findMovableColumns looks for a movable header block under p. Each header
// row of a column is an equal share of the header height. A block that
// would straddle the floating and body regions aborts the search.
func (h *Handler) findMovableColumns(w *canvas.Widget, headerHeight, headerMinY float64, p geom.Point) {
	info, ok := w.Layout().Info()
	if !ok {
		return
	}

	d := w.Model()
	all := d.Columns()
	floatingRight := info.Floating.Right()

	offsetX := info.Body.X
	for _, c := range info.Body.Columns {
		if !c.Visible() {
			continue
		}
		width := c.Width()
		mds := c.HeaderMetaData()
		rowHeight := headerHeight / float64(len(mds))

		for row, md := range mds {
			if !c.Movable() {
				break
			}
			if p.Y >= float64(row+1)*rowHeight+headerMinY {
				continue
			}
			if p.X <= floatingRight || p.X <= offsetX || p.X >= offsetX+width {
				continue
			}

			block := grid.BlockColumns(all, row, d.ColumnIndex(c))
			if len(block) == 0 || straddlesFloating(block, info.Floating) {
				return
			}

			h.state.targetColumnMove(w, block, md)
			h.setOperation(ColumnMovePending)
			h.setCursor(canvas.CursorMove)
			return
		}
		offsetX += width
	}
}

func straddlesFloating(block []*grid.Column, floating layout.BlockInfo) bool {
	for _, c := range block {
		if floating.Contains(c) {
			return true
		}
	}
	return false
}

// findMovableRows targets the row under p when the pointer is over a
// row-drag-handle column. Collapsed rows following the lead row join it, and
// a collapsed row under the pointer selects its anchor row.
func (h *Handler) findMovableRows(w *canvas.Widget, p geom.Point) {
	if !overRowDragHandle(w, p.X) {
		return
	}

	d := w.Model()
	index, _, ok := rowAt(d, p.Y-w.HeaderHeight())
	if !ok {
		return
	}

	h.state.targetRows(w, rowRun(d, anchorRow(d, index)))
	h.setOperation(RowMovePending)
	h.setCursor(canvas.CursorMove)
}

func overRowDragHandle(w *canvas.Widget, cx float64) bool {
	info, ok := w.Layout().Info()
	if !ok {
		return false
	}
	return rowDragHandleAt(info.Floating, cx) || rowDragHandleAt(info.Body, cx)
}

func rowDragHandleAt(b layout.BlockInfo, cx float64) bool {
	offsetX := b.X
	for _, c := range b.Columns {
		if !c.Visible() {
			continue
		}
		if c.IsRowDragHandle() && cx > offsetX && cx < offsetX+c.Width() {
			return true
		}
		offsetX += c.Width()
	}
	return false
}

// rowAt walks rows top-down until the accumulated height reaches offsetY.
// It returns the row index and the pointer's offset inside that row.
func rowAt(d *grid.Data, offsetY float64) (index int, within float64, ok bool) {
	for i, r := range d.Rows() {
		if r.Height() >= offsetY {
			return i, offsetY, true
		}
		offsetY -= r.Height()
	}
	return 0, 0, false
}

// rowRun returns the row at index plus the collapsed rows directly after it.
// anchorRow returns the index of the row that a collapsed row at index
// travels with.
func anchorRow(d *grid.Data, index int) int {
	for index > 0 && d.Row(index).Collapsed() {
		index--
	}
	return index
}

func rowRun(d *grid.Data, index int) []*grid.Row {
	rows := []*grid.Row{d.Row(index)}
	for i := index + 1; i < d.RowCount() && d.Row(i).Collapsed(); i++ {
		rows = append(rows, d.Row(i))
	}
	return rows
}
