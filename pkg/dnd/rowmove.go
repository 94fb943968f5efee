package dnd

import (
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
)

// updateRowMove moves the active rows to the row under the pointer. The
// pointer must cross the middle of the target row before the rows move, in
// either direction. Rows never land inside another anchor's collapsed run.
func (h *Handler) updateRowMove(device geom.Point) {
	w := h.state.widget
	rows := h.state.rows
	if w == nil || len(rows) == 0 {
		return
	}

	d := w.Model()
	headerHeight := w.HeaderHeight()
	lead := rows[0]
	leadIndex := d.RowIndex(lead)
	if leadIndex < 0 {
		return
	}

	cy := w.ToLocal(h.layer.Viewport(), device).Y
	if cy < headerHeight || cy > w.Height() {
		return
	}

	target, within, ok := rowAt(d, cy-headerHeight)
	if !ok {
		return
	}
	half := d.Row(target).Height() / 2
	switch {
	case target >= leadIndex && target < leadIndex+len(rows):
		return
	case target < leadIndex && within > half:
		return
	case target > leadIndex && within < half:
		return
	}

	anchor := anchorRow(d, target)
	if target > leadIndex {
		target = anchor + len(rowRun(d, anchor)) - 1
	} else {
		target = anchor
	}

	h.destroyResources(d.Columns())
	if err := d.MoveRowsTo(target, rows); err != nil {
		h.cfg.logger.Debug("row move rejected", "target", target, "err", err)
		return
	}

	h.state.highlight.Y = w.Y() + w.Layout().RowOffset(d.RowIndex(lead)) + headerHeight
	h.cfg.hooks.OnRowsMoved(rowIDs(rows), target)
	h.batch()
}

func rowIDs(rows []*grid.Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID()
	}
	return ids
}
