package dnd

import (
	"github.com/matzehuels/gridwork/pkg/geom"
)

// updateColumnResize sets the active column's width from the pointer's
// travel since the press, clamped to the column's bounds. Only a single
// active column can be resized.
func (h *Handler) updateColumnResize(device geom.Point) {
	w := h.state.widget
	if w == nil || len(h.state.columns) != 1 {
		return
	}
	col := h.state.columns[0]

	p := w.ToLocal(h.layer.Viewport(), device)
	width := col.ClampWidth(h.state.initialWidth + p.X - h.state.initialX)

	h.destroyResources(w.Model().Columns())
	if err := col.SetWidth(width); err != nil {
		h.cfg.logger.Debug("resize rejected", "column", col.ID(), "err", err)
		return
	}

	h.cfg.hooks.OnColumnResized(col.ID(), width)
	h.batch()
}
