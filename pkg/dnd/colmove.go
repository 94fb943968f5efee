package dnd

import (
	"slices"

	"github.com/matzehuels/gridwork/pkg/canvas"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
)

// updateColumnMove moves the active block over the first candidate block of
// the same scope whose drop window contains the pointer. Blocks holding a
// floating column are never candidates. The drop window is
// centred on the candidate and as wide as the narrower of the two blocks.
// Left of the candidate's midpoint the block moves to the candidate's end
// index, otherwise to its start index.
func (h *Handler) updateColumnMove(device geom.Point) {
	w := h.state.widget
	active := h.state.columns
	if w == nil || len(active) == 0 || !h.state.hasHeader {
		return
	}
	info, ok := w.Layout().Info()
	if !ok {
		return
	}

	cx := w.ToLocal(h.layer.Viewport(), device).X
	if cx < info.Floating.Right() {
		return
	}

	d := w.Model()
	all := d.Columns()
	first, last := d.ColumnIndex(active[0]), d.ColumnIndex(active[len(active)-1])
	if first < 0 || last < 0 {
		return
	}
	activeWidth := grid.BlockWidth(all, first, last)

	for i, c := range all {
		if !c.Visible() || slices.Contains(active, c) {
			continue
		}
		for row, md := range c.HeaderMetaData() {
			if !md.SameScope(h.state.header) {
				continue
			}
			start := grid.BlockStart(all, md, row, i)
			end := grid.BlockEnd(all, md, row, i)
			if straddlesFloating(all[start:end+1], info.Floating) {
				continue
			}
			offset := w.Layout().ColumnOffset(start)
			width := grid.BlockWidth(all, start, end)

			minX := max(offset, offset+(width-activeWidth)/2)
			maxX := min(offset+width, offset+(width+activeWidth)/2)
			if cx <= minX || cx >= maxX {
				continue
			}

			target := start
			if cx < offset+width/2 {
				target = end
			}
			h.commitColumnMove(w, target)
			return
		}
	}
}

func (h *Handler) commitColumnMove(w *canvas.Widget, target int) {
	d := w.Model()
	active := h.state.columns

	h.destroyResources(d.Columns())
	if err := d.MoveColumnsTo(target, active); err != nil {
		h.cfg.logger.Debug("column move rejected", "target", target, "err", err)
		return
	}

	h.state.highlight.X = w.X() + w.Layout().ColumnOffset(d.ColumnIndex(active[0]))
	h.cfg.hooks.OnColumnsMoved(columnIDs(active), target)
	h.batch()
}

func columnIDs(cols []*grid.Column) []string {
	ids := make([]string, len(cols))
	for i, c := range cols {
		ids[i] = c.ID()
	}
	return ids
}
