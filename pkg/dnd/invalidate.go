package dnd

import "github.com/matzehuels/gridwork/pkg/grid"

// destroyResources drops the cached per-cell resources of every column.
// It must run before any resize or reorder is applied to the model.
func (h *Handler) destroyResources(cols []*grid.Column) {
	n := 0
	for _, c := range cols {
		if r := c.Resources(); r != nil {
			r.DestroyResources()
			n++
		}
	}
	if n > 0 {
		h.cfg.logger.Debug("cell resources destroyed", "columns", n)
	}
}
