package dnd

import (
	"github.com/matzehuels/gridwork/pkg/canvas"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
)

// PressHandler commits pending operations on press and ends them on
// release. It shares its [State] with the layer's [Handler].
type PressHandler struct {
	layer *canvas.Layer
	state *State
	cfg   config
}

// NewPressHandler creates a press/release handler for layer operating on st.
func NewPressHandler(layer *canvas.Layer, st *State, opts ...Option) *PressHandler {
	return &PressHandler{layer: layer, state: st, cfg: newConfig(opts)}
}

// OnPointerPress commits a pending operation. It reports whether a drag
// started; when it did not, the press belongs to someone else.
func (p *PressHandler) OnPointerPress(device geom.Point) bool {
	st := p.state
	next, ok := st.op.Activate()
	if !ok || st.widget == nil {
		return false
	}
	w := st.widget
	local := w.ToLocal(p.layer.Viewport(), device)

	switch st.op {
	case ColumnResizePending:
		if len(st.columns) != 1 {
			return false
		}
		st.initialX = local.X
		st.initialWidth = st.columns[0].Width()

	case ColumnMovePending:
		if len(st.columns) == 0 {
			return false
		}
		d := w.Model()
		first, last := d.ColumnIndex(st.columns[0]), d.ColumnIndex(st.columns[len(st.columns)-1])
		if first < 0 || last < 0 {
			return false
		}
		minY, _ := w.HeaderBand()
		st.initialX = local.X
		st.highlight = geom.Rect{
			X:      w.X() + w.Layout().ColumnOffset(first),
			Y:      w.Y() + minY,
			Width:  grid.BlockWidth(d.Columns(), first, last),
			Height: w.Height() - minY,
		}

	case RowMovePending:
		if len(st.rows) == 0 {
			return false
		}
		d := w.Model()
		lead := d.RowIndex(st.rows[0])
		if lead < 0 {
			return false
		}
		height := 0.0
		for _, r := range st.rows {
			height += r.Height()
		}
		st.highlight = geom.Rect{
			X:      w.X(),
			Y:      w.Y() + w.HeaderHeight() + w.Layout().RowOffset(lead),
			Width:  w.Width(),
			Height: height,
		}
	}

	setOperation(st, &p.cfg, next)
	return true
}

// OnPointerRelease ends any pending or active operation, restores the
// default cursor and hands the pointer back to the viewport mediators. It
// reports whether there was anything to end.
func (p *PressHandler) OnPointerRelease() bool {
	if p.state.op == None {
		return false
	}
	p.state.clearTargets()
	setOperation(p.state, &p.cfg, None)
	setCursor(p.layer, p.state, canvas.CursorDefault)
	p.layer.Viewport().SetMediatorsEnabled(true)
	p.layer.Batch()
	return true
}
