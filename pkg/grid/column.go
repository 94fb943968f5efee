package grid

import (
	"github.com/matzehuels/gridwork/pkg/errors"
)

// Resources is implemented by per-column state that caches values tied to
// cell coordinates. DestroyResources must drop everything cached: once rows
// or columns move, the cached coordinates point at the wrong cells.
type Resources interface {
	DestroyResources()
}

// Column is one column of a grid.
type Column struct {
	id     string
	title  string
	width  float64
	minW   float64
	maxW   float64
	hasMin bool
	hasMax bool

	visible   bool
	resizable bool
	movable   bool
	floatable bool

	headers []HeaderMetaData

	rowDragHandle bool
	resources     Resources
}

// ColumnOption configures a Column at construction.
type ColumnOption func(*Column)

// WithTitle sets the label shown in the column's last header row.
func WithTitle(title string) ColumnOption {
	return func(c *Column) { c.title = title }
}

// WithMinWidth bounds resizing from below.
func WithMinWidth(w float64) ColumnOption {
	return func(c *Column) { c.minW, c.hasMin = w, true }
}

// WithMaxWidth bounds resizing from above.
func WithMaxWidth(w float64) ColumnOption {
	return func(c *Column) { c.maxW, c.hasMax = w, true }
}

// WithHeaders sets the header metadata, one entry per header row, top first.
func WithHeaders(h ...HeaderMetaData) ColumnOption {
	return func(c *Column) { c.headers = append([]HeaderMetaData(nil), h...) }
}

// Hidden creates the column invisible.
func Hidden() ColumnOption {
	return func(c *Column) { c.visible = false }
}

// Fixed disables both resizing and moving.
func Fixed() ColumnOption {
	return func(c *Column) { c.resizable, c.movable = false, false }
}

// NotResizable disables resizing only.
func NotResizable() ColumnOption {
	return func(c *Column) { c.resizable = false }
}

// NotMovable disables moving only.
func NotMovable() ColumnOption {
	return func(c *Column) { c.movable = false }
}

// Floatable lets the column pin to the left edge of the visible area when
// the grid scrolls horizontally. Only leading floatable columns pin.
func Floatable() ColumnOption {
	return func(c *Column) { c.floatable = true }
}

// WithRowDragHandle marks the column as the grip used to drag rows.
func WithRowDragHandle() ColumnOption {
	return func(c *Column) { c.rowDragHandle = true }
}

// WithResources attaches coordinate-bound per-cell resources.
func WithResources(r Resources) ColumnOption {
	return func(c *Column) { c.resources = r }
}

// NewColumn creates a visible, resizable, movable column. A non-positive
// width is replaced with 1; use [Column.SetWidth] where the caller needs the
// violation reported.
func NewColumn(id string, width float64, opts ...ColumnOption) *Column {
	if !(width > 0) {
		width = 1
	}
	c := &Column{
		id:        id,
		title:     id,
		width:     width,
		visible:   true,
		resizable: true,
		movable:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the column identifier.
func (c *Column) ID() string { return c.id }

// Title returns the column label.
func (c *Column) Title() string { return c.title }

// Width returns the current width in local units.
func (c *Column) Width() float64 { return c.width }

// SetWidth changes the width. Non-positive widths are rejected with
// ErrCodeInvalidWidth and leave the column unchanged.
func (c *Column) SetWidth(w float64) error {
	if err := errors.ValidatePositive(errors.ErrCodeInvalidWidth, "column "+c.id+" width", w); err != nil {
		return err
	}
	c.width = w
	return nil
}

// MinimumWidth returns the lower resize bound, if configured.
func (c *Column) MinimumWidth() (float64, bool) { return c.minW, c.hasMin }

// MaximumWidth returns the upper resize bound, if configured.
func (c *Column) MaximumWidth() (float64, bool) { return c.maxW, c.hasMax }

// ClampWidth restricts w to the configured bounds. Missing bounds leave
// that direction unconstrained.
func (c *Column) ClampWidth(w float64) float64 {
	if c.hasMin && w < c.minW {
		w = c.minW
	}
	if c.hasMax && w > c.maxW {
		w = c.maxW
	}
	return w
}

// Visible reports whether the column is rendered.
func (c *Column) Visible() bool { return c.visible }

// SetVisible shows or hides the column.
func (c *Column) SetVisible(v bool) { c.visible = v }

// Resizable reports whether the column edge can be dragged.
func (c *Column) Resizable() bool { return c.resizable }

// Movable reports whether the column can be dragged by its header.
func (c *Column) Movable() bool { return c.movable }

// IsFloatable reports whether the column may pin to the visible left edge.
func (c *Column) IsFloatable() bool { return c.floatable }

// HeaderMetaData returns the per-header-row metadata, top row first.
// The slice must not be modified.
func (c *Column) HeaderMetaData() []HeaderMetaData { return c.headers }

// HeaderAt returns the metadata at header row i, if the column has one.
func (c *Column) HeaderAt(i int) (HeaderMetaData, bool) {
	if i < 0 || i >= len(c.headers) {
		return HeaderMetaData{}, false
	}
	return c.headers[i], true
}

// IsRowDragHandle reports whether the column is a row-drag grip.
func (c *Column) IsRowDragHandle() bool { return c.rowDragHandle }

// Resources returns the attached per-cell resources or nil.
func (c *Column) Resources() Resources { return c.resources }

// ResourceSet combines several resources attached to one column.
type ResourceSet []Resources

// DestroyResources destroys every member.
func (s ResourceSet) DestroyResources() {
	for _, r := range s {
		if r != nil {
			r.DestroyResources()
		}
	}
}
