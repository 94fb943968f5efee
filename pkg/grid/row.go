package grid

import (
	"github.com/matzehuels/gridwork/pkg/errors"
)

// Row is one row of a grid. Collapsed rows stay in the row sequence and keep
// their height; they travel with the nearest preceding expanded row when
// rows are dragged.
type Row struct {
	id        string
	height    float64
	collapsed bool
	cells     map[string]string
}

// NewRow creates an expanded row. A non-positive height is replaced with 1.
func NewRow(id string, height float64) *Row {
	if !(height > 0) {
		height = 1
	}
	return &Row{id: id, height: height, cells: make(map[string]string)}
}

// ID returns the row identifier.
func (r *Row) ID() string { return r.id }

// Height returns the row height in local units.
func (r *Row) Height() float64 { return r.height }

// SetHeight changes the height, rejecting non-positive values.
func (r *Row) SetHeight(h float64) error {
	if err := errors.ValidatePositive(errors.ErrCodeInvalidHeight, "row "+r.id+" height", h); err != nil {
		return err
	}
	r.height = h
	return nil
}

// Collapsed reports whether the row is hidden under its anchor row.
func (r *Row) Collapsed() bool { return r.collapsed }

// SetCollapsed collapses or expands the row.
func (r *Row) SetCollapsed(v bool) { r.collapsed = v }

// Cell returns the value stored for a column id.
func (r *Row) Cell(columnID string) string { return r.cells[columnID] }

// SetCell stores a value for a column id.
func (r *Row) SetCell(columnID, value string) { r.cells[columnID] = value }
