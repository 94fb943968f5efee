package grid

import (
	"slices"

	"github.com/matzehuels/gridwork/pkg/errors"
)

// Data is the model behind one grid widget.
type Data struct {
	columns []*Column
	rows    []*Row

	columnDragging bool
}

// NewData creates an empty model with column dragging enabled.
func NewData() *Data {
	return &Data{columnDragging: true}
}

// ColumnDraggingEnabled reports whether pointer interaction may resize or
// move anything in this model.
func (d *Data) ColumnDraggingEnabled() bool { return d.columnDragging }

// SetColumnDraggingEnabled toggles pointer interaction for the model.
func (d *Data) SetColumnDraggingEnabled(v bool) { d.columnDragging = v }

// AppendColumn adds a column at the end of the sequence.
func (d *Data) AppendColumn(c *Column) { d.columns = append(d.columns, c) }

// AppendRow adds a row at the end of the sequence.
func (d *Data) AppendRow(r *Row) { d.rows = append(d.rows, r) }

// Columns returns the columns in display order. The slice must not be modified.
func (d *Data) Columns() []*Column { return d.columns }

// Rows returns the rows in display order. The slice must not be modified.
func (d *Data) Rows() []*Row { return d.rows }

// ColumnCount returns the number of columns.
func (d *Data) ColumnCount() int { return len(d.columns) }

// RowCount returns the number of rows.
func (d *Data) RowCount() int { return len(d.rows) }

// Column returns the column at index i or nil when out of range.
func (d *Data) Column(i int) *Column {
	if i < 0 || i >= len(d.columns) {
		return nil
	}
	return d.columns[i]
}

// Row returns the row at index i or nil when out of range.
func (d *Data) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// ColumnIndex returns the position of c or -1.
func (d *Data) ColumnIndex(c *Column) int { return slices.Index(d.columns, c) }

// RowIndex returns the position of r or -1.
func (d *Data) RowIndex(r *Row) int { return slices.Index(d.rows, r) }

// ColumnByID finds a column by identifier.
func (d *Data) ColumnByID(id string) *Column {
	for _, c := range d.columns {
		if c.id == id {
			return c
		}
	}
	return nil
}

// HeaderRowCount returns the deepest header metadata sequence of any column.
func (d *Data) HeaderRowCount() int {
	n := 0
	for _, c := range d.columns {
		n = max(n, len(c.headers))
	}
	return n
}

// MoveColumnsTo moves a contiguous run of columns so that it lands at index.
// Moving left, the first moved column ends up at index; moving right, the
// last moved column ends up at index. The relative order of the run is
// preserved. Moving to the run's current position is a no-op.
func (d *Data) MoveColumnsTo(index int, cols []*Column) error {
	moved, err := moveRun(d.columns, index, cols, "column")
	if err != nil {
		return err
	}
	d.columns = moved
	return nil
}

// MoveRowsTo moves a contiguous run of rows with the same semantics as
// [Data.MoveColumnsTo].
func (d *Data) MoveRowsTo(index int, rows []*Row) error {
	moved, err := moveRun(d.rows, index, rows, "row")
	if err != nil {
		return err
	}
	d.rows = moved
	return nil
}

func moveRun[T comparable](all []T, index int, run []T, kind string) ([]T, error) {
	if len(run) == 0 {
		return all, nil
	}
	if index < 0 || index >= len(all) {
		return nil, errors.New(errors.ErrCodeInvalidIndex, "%s index %d out of range [0, %d)", kind, index, len(all))
	}
	start := slices.Index(all, run[0])
	if start < 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "%s to move is not part of the model", kind)
	}
	if start+len(run) > len(all) || !slices.Equal(all[start:start+len(run)], run) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%ss to move must be contiguous and in model order", kind)
	}
	if index == start {
		return all, nil
	}

	rest := make([]T, 0, len(all)-len(run))
	rest = append(rest, all[:start]...)
	rest = append(rest, all[start+len(run):]...)

	at := index
	if index > start {
		at = index - len(run) + 1
	}
	at = max(0, min(at, len(rest)))
	return slices.Insert(rest, at, run...), nil
}
