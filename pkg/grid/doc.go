// Package grid holds the data model behind a grid widget: ordered columns,
// ordered rows and the header metadata that groups columns into blocks.
//
// # Ownership
//
// A [Data] owns its columns and rows. Column order is display order and the
// only legal ways to change it are [Data.MoveColumnsTo] and
// [Data.MoveRowsTo], both of which keep the moved subset in its original
// relative order.
//
// # Header blocks
//
// Every column carries one [HeaderMetaData] per header row it participates
// in. Adjacent columns whose metadata at the same header row compare equal
// render as one merged header cell and move together; such a run is a
// block. [BlockRange] discovers a block from any of its members.
//
// # Capabilities
//
// Some columns are row-drag handles and some hold per-cell [Resources]
// (rendered cells, open editors) bound to the coordinates they were created
// at. Both are fixed when the column is constructed:
//
//	handle := grid.NewColumn("drag", 3, grid.WithRowDragHandle())
//	name := grid.NewColumn("name", 20, grid.WithResources(editors))
package grid
