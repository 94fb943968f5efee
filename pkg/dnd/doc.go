// Package dnd implements pointer-driven drag and drop for grid widgets:
// resizing a column by its right edge, moving a block of columns by its
// header, and moving rows by a drag-handle column.
//
// # State machine
//
// A [State] holds the current [Operation] and the targets it applies to.
// Hovering produces a pending operation; a press commits it; a release ends
// it:
//
//	NONE --hover--> COLUMN_RESIZE_PENDING --press--> COLUMN_RESIZE --release--> NONE
//	NONE --hover--> COLUMN_MOVE_PENDING   --press--> COLUMN_MOVE   --release--> NONE
//	NONE --hover--> ROW_MOVE_PENDING      --press--> ROW_MOVE      --release--> NONE
//
// Pointer moves are handled by [Handler]; presses and releases by
// [PressHandler]. Both share one State, owned by whoever owns the layer:
//
//	st := dnd.NewState()
//	moves := dnd.NewHandler(layer, st)
//	clicks := dnd.NewPressHandler(layer, st)
//
// While an operation is active, moves go straight to its update routine.
// The targets are never re-discovered mid-drag, so a drag stays attached to
// the column or rows it started on even if the pointer leaves them.
//
// # Coordinates
//
// Events carry device coordinates. Every comparison against a column or
// row edge happens in the widget's local space, see [geom.ToLocal].
//
// # Failure policy
//
// Pointer input is interpreted best-effort. A widget without layout
// information, an out-of-range row, or a rejected model mutation turns the
// event into a no-op; nothing here returns an error.
package dnd
