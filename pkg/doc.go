// Package pkg holds the libraries behind gridwork, a pointer-driven
// drag-and-drop engine for grid widgets.
//
// # Overview
//
// A grid widget shows columns under a hierarchy of merged header blocks,
// optional floating columns pinned to the left edge and a row drag handle
// column. The engine watches pointer moves over a layer of such widgets
// and lets the user resize a column, move a header block with all of its
// columns, or move a run of rows.
//
// # Architecture
//
//	pointer events (terminal mouse, HTTP, trace file)
//	         ↓
//	    [workspace] routes events to dnd or the pan mediator
//	         ↓
//	    [dnd] hit-testing and the operation state machine
//	         ↓
//	    [grid] column and row order, widths, header metadata
//	         ↓
//	    [layout] floating and body blocks of the visible span
//	         ↓
//	    [render/term] cell-based drawing with the drag highlight
//
// # Main Packages
//
//   - [geom]: points, rectangles and the viewport transform
//   - [grid]: the grid model and header block ranges
//   - [layout]: per-widget block layout
//   - [canvas]: viewport, mediators, widgets and the layer
//   - [dnd]: the drag-and-drop handlers and shared state
//   - [config]: TOML and YAML workspace definitions
//   - [workspace]: grids built from a config, wired to dnd
//   - [cache]: per-column rendered cell caches
//   - [editor]: inline cell editing
//   - [render/term]: terminal drawing
//   - [render/nodelink]: header block graphs as DOT and SVG
//   - [observability]: hooks and counters for dnd and HTTP events
//   - [httputil]: JSON helpers and a retrying client
//   - [errors]: coded errors
//   - [buildinfo]: version information
//
// [geom]: github.com/matzehuels/gridwork/pkg/geom
// [grid]: github.com/matzehuels/gridwork/pkg/grid
// [layout]: github.com/matzehuels/gridwork/pkg/layout
// [canvas]: github.com/matzehuels/gridwork/pkg/canvas
// [dnd]: github.com/matzehuels/gridwork/pkg/dnd
// [config]: github.com/matzehuels/gridwork/pkg/config
// [workspace]: github.com/matzehuels/gridwork/pkg/workspace
// [cache]: github.com/matzehuels/gridwork/pkg/cache
// [editor]: github.com/matzehuels/gridwork/pkg/editor
// [render/term]: github.com/matzehuels/gridwork/pkg/render/term
// [render/nodelink]: github.com/matzehuels/gridwork/pkg/render/nodelink
// [observability]: github.com/matzehuels/gridwork/pkg/observability
// [httputil]: github.com/matzehuels/gridwork/pkg/httputil
// [errors]: github.com/matzehuels/gridwork/pkg/errors
// [buildinfo]: github.com/matzehuels/gridwork/pkg/buildinfo
package pkg
