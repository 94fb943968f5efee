// Package nodelink renders the header block hierarchy of a grid as a
// node-link diagram.
//
// # Overview
//
// Grouped headers form a tree: each header row splits the columns into
// blocks, every block sits inside a block of the row above, and columns are
// the leaves. The tree is what decides which columns travel together when a
// header is dragged, and a diagram of it is the quickest way to check a
// grid definition.
//
// # Usage
//
// Convert a grid to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, labels include header scopes and column widths
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
