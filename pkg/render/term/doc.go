// Package term renders grid widgets as terminal text.
//
// A [Renderer] paints widgets onto a [Screen], a fixed-size grid of cells,
// which is then turned into a string either plain ([Screen.String]) or
// styled with a lipgloss [Theme] ([Screen.Render]).
//
// Geometry follows the interaction code exactly: a header row of a column
// with n header cells is 1/n of the header height, columns are laid out by
// the widget's [layout.Provider], and pinned (floating) columns are drawn
// over the scrolled body. Header cells of a block are merged into one label
// spanning the block.
//
// Rendered body cells are memoized in the column's [cache.CellCache] when
// one is attached to the column's resources.
//
// [layout.Provider]: github.com/matzehuels/gridwork/pkg/layout.Provider
// [cache.CellCache]: github.com/matzehuels/gridwork/pkg/cache.CellCache
package term
