package term

import (
	"math"

	"github.com/matzehuels/gridwork/pkg/cache"
	"github.com/matzehuels/gridwork/pkg/canvas"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
	"github.com/matzehuels/gridwork/pkg/layout"
)

const (
	// DefaultHeaderRowHeight is one terminal line per header row.
	DefaultHeaderRowHeight = 1.0

	separator  = '│'
	handleMark = "⠿"
)

// Option configures a [Renderer].
type Option func(*Renderer)

// WithHeaderRowHeight sets the height of one header row in local units.
func WithHeaderRowHeight(h float64) Option {
	return func(r *Renderer) {
		if h > 0 {
			r.headerRowHeight = h
		}
	}
}

// Renderer draws a grid widget onto a [Screen]. One local unit is one cell
// at scale 1.
type Renderer struct {
	data            *grid.Data
	headerRowHeight float64
}

// New creates a renderer for d.
func New(d *grid.Data, opts ...Option) *Renderer {
	r := &Renderer{data: d, headerRowHeight: DefaultHeaderRowHeight}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HeaderHeight implements [canvas.Renderer]. A grid without header
// metadata still gets one row for column titles.
func (r *Renderer) HeaderHeight() float64 {
	return float64(max(r.data.HeaderRowCount(), 1)) * r.headerRowHeight
}

// Draw paints w onto s as seen through the viewport transform t. The body
// block is drawn first and the floating block over it. highlight is in layer
// space; an empty rectangle draws none.
func (r *Renderer) Draw(s *Screen, w *canvas.Widget, t geom.Transform, highlight geom.Rect) {
	if !w.Visible() {
		return
	}
	info, ok := w.Layout().Info()
	if !ok {
		info = layout.Info{Body: layout.BlockInfo{Columns: w.Model().Columns()}}
	}

	p := painter{screen: s, widget: w, t: t}
	x := info.Body.X
	for _, c := range info.Body.Columns {
		if !c.Visible() {
			continue
		}
		p.column(c, x, false)
		x += c.Width()
	}
	x = info.Floating.X
	for _, c := range info.Floating.Columns {
		if !c.Visible() {
			continue
		}
		p.column(c, x, true)
		x += c.Width()
	}

	if !highlight.Empty() {
		tl := t.Apply(geom.Point{X: highlight.X, Y: highlight.Y})
		br := t.Apply(geom.Point{X: highlight.Right(), Y: highlight.Bottom()})
		x0, y0 := round(tl.X), round(tl.Y)
		s.Restyle(x0, y0, round(br.X)-x0, round(br.Y)-y0, StyleHighlight)
	}
}

type painter struct {
	screen *Screen
	widget *canvas.Widget
	t      geom.Transform
}

func (p *painter) deviceX(local float64) int {
	return round(p.t.Apply(geom.Point{X: p.widget.X() + local}).X)
}

func (p *painter) deviceY(local float64) int {
	return round(p.t.Apply(geom.Point{Y: p.widget.Y() + local}).Y)
}

func (p *painter) column(c *grid.Column, localX float64, floating bool) {
	left, right := p.deviceX(localX), p.deviceX(localX+c.Width())
	if right <= left {
		return
	}
	p.body(c, left, right-left, floating)
	p.header(c, localX, left, right)
}

func (p *painter) body(c *grid.Column, left, cells int, floating bool) {
	d := p.widget.Model()
	index := d.ColumnIndex(c)
	cc := cellCacheOf(c)

	y := p.widget.HeaderHeight()
	for j, row := range d.Rows() {
		top, bottom := p.deviceY(y), p.deviceY(y+row.Height())
		y += row.Height()
		if bottom <= top {
			continue
		}

		st := StyleBody
		switch {
		case row.Collapsed():
			st = StyleCollapsed
		case c.IsRowDragHandle():
			st = StyleHandle
		case floating:
			st = StyleFloating
		}

		text := row.Cell(c.ID())
		if c.IsRowDragHandle() {
			text = handleMark
		}
		p.screen.Put(left, top, cachedCell(cc, j, index, cells, text), st)
		for ly := top + 1; ly < bottom; ly++ {
			p.screen.Put(left, ly, withSeparator("", cells), st)
		}
	}
}

// header draws the column's slice of each header row. A header cell spans
// its whole block; each column draws the part that lies above it.
func (p *painter) header(c *grid.Column, localX float64, left, right int) {
	w := p.widget
	all := w.Model().Columns()
	index := w.Model().ColumnIndex(c)
	minY, _ := w.HeaderBand()
	headerHeight := w.HeaderHeight()

	mds := c.HeaderMetaData()
	if len(mds) == 0 {
		p.headerRow(c.Title(), minY, minY+headerHeight, left, right, left, right)
		return
	}

	rowHeight := headerHeight / float64(len(mds))
	for i, md := range mds {
		start, end, _ := grid.BlockRange(all, i, index)
		blockLeft := localX - grid.BlockWidth(all, start, index-1)
		blockRight := blockLeft + grid.BlockWidth(all, start, end)

		top := minY + float64(i)*rowHeight
		p.headerRow(md.Group, top, top+rowHeight, left, right, p.deviceX(blockLeft), p.deviceX(blockRight))
	}
}

func (p *painter) headerRow(label string, top, bottom float64, left, right, blockLeft, blockRight int) {
	y0, y1 := p.deviceY(top), p.deviceY(bottom)
	if y1 <= y0 || blockRight <= blockLeft {
		return
	}
	text := withSeparator(label, blockRight-blockLeft)
	blank := withSeparator("", blockRight-blockLeft)

	from, to := left-blockLeft, right-blockLeft
	from, to = max(from, 0), min(to, len(text))
	if from >= to {
		return
	}
	p.screen.Put(left, y0, text[from:to], StyleHeader)
	for y := y0 + 1; y < y1; y++ {
		p.screen.Put(left, y, blank[from:to], StyleHeader)
	}
}

// withSeparator lays text out in cells, ending with a column separator when
// there is room for one.
func withSeparator(text string, cells int) []rune {
	if cells < 2 {
		return Cells(text, cells)
	}
	return append(Cells(text, cells-1), separator)
}

func cachedCell(cc *cache.CellCache, row, col, cells int, text string) []rune {
	if cc == nil {
		return withSeparator(text, cells)
	}
	if s, ok := cc.Lookup(row, col, float64(cells)); ok {
		return []rune(s)
	}
	out := withSeparator(text, cells)
	cc.Store(row, col, float64(cells), string(out))
	return out
}

// cellCacheOf finds the cell cache among a column's resources.
func cellCacheOf(c *grid.Column) *cache.CellCache {
	switch r := c.Resources().(type) {
	case *cache.CellCache:
		return r
	case grid.ResourceSet:
		for _, m := range r {
			if cc, ok := m.(*cache.CellCache); ok {
				return cc
			}
		}
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}

var _ canvas.Renderer = (*Renderer)(nil)
