// Package workspace assembles a drag-and-drop session from a configuration.
//
// [Build] creates the viewport, its pan and zoom mediators, one widget per
// configured grid with a terminal renderer, per-cell resources (a rendered
// cell cache and, for editable columns, a cell editor) and the dnd handlers
// sharing one [dnd.State]. Hosts feed pointer events through [Workspace.Move],
// [Workspace.Press] and [Workspace.Release] and paint with [Workspace.Draw].
//
// A Workspace is not safe for concurrent use; hosts serialize events.
package workspace

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridwork/pkg/cache"
	"github.com/matzehuels/gridwork/pkg/canvas"
	"github.com/matzehuels/gridwork/pkg/config"
	"github.com/matzehuels/gridwork/pkg/dnd"
	"github.com/matzehuels/gridwork/pkg/editor"
	"github.com/matzehuels/gridwork/pkg/errors"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/grid"
	"github.com/matzehuels/gridwork/pkg/observability"
	"github.com/matzehuels/gridwork/pkg/render/term"
)

// Option configures [Build].
type Option func(*options)

type options struct {
	logger *log.Logger
	hooks  observability.DnDHooks
	store  cache.Cache
}

// WithLogger sets the logger handed to the dnd handlers.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHooks sets the dnd observability hooks.
func WithHooks(h observability.DnDHooks) Option {
	return func(o *options) {
		if h != nil {
			o.hooks = h
		}
	}
}

// WithStore replaces the in-memory store behind the cell caches.
func WithStore(c cache.Cache) Option {
	return func(o *options) { o.store = c }
}

// Grid is one configured grid and its resources.
type Grid struct {
	Widget   *canvas.Widget
	Renderer *term.Renderer

	caches  map[string]*cache.CellCache
	editors map[string]*editor.Editor
}

// Name returns the grid's configured name.
func (g *Grid) Name() string { return g.Widget.Name() }

// Model returns the grid data.
func (g *Grid) Model() *grid.Data { return g.Widget.Model() }

// CellCache returns the cell cache of a column, or nil.
func (g *Grid) CellCache(columnID string) *cache.CellCache { return g.caches[columnID] }

// Editor returns the editor of an editable column, or nil.
func (g *Grid) Editor(columnID string) *editor.Editor { return g.editors[columnID] }

// ActiveEditor returns the editor with an open cell, or nil.
func (g *Grid) ActiveEditor() *editor.Editor {
	for _, e := range g.editors {
		if e.Active() != nil {
			return e
		}
	}
	return nil
}

// Edit opens the editor of columnID on row.
func (g *Grid) Edit(columnID string, row int) (*editor.Cell, error) {
	e := g.editors[columnID]
	if e == nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "column %s of grid %s is not editable", columnID, g.Name())
	}
	c := g.Model().ColumnByID(columnID)
	for _, other := range g.editors {
		other.Cancel()
	}
	return e.Open(row, int(c.Width()))
}

// Commit writes the open cell of columnID back to the model and drops the
// column's cached cells so the new value is drawn.
func (g *Grid) Commit(columnID string) error {
	e := g.editors[columnID]
	if e == nil {
		return errors.New(errors.ErrCodeNotFound, "no editor for column %s", columnID)
	}
	if err := e.Commit(); err != nil {
		return err
	}
	if cc := g.caches[columnID]; cc != nil {
		cc.DestroyResources()
	}
	return nil
}

// Workspace is a layer of grids wired to the dnd handlers.
type Workspace struct {
	Layer *canvas.Layer
	State *dnd.State
	Pan   *canvas.PanMediator
	Zoom  *canvas.ZoomMediator

	home   geom.Transform
	moves  *dnd.Handler
	clicks *dnd.PressHandler
	grids  []*Grid
	store  cache.Cache
	logger *log.Logger
}

// Build assembles a workspace from cfg.
func Build(cfg *config.Config, opts ...Option) (*Workspace, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "nil workspace config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		hooks:  observability.DnD(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil && cfg.Render.CellCache {
		o.store = cache.NewMemoryCache()
	}

	vc := cfg.Viewport
	vp := canvas.NewViewport(vc.Width, vc.Height)
	home := geom.Identity().Scale(vc.Scale, geom.Point{}).Translate(vc.PanX, vc.PanY)
	vp.SetTransform(home)
	pan := canvas.NewPanMediator(vp)
	zoom := canvas.NewZoomMediator(vp, vc.MinScale, vc.MaxScale)
	vp.AddMediator(pan)
	vp.AddMediator(zoom)

	layer := canvas.NewLayer(vp)
	ws := &Workspace{
		Layer:  layer,
		State:  dnd.NewState(),
		Pan:    pan,
		Zoom:   zoom,
		home:   home,
		store:  o.store,
		logger: o.logger,
	}

	for i := range cfg.Grids {
		ws.grids = append(ws.grids, ws.buildGrid(&cfg.Grids[i]))
	}
	for _, g := range ws.grids {
		layer.Add(g.Widget)
	}

	dndOpts := []dnd.Option{
		dnd.WithLogger(o.logger),
		dnd.WithResizeTolerance(cfg.DnD.ResizeTolerance),
		dnd.WithHooks(o.hooks),
	}
	ws.moves = dnd.NewHandler(layer, ws.State, dndOpts...)
	ws.clicks = dnd.NewPressHandler(layer, ws.State, dndOpts...)

	layer.Layout()
	o.logger.Debug("workspace built", "grids", len(ws.grids), "cell_cache", o.store != nil)
	return ws, nil
}

func (ws *Workspace) buildGrid(gc *config.GridConfig) *Grid {
	g := &Grid{
		caches:  make(map[string]*cache.CellCache),
		editors: make(map[string]*editor.Editor),
	}
	d := gc.Data(func(d *grid.Data, cc config.ColumnConfig) grid.Resources {
		var set grid.ResourceSet
		if ws.store != nil {
			c := cache.NewCellCache(gc.Name+"/"+cc.ID, ws.store)
			g.caches[cc.ID] = c
			set = append(set, c)
		}
		if cc.Editable {
			e := editor.New(d, cc.ID)
			g.editors[cc.ID] = e
			set = append(set, e)
		}
		if len(set) == 0 {
			return nil
		}
		return set
	})
	g.Renderer = term.New(d, term.WithHeaderRowHeight(gc.HeaderRowHeight))
	g.Widget = canvas.NewWidget(d, g.Renderer, canvas.WithName(gc.Name), canvas.At(gc.X, gc.Y))
	return g
}

// Grids returns the grids in enumeration order.
func (ws *Workspace) Grids() []*Grid { return ws.grids }

// Grid finds a grid by name.
func (ws *Workspace) Grid(name string) *Grid {
	for _, g := range ws.grids {
		if g.Name() == name {
			return g
		}
	}
	return nil
}

// GridOf returns the grid owning w.
func (ws *Workspace) GridOf(w *canvas.Widget) *Grid {
	for _, g := range ws.grids {
		if g.Widget == w {
			return g
		}
	}
	return nil
}

// Move handles a pointer move at a device point. While a pan is in
// progress the viewport follows the pointer and the dnd handler is not
// consulted.
func (ws *Workspace) Move(p geom.Point) {
	if ws.Pan.Dragging() {
		ws.Pan.Move(p)
		ws.Layer.Batch()
		return
	}
	ws.moves.OnPointerMove(p)
}

// Press handles a primary button press. A pending dnd operation wins;
// otherwise the press starts a pan if the pan mediator is enabled.
func (ws *Workspace) Press(p geom.Point) bool {
	if ws.clicks.OnPointerPress(p) {
		return true
	}
	return ws.Pan.Press(p)
}

// Release ends the active drag or pan.
func (ws *Workspace) Release() bool {
	if ws.clicks.OnPointerRelease() {
		return true
	}
	if ws.Pan.Dragging() {
		ws.Pan.Release()
		ws.Layer.Batch()
		return true
	}
	return false
}

// ZoomAt scales the viewport around a device point.
func (ws *Workspace) ZoomAt(factor float64, p geom.Point) bool {
	if !ws.Zoom.Zoom(factor, p) {
		return false
	}
	ws.Layer.Batch()
	return true
}

// ResetView restores the configured pan and zoom.
func (ws *Workspace) ResetView() {
	ws.Layer.Viewport().SetTransform(ws.home)
	ws.Layer.Batch()
}

// Resize changes the viewport's device size.
func (ws *Workspace) Resize(width, height float64) {
	ws.Layer.Viewport().SetSize(width, height)
	ws.Layer.Layout()
}

// Cursor returns the pointer style the host should show.
func (ws *Workspace) Cursor() canvas.Cursor { return ws.Layer.Viewport().Cursor() }

// Draw paints every visible grid onto a screen the size of the viewport,
// with the active drag highlight on top of its grid.
func (ws *Workspace) Draw() *term.Screen {
	vw, vh := ws.Layer.Viewport().Size()
	s := term.NewScreen(int(vw), int(vh))
	t := ws.Layer.Viewport().Transform()
	for _, g := range ws.grids {
		var hl geom.Rect
		if ws.State.Operation().Active() && ws.State.Widget() == g.Widget {
			hl = ws.State.Highlight()
		}
		g.Renderer.Draw(s, g.Widget, t, hl)
	}
	return s
}

// CellAt finds the body cell under a device point. Floating columns are
// checked first since they are drawn over the body.
func (ws *Workspace) CellAt(p geom.Point) (*Grid, string, int, bool) {
	vp := ws.Layer.Viewport()
	for i := len(ws.grids) - 1; i >= 0; i-- {
		g := ws.grids[i]
		w := g.Widget
		if !w.Visible() {
			continue
		}
		local := w.ToLocal(vp, p)
		if local.X < 0 || local.X > w.Width() || local.Y < w.HeaderHeight() || local.Y >= w.Height() {
			continue
		}
		row := rowIndexAt(g.Model(), local.Y-w.HeaderHeight())
		if row < 0 {
			continue
		}
		info, ok := w.Layout().Info()
		if !ok {
			continue
		}
		for _, b := range [...]struct {
			x    float64
			cols []*grid.Column
		}{{info.Floating.X, info.Floating.Columns}, {info.Body.X, info.Body.Columns}} {
			x := b.x
			for _, c := range b.cols {
				if !c.Visible() {
					continue
				}
				if local.X >= x && local.X < x+c.Width() {
					return g, c.ID(), row, true
				}
				x += c.Width()
			}
		}
	}
	return nil, "", -1, false
}

func rowIndexAt(d *grid.Data, offsetY float64) int {
	y := 0.0
	for i, r := range d.Rows() {
		if offsetY >= y && offsetY < y+r.Height() {
			return i
		}
		y += r.Height()
	}
	return -1
}

// CellStats sums the cell cache counters of every grid.
func (ws *Workspace) CellStats() cache.CellStats {
	var total cache.CellStats
	for _, g := range ws.grids {
		for _, c := range g.caches {
			s := c.Stats()
			total.Hits += s.Hits
			total.Misses += s.Misses
			total.Entries += s.Entries
			total.Destroyed += s.Destroyed
		}
	}
	return total
}

// Close releases the cell cache store.
func (ws *Workspace) Close() error {
	if ws.store == nil {
		return nil
	}
	return ws.store.Close()
}
