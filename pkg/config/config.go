// Package config loads gridwork workspace definitions.
//
// A workspace is a set of grids placed on one layer, plus the settings of
// the viewport that shows them and of the drag-and-drop handler. Files are
// TOML or YAML, chosen by extension:
//
//	[dnd]
//	resize_tolerance = 1
//
//	[viewport]
//	width = 120
//	height = 30
//
//	[[grids]]
//	name = "orders"
//	x = 2
//	y = 1
//
//	[[grids.columns]]
//	id = "customer"
//	width = 14
//	headers = [{ group = "Who" }]
//
//	[[grids.rows]]
//	id = "r1"
//	cells = { customer = "ACME" }
//
// [Config.Validate] checks a loaded definition; [GridConfig.Data] turns one
// grid section into a [grid.Data] model.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gridwork/pkg/errors"
	"github.com/matzehuels/gridwork/pkg/grid"
)

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Defaults applied before a file is decoded.
const (
	DefaultResizeTolerance = 5.0
	DefaultViewportWidth   = 120.0
	DefaultViewportHeight  = 30.0
	DefaultMinScale        = 0.5
	DefaultMaxScale        = 4.0
	DefaultHeaderRowHeight = 1.0
	DefaultRowHeight       = 1.0
)

//go:embed default.toml
var defaultWorkspace []byte

// Config is a workspace definition.
type Config struct {
	DnD      DnDConfig      `toml:"dnd" yaml:"dnd"`
	Viewport ViewportConfig `toml:"viewport" yaml:"viewport"`
	Render   RenderConfig   `toml:"render" yaml:"render"`
	Grids    []GridConfig   `toml:"grids" yaml:"grids"`
}

// DnDConfig configures the drag-and-drop handler.
type DnDConfig struct {
	ResizeTolerance float64 `toml:"resize_tolerance" yaml:"resize_tolerance"`
}

// ViewportConfig sets the initial viewport size and transform.
type ViewportConfig struct {
	Width    float64 `toml:"width" yaml:"width"`
	Height   float64 `toml:"height" yaml:"height"`
	Scale    float64 `toml:"scale" yaml:"scale"`
	PanX     float64 `toml:"pan_x" yaml:"pan_x"`
	PanY     float64 `toml:"pan_y" yaml:"pan_y"`
	MinScale float64 `toml:"min_scale" yaml:"min_scale"`
	MaxScale float64 `toml:"max_scale" yaml:"max_scale"`
}

// RenderConfig configures the terminal renderer.
type RenderConfig struct {
	CellCache bool `toml:"cell_cache" yaml:"cell_cache"`
}

// GridConfig describes one grid widget.
type GridConfig struct {
	Name            string         `toml:"name" yaml:"name"`
	X               float64        `toml:"x" yaml:"x"`
	Y               float64        `toml:"y" yaml:"y"`
	HeaderRowHeight float64        `toml:"header_row_height" yaml:"header_row_height"`
	ColumnDragging  *bool          `toml:"column_dragging" yaml:"column_dragging"`
	Columns         []ColumnConfig `toml:"columns" yaml:"columns"`
	Rows            []RowConfig    `toml:"rows" yaml:"rows"`
}

// ColumnConfig describes one column. Unset flags default to true.
type ColumnConfig struct {
	ID        string         `toml:"id" yaml:"id"`
	Title     string         `toml:"title" yaml:"title"`
	Width     float64        `toml:"width" yaml:"width"`
	MinWidth  *float64       `toml:"min_width" yaml:"min_width"`
	MaxWidth  *float64       `toml:"max_width" yaml:"max_width"`
	Visible   *bool          `toml:"visible" yaml:"visible"`
	Resizable *bool          `toml:"resizable" yaml:"resizable"`
	Movable   *bool          `toml:"movable" yaml:"movable"`
	Floatable bool           `toml:"floatable" yaml:"floatable"`
	RowHandle bool           `toml:"row_handle" yaml:"row_handle"`
	Editable  bool           `toml:"editable" yaml:"editable"`
	Headers   []HeaderConfig `toml:"headers" yaml:"headers"`
}

// HeaderConfig is one header row entry of a column, top row first.
type HeaderConfig struct {
	Group string `toml:"group" yaml:"group"`
	Scope string `toml:"scope" yaml:"scope"`
}

// RowConfig describes one row.
type RowConfig struct {
	ID        string            `toml:"id" yaml:"id"`
	Height    float64           `toml:"height" yaml:"height"`
	Collapsed bool              `toml:"collapsed" yaml:"collapsed"`
	Cells     map[string]string `toml:"cells" yaml:"cells"`
}

// Default returns an empty workspace with every setting at its default.
func Default() *Config {
	return &Config{
		DnD: DnDConfig{ResizeTolerance: DefaultResizeTolerance},
		Viewport: ViewportConfig{
			Width:    DefaultViewportWidth,
			Height:   DefaultViewportHeight,
			Scale:    1,
			MinScale: DefaultMinScale,
			MaxScale: DefaultMaxScale,
		},
		Render: RenderConfig{CellCache: true},
	}
}

// DefaultWorkspace returns the built-in demo workspace.
func DefaultWorkspace() (*Config, error) {
	return Parse(defaultWorkspace, FormatTOML)
}

// FormatOf derives the file format from a path's extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported workspace file %s (want .toml, .yaml or .yml)", path)
}

// Load reads and validates the workspace file at path.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "workspace file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates a workspace definition.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Grids {
		g := &c.Grids[i]
		if g.HeaderRowHeight == 0 {
			g.HeaderRowHeight = DefaultHeaderRowHeight
		}
		for j := range g.Rows {
			if g.Rows[j].Height == 0 {
				g.Rows[j].Height = DefaultRowHeight
			}
		}
	}
}

// Grid returns the grid section with the given name.
func (c *Config) Grid(name string) (*GridConfig, bool) {
	for i := range c.Grids {
		if c.Grids[i].Name == name {
			return &c.Grids[i], true
		}
	}
	return nil, false
}

// DraggingEnabled reports the effective column_dragging setting.
func (g *GridConfig) DraggingEnabled() bool { return flag(g.ColumnDragging) }

// ResourceFunc returns the per-cell resources of a column, or nil.
type ResourceFunc func(d *grid.Data, cc ColumnConfig) grid.Resources

// Data builds the grid model described by g. resources may be nil.
func (g *GridConfig) Data(resources ResourceFunc) *grid.Data {
	d := grid.NewData()
	d.SetColumnDraggingEnabled(g.DraggingEnabled())
	for _, cc := range g.Columns {
		opts := []grid.ColumnOption{}
		if cc.Title != "" {
			opts = append(opts, grid.WithTitle(cc.Title))
		}
		if cc.MinWidth != nil {
			opts = append(opts, grid.WithMinWidth(*cc.MinWidth))
		}
		if cc.MaxWidth != nil {
			opts = append(opts, grid.WithMaxWidth(*cc.MaxWidth))
		}
		if !flag(cc.Visible) {
			opts = append(opts, grid.Hidden())
		}
		if !flag(cc.Resizable) {
			opts = append(opts, grid.NotResizable())
		}
		if !flag(cc.Movable) {
			opts = append(opts, grid.NotMovable())
		}
		if cc.Floatable {
			opts = append(opts, grid.Floatable())
		}
		if cc.RowHandle {
			opts = append(opts, grid.WithRowDragHandle())
		}
		if len(cc.Headers) > 0 {
			mds := make([]grid.HeaderMetaData, len(cc.Headers))
			for i, h := range cc.Headers {
				mds[i] = grid.HeaderMetaData{Group: h.Group, Scope: h.Scope}
			}
			opts = append(opts, grid.WithHeaders(mds...))
		}
		if resources != nil {
			if r := resources(d, cc); r != nil {
				opts = append(opts, grid.WithResources(r))
			}
		}
		d.AppendColumn(grid.NewColumn(cc.ID, cc.Width, opts...))
	}
	for _, rc := range g.Rows {
		r := grid.NewRow(rc.ID, rc.Height)
		r.SetCollapsed(rc.Collapsed)
		for col, v := range rc.Cells {
			r.SetCell(col, v)
		}
		d.AppendRow(r)
	}
	return d
}

func flag(p *bool) bool { return p == nil || *p }
