package config

import (
	"github.com/matzehuels/gridwork/pkg/errors"
)

// Validate checks a workspace definition. The first problem found is
// returned as an INVALID_CONFIG error naming the offending section.
func (c *Config) Validate() error {
	if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "dnd.resize_tolerance", c.DnD.ResizeTolerance); err != nil {
		return err
	}
	if err := c.Viewport.validate(); err != nil {
		return err
	}
	if len(c.Grids) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workspace defines no grids")
	}

	names := make(map[string]bool, len(c.Grids))
	for i := range c.Grids {
		g := &c.Grids[i]
		if err := errors.ValidateID("grid", g.Name); err != nil {
			return err
		}
		if names[g.Name] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate grid %q", g.Name)
		}
		names[g.Name] = true
		if err := g.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "grid %q", g.Name)
		}
	}
	return nil
}

func (v ViewportConfig) validate() error {
	if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "viewport.scale", v.Scale); err != nil {
		return err
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "viewport.min_scale", v.MinScale); err != nil {
		return err
	}
	if v.MaxScale < v.MinScale {
		return errors.New(errors.ErrCodeInvalidConfig, "viewport.max_scale %v below min_scale %v", v.MaxScale, v.MinScale)
	}
	if v.Width < 0 || v.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "viewport size %vx%v is negative", v.Width, v.Height)
	}
	return nil
}

func (g *GridConfig) validate() error {
	if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "header_row_height", g.HeaderRowHeight); err != nil {
		return err
	}
	if len(g.Columns) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "no columns")
	}

	cols := make(map[string]bool, len(g.Columns))
	for _, cc := range g.Columns {
		if err := errors.ValidateID("column", cc.ID); err != nil {
			return err
		}
		if cols[cc.ID] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate column %q", cc.ID)
		}
		cols[cc.ID] = true
		if err := cc.validate(); err != nil {
			return err
		}
	}

	rows := make(map[string]bool, len(g.Rows))
	for _, rc := range g.Rows {
		if err := errors.ValidateID("row", rc.ID); err != nil {
			return err
		}
		if rows[rc.ID] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate row %q", rc.ID)
		}
		rows[rc.ID] = true
		if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "row "+rc.ID+" height", rc.Height); err != nil {
			return err
		}
		for col := range rc.Cells {
			if !cols[col] {
				return errors.New(errors.ErrCodeInvalidConfig, "row %q has a cell for unknown column %q", rc.ID, col)
			}
		}
	}
	return nil
}

func (cc ColumnConfig) validate() error {
	if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "column "+cc.ID+" width", cc.Width); err != nil {
		return err
	}
	if cc.MinWidth != nil {
		if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "column "+cc.ID+" min_width", *cc.MinWidth); err != nil {
			return err
		}
	}
	if cc.MaxWidth != nil {
		if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "column "+cc.ID+" max_width", *cc.MaxWidth); err != nil {
			return err
		}
	}
	if cc.MinWidth != nil && cc.MaxWidth != nil && *cc.MaxWidth < *cc.MinWidth {
		return errors.New(errors.ErrCodeInvalidConfig, "column %q max_width %v below min_width %v", cc.ID, *cc.MaxWidth, *cc.MinWidth)
	}
	for i, h := range cc.Headers {
		if h.Group == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "column %q header row %d has no group", cc.ID, i)
		}
	}
	return nil
}
