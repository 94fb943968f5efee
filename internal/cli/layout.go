package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridwork/pkg/errors"
	"github.com/matzehuels/gridwork/pkg/grid"
	"github.com/matzehuels/gridwork/pkg/layout"
	"github.com/matzehuels/gridwork/pkg/observability"
	"github.com/matzehuels/gridwork/pkg/workspace"
)

// layoutCommand creates the layout command for inspecting column layout.
func (c *CLI) layoutCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Report the column layout of every grid",
		Long: `Report the column layout of every grid in the workspace: column order,
widths, offsets and whether a column is drawn in the floating or the body
block of the current viewport.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := c.newWorkspace(observability.NewCounters())
			if err != nil {
				return err
			}
			defer ws.Close()

			grids := ws.Grids()
			if name != "" {
				g := ws.Grid(name)
				if g == nil {
					return errors.New(errors.ErrCodeNotFound, "grid %q not found", name)
				}
				grids = []*workspace.Grid{g}
			}
			for i, g := range grids {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				writeLayout(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "grid", "g", "", "only report this grid")

	return cmd
}

// writeLayout prints a summary and the column table of one grid.
func writeLayout(w io.Writer, g *workspace.Grid) {
	d := g.Model()
	b := g.Widget.Bounds()

	fmt.Fprintln(w, StyleTitle.Render(g.Name()))
	printKeyValue(w, "bounds", fmt.Sprintf("%s,%s %s×%s",
		StyleNumber.Render(num(b.X)), StyleNumber.Render(num(b.Y)),
		StyleNumber.Render(num(b.Width)), StyleNumber.Render(num(b.Height))))
	printKeyValue(w, "header rows", StyleNumber.Render(strconv.Itoa(d.HeaderRowCount())))
	printKeyValue(w, "rows", StyleNumber.Render(strconv.Itoa(d.RowCount())))
	printKeyValue(w, "dragging", strconv.FormatBool(d.ColumnDraggingEnabled()))

	info, _ := g.Widget.Layout().Info()
	fmt.Fprintln(w, layoutTable(d, g.Widget.Layout(), info))
}

func layoutTable(d *grid.Data, p layout.Provider, info layout.Info) string {
	rows := make([][]string, 0, d.ColumnCount())
	for i, c := range d.Columns() {
		rows = append(rows, []string{
			strconv.Itoa(i),
			c.ID(),
			c.Title(),
			num(c.Width()),
			num(p.ColumnOffset(i)),
			blockOf(info, c),
			columnFlags(c),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "Column", "Title", "Width", "Offset", "Block", "Flags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 3 || col == 4:
				return StyleNumber
			case col == 0 || col == 6:
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func blockOf(info layout.Info, c *grid.Column) string {
	switch {
	case info.Floating.Contains(c):
		return "floating"
	case info.Body.Contains(c):
		return "body"
	}
	return "-"
}

func columnFlags(c *grid.Column) string {
	var flags []string
	if !c.Visible() {
		flags = append(flags, "hidden")
	}
	if !c.Resizable() {
		flags = append(flags, "no-resize")
	}
	if !c.Movable() {
		flags = append(flags, "no-move")
	}
	if c.IsFloatable() {
		flags = append(flags, "float")
	}
	if c.IsRowDragHandle() {
		flags = append(flags, "handle")
	}
	return strings.Join(flags, " ")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
