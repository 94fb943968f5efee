package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridwork/pkg/errors"
	"github.com/matzehuels/gridwork/pkg/observability"
	"github.com/matzehuels/gridwork/pkg/render/nodelink"
)

// blocksOptions holds the flags of the blocks command.
type blocksOptions struct {
	grid     string
	output   string
	svg      bool
	detailed bool
}

// blocksCommand creates the blocks command for exporting header hierarchies.
func (c *CLI) blocksCommand() *cobra.Command {
	opts := blocksOptions{}

	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Export the header block hierarchy of a grid",
		Long: `Export the merged header blocks of a grid as a Graphviz graph. Each block
links to the blocks of the next header row it spans and finally to its
columns, which is the unit a column move drags.

Prints DOT by default; --svg lays the graph out with the embedded Graphviz.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBlocks(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.grid, "grid", "g", "", "grid to export (default: first grid)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG instead of DOT")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include header scopes and column widths")

	return cmd
}

func (c *CLI) runBlocks(ctx context.Context, out io.Writer, opts blocksOptions) error {
	ws, _, err := c.newWorkspace(observability.NewCounters())
	if err != nil {
		return err
	}
	defer ws.Close()

	g := ws.Grids()[0]
	if opts.grid != "" {
		if g = ws.Grid(opts.grid); g == nil {
			return errors.New(errors.ErrCodeNotFound, "grid %q not found", opts.grid)
		}
	}

	dot := nodelink.ToDOT(g.Model(), nodelink.Options{Detailed: opts.detailed})
	data := []byte(dot)
	if opts.svg {
		var sp *Spinner
		if opts.output != "" {
			sp = newSpinner(ctx, out, "Laying out "+g.Name()+"...")
			sp.Start()
		}
		data, err = nodelink.RenderSVG(dot)
		if sp != nil {
			sp.Stop()
		}
		if err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}

	printSuccess(out, "Exported header blocks of %s", StyleValue.Render(g.Name()))
	printFile(out, opts.output)
	if !opts.svg {
		printNextStep(out, "Render it", "dot -Tsvg "+opts.output)
	}
	return nil
}
