package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridwork/internal/server"
	"github.com/matzehuels/gridwork/pkg/observability"
)

// serveCommand creates the serve command for the HTTP driver.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Drive a workspace over HTTP",
		Long: `Serve a workspace over HTTP so pointer events can come from scripts or a
browser. The server shuts down on interrupt.

  POST /pointer/{move,press,release}   {"x":..,"y":..}
  POST /zoom                           {"factor":..,"x":..,"y":..}
  GET  /state  /grids  /render  /stats  /version`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counters := observability.NewCounters()
			ws, _, err := c.newWorkspace(counters)
			if err != nil {
				return err
			}
			defer ws.Close()

			srv := server.New(ws,
				server.WithLogger(c.Logger),
				server.WithCounters(counters),
			)

			out := cmd.OutOrStdout()
			printInfo(out, "Serving %d grids on %s", len(ws.Grids()), StyleValue.Render("http://"+addr))
			printNextStep(out, "Replay a trace", "gridwork trace --remote http://"+addr+" trace.txt")

			if err := srv.ListenAndServe(cmd.Context(), addr); err != nil {
				return err
			}
			snap := counters.Snapshot()
			printSuccess(out, "Stopped after %d requests", snap.Requests)
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}
