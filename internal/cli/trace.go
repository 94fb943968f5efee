package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridwork/internal/server"
	"github.com/matzehuels/gridwork/pkg/errors"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/observability"
	"github.com/matzehuels/gridwork/pkg/workspace"
)

// Trace actions. move, press and release mirror the pointer events of the
// drag-and-drop engine; zoom scales the viewport.
const (
	traceMove    = "move"
	tracePress   = "press"
	traceRelease = "release"
	traceZoom    = "zoom"
)

// traceEvent is one line of a pointer trace:
//
//	move 12 3
//	press 12 3
//	release
//	zoom 2 0 0
type traceEvent struct {
	line   int
	action string
	x, y   float64
	factor float64
}

func (e traceEvent) String() string {
	switch e.action {
	case traceRelease:
		return e.action
	case traceZoom:
		return fmt.Sprintf("zoom %gx @%g,%g", e.factor, e.x, e.y)
	}
	return fmt.Sprintf("%s %g,%g", e.action, e.x, e.y)
}

// traceStep is the result of replaying one event.
type traceStep struct {
	Line    int                 `json:"line"`
	Event   string              `json:"event"`
	Handled bool                `json:"handled"`
	State   workspace.DragState `json:"state"`
}

// traceCommand creates the trace command for replaying pointer traces.
func (c *CLI) traceCommand() *cobra.Command {
	var (
		remote string
		asJSON bool
		render bool
	)

	cmd := &cobra.Command{
		Use:   "trace [trace.txt]",
		Short: "Replay a scripted pointer trace",
		Long: `Replay a scripted pointer trace against a workspace and print the drag
state after every event.

A trace has one event per line; blank lines and lines starting with # are
ignored. Coordinates are device cells.

  move X Y        pointer moved
  press X Y       primary button pressed
  release         button released
  zoom F X Y      zoom by factor F around X,Y

With --remote the trace is sent to a running 'gridwork serve' instead of a
local workspace. Reads the trace from stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(errors.ErrCodeFileNotFound, err, "open trace")
				}
				defer f.Close()
				in = f
			}
			return c.runTrace(cmd.Context(), cmd.OutOrStdout(), in, remote, asJSON, render)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "replay against a gridwork server (e.g. http://127.0.0.1:8080)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print steps as JSON")
	cmd.Flags().BoolVar(&render, "render", false, "print the viewport after the last event")

	return cmd
}

func (c *CLI) runTrace(ctx context.Context, out io.Writer, in io.Reader, remote string, asJSON, render bool) error {
	events, err := parseTrace(in)
	if err != nil {
		return err
	}

	var d traceDriver
	if remote != "" {
		c.Logger.Debug("replaying against server", "url", remote)
		d = remoteDriver{client: server.NewClient(remote)}
	} else {
		ws, _, err := c.newWorkspace(observability.NewCounters())
		if err != nil {
			return err
		}
		defer ws.Close()
		d = localDriver{ws: ws}
	}

	prog := newProgress(c.Logger)
	steps, err := replay(ctx, d, events)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Replayed %d events", len(steps)))

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(steps); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, traceTable(steps))
	}

	if render {
		screen, err := d.render(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, screen)
	}
	return nil
}

// parseTrace reads trace events, reporting the first malformed line.
func parseTrace(r io.Reader) ([]traceEvent, error) {
	var events []traceEvent
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		ev := traceEvent{line: line, action: strings.ToLower(fields[0])}

		var want int
		switch ev.action {
		case traceMove, tracePress:
			want = 3
		case traceRelease:
			if len(fields) != 1 && len(fields) != 3 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: release takes no or two coordinates", line)
			}
			events = append(events, ev)
			continue
		case traceZoom:
			want = 4
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: unknown event %q", line, fields[0])
		}
		if len(fields) != want {
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: %s takes %d arguments", line, ev.action, want-1)
		}

		nums := make([]float64, 0, want-1)
		for _, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", line)
			}
			nums = append(nums, v)
		}
		if ev.action == traceZoom {
			ev.factor, nums = nums[0], nums[1:]
		}
		ev.x, ev.y = nums[0], nums[1]
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read trace")
	}
	return events, nil
}

// traceDriver applies trace events to a local or remote workspace.
type traceDriver interface {
	apply(ctx context.Context, ev traceEvent) (bool, workspace.DragState, error)
	render(ctx context.Context) (string, error)
}

type localDriver struct{ ws *workspace.Workspace }

func (d localDriver) apply(_ context.Context, ev traceEvent) (bool, workspace.DragState, error) {
	p := geom.Point{X: ev.x, Y: ev.y}
	handled := true
	switch ev.action {
	case traceMove:
		d.ws.Move(p)
	case tracePress:
		handled = d.ws.Press(p)
	case traceRelease:
		handled = d.ws.Release()
	case traceZoom:
		handled = d.ws.ZoomAt(ev.factor, p)
	}
	return handled, d.ws.DragState(), nil
}

func (d localDriver) render(context.Context) (string, error) {
	return d.ws.Draw().String(), nil
}

type remoteDriver struct{ client *server.Client }

func (d remoteDriver) apply(ctx context.Context, ev traceEvent) (bool, workspace.DragState, error) {
	var (
		resp server.PointerResponse
		err  error
	)
	if ev.action == traceZoom {
		resp, err = d.client.Zoom(ctx, ev.factor, ev.x, ev.y)
	} else {
		resp, err = d.client.Pointer(ctx, ev.action, ev.x, ev.y)
	}
	return resp.Handled, resp.State, err
}

func (d remoteDriver) render(ctx context.Context) (string, error) {
	return d.client.Render(ctx)
}

func replay(ctx context.Context, d traceDriver, events []traceEvent) ([]traceStep, error) {
	steps := make([]traceStep, 0, len(events))
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		handled, st, err := d.apply(ctx, ev)
		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			return steps, errors.Wrap(code, err, "line %d (%s)", ev.line, ev)
		}
		steps = append(steps, traceStep{Line: ev.line, Event: ev.String(), Handled: handled, State: st})
	}
	return steps, nil
}

// traceTable formats replay steps as a table.
func traceTable(steps []traceStep) string {
	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, []string{
			strconv.Itoa(s.Line),
			s.Event,
			s.State.Operation,
			targetOf(s.State),
			s.State.Cursor,
			highlightOf(s.State.Highlight),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "Event", "Operation", "Target", "Cursor", "Highlight").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 2:
				return StyleOperation
			case col == 0:
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func targetOf(ds workspace.DragState) string {
	if ds.Grid == "" {
		return ""
	}
	var ids []string
	switch {
	case len(ds.Columns) > 0:
		ids = ds.Columns
	case len(ds.Rows) > 0:
		ids = ds.Rows
	}
	return ds.Grid + ": " + strings.Join(ids, ",")
}

func highlightOf(r *workspace.Rect) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g %gx%g", r.X, r.Y, r.Width, r.Height)
}
