package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridwork/pkg/errors"
	"github.com/matzehuels/gridwork/pkg/geom"
	"github.com/matzehuels/gridwork/pkg/observability"
	"github.com/matzehuels/gridwork/pkg/render/term"
	"github.com/matzehuels/gridwork/pkg/workspace"
)

// Zoom steps of the demo.
const (
	zoomStep  = 1.25
	wheelStep = 1.1
)

// chromeLines is the number of terminal lines below the viewport.
const chromeLines = 2

// demoCommand creates the interactive demo command.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Drag columns and rows in the terminal",
		Long: `Open the workspace in the terminal with mouse support.

Hover a column edge in the header to resize it, drag a header group to
move its columns, or drag the grip column to move rows. Dragging empty
space pans the view; the wheel zooms. Press e to edit the cell under the
pointer in editable columns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counters := observability.NewCounters()
			ws, _, err := c.newWorkspace(counters)
			if err != nil {
				return err
			}
			defer ws.Close()

			p := tea.NewProgram(newDemoModel(ws),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return err
			}
			writeSummary(cmd.OutOrStdout(), counters.Snapshot(), ws)
			return nil
		},
	}
}

// demoModel is the bubbletea model hosting a workspace.
type demoModel struct {
	ws   *workspace.Workspace
	keys keyMap
	help help.Model

	pointer geom.Point
	editing *workspace.Grid
	status  string
}

func newDemoModel(ws *workspace.Workspace) demoModel {
	m := demoModel{ws: ws, keys: newKeyMap(), help: help.New()}
	m.keys.editing(false)
	return m
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.ws.Resize(float64(msg.Width), float64(max(msg.Height-chromeLines, 1)))
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		if m.editing != nil {
			return m.editKey(msg)
		}
		return m.browseKey(msg)
	}
	return m, nil
}

func (m *demoModel) mouse(msg tea.MouseMsg) {
	p := geom.Point{X: float64(msg.X), Y: float64(msg.Y)}
	m.pointer = p

	switch msg.Action {
	case tea.MouseActionMotion:
		m.ws.Move(p)
	case tea.MouseActionRelease:
		m.ws.Release()
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.ws.Press(p)
		case tea.MouseButtonRight, tea.MouseButtonMiddle:
			m.ws.Pan.Press(p)
		case tea.MouseButtonWheelUp:
			m.ws.ZoomAt(wheelStep, p)
		case tea.MouseButtonWheelDown:
			m.ws.ZoomAt(1/wheelStep, p)
		}
	}
}

func (m demoModel) browseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.edit):
		m.openEditor()
	case key.Matches(msg, m.keys.zoomIn):
		m.ws.ZoomAt(zoomStep, m.pointer)
	case key.Matches(msg, m.keys.zoomOut):
		m.ws.ZoomAt(1/zoomStep, m.pointer)
	case key.Matches(msg, m.keys.reset):
		m.ws.ResetView()
	}
	return m, nil
}

func (m *demoModel) openEditor() {
	g, col, row, ok := m.ws.CellAt(m.pointer)
	if !ok {
		m.status = "no cell under pointer"
		return
	}
	if _, err := g.Edit(col, row); err != nil {
		m.status = errors.UserMessage(err)
		return
	}
	m.editing = g
	m.keys.editing(true)
	m.status = ""
}

func (m demoModel) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.editing.ActiveEditor()
	switch {
	case ed == nil:
	case key.Matches(msg, m.keys.commit):
		if err := m.editing.Commit(ed.Column()); err != nil {
			m.status = errors.UserMessage(err)
		}
	case key.Matches(msg, m.keys.cancel):
		ed.Cancel()
	default:
		return m, ed.Update(msg)
	}
	m.editing = nil
	m.keys.editing(false)
	return m, nil
}

func (m demoModel) View() string {
	var b strings.Builder
	b.WriteString(m.ws.Draw().Render(term.DefaultTheme()))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m demoModel) statusLine() string {
	if m.editing != nil {
		if ed := m.editing.ActiveEditor(); ed != nil {
			cell := ed.Active()
			return StyleTitle.Render(fmt.Sprintf("%s/%s[%d]", m.editing.Name(), ed.Column(), cell.Row)) + " " + ed.View()
		}
	}

	ds := m.ws.DragState()
	parts := []string{StyleOperation.Render(ds.Operation), StyleDim.Render(ds.Cursor)}
	if t := targetOf(ds); t != "" {
		parts = append(parts, StyleValue.Render(t))
	}
	if m.status != "" {
		parts = append(parts, styleIconError.Render(m.status))
	}
	return strings.Join(parts, "  ")
}

// writeSummary prints what happened during a session.
func writeSummary(w io.Writer, snap observability.Snapshot, ws *workspace.Workspace) {
	printSuccess(w, "Session ended")
	printKeyValue(w, "resizes", StyleNumber.Render(fmt.Sprint(snap.Resizes)))
	printKeyValue(w, "column moves", StyleNumber.Render(fmt.Sprint(snap.ColumnMoves)))
	printKeyValue(w, "row moves", StyleNumber.Render(fmt.Sprint(snap.RowMoves)))
	cs := ws.CellStats()
	printKeyValue(w, "cell cache", fmt.Sprintf("%s hits, %s misses",
		StyleNumber.Render(fmt.Sprint(cs.Hits)), StyleNumber.Render(fmt.Sprint(cs.Misses))))
}
