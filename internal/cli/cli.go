// Package cli implements the gridwork command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridwork/pkg/buildinfo"
	"github.com/matzehuels/gridwork/pkg/config"
	"github.com/matzehuels/gridwork/pkg/observability"
	"github.com/matzehuels/gridwork/pkg/workspace"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "gridwork"

	// defaultAddr is the listen address of the HTTP driver.
	defaultAddr = "127.0.0.1:8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is the workspace file; empty selects the built-in workspace.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Gridwork drives grid widgets with pointer drag and drop",
		Long: `Gridwork hosts grid widgets with header groups, floating columns and row
drag handles, and lets you resize columns, move column groups and move rows
with the mouse. Workspaces are defined in TOML or YAML.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.ConfigPath, "config", "c", "", "workspace file (.toml, .yaml); default: built-in demo workspace")

	root.AddCommand(c.demoCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.blocksCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Workspace Factory
// =============================================================================

// loadConfig reads the configured workspace file or the built-in workspace.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.ConfigPath == "" {
		c.Logger.Debug("using built-in workspace")
		return config.DefaultWorkspace()
	}
	c.Logger.Debug("loading workspace", "path", c.ConfigPath)
	return config.Load(c.ConfigPath)
}

// newWorkspace loads the configuration and builds a workspace that reports
// dnd events to counters.
func (c *CLI) newWorkspace(counters *observability.Counters) (*workspace.Workspace, *config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	ws, err := workspace.Build(cfg,
		workspace.WithLogger(c.Logger),
		workspace.WithHooks(counters),
	)
	if err != nil {
		return nil, nil, err
	}
	return ws, cfg, nil
}
