// Package cli implements the gridwork command-line interface.
//
// The commands host a workspace of grid widgets loaded from a TOML or YAML
// file (or the built-in demo workspace) and drive its drag-and-drop engine
// from different sources. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - demo: interactive terminal host (bubbletea, mouse motion events)
//   - trace: replay a scripted pointer trace and print the state per step
//   - layout: report the column layout of every grid
//   - blocks: export the header block hierarchy as DOT or SVG
//   - serve: headless HTTP driver
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes every drag state transition.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of an operation when it completes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Replayed 12 events (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
