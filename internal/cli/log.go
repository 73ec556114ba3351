// Package cli implements the pinboard command-line interface.
//
// This package provides commands for running the board geometry engine
// against board files: one-shot resize, rotate and snap computations,
// SVG/PNG/PDF previews, scripted gesture replays and an interactive
// terminal editor. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - resize: Resize a block from one of its eight handles
//   - rotate: Point a block at a pointer position
//   - snap: Drop a block at a position and report the guides
//   - render: Draw a board as SVG, PNG or PDF
//   - replay: Run a TOML gesture script against a board
//   - play: Move, resize and rotate blocks interactively
//   - handles: List resize handles and their cursors
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
// Gesture and board I/O events reach the log through observability hooks.
//
// # Example
//
//	import "github.com/matzehuels/pinboard/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// parseLevel maps a config level name to a log level. Unknown names fall
// back to info.
func parseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Replayed 12 steps (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks reports gesture and board I/O events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnGestureStart(_ context.Context, kind, blockID string) {
	h.logger.Debug("gesture start", "kind", kind, "block", blockID)
}

func (h logHooks) OnFrame(_ context.Context, kind, blockID string, guides int) {
	h.logger.Debug("frame", "kind", kind, "block", blockID, "guides", guides)
}

func (h logHooks) OnGestureEnd(_ context.Context, kind, blockID string, frames int, d time.Duration, committed bool) {
	h.logger.Debug("gesture end", "kind", kind, "block", blockID, "frames", frames,
		"elapsed", d.Round(time.Microsecond), "committed", committed)
}

func (h logHooks) OnBoardLoad(_ context.Context, path string, blocks int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("board load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("board loaded", "path", path, "blocks", blocks, "elapsed", d.Round(time.Microsecond))
}

func (h logHooks) OnBoardSave(_ context.Context, path string, blocks int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("board save failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("board saved", "path", path, "blocks", blocks, "elapsed", d.Round(time.Microsecond))
}
