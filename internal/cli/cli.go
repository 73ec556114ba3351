package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/buildinfo"
	"github.com/matzehuels/pinboard/pkg/cache"
	"github.com/matzehuels/pinboard/pkg/config"
	"github.com/matzehuels/pinboard/pkg/gesture"
	pio "github.com/matzehuels/pinboard/pkg/io"
	"github.com/matzehuels/pinboard/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "pinboard"
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
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Pinboard computes block geometry for free-form boards",
		Long:          `Pinboard is a CLI for the board geometry engine: resize blocks from any handle, rotate them towards a pointer, snap them to the grid, the canvas edges and each other, and preview the result.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: "+config.Path()+")")

	// Register all subcommands
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.rotateCommand())
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.handlesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies the log level and installs the
// logging hooks before any command runs.
func (c *CLI) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFromFile(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	c.Config = cfg

	level := parseLevel(cfg.Log.Level)
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	hooks := logHooks{logger: c.Logger}
	observability.SetGestureHooks(hooks)
	observability.SetBoardHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "path", c.configPath, "grid", cfg.Snap.GridSize, "threshold", cfg.Snap.Threshold)
	return nil
}

// gestureOptions converts the loaded configuration for gesture sessions.
func (c *CLI) gestureOptions() gesture.Options {
	return gesture.Options{
		Snap:         c.Config.SnapOptions(),
		Bounds:       c.Config.Bounds(),
		SnapRotation: c.Config.Rotation.Snap,
	}
}

// openCache returns the conversion cache, or a null cache when caching is
// off or the cache directory is unusable.
func (c *CLI) openCache(disabled bool) cache.Cache {
	if disabled || !c.Config.Cache.Enabled {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(c.Config.CacheDir())
	if err != nil {
		c.Logger.Warn("conversion cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Board Files
// =============================================================================

// loadBoard imports a board file and reports it to the board hooks.
func loadBoard(ctx context.Context, path string) (*board.Board, error) {
	start := time.Now()
	b, err := pio.ImportBoard(path)
	blocks := 0
	if b != nil {
		blocks = len(b.Blocks)
	}
	observability.Board().OnBoardLoad(ctx, path, blocks, time.Since(start), err)
	return b, err
}

// saveBoard exports a board file and reports it to the board hooks.
func saveBoard(ctx context.Context, b *board.Board, path string) error {
	start := time.Now()
	err := pio.ExportBoard(b, path)
	observability.Board().OnBoardSave(ctx, path, len(b.Blocks), time.Since(start), err)
	return err
}

// derivedPath returns input with its extension replaced by suffix, e.g.
// board.json -> board.preview.svg.
func derivedPath(input, suffix string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}
