package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/gesture"
	"github.com/matzehuels/pinboard/pkg/render/svg"
)

// replayOpts holds the flags for the replay command.
type replayOpts struct {
	output  string
	preview string
	dryRun  bool
	json    bool
}

// replayCommand creates the replay command.
func (c *CLI) replayCommand() *cobra.Command {
	var opts replayOpts

	cmd := &cobra.Command{
		Use:   "replay [board] [script.toml]",
		Short: "Replay a gesture script against a board",
		Long: `Replay a TOML gesture script against a board.

Each [[step]] is one move, resize or rotate gesture with a single pointer
update. Steps run in order on the result of the previous step; a step with
cancel = true is computed and reported but not applied.

The final board is written to --output (default: <board>.replayed.<ext>).`,
		Example: `  pinboard replay board.json tidy.toml
  pinboard replay board.toml tidy.toml --dry-run --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output board file (default: <board>.replayed.<ext>)")
	cmd.Flags().StringVar(&opts.preview, "preview", "", "write an SVG preview of the final board")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report the steps without writing the board")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the step results as JSON")

	return cmd
}

// runReplay loads the board and script, replays the script and writes the
// final board.
func (c *CLI) runReplay(ctx context.Context, w io.Writer, boardPath, scriptPath string, opts replayOpts) error {
	b, err := loadBoard(ctx, boardPath)
	if err != nil {
		return err
	}
	script, err := gesture.LoadScript(scriptPath)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	final, results, err := gesture.Replay(ctx, b, script, c.gestureOptions())
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Replayed %d steps", len(results)))

	output := opts.output
	if output == "" {
		output = derivedPath(boardPath, ".replayed"+filepath.Ext(boardPath))
	}
	if !opts.dryRun {
		if err := saveBoard(ctx, final, output); err != nil {
			return err
		}
	}
	if opts.preview != "" {
		if err := writeFile(opts.preview, svg.Render(final, svg.WithLabels())); err != nil {
			return err
		}
	}

	if opts.json {
		return printJSON(w, results)
	}

	name := script.Name
	if name == "" {
		name = filepath.Base(scriptPath)
	}
	printSuccess("Replayed %s (%d steps)", StyleHighlight.Render(name), len(results))
	for _, r := range results {
		printInfo("%s", describeStep(r))
	}
	if !opts.dryRun {
		printFile(output)
	}
	if opts.preview != "" {
		printFile(opts.preview)
	}
	if !opts.dryRun {
		printNewline()
		printNextStep("Preview", appName+" render "+output)
	}
	return nil
}

// describeStep summarizes one replayed step on a single line.
func describeStep(r gesture.StepResult) string {
	b := r.Frame.Block
	var s string
	switch r.Kind {
	case gesture.KindRotate:
		s = fmt.Sprintf("%d %s %s → %s", r.Index, r.Kind, b.ID, formatDegrees(b.Rotation))
	case gesture.KindResize:
		rect := b.Rect(board.DefaultBlockSize)
		s = fmt.Sprintf("%d %s %s → %s × %s", r.Index, r.Kind, b.ID, formatPixels(rect.Width), formatPixels(rect.Height))
	default:
		s = fmt.Sprintf("%d %s %s → (%s, %s)", r.Index, r.Kind, b.ID, formatPercent(b.X), formatPercent(b.Y))
		if n := len(r.Frame.Guidelines); n > 0 {
			s += fmt.Sprintf(", %d guides", n)
		}
	}
	if r.Cancelled {
		s += StyleDim.Render(" (cancelled)")
	}
	return s
}
