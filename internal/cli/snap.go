package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/geom"
	"github.com/matzehuels/pinboard/pkg/render/svg"
)

// snapOpts holds the flags for the snap command.
type snapOpts struct {
	block   string
	x, y    float64
	output  string
	preview string
	json    bool
}

// snapCommand creates the snap command.
func (c *CLI) snapCommand() *cobra.Command {
	var opts snapOpts

	cmd := &cobra.Command{
		Use:   "snap [board]",
		Short: "Drop a block at a position and report the snap guides",
		Long: `Drop a block with its top-left corner at (x, y), given in percent of the
canvas, and snap it to the grid, the canvas edges and the other blocks.

The snapped position, the alignment guidelines and the distance guides to
nearby blocks are printed. Thresholds come from the [snap] section of the
config file.`,
		Example: `  pinboard snap board.json --block a --x 49.6 --y 10.2
  pinboard snap board.json -b a --x 49.6 --y 10.2 --preview snap.svg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSnap(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.block, "block", "b", "", "block ID (required)")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "drop x in percent of the canvas width")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "drop y in percent of the canvas height")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the updated board to this file")
	cmd.Flags().StringVar(&opts.preview, "preview", "", "write an SVG preview with guides to this file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the snap result as JSON")
	_ = cmd.MarkFlagRequired("block")

	return cmd
}

// runSnap runs one snap computation against the board's siblings.
func (c *CLI) runSnap(ctx context.Context, w io.Writer, input string, opts snapOpts) error {
	b, err := loadBoard(ctx, input)
	if err != nil {
		return err
	}
	blk, err := b.Get(opts.block)
	if err != nil {
		return err
	}

	size := blk.Rect(board.DefaultBlockSize).Size()
	siblings := b.Siblings(opts.block)
	res := geom.CalculateSnap(geom.Percent(opts.x), geom.Percent(opts.y), size, b.Canvas, siblings, c.Config.SnapOptions())
	loggerFromContext(ctx).Debug("snap", "block", opts.block, "siblings", len(siblings),
		"guides", len(res.Guidelines), "distances", len(res.Distances))

	if err := b.Replace(blk.WithPosition(res.X, res.Y)); err != nil {
		return err
	}
	if err := writeBoardIfRequested(ctx, b, opts.output); err != nil {
		return err
	}
	if opts.preview != "" {
		out := svg.Render(b,
			svg.WithGuides(res.Guidelines),
			svg.WithDistances(res.Distances),
			svg.WithHighlight(opts.block),
			svg.WithSafeArea(c.Config.SnapOptions().SafeArea),
			svg.WithLabels(),
		)
		if err := writeFile(opts.preview, out); err != nil {
			return err
		}
	}

	if opts.json {
		return printJSON(w, res)
	}

	printSuccess("Snapped %s to (%s, %s)", StyleHighlight.Render(opts.block), formatPercent(res.X), formatPercent(res.Y))
	printGuides(res.Guidelines, res.Distances)
	for _, path := range []string{opts.output, opts.preview} {
		if path != "" {
			printFile(path)
		}
	}
	return nil
}
