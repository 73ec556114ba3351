package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/geom"
	"github.com/matzehuels/pinboard/pkg/gesture"
)

// resizeOpts holds the flags for the resize command.
type resizeOpts struct {
	block      string
	handle     geom.Handle
	dx, dy     float64
	keepAspect bool
	output     string
	json       bool
}

// resizeCommand creates the resize command.
func (c *CLI) resizeCommand() *cobra.Command {
	var (
		opts   resizeOpts
		handle string
	)

	cmd := &cobra.Command{
		Use:   "resize [board]",
		Short: "Resize a block from one of its eight handles",
		Long: `Resize a block as if its handle had been dragged by (dx, dy) pixels.

The opposite corner or edge stays fixed. With --keep-aspect a corner drag
keeps the block's width/height ratio. The size is clamped to the configured
limits and the position is re-anchored when a limit is hit.

Handles: tl, tr, bl, br, top, bottom, left, right.`,
		Example: `  pinboard resize board.json --block a --handle br --dx 40 --dy 20
  pinboard resize board.toml -b a --handle tl --dx -30 --dy -30 --keep-aspect -o board.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := geom.ParseHandle(handle)
			if err != nil {
				return err
			}
			opts.handle = h
			return c.runResize(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.block, "block", "b", "", "block ID (required)")
	cmd.Flags().StringVar(&handle, "handle", "br", "resize handle")
	cmd.Flags().Float64Var(&opts.dx, "dx", 0, "horizontal pointer offset in pixels")
	cmd.Flags().Float64Var(&opts.dy, "dy", 0, "vertical pointer offset in pixels")
	cmd.Flags().BoolVar(&opts.keepAspect, "keep-aspect", false, "keep the aspect ratio on corner handles")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the updated board to this file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the resulting rectangle as JSON")
	_ = cmd.MarkFlagRequired("block")
	_ = cmd.RegisterFlagCompletionFunc("handle", completeHandles)

	return cmd
}

// completeHandles offers the short handle names for --handle.
func completeHandles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(geom.Handles()))
	for _, h := range geom.Handles() {
		names = append(names, h.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// runResize applies one resize gesture and reports the new rectangle.
func (c *CLI) runResize(ctx context.Context, w io.Writer, input string, opts resizeOpts) error {
	b, err := loadBoard(ctx, input)
	if err != nil {
		return err
	}

	sess, err := gesture.Resize(ctx, b, opts.block, opts.handle, c.gestureOptions())
	if err != nil {
		return err
	}
	frame, err := sess.Update(ctx, gesture.Input{
		DX:         geom.Pixels(opts.dx),
		DY:         geom.Pixels(opts.dy),
		KeepAspect: opts.keepAspect,
	})
	if err != nil {
		return err
	}
	next, err := sess.Commit(ctx)
	if err != nil {
		return err
	}

	if err := writeBoardIfRequested(ctx, next, opts.output); err != nil {
		return err
	}

	rect := frame.Block.Rect(board.DefaultBlockSize)
	if opts.json {
		return printJSON(w, rect)
	}

	printSuccess("Resized %s from %s", StyleHighlight.Render(opts.block), opts.handle)
	printRect(rect)
	printKeyValue("cursor", opts.handle.Cursor())
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

// writeBoardIfRequested saves b when path is set.
func writeBoardIfRequested(ctx context.Context, b *board.Board, path string) error {
	if path == "" {
		return nil
	}
	return saveBoard(ctx, b, path)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
