package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/gesture"
)

// rotateOpts holds the flags for the rotate command.
type rotateOpts struct {
	block          string
	mouseX, mouseY float64
	snap           bool
	output         string
	json           bool
}

// rotateCommand creates the rotate command.
func (c *CLI) rotateCommand() *cobra.Command {
	var opts rotateOpts

	cmd := &cobra.Command{
		Use:   "rotate [board]",
		Short: "Rotate a block towards a pointer position",
		Long: `Rotate a block so that its top points at the pointer.

The pointer position is given in canvas pixels. Zero degrees points up and
angles grow clockwise. With --snap (or rotation.snap in the config file) the
angle lands on a multiple of 15 degrees.`,
		Example: `  pinboard rotate board.json --block a --mouse-x 640 --mouse-y 120 --snap`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRotate(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.block, "block", "b", "", "block ID (required)")
	cmd.Flags().Float64Var(&opts.mouseX, "mouse-x", 0, "pointer x in canvas pixels")
	cmd.Flags().Float64Var(&opts.mouseY, "mouse-y", 0, "pointer y in canvas pixels")
	cmd.Flags().BoolVar(&opts.snap, "snap", false, "snap to 15 degree steps")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the updated board to this file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the rotation as JSON")
	_ = cmd.MarkFlagRequired("block")

	return cmd
}

// runRotate applies one rotate gesture and reports the angle.
func (c *CLI) runRotate(ctx context.Context, w io.Writer, input string, opts rotateOpts) error {
	b, err := loadBoard(ctx, input)
	if err != nil {
		return err
	}

	sess, err := gesture.Rotate(ctx, b, opts.block, c.gestureOptions())
	if err != nil {
		return err
	}
	cx, cy := sess.Center()
	frame, err := sess.Update(ctx, gesture.Input{MouseX: opts.mouseX, MouseY: opts.mouseY, Snap: opts.snap})
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

	if opts.json {
		return printJSON(w, struct {
			Block    string `json:"block"`
			Rotation int    `json:"rotation"`
		}{opts.block, frame.Block.Rotation})
	}

	printSuccess("Rotated %s to %s", StyleHighlight.Render(opts.block), StyleNumber.Render(formatDegrees(frame.Block.Rotation)))
	printDetail("center (%.0f, %.0f)  pointer (%.0f, %.0f)", cx, cy, opts.mouseX, opts.mouseY)
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}
