package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/render"
	"github.com/matzehuels/pinboard/pkg/render/svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file path
	format    string  // svg, png or pdf; inferred from output when empty
	labels    bool    // draw block labels
	highlight string  // block ID to outline
	safeArea  bool    // draw the snap safe area
	scale     float64 // PNG scale factor
	noCache   bool    // bypass the conversion cache
}

// renderCommand creates the render command for board previews.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{labels: true, scale: 2}

	cmd := &cobra.Command{
		Use:   "render [board]",
		Short: "Render a board preview as SVG, PNG or PDF",
		Long: `Render a board preview.

Blocks are drawn at their position, size and rotation. PNG and PDF output
is converted from SVG with rsvg-convert (librsvg), which must be installed.
Conversions are cached by content; pass --no-cache to skip the cache.`,
		Example: `  pinboard render board.json
  pinboard render board.toml -o board.png --scale 3 --highlight a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <board>.svg)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, png, pdf (default: from output extension)")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw block labels")
	cmd.Flags().StringVar(&opts.highlight, "highlight", "", "outline the block with this ID")
	cmd.Flags().BoolVar(&opts.safeArea, "safe-area", false, "draw the snap safe area")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "convert PNG/PDF without the conversion cache")

	return cmd
}

// runRender loads the board, draws it and writes the requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	b, err := loadBoard(ctx, input)
	if err != nil {
		return err
	}

	output, format, err := resolveRenderOutput(input, opts.output, opts.format)
	if err != nil {
		return err
	}

	var svgOpts []svg.Option
	if opts.labels {
		svgOpts = append(svgOpts, svg.WithLabels())
	}
	if opts.highlight != "" {
		if _, err := b.Get(opts.highlight); err != nil {
			return err
		}
		svgOpts = append(svgOpts, svg.WithHighlight(opts.highlight))
	}
	if opts.safeArea {
		svgOpts = append(svgOpts, svg.WithSafeArea(c.Config.SnapOptions().SafeArea))
	}

	prog := newProgress(loggerFromContext(ctx))
	data := svg.Render(b, svgOpts...)

	if format != render.FormatSVG {
		store := c.openCache(opts.noCache)
		defer store.Close()

		spinner := newSpinnerWithContext(ctx, os.Stderr, "Converting to "+strings.ToUpper(format)+"...")
		spinner.Start()
		var hit bool
		data, hit, err = render.ConvertCached(ctx, store, data, format, opts.scale)
		if err != nil {
			spinner.StopWithError("Conversion failed")
			return err
		}
		spinner.Stop()
		loggerFromContext(ctx).Debug("converted", "format", format, "cached", hit)
	}

	if err := writeFile(output, data); err != nil {
		return err
	}
	prog.done("Rendered " + output)

	printSuccess("Rendered %d blocks", len(b.Blocks))
	printFile(output)
	return nil
}

// resolveRenderOutput picks the output path and format. An explicit format
// wins; otherwise the output extension decides, defaulting to SVG.
func resolveRenderOutput(input, output, format string) (string, string, error) {
	if format == "" && output != "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	if format == "" {
		format = render.FormatSVG
	}
	format = strings.ToLower(format)
	if err := errors.ValidateFormat(format, render.FormatSVG, render.FormatPNG, render.FormatPDF); err != nil {
		return "", "", err
	}
	if output == "" {
		output = derivedPath(input, "."+format)
	}
	return output, format, nil
}

// writeFile writes data to path with a coded error on failure.
func writeFile(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
