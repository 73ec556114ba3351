// Package render converts board previews between image formats.
//
// Package [svg] draws a board as SVG. [ToPDF] and [ToPNG] convert any SVG to
// other formats using the external rsvg-convert tool (from librsvg):
//
//	out := svg.Render(board, svg.WithLabels())
//	pdf, err := render.ToPDF(ctx, out)
//	png, err := render.ToPNG(ctx, out, 2.0) // 2x scale
//
// [Convert] dispatches on a format name and passes SVG through unchanged.
// [ConvertCached] does the same behind a [cache.Cache], keyed by the SVG
// content, format and scale.
//
// [svg]: github.com/matzehuels/pinboard/pkg/render/svg
// [cache.Cache]: github.com/matzehuels/pinboard/pkg/cache
package render
