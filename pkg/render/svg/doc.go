// Package svg renders a board preview as SVG.
//
// The output is a static picture of the canvas: every block at its position,
// size and rotation, plus optional overlays for the alignment guidelines and
// distance guides a snap produced. It is meant for checking engine results
// from the command line, not as an editor surface.
//
//	svg := svg.Render(board,
//	    svg.WithGuides(result.Guidelines),
//	    svg.WithDistances(result.Distances),
//	    svg.WithHighlight("a"),
//	    svg.WithLabels(),
//	)
//
// Blocks with auto dimensions are drawn at [board.DefaultBlockSize]. Use
// package render to convert the SVG to PNG or PDF.
package svg
