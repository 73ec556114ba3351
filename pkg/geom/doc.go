// Package geom computes block geometry for a free-form board canvas.
//
// A board places blocks on a canvas whose pixel size depends on the viewport.
// Block positions are stored in percent of the canvas so they stay
// proportionally placed at any resolution, while block sizes are stored in
// pixels because the user controls them directly. The two unit systems are
// kept apart by the [Percent] and [Pixels] types; [Canvas] converts between
// them.
//
// # Operations
//
//   - [ClampSize] enforces the minimum and maximum block size.
//   - [CalculateResize] resizes a block from one of eight [Handle]s while the
//     opposite anchor stays fixed, optionally locking the aspect ratio.
//   - [CalculateRotation] turns a pointer position into a rotation angle.
//   - [CalculateSnap] snaps a dragged block to the grid, the canvas edges and
//     its siblings, and reports the alignment guides to draw.
//
// # Totality
//
// Every function accepts any float64 input and returns a valid result. Sizes
// are clamped rather than rejected, positions are clamped to [0, 100] and
// angles are normalized into [0, 360). A canvas with a zero or non-finite
// dimension cannot convert pixels to percent; conversions on that axis yield
// 0 so positions stay where they were instead of turning into NaN. Hosts that
// prefer to reject such a canvas can call [ValidateCanvas] first.
//
// # Concurrency
//
// The package holds no state. All functions are safe for concurrent use as
// long as each call receives its own snapshot of the inputs.
package geom
