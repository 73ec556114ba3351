// Package board holds pinboard documents: a canvas and the blocks placed on
// it.
//
// A [Board] is the host-side state the geometry engine works on. The engine
// in package geom is stateless; callers hand it a [Block]'s rectangle via
// [Board.Rect] and its neighbours via [Board.Siblings], then write the
// result back with [Board.Replace].
//
// Block positions are percent of the canvas and sizes are pixels. A block
// whose size was never measured carries an auto [geom.Dimension]; it counts
// as zero-sized for sibling alignment and as [DefaultBlockSize] when it is
// itself resized or dragged.
//
// Boards are plain values. [Board.Clone] returns an independent copy so a
// gesture can work on a snapshot and discard it on cancel.
package board
