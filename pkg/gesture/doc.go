// Package gesture drives interactive move, resize and rotate gestures over a
// board.
//
// The geometry engine in package geom is stateless: each call takes the
// state at pointer-down plus the current pointer input and returns the new
// geometry. A [Session] supplies that state. It snapshots the board when the
// pointer goes down, feeds every pointer update through the engine, and
// either writes the final block back ([Session.Commit]) or drops it
// ([Session.Cancel]).
//
// Pointer input is cumulative. For a move or resize, [Input.DX] and
// [Input.DY] are the pixel offsets since pointer-down, not since the last
// frame; for a rotate, [Input.MouseX] and [Input.MouseY] are the pointer
// position on the canvas. Replaying the same input therefore always yields
// the same frame.
//
// Scripts ([Script], [Replay]) run a list of gestures against a board from a
// TOML file, which is how the CLI reproduces interactions without a pointer.
//
// Sessions emit [observability.GestureHooks] events on start, on every frame
// and on commit or cancel.
package gesture
