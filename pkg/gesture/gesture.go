package gesture

import (
	"context"
	"time"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/geom"
	"github.com/matzehuels/pinboard/pkg/observability"
)

// Kind names a gesture.
type Kind string

const (
	KindMove   Kind = "move"
	KindResize Kind = "resize"
	KindRotate Kind = "rotate"
)

// ParseKind validates a gesture name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindMove, KindResize, KindRotate:
		return k, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown gesture %q (want move, resize or rotate)", s)
}

// Options tunes the engine for every frame of a session.
type Options struct {
	Snap   geom.SnapOptions
	Bounds geom.Bounds

	// SnapRotation forces 15° rotation steps regardless of Input.Snap.
	SnapRotation bool
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{Snap: geom.DefaultSnapOptions(), Bounds: geom.DefaultBounds}
}

// Input is the cumulative pointer state for one frame.
type Input struct {
	DX, DY         geom.Pixels // offset since pointer-down (move, resize)
	MouseX, MouseY float64     // pointer position in canvas pixels (rotate)
	KeepAspect     bool        // corner resizes only
	Snap           bool        // snap positions (move) or angles (rotate)
}

// Frame is the outcome of one pointer update.
type Frame struct {
	Block      board.Block          `json:"block"`
	Guidelines []geom.Guideline     `json:"guidelines"`
	Distances  []geom.DistanceGuide `json:"distances"`
}

// Session is one gesture on one block. A Session is not safe for
// concurrent use.
type Session struct {
	kind     Kind
	handle   geom.Handle
	opts     Options
	board    *board.Board
	start    board.Block
	rect     geom.Rect
	siblings []geom.Sibling
	last     Frame
	frames   int
	began    time.Time
	done     bool
}

// Move starts dragging block id.
func Move(ctx context.Context, bd *board.Board, id string, opts Options) (*Session, error) {
	return begin(ctx, KindMove, geom.HandleBottomRight, bd, id, opts)
}

// Resize starts resizing block id from handle h.
func Resize(ctx context.Context, bd *board.Board, id string, h geom.Handle, opts Options) (*Session, error) {
	if !h.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidHandle, "invalid handle %d", int(h))
	}
	return begin(ctx, KindResize, h, bd, id, opts)
}

// Rotate starts rotating block id around its center.
func Rotate(ctx context.Context, bd *board.Board, id string, opts Options) (*Session, error) {
	return begin(ctx, KindRotate, geom.HandleBottomRight, bd, id, opts)
}

// Start dispatches to Move, Resize or Rotate.
func Start(ctx context.Context, kind Kind, bd *board.Board, id string, h geom.Handle, opts Options) (*Session, error) {
	switch kind {
	case KindMove:
		return Move(ctx, bd, id, opts)
	case KindResize:
		return Resize(ctx, bd, id, h, opts)
	case KindRotate:
		return Rotate(ctx, bd, id, opts)
	}
	_, err := ParseKind(string(kind))
	return nil, err
}

func begin(ctx context.Context, kind Kind, h geom.Handle, bd *board.Board, id string, opts Options) (*Session, error) {
	if bd == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no board")
	}
	snapshot := bd.Clone()
	b, err := snapshot.Get(id)
	if err != nil {
		return nil, err
	}
	s := &Session{
		kind:     kind,
		handle:   h,
		opts:     opts,
		board:    snapshot,
		start:    b,
		rect:     b.Rect(board.DefaultBlockSize),
		siblings: snapshot.Siblings(id),
		last:     Frame{Block: b, Guidelines: []geom.Guideline{}, Distances: []geom.DistanceGuide{}},
		began:    time.Now(),
	}
	observability.Gesture().OnGestureStart(ctx, string(kind), id)
	return s, nil
}

// Kind returns the gesture kind.
func (s *Session) Kind() Kind { return s.kind }

// BlockID returns the ID of the block being manipulated.
func (s *Session) BlockID() string { return s.start.ID }

// Handle returns the resize handle. It is meaningless for move and rotate.
func (s *Session) Handle() geom.Handle { return s.handle }

// Last returns the most recent frame, or the untouched block before the
// first update.
func (s *Session) Last() Frame { return s.last }

// Frames returns the number of updates applied.
func (s *Session) Frames() int { return s.frames }

// Update feeds one pointer update through the engine.
func (s *Session) Update(ctx context.Context, in Input) (Frame, error) {
	if s.done {
		return Frame{}, errors.New(errors.ErrCodeInvalidInput, "%s gesture on %q already ended", s.kind, s.start.ID)
	}

	var f Frame
	switch s.kind {
	case KindMove:
		f = s.move(in)
	case KindResize:
		f = s.resize(in)
	default:
		f = s.rotate(in)
	}

	s.last = f
	s.frames++
	observability.Gesture().OnFrame(ctx, string(s.kind), s.start.ID, len(f.Guidelines)+len(f.Distances))
	return f, nil
}

func (s *Session) move(in Input) Frame {
	c := s.board.Canvas
	x := s.rect.X + c.PercentX(in.DX)
	y := s.rect.Y + c.PercentY(in.DY)

	if !in.Snap {
		return Frame{
			Block:      s.start.WithPosition(geom.ClampPercent(x), geom.ClampPercent(y)),
			Guidelines: []geom.Guideline{},
			Distances:  []geom.DistanceGuide{},
		}
	}
	r := geom.CalculateSnap(x, y, s.rect.Size(), c, s.siblings, s.opts.Snap)
	return Frame{
		Block:      s.start.WithPosition(r.X, r.Y),
		Guidelines: r.Guidelines,
		Distances:  r.Distances,
	}
}

func (s *Session) resize(in Input) Frame {
	r := geom.CalculateResizeBounded(s.handle, in.DX, in.DY, s.rect, s.board.Canvas, in.KeepAspect, s.opts.Bounds)
	return Frame{
		Block:      s.start.WithRect(r),
		Guidelines: []geom.Guideline{},
		Distances:  []geom.DistanceGuide{},
	}
}

func (s *Session) rotate(in Input) Frame {
	cx, cy := s.Center()
	b := s.start
	b.Rotation = geom.CalculateRotation(cx, cy, in.MouseX, in.MouseY, in.Snap || s.opts.SnapRotation)
	return Frame{Block: b, Guidelines: []geom.Guideline{}, Distances: []geom.DistanceGuide{}}
}

// Center returns the block center in canvas pixels at pointer-down.
func (s *Session) Center() (float64, float64) {
	c := s.board.Canvas
	cx := float64(c.PixelsX(s.rect.X) + s.rect.Width/2)
	cy := float64(c.PixelsY(s.rect.Y) + s.rect.Height/2)
	return cx, cy
}

// Commit ends the gesture and returns a copy of the board with the last
// frame applied.
func (s *Session) Commit(ctx context.Context) (*board.Board, error) {
	if s.done {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s gesture on %q already ended", s.kind, s.start.ID)
	}
	s.done = true
	if err := s.board.Replace(s.last.Block); err != nil {
		return nil, err
	}
	observability.Gesture().OnGestureEnd(ctx, string(s.kind), s.start.ID, s.frames, time.Since(s.began), true)
	return s.board, nil
}

// Cancel ends the gesture and discards every frame. Cancelling an ended
// gesture does nothing.
func (s *Session) Cancel(ctx context.Context) {
	if s.done {
		return
	}
	s.done = true
	observability.Gesture().OnGestureEnd(ctx, string(s.kind), s.start.ID, s.frames, time.Since(s.began), false)
}
