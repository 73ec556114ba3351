package gesture

import (
	"context"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/geom"
)

// Script is a recorded list of gestures. In TOML:
//
//	name = "align header"
//
//	[[step]]
//	kind = "move"
//	block = "a"
//	dx = 120
//	dy = -8
//	snap = true
//
//	[[step]]
//	kind = "resize"
//	block = "a"
//	handle = "br"
//	dx = 40
//	dy = 40
//	keep_aspect = true
//
//	[[step]]
//	kind = "rotate"
//	block = "b"
//	mouse_x = 640
//	mouse_y = 100
type Script struct {
	Name  string `toml:"name"`
	Steps []Step `toml:"step"`
}

// Step is one gesture with a single pointer update. Cancel discards it,
// which is useful for checking guides without changing the board.
type Step struct {
	Kind       Kind    `toml:"kind"`
	Block      string  `toml:"block"`
	Handle     string  `toml:"handle"`
	DX         float64 `toml:"dx"`
	DY         float64 `toml:"dy"`
	MouseX     float64 `toml:"mouse_x"`
	MouseY     float64 `toml:"mouse_y"`
	KeepAspect bool    `toml:"keep_aspect"`
	Snap       bool    `toml:"snap"`
	Cancel     bool    `toml:"cancel"`
}

// Input returns the pointer state the step describes.
func (st Step) Input() Input {
	return Input{
		DX:         geom.Pixels(st.DX),
		DY:         geom.Pixels(st.DY),
		MouseX:     st.MouseX,
		MouseY:     st.MouseY,
		KeepAspect: st.KeepAspect,
		Snap:       st.Snap,
	}
}

// StepResult reports what one step did.
type StepResult struct {
	Index     int   `json:"index"`
	Kind      Kind  `json:"kind"`
	Frame     Frame `json:"frame"`
	Cancelled bool  `json:"cancelled,omitempty"`
}

// ReadScript decodes and validates a TOML script.
func ReadScript(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown script key %s", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScript reads the script file at path.
func LoadScript(path string) (*Script, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadScript(f)
}

// Validate checks every step without touching a board.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if _, err := ParseKind(string(st.Kind)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScript, err, "step %d", i+1)
		}
		if err := errors.ValidateBlockID(st.Block); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScript, err, "step %d", i+1)
		}
		if st.Kind == KindResize {
			if _, err := geom.ParseHandle(st.Handle); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidScript, err, "step %d", i+1)
			}
		}
	}
	return nil
}

// Replay runs every step against a copy of bd and returns the final board.
// A step on a missing block stops the replay. The input board is never
// modified.
func Replay(ctx context.Context, bd *board.Board, s *Script, opts Options) (*board.Board, []StepResult, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	cur := bd.Clone()
	results := make([]StepResult, 0, len(s.Steps))
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, results, err
		}

		h := geom.HandleBottomRight
		if st.Kind == KindResize {
			h, _ = geom.ParseHandle(st.Handle)
		}
		sess, err := Start(ctx, st.Kind, cur, st.Block, h, opts)
		if err != nil {
			return nil, results, errors.Wrap(errors.GetCode(err), err, "step %d", i+1)
		}
		frame, err := sess.Update(ctx, st.Input())
		if err != nil {
			return nil, results, err
		}

		if st.Cancel {
			sess.Cancel(ctx)
		} else if cur, err = sess.Commit(ctx); err != nil {
			return nil, results, err
		}
		results = append(results, StepResult{Index: i + 1, Kind: st.Kind, Frame: frame, Cancelled: st.Cancel})
	}
	return cur, results, nil
}
