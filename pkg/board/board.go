package board

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/geom"
)

// DefaultBlockSize stands in for auto dimensions when a block is itself the
// subject of a gesture.
var DefaultBlockSize = geom.Size{Width: 200, Height: 100}

// Board is a named canvas with blocks. Block order is paint order.
type Board struct {
	Name   string      `json:"name,omitempty" toml:"name,omitempty"`
	Canvas geom.Canvas `json:"canvas" toml:"canvas"`
	Blocks []Block     `json:"blocks" toml:"blocks"`
}

// Block is one placed item.
type Block struct {
	ID       string         `json:"id" toml:"id"`
	Label    string         `json:"label,omitempty" toml:"label,omitempty"`
	X        geom.Percent   `json:"x" toml:"x"`
	Y        geom.Percent   `json:"y" toml:"y"`
	Width    geom.Dimension `json:"width" toml:"width"`
	Height   geom.Dimension `json:"height" toml:"height"`
	Rotation int            `json:"rotation,omitempty" toml:"rotation,omitempty"`
}

// New returns an empty board on the given canvas.
func New(name string, c geom.Canvas) *Board {
	return &Board{Name: name, Canvas: c, Blocks: []Block{}}
}

// NewBlock returns a measured block with a fresh random ID.
func NewBlock(x, y geom.Percent, width, height geom.Pixels) Block {
	return Block{
		ID:     uuid.NewString(),
		X:      x,
		Y:      y,
		Width:  geom.Px(width),
		Height: geom.Px(height),
	}
}

// Rect returns the block geometry, substituting fallback for auto
// dimensions.
func (b Block) Rect(fallback geom.Size) geom.Rect {
	r := geom.Rect{X: b.X, Y: b.Y, Width: b.Width.Resolve(), Height: b.Height.Resolve()}
	if b.Width.IsAuto() {
		r.Width = fallback.Width
	}
	if b.Height.IsAuto() {
		r.Height = fallback.Height
	}
	return r
}

// WithRect returns a copy of b moved and sized to r. Both dimensions become
// measured.
func (b Block) WithRect(r geom.Rect) Block {
	b.X, b.Y = r.X, r.Y
	b.Width, b.Height = geom.Px(r.Width), geom.Px(r.Height)
	return b
}

// WithPosition returns a copy of b moved to (x, y). Auto dimensions stay
// auto.
func (b Block) WithPosition(x, y geom.Percent) Block {
	b.X, b.Y = x, y
	return b
}

// Sibling returns b as a snap target.
func (b Block) Sibling() geom.Sibling {
	return geom.Sibling{ID: b.ID, X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Index returns the position of the block with the given ID, or -1.
func (bd *Board) Index(id string) int {
	return slices.IndexFunc(bd.Blocks, func(b Block) bool { return b.ID == id })
}

// Find returns the block with the given ID.
func (bd *Board) Find(id string) (Block, bool) {
	if i := bd.Index(id); i >= 0 {
		return bd.Blocks[i], true
	}
	return Block{}, false
}

// Get is Find with a BLOCK_NOT_FOUND error.
func (bd *Board) Get(id string) (Block, error) {
	b, ok := bd.Find(id)
	if !ok {
		return Block{}, errors.New(errors.ErrCodeBlockNotFound, "block %q not found", id)
	}
	return b, nil
}

// Rect returns the geometry of the block with the given ID.
func (bd *Board) Rect(id string) (geom.Rect, error) {
	b, err := bd.Get(id)
	if err != nil {
		return geom.Rect{}, err
	}
	return b.Rect(DefaultBlockSize), nil
}

// Siblings returns every block except id as snap targets, in paint order.
func (bd *Board) Siblings(id string) []geom.Sibling {
	out := make([]geom.Sibling, 0, len(bd.Blocks))
	for _, b := range bd.Blocks {
		if b.ID != id {
			out = append(out, b.Sibling())
		}
	}
	return out
}

// IDs returns the block IDs in paint order.
func (bd *Board) IDs() []string {
	ids := make([]string, len(bd.Blocks))
	for i, b := range bd.Blocks {
		ids[i] = b.ID
	}
	return ids
}

// Add appends a block. The ID must be valid and unused.
func (bd *Board) Add(b Block) error {
	if err := errors.ValidateBlockID(b.ID); err != nil {
		return err
	}
	if bd.Index(b.ID) >= 0 {
		return errors.New(errors.ErrCodeInvalidBlock, "duplicate block id %q", b.ID)
	}
	bd.Blocks = append(bd.Blocks, b)
	return nil
}

// Replace overwrites the block with the same ID.
func (bd *Board) Replace(b Block) error {
	i := bd.Index(b.ID)
	if i < 0 {
		return errors.New(errors.ErrCodeBlockNotFound, "block %q not found", b.ID)
	}
	bd.Blocks[i] = b
	return nil
}

// Remove deletes the block with the given ID.
func (bd *Board) Remove(id string) error {
	i := bd.Index(id)
	if i < 0 {
		return errors.New(errors.ErrCodeBlockNotFound, "block %q not found", id)
	}
	bd.Blocks = slices.Delete(bd.Blocks, i, i+1)
	return nil
}

// Clone returns a deep copy of the board.
func (bd *Board) Clone() *Board {
	c := *bd
	c.Blocks = slices.Clone(bd.Blocks)
	if c.Blocks == nil {
		c.Blocks = []Block{}
	}
	return &c
}

// Validate checks the canvas and every block ID.
func (bd *Board) Validate() error {
	if err := geom.ValidateCanvas(bd.Canvas); err != nil {
		return err
	}
	seen := make(map[string]bool, len(bd.Blocks))
	for _, b := range bd.Blocks {
		if err := errors.ValidateBlockID(b.ID); err != nil {
			return err
		}
		if seen[b.ID] {
			return errors.New(errors.ErrCodeInvalidBlock, "duplicate block id %q", b.ID)
		}
		seen[b.ID] = true
		if err := errors.ValidateFinite("x of "+b.ID, float64(b.X)); err != nil {
			return err
		}
		if err := errors.ValidateFinite("y of "+b.ID, float64(b.Y)); err != nil {
			return err
		}
	}
	return nil
}
