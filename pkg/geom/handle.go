package geom

import (
	"strings"

	"github.com/matzehuels/pinboard/pkg/errors"
)

// Handle identifies one of the eight resize grips on a block's bounding box.
type Handle int

const (
	HandleTopLeft Handle = iota
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
	HandleTop
	HandleBottom
	HandleLeft
	HandleRight
)

// CSS cursor names for resize handles.
const (
	CursorNWSE = "nwse-resize"
	CursorNESW = "nesw-resize"
	CursorNS   = "ns-resize"
	CursorEW   = "ew-resize"
)

var handleNames = [...]string{
	HandleTopLeft:     "tl",
	HandleTopRight:    "tr",
	HandleBottomLeft:  "bl",
	HandleBottomRight: "br",
	HandleTop:         "top",
	HandleBottom:      "bottom",
	HandleLeft:        "left",
	HandleRight:       "right",
}

// Handles returns all handles, corners first.
func Handles() []Handle {
	return []Handle{
		HandleTopLeft, HandleTopRight, HandleBottomLeft, HandleBottomRight,
		HandleTop, HandleBottom, HandleLeft, HandleRight,
	}
}

// Valid reports whether h is one of the eight handles.
func (h Handle) Valid() bool { return h >= 0 && int(h) < len(handleNames) }

// String returns the short handle name ("tl", "bottom", ...).
func (h Handle) String() string {
	if !h.Valid() {
		return "unknown"
	}
	return handleNames[h]
}

// ParseHandle parses a short handle name. Long corner names such as
// "top-left" are accepted too.
func ParseHandle(s string) (Handle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "top-left", "topleft":
		name = "tl"
	case "top-right", "topright":
		name = "tr"
	case "bottom-left", "bottomleft":
		name = "bl"
	case "bottom-right", "bottomright":
		name = "br"
	}
	for i, n := range handleNames {
		if n == name {
			return Handle(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidHandle, "unknown resize handle %q (want tl, tr, bl, br, top, bottom, left or right)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (h Handle) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Handle) UnmarshalText(text []byte) error {
	parsed, err := ParseHandle(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// IsCorner reports whether h is one of the four corner grips.
func (h Handle) IsCorner() bool {
	switch h {
	case HandleTopLeft, HandleTopRight, HandleBottomLeft, HandleBottomRight:
		return true
	}
	return false
}

// MovesX reports whether resizing from h shifts the block's x origin.
func (h Handle) MovesX() bool {
	return h == HandleTopLeft || h == HandleBottomLeft || h == HandleLeft
}

// MovesY reports whether resizing from h shifts the block's y origin.
func (h Handle) MovesY() bool {
	return h == HandleTopLeft || h == HandleTopRight || h == HandleTop
}

// Cursor returns the CSS cursor for h.
func (h Handle) Cursor() string {
	switch h {
	case HandleTopLeft, HandleBottomRight:
		return CursorNWSE
	case HandleTopRight, HandleBottomLeft:
		return CursorNESW
	case HandleTop, HandleBottom:
		return CursorNS
	case HandleLeft, HandleRight:
		return CursorEW
	}
	return "default"
}

// ResizeCursor returns the CSS cursor for h.
func ResizeCursor(h Handle) string { return h.Cursor() }
