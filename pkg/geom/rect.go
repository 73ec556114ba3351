package geom

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Rect is the geometric state of one block: its top-left corner in percent
// of the canvas and its size in pixels.
type Rect struct {
	X      Percent `json:"x"`
	Y      Percent `json:"y"`
	Width  Pixels  `json:"width"`
	Height Pixels  `json:"height"`
}

// Size is a block size in pixels.
type Size struct {
	Width  Pixels `json:"width"`
	Height Pixels `json:"height"`
}

// Size returns the pixel size of r.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// autoText is the textual sentinel for an unmeasured dimension.
const autoText = "auto"

// Dimension is a sibling block's width or height. A dimension is either a
// pixel length or "auto", meaning the block sizes itself and has not been
// measured. Auto dimensions contribute 0 to alignment math.
type Dimension struct {
	px   Pixels
	auto bool
}

// Px returns a measured dimension.
func Px(v Pixels) Dimension { return Dimension{px: v} }

// Auto returns the unmeasured dimension.
func Auto() Dimension { return Dimension{auto: true} }

// IsAuto reports whether d is unmeasured.
func (d Dimension) IsAuto() bool { return d.auto }

// Resolve returns the pixel length, or 0 for auto.
func (d Dimension) Resolve() Pixels {
	if d.auto {
		return 0
	}
	return Pixels(finite(float64(d.px)))
}

// String returns "auto" or the pixel value.
func (d Dimension) String() string {
	if d.auto {
		return autoText
	}
	return strconv.FormatFloat(float64(d.px), 'f', -1, 64)
}

// ParseDimension parses "auto" or a number.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, autoText) {
		return Auto(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return Dimension{}, fmt.Errorf("dimension %q: want a pixel value or %q", s, autoText)
	}
	return Px(Pixels(v)), nil
}

// MarshalJSON writes auto as the string "auto" and pixels as a number.
func (d Dimension) MarshalJSON() ([]byte, error) {
	if d.auto {
		return json.Marshal(autoText)
	}
	return json.Marshal(float64(d.px))
}

// UnmarshalJSON accepts a number or the string "auto".
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return d.fromAny(v)
}

// MarshalTOML writes auto as a quoted string and pixels as a bare number.
func (d Dimension) MarshalTOML() ([]byte, error) {
	if d.auto {
		return []byte(strconv.Quote(autoText)), nil
	}
	return []byte(strconv.FormatFloat(float64(d.px), 'f', -1, 64)), nil
}

// UnmarshalTOML accepts an integer, a float or the string "auto".
func (d *Dimension) UnmarshalTOML(v any) error {
	return d.fromAny(v)
}

func (d *Dimension) fromAny(v any) error {
	switch t := v.(type) {
	case float64:
		*d = Px(Pixels(t))
	case int64:
		*d = Px(Pixels(t))
	case string:
		parsed, err := ParseDimension(t)
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("dimension: unsupported value %v (%T)", v, v)
	}
	return nil
}

// Sibling is another block on the same canvas, used as a snap target.
type Sibling struct {
	ID     string
	X, Y   Percent
	Width  Dimension
	Height Dimension
}
