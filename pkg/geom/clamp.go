package geom

import "math"

// Block size limits in pixels.
const (
	MinWidth  Pixels = 40
	MinHeight Pixels = 40
	MaxWidth  Pixels = 2000
	MaxHeight Pixels = 2000
)

// Bounds holds the smallest and largest allowed block size.
type Bounds struct {
	Min Size
	Max Size
}

// DefaultBounds allows 40x40 up to 2000x2000 pixels.
var DefaultBounds = Bounds{
	Min: Size{Width: MinWidth, Height: MinHeight},
	Max: Size{Width: MaxWidth, Height: MaxHeight},
}

// ClampSize limits each dimension to [b.Min, b.Max] and rounds it to a whole
// pixel. NaN clamps to the minimum.
func ClampSize(width, height Pixels, b Bounds) Size {
	return Size{
		Width:  clampDim(width, b.Min.Width, b.Max.Width),
		Height: clampDim(height, b.Min.Height, b.Max.Height),
	}
}

// ClampSizeDefault is ClampSize with DefaultBounds.
func ClampSizeDefault(width, height Pixels) Size {
	return ClampSize(width, height, DefaultBounds)
}

func clampDim(v, lo, hi Pixels) Pixels {
	if hi < lo {
		hi = lo
	}
	f := float64(v)
	if math.IsNaN(f) {
		f = float64(lo)
	}
	f = math.Max(float64(lo), math.Min(float64(hi), f))
	return Pixels(math.Round(f))
}
