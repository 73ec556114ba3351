package geom

import (
	"math"

	"github.com/matzehuels/pinboard/pkg/errors"
)

// Percent is a coordinate expressed as a share (0-100) of a canvas dimension.
type Percent float64

// Pixels is an absolute length in canvas pixels.
type Pixels float64

// Canvas holds the measured pixel size of the board's drawing area.
type Canvas struct {
	Width  Pixels `json:"width" toml:"width"`
	Height Pixels `json:"height" toml:"height"`
}

// PercentX converts a horizontal pixel length to percent of the canvas width.
// It returns 0 when the canvas width cannot be divided by.
func (c Canvas) PercentX(px Pixels) Percent { return toPercent(px, c.Width) }

// PercentY converts a vertical pixel length to percent of the canvas height.
func (c Canvas) PercentY(px Pixels) Percent { return toPercent(px, c.Height) }

// PixelsX converts a percent of the canvas width to pixels.
func (c Canvas) PixelsX(p Percent) Pixels { return toPixels(p, c.Width) }

// PixelsY converts a percent of the canvas height to pixels.
func (c Canvas) PixelsY(p Percent) Pixels { return toPixels(p, c.Height) }

// Valid reports whether both dimensions are positive and finite.
func (c Canvas) Valid() bool {
	return usable(c.Width) && usable(c.Height)
}

// ValidateCanvas returns an INVALID_CANVAS error when c has a zero,
// negative or non-finite dimension.
func ValidateCanvas(c Canvas) error {
	if !usable(c.Width) {
		return errors.New(errors.ErrCodeInvalidCanvas, "canvas width must be a positive number, got %v", float64(c.Width))
	}
	if !usable(c.Height) {
		return errors.New(errors.ErrCodeInvalidCanvas, "canvas height must be a positive number, got %v", float64(c.Height))
	}
	return nil
}

func usable(dim Pixels) bool {
	d := float64(dim)
	return d > 0 && !math.IsInf(d, 0) && !math.IsNaN(d)
}

func toPercent(px, dim Pixels) Percent {
	if !usable(dim) {
		return 0
	}
	return Percent(finite(finite(float64(px)) / float64(dim) * 100))
}

func toPixels(p Percent, dim Pixels) Pixels {
	if !usable(dim) {
		return 0
	}
	return Pixels(finite(finite(float64(p)) / 100 * float64(dim)))
}

// ClampPercent limits a position to the canvas, [0, 100]. NaN maps to 0.
func ClampPercent(p Percent) Percent {
	v := float64(p)
	if math.IsNaN(v) {
		return 0
	}
	return Percent(math.Max(0, math.Min(100, v)))
}

// finite maps NaN and infinities to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
