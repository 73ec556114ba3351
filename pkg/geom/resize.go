package geom

import "math"

// positionPlaces is the number of decimals kept on resized positions.
const positionPlaces = 4

// CalculateResize resizes cur by dragging handle h by (dx, dy) pixels.
//
// The anchor opposite the handle stays fixed: dragging the top-left corner
// keeps the bottom-right corner in place, dragging the left edge keeps the
// right edge in place, and so on. With keepAspect set, corner drags keep the
// width/height ratio of cur; the axis that changed most drives the other.
//
// The resulting size is clamped to DefaultBounds, keeping the ratio under
// keepAspect. When the clamp changes a
// dimension the position is re-derived from the clamped size, so the anchor
// does not drift once a limit is hit. Positions are clamped to [0, 100] and
// rounded to four decimals; sizes are whole pixels.
func CalculateResize(h Handle, dx, dy Pixels, cur Rect, c Canvas, keepAspect bool) Rect {
	return CalculateResizeBounded(h, dx, dy, cur, c, keepAspect, DefaultBounds)
}

// CalculateResizeBounded is CalculateResize with explicit size bounds.
func CalculateResizeBounded(h Handle, dx, dy Pixels, cur Rect, c Canvas, keepAspect bool, b Bounds) Rect {
	dx, dy = Pixels(finite(float64(dx))), Pixels(finite(float64(dy)))
	cur = sanitizeRect(cur)

	width, height := cur.Width, cur.Height
	switch h {
	case HandleBottomRight:
		width += dx
		height += dy
	case HandleBottomLeft:
		width -= dx
		height += dy
	case HandleTopRight:
		width += dx
		height -= dy
	case HandleTopLeft:
		width -= dx
		height -= dy
	case HandleRight:
		width += dx
	case HandleLeft:
		width -= dx
	case HandleBottom:
		height += dy
	case HandleTop:
		height -= dy
	}

	var size Size
	if keepAspect && h.IsCorner() {
		ratio := aspectRatio(cur)
		width, height = lockAspect(ratio, cur, width, height)
		size = clampLocked(width, height, ratio, b)
	} else {
		size = ClampSize(width, height, b)
	}

	// Position offsets always come from the final size, which covers both
	// the aspect-corrected and the clamped cases.
	x, y := cur.X, cur.Y
	if h.MovesX() {
		x = cur.X + c.PercentX(cur.Width-size.Width)
	}
	if h.MovesY() {
		y = cur.Y + c.PercentY(cur.Height-size.Height)
	}

	return Rect{
		X:      Percent(roundTo(float64(ClampPercent(x)), positionPlaces)),
		Y:      Percent(roundTo(float64(ClampPercent(y)), positionPlaces)),
		Width:  size.Width,
		Height: size.Height,
	}
}

// lockAspect corrects an unlocked (width, height) so that it keeps ratio.
// The axis with the larger change relative to cur is kept.
func lockAspect(ratio float64, cur Rect, width, height Pixels) (Pixels, Pixels) {
	dw := math.Abs(float64(width - cur.Width))
	dh := math.Abs(float64(height - cur.Height))
	if dw >= dh {
		return width, width / Pixels(ratio)
	}
	return height * Pixels(ratio), height
}

// clampLocked clamps a ratio-locked size to b by scaling both sides by the
// same factor. When b cannot hold the ratio at all the sides are clamped
// independently.
func clampLocked(width, height Pixels, ratio float64, b Bounds) Size {
	if width <= 0 || height <= 0 {
		width, height = b.Min.Width, b.Min.Width/Pixels(ratio)
	}
	lo := max(b.Min.Width/width, b.Min.Height/height)
	hi := min(b.Max.Width/width, b.Max.Height/height)
	k := min(max(Pixels(1), lo), hi)
	return ClampSize(width*k, height*k, b)
}

// aspectRatio returns width/height of r, or 1 when it is undefined.
func aspectRatio(r Rect) float64 {
	ratio := float64(r.Width) / float64(r.Height)
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 1
	}
	return ratio
}

func sanitizeRect(r Rect) Rect {
	return Rect{
		X:      Percent(finite(float64(r.X))),
		Y:      Percent(finite(float64(r.Y))),
		Width:  Pixels(finite(float64(r.Width))),
		Height: Pixels(finite(float64(r.Height))),
	}
}
