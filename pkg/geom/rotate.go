package geom

import "math"

// RotationStep is the grid, in degrees, that snapped rotations land on.
const RotationStep = 15

// CalculateRotation returns the rotation, in whole degrees within [0, 360),
// that points a block centered at (centerX, centerY) towards the pointer at
// (mouseX, mouseY). Both points must be in the same pixel frame.
//
// Zero degrees points up, matching CSS rotation, so a pointer straight to the
// right of the center yields 90. With snap set the angle is rounded to the
// nearest multiple of RotationStep. A pointer exactly on the center yields
// 90; callers should treat that as no rotation intent.
func CalculateRotation(centerX, centerY, mouseX, mouseY float64, snap bool) int {
	rad := math.Atan2(mouseY-centerY, mouseX-centerX)
	if math.IsNaN(rad) {
		return 0
	}
	angle := NormalizeAngle(rad*180/math.Pi + 90)
	if snap {
		angle = math.Round(angle/RotationStep) * RotationStep
	} else {
		angle = math.Round(angle)
	}
	return int(NormalizeAngle(angle))
}

// NormalizeAngle maps any finite angle in degrees into [0, 360).
// Non-finite angles map to 0.
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	a := math.Mod(math.Mod(deg, 360)+360, 360)
	if a >= 360 {
		a = 0
	}
	return a
}
