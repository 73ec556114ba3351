package geom

import (
	"math"
	"math/rand"
	"testing"
)

func TestCalculateRotation(t *testing.T) {
	tests := []struct {
		name           string
		cx, cy, mx, my float64
		snap           bool
		want           int
	}{
		{"pointer right", 0, 0, 10, 0, false, 90},
		{"pointer above", 0, 0, 0, -10, false, 0},
		{"pointer below", 0, 0, 0, 10, false, 180},
		{"pointer left", 0, 0, -10, 0, false, 270},
		{"diagonal", 100, 100, 200, 200, false, 135},
		{"rounds to whole degrees", 0, 0, 10, 1, false, 96},
		{"snaps to 15", 0, 0, 10, 1, true, 90},
		{"snap right is multiple of 15", 0, 0, 10, 0, true, 90},
		{"just left of up", 0, 0, -1, -100, false, 359},
		{"snap wraps 360 to 0", 0, 0, -1, -100, true, 0},
		{"degenerate center", 100, 100, 100, 100, false, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRotation(tt.cx, tt.cy, tt.mx, tt.my, tt.snap)
			if got != tt.want {
				t.Errorf("CalculateRotation(%v, %v, %v, %v, %v) = %d, want %d",
					tt.cx, tt.cy, tt.mx, tt.my, tt.snap, got, tt.want)
			}
		})
	}
}

func TestCalculateRotationRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	values := []float64{0, -1, 1, 1e308, -1e308, math.Inf(1), math.NaN()}

	for i := 0; i < 5000; i++ {
		pick := func() float64 {
			if rng.Intn(4) == 0 {
				return values[rng.Intn(len(values))]
			}
			return (rng.Float64() - 0.5) * 1e6
		}
		snap := rng.Intn(2) == 0
		got := CalculateRotation(pick(), pick(), pick(), pick(), snap)
		if got < 0 || got >= 360 {
			t.Fatalf("rotation %d outside [0, 360)", got)
		}
		if snap && got%RotationStep != 0 {
			t.Fatalf("snapped rotation %d is not a multiple of %d", got, RotationStep)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{360, 0},
		{720, 0},
		{-90, 270},
		{-450, 270},
		{math.NaN(), 0},
		{math.Inf(-1), 0},
	}

	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); got != tt.want {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
