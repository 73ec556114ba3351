package geom

import (
	"math"
	"math/rand"
	"testing"
)

func TestClampSizeDefault(t *testing.T) {
	tests := []struct {
		name          string
		width, height Pixels
		want          Size
	}{
		{"within bounds", 200, 100, Size{200, 100}},
		{"below minimum", 10, 39, Size{40, 40}},
		{"above maximum", 3000, 2500, Size{2000, 2000}},
		{"negative", -50, -1, Size{40, 40}},
		{"mixed", 3000, 50, Size{2000, 50}},
		{"rounds", 100.4, 100.6, Size{100, 101}},
		{"NaN", Pixels(math.NaN()), 80, Size{40, 80}},
		{"infinities", Pixels(math.Inf(1)), Pixels(math.Inf(-1)), Size{2000, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampSizeDefault(tt.width, tt.height); got != tt.want {
				t.Errorf("ClampSizeDefault(%v, %v) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestClampSizeCustomBounds(t *testing.T) {
	b := Bounds{Min: Size{10, 20}, Max: Size{100, 200}}

	if got := ClampSize(5, 500, b); got != (Size{10, 200}) {
		t.Errorf("ClampSize(5, 500) = %v, want {10 200}", got)
	}

	// An inverted range collapses onto the minimum.
	inverted := Bounds{Min: Size{50, 50}, Max: Size{10, 10}}
	if got := ClampSize(30, 30, inverted); got != (Size{50, 50}) {
		t.Errorf("ClampSize with inverted bounds = %v, want {50 50}", got)
	}
}

func TestClampSizeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		w := Pixels((rng.Float64() - 0.5) * 10000)
		h := Pixels((rng.Float64() - 0.5) * 10000)

		once := ClampSizeDefault(w, h)
		if once.Width < MinWidth || once.Width > MaxWidth {
			t.Fatalf("width %v out of bounds for input %v", once.Width, w)
		}
		if once.Height < MinHeight || once.Height > MaxHeight {
			t.Fatalf("height %v out of bounds for input %v", once.Height, h)
		}

		twice := ClampSizeDefault(once.Width, once.Height)
		if twice != once {
			t.Fatalf("ClampSize not idempotent: %v then %v", once, twice)
		}
	}
}
