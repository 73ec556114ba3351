package render

import (
	"context"
	"slices"
	"testing"

	"github.com/matzehuels/pinboard/pkg/cache"
	"github.com/matzehuels/pinboard/pkg/errors"
)

func TestConvertSVGPassthrough(t *testing.T) {
	in := []byte("<svg/>")
	out, err := Convert(context.Background(), in, FormatSVG, 0)
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if string(out) != string(in) {
		t.Errorf("Convert() = %q, want input unchanged", out)
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	_, err := Convert(context.Background(), []byte("<svg/>"), "gif", 1)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestRsvgArgs(t *testing.T) {
	tests := []struct {
		format string
		scale  float64
		want   []string
	}{
		{FormatPDF, 2, []string{"-f", "pdf"}},
		{FormatPNG, 2, []string{"-f", "png", "-z", "2.00"}},
		{FormatPNG, 0, []string{"-f", "png"}},
	}
	for _, tt := range tests {
		if got := rsvgArgs(tt.format, tt.scale); !slices.Equal(got, tt.want) {
			t.Errorf("rsvgArgs(%s, %v) = %v, want %v", tt.format, tt.scale, got, tt.want)
		}
	}
}

func TestConvertCachedHit(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svg := []byte("<svg/>")
	if err := c.Set(ctx, cache.ConversionKey(svg, FormatPNG, 2), []byte("png bytes"), cache.DefaultTTL); err != nil {
		t.Fatal(err)
	}

	out, hit, err := ConvertCached(ctx, c, svg, FormatPNG, 2)
	if err != nil {
		t.Fatalf("ConvertCached() error: %v", err)
	}
	if !hit || string(out) != "png bytes" {
		t.Errorf("ConvertCached() = (%q, %v), want cached bytes", out, hit)
	}
}

func TestConvertCachedMiss(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svg := []byte("<svg/>")

	out, hit, err := ConvertCached(ctx, c, svg, FormatSVG, 0)
	if err != nil || hit || string(out) != string(svg) {
		t.Errorf("svg: ConvertCached() = (%q, %v, %v), want passthrough", out, hit, err)
	}

	_, _, err = ConvertCached(ctx, c, svg, "gif", 1)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("gif: error = %v, want INVALID_FORMAT", err)
	}
	if _, stored, _ := c.Get(ctx, cache.ConversionKey(svg, "gif", 1)); stored {
		t.Error("failed conversion should not be cached")
	}
}
