package svg

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/geom"
)

const (
	colorCanvas    = "#fafafa"
	colorSafeArea  = "#e5e7eb"
	colorBlock     = "#ffffff"
	colorStroke    = "#374151"
	colorHighlight = "#2563eb"
	colorGuide     = "#ec4899"
	colorDistance  = "#f97316"
	colorText      = "#111827"
)

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	guides    []geom.Guideline
	distances []geom.DistanceGuide
	highlight string
	labels    bool
	safeArea  geom.Pixels
}

func WithGuides(gs []geom.Guideline) Option        { return func(r *renderer) { r.guides = gs } }
func WithDistances(ds []geom.DistanceGuide) Option { return func(r *renderer) { r.distances = ds } }
func WithHighlight(id string) Option               { return func(r *renderer) { r.highlight = id } }
func WithLabels() Option                           { return func(r *renderer) { r.labels = true } }
func WithSafeArea(px geom.Pixels) Option           { return func(r *renderer) { r.safeArea = px } }

// Render draws bd. A board with an unusable canvas renders as an empty
// 0x0 picture.
func Render(bd *board.Board, opts ...Option) []byte {
	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}

	c := bd.Canvas
	if !c.Valid() {
		c = geom.Canvas{}
	}
	w, h := float64(c.Width), float64(c.Height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	if bd.Name != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(bd.Name))
	}
	fmt.Fprintf(&buf, `  <rect class="canvas" x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, colorCanvas)
	r.renderSafeArea(&buf, w, h)

	for _, b := range bd.Blocks {
		r.renderBlock(&buf, c, b)
	}
	for _, g := range r.guides {
		renderGuide(&buf, c, g)
	}
	for _, d := range r.distances {
		renderDistance(&buf, c, d)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *renderer) renderSafeArea(buf *bytes.Buffer, w, h float64) {
	inset := float64(r.safeArea)
	if inset <= 0 || 2*inset >= w || 2*inset >= h {
		return
	}
	fmt.Fprintf(buf, `  <rect class="safe-area" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-dasharray="4 4"/>`+"\n",
		inset, inset, w-2*inset, h-2*inset, colorSafeArea)
}

func (r *renderer) renderBlock(buf *bytes.Buffer, c geom.Canvas, b board.Block) {
	rect := b.Rect(board.DefaultBlockSize)
	x, y := float64(c.PixelsX(rect.X)), float64(c.PixelsY(rect.Y))
	w, h := float64(rect.Width), float64(rect.Height)
	cx, cy := x+w/2, y+h/2

	stroke, width := colorStroke, 1.5
	if b.ID == r.highlight {
		stroke, width = colorHighlight, 3
	}

	fmt.Fprintf(buf, `  <g id="block-%s"`, escapeXML(b.ID))
	if b.Rotation != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%d %.1f %.1f)"`, b.Rotation, cx, cy)
	}
	buf.WriteString(">\n")
	fmt.Fprintf(buf, `    <rect class="block" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		x, y, w, h, colorBlock, stroke, width)
	if r.labels {
		label := b.Label
		if label == "" {
			label = b.ID
		}
		size := fontSize(w, h, len(label))
		fmt.Fprintf(buf, `    <text class="block-text" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
			cx, cy, size, colorText, escapeXML(truncateLabel(label, w, size)))
	}
	buf.WriteString("  </g>\n")
}

func renderGuide(buf *bytes.Buffer, c geom.Canvas, g geom.Guideline) {
	w, h := float64(c.Width), float64(c.Height)
	x1, y1, x2, y2 := 0.0, 0.0, w, h
	if g.Type == geom.GuideVertical {
		x1 = float64(c.PixelsX(g.Pos))
		x2 = x1
	} else {
		y1 = float64(c.PixelsY(g.Pos))
		y2 = y1
	}
	fmt.Fprintf(buf, `  <line class="guide guide-%s" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
		g.Type, x1, y1, x2, y2, colorGuide)
}

func renderDistance(buf *bytes.Buffer, c geom.Canvas, d geom.DistanceGuide) {
	from, to := d.Pos-d.Distance/2, d.Pos+d.Distance/2
	across := (d.Start + d.End) / 2

	var x1, y1, x2, y2 float64
	if d.Type == geom.GuideHorizontal {
		y := float64(c.PixelsY(across))
		x1, y1, x2, y2 = float64(c.PixelsX(from)), y, float64(c.PixelsX(to)), y
	} else {
		x := float64(c.PixelsX(across))
		x1, y1, x2, y2 = x, float64(c.PixelsY(from)), x, float64(c.PixelsY(to))
	}
	fmt.Fprintf(buf, `  <line class="distance" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1" stroke-dasharray="3 2"/>`+"\n",
		x1, y1, x2, y2, colorDistance)
	fmt.Fprintf(buf, `  <text class="distance-label" x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="10" fill="%s">%s</text>`+"\n",
		(x1+x2)/2, (y1+y2)/2-4, colorDistance, escapeXML(d.Label))
}
