package geom

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// GuideType is the orientation of an alignment guide.
type GuideType int

const (
	// GuideHorizontal is a line at a y position.
	GuideHorizontal GuideType = iota
	// GuideVertical is a line at an x position.
	GuideVertical
)

// String returns "horizontal" or "vertical".
func (t GuideType) String() string {
	if t == GuideVertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalJSON writes the guide type as its name.
func (t GuideType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// UnmarshalJSON reads "horizontal" or "vertical".
func (t *GuideType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "horizontal":
		*t = GuideHorizontal
	case "vertical":
		*t = GuideVertical
	default:
		return fmt.Errorf("guide type %q: want horizontal or vertical", s)
	}
	return nil
}

// Guideline is a full-span alignment line to render while a snap is active.
// Vertical guides carry an x position, horizontal guides a y position.
type Guideline struct {
	Type GuideType `json:"type"`
	Pos  Percent   `json:"pos"`
}

// DistanceGuide annotates the gap between the dragged block and a nearby
// sibling. Pos is the midpoint of the gap on the measured axis; Start and End
// bound the range where the two blocks overlap on the other axis.
type DistanceGuide struct {
	Type     GuideType `json:"type"`
	Pos      Percent   `json:"pos"`
	Start    Percent   `json:"start"`
	End      Percent   `json:"end"`
	Distance Percent   `json:"distance"`
	Label    string    `json:"label"`
}

// SnapResult is the outcome of one snap computation.
type SnapResult struct {
	X          Percent         `json:"x"`
	Y          Percent         `json:"y"`
	Guidelines []Guideline     `json:"guidelines"`
	Distances  []DistanceGuide `json:"distances"`
}

// SnapOptions tunes CalculateSnap. Start from DefaultSnapOptions; zero
// fields are taken literally.
type SnapOptions struct {
	// Threshold is the largest distance, in percent, that still snaps.
	Threshold Percent
	// GridSize is the grid pitch in percent. Zero or less disables the grid.
	GridSize Percent
	// SafeArea is the inset from the canvas edges that blocks snap to.
	SafeArea Pixels
	// DistanceThreshold limits distance guides to siblings this close.
	DistanceThreshold Percent
}

// DefaultSnapOptions returns a 1% threshold, a 2.5% grid, a 40px safe area
// and distance guides up to 15%.
func DefaultSnapOptions() SnapOptions {
	return SnapOptions{
		Threshold:         1,
		GridSize:          2.5,
		SafeArea:          40,
		DistanceThreshold: 15,
	}
}

// CalculateSnap snaps a block being dragged to (x, y) and reports the guides
// to draw.
//
// Four passes run in order, each starting from the position the previous one
// produced: the grid, the canvas edges (the nearer of the raw edge and the
// safe-area inset, the raw edge on ties), the siblings (edge to same edge, center to center, and edge to
// opposite edge for flush placement), and finally distance measurement to
// nearby siblings, which annotates but never moves. Later passes may override
// earlier corrections; guidelines that no longer touch the final block are
// dropped.
//
// Siblings with an auto dimension contribute 0 for it and skip the checks
// that need their extent on that axis (right/bottom edge and center); checks
// against their origin still run.
func CalculateSnap(x, y Percent, size Size, c Canvas, others []Sibling, opts SnapOptions) SnapResult {
	x, y = Percent(finite(float64(x))), Percent(finite(float64(y)))
	if !c.Valid() {
		return SnapResult{
			X:          ClampPercent(x),
			Y:          ClampPercent(y),
			Guidelines: []Guideline{},
			Distances:  []DistanceGuide{},
		}
	}

	s := snapper{
		canvas: c,
		opts:   opts,
		x:      x,
		y:      y,
		w:      c.PercentX(size.Width),
		h:      c.PercentY(size.Height),

		distances: []DistanceGuide{},
	}
	s.snapGrid()
	s.snapCanvasEdges()
	for _, o := range others {
		s.snapSibling(o)
	}

	s.x, s.y = ClampPercent(s.x), ClampPercent(s.y)
	for _, o := range others {
		s.measure(o)
	}

	return SnapResult{
		X:          s.x,
		Y:          s.y,
		Guidelines: s.liveGuides(),
		Distances:  s.distances,
	}
}

// snapper holds the running state of one CalculateSnap call.
type snapper struct {
	canvas    Canvas
	opts      SnapOptions
	x, y      Percent // running top-left
	w, h      Percent // block extent
	guides    []Guideline
	distances []DistanceGuide
}

func (s *snapper) near(a, b Percent) bool {
	return math.Abs(float64(a-b)) < float64(s.opts.Threshold)
}

func (s *snapper) snapGrid() {
	g := float64(s.opts.GridSize)
	if g <= 0 {
		return
	}
	if gx := Percent(math.Round(float64(s.x)/g) * g); s.near(gx, s.x) {
		s.x = gx
	}
	if gy := Percent(math.Round(float64(s.y)/g) * g); s.near(gy, s.y) {
		s.y = gy
	}
}

func (s *snapper) snapCanvasEdges() {
	safeX := s.canvas.PercentX(s.opts.SafeArea)
	safeY := s.canvas.PercentY(s.opts.SafeArea)

	if to, ok := s.nearestEdge(s.x, 0, safeX); ok {
		s.x = to
		s.vertical(to)
	}
	if to, ok := s.nearestEdge(s.x+s.w, 100, 100-safeX); ok {
		s.x = to - s.w
		s.vertical(to)
	}
	if to, ok := s.nearestEdge(s.y, 0, safeY); ok {
		s.y = to
		s.horizontal(to)
	}
	if to, ok := s.nearestEdge(s.y+s.h, 100, 100-safeY); ok {
		s.y = to - s.h
		s.horizontal(to)
	}
}

// nearestEdge picks the closer of a raw canvas edge and its safe-area inset
// among those within the threshold of pos. The raw edge wins ties. On wide
// canvases the inset lies within the threshold of the edge itself.
func (s *snapper) nearestEdge(pos, edge, inset Percent) (Percent, bool) {
	de := math.Abs(float64(pos - edge))
	di := math.Abs(float64(pos - inset))
	okEdge, okInset := s.near(pos, edge), s.near(pos, inset)
	switch {
	case okEdge && (!okInset || de <= di):
		return edge, true
	case okInset:
		return inset, true
	}
	return 0, false
}

func (s *snapper) snapSibling(o Sibling) {
	ox, oy := Percent(finite(float64(o.X))), Percent(finite(float64(o.Y)))
	ow := s.canvas.PercentX(o.Width.Resolve())
	oh := s.canvas.PercentY(o.Height.Resolve())

	// Left edges.
	if s.near(s.x, ox) {
		s.x = ox
		s.vertical(ox)
	}
	if !o.Width.IsAuto() {
		right, center := ox+ow, ox+ow/2
		if s.near(s.x+s.w, right) {
			s.x = right - s.w
			s.vertical(right)
		}
		if s.near(s.x+s.w/2, center) {
			s.x = center - s.w/2
			s.vertical(center)
		}
		// Flush against its right edge.
		if s.near(s.x, right) {
			s.x = right
			s.vertical(right)
		}
	}
	// Flush against its left edge only needs its origin.
	if s.near(s.x+s.w, ox) {
		s.x = ox - s.w
		s.vertical(ox)
	}

	// Top edges.
	if s.near(s.y, oy) {
		s.y = oy
		s.horizontal(oy)
	}
	if !o.Height.IsAuto() {
		bottom, middle := oy+oh, oy+oh/2
		if s.near(s.y+s.h, bottom) {
			s.y = bottom - s.h
			s.horizontal(bottom)
		}
		if s.near(s.y+s.h/2, middle) {
			s.y = middle - s.h/2
			s.horizontal(middle)
		}
		if s.near(s.y, bottom) {
			s.y = bottom
			s.horizontal(bottom)
		}
	}
	if s.near(s.y+s.h, oy) {
		s.y = oy - s.h
		s.horizontal(oy)
	}
}

// measure emits distance guides between the final block and o.
func (s *snapper) measure(o Sibling) {
	ox, oy := Percent(finite(float64(o.X))), Percent(finite(float64(o.Y)))
	ow := s.canvas.PercentX(o.Width.Resolve())
	oh := s.canvas.PercentY(o.Height.Resolve())

	left, right, top, bottom := s.x, s.x+s.w, s.y, s.y+s.h
	oLeft, oRight, oTop, oBottom := ox, ox+ow, oy, oy+oh

	if top < oBottom && bottom > oTop {
		start, end := max(top, oTop), min(bottom, oBottom)
		if gap := oLeft - right; s.withinReach(gap) {
			s.distance(GuideHorizontal, right, oLeft, start, end)
		}
		if gap := left - oRight; s.withinReach(gap) {
			s.distance(GuideHorizontal, oRight, left, start, end)
		}
	}
	if left < oRight && right > oLeft {
		start, end := max(left, oLeft), min(right, oRight)
		if gap := oTop - bottom; s.withinReach(gap) {
			s.distance(GuideVertical, bottom, oTop, start, end)
		}
		if gap := top - oBottom; s.withinReach(gap) {
			s.distance(GuideVertical, oBottom, top, start, end)
		}
	}
}

// gapEpsilon absorbs float noise on flush placements.
const gapEpsilon = 1e-9

func (s *snapper) withinReach(gap Percent) bool {
	return gap > -gapEpsilon && gap < s.opts.DistanceThreshold
}

// distance records the gap between from and to on the measured axis.
func (s *snapper) distance(t GuideType, from, to, start, end Percent) {
	gap := max(to-from, 0)
	s.distances = append(s.distances, DistanceGuide{
		Type:     t,
		Pos:      (from + to) / 2,
		Start:    start,
		End:      end,
		Distance: gap,
		Label:    DistanceLabel(gap),
	})
}

// DistanceLabel formats a gap as a whole percentage, e.g. "5%". Halves
// round up.
func DistanceLabel(gap Percent) string {
	return strconv.FormatFloat(math.Round(float64(gap)), 'f', 0, 64) + "%"
}

func (s *snapper) vertical(pos Percent) {
	s.guides = append(s.guides, Guideline{Type: GuideVertical, Pos: pos})
}

func (s *snapper) horizontal(pos Percent) {
	s.guides = append(s.guides, Guideline{Type: GuideHorizontal, Pos: pos})
}

// guideEpsilon is how close, in percent, a guide must be to a final edge.
const guideEpsilon = 1e-6

// liveGuides returns the recorded guidelines that still touch the final
// block, without duplicates, in the order they were recorded.
func (s *snapper) liveGuides() []Guideline {
	out := make([]Guideline, 0, len(s.guides))
	for _, g := range s.guides {
		if !s.touches(g) || containsGuide(out, g) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func (s *snapper) touches(g Guideline) bool {
	var lines [3]Percent
	if g.Type == GuideVertical {
		lines = [3]Percent{s.x, s.x + s.w/2, s.x + s.w}
	} else {
		lines = [3]Percent{s.y, s.y + s.h/2, s.y + s.h}
	}
	for _, l := range lines {
		if math.Abs(float64(l-g.Pos)) < guideEpsilon {
			return true
		}
	}
	return false
}

func containsGuide(gs []Guideline, g Guideline) bool {
	for _, have := range gs {
		if have.Type == g.Type && math.Abs(float64(have.Pos-g.Pos)) < guideEpsilon {
			return true
		}
	}
	return false
}
