package snap

import (
	"math"
	"sort"

	"github.com/matzehuels/kanvax/pkg/canvas"
)

// Result is the outcome of [Detect]. SnapX and SnapY are the top-left
// position the dragged element should take, or nil when no guide on that
// axis is active.
type Result struct {
	Guides []AlignmentGuide `json:"guides"`
	SnapX  *float64         `json:"snapX"`
	SnapY  *float64         `json:"snapY"`
}

// Apply returns r moved to the snapped position on every axis that snapped.
func (r Result) Apply(rect canvas.Rect) canvas.Rect {
	if r.SnapX != nil {
		rect.X = *r.SnapX
	}
	if r.SnapY != nil {
		rect.Y = *r.SnapY
	}
	return rect
}

// ActiveGuides returns only the active guides of r.
func (r Result) ActiveGuides() []AlignmentGuide {
	var out []AlignmentGuide
	for _, g := range r.Guides {
		if g.Active() {
			out = append(out, g)
		}
	}
	return out
}

// anchor is a feature along one axis of a rectangle.
type anchor int

const (
	start  anchor = iota // left or top
	end                  // right or bottom
	middle               // center
)

// offset returns the distance of the anchor from the rectangle's origin.
func (a anchor) offset(size float64) float64 {
	switch a {
	case end:
		return size
	case middle:
		return size / 2
	}
	return 0
}

// span projects a rectangle onto one axis.
type span struct{ pos, size float64 }

func (s span) at(a anchor) float64 { return s.pos + a.offset(s.size) }

func project(r canvas.Rect, axis Axis) span {
	if axis == Vertical {
		return span{r.X, r.Width}
	}
	return span{r.Y, r.Height}
}

// correspondence pairs an anchor of the dragged element with an anchor of
// the target.
type correspondence struct {
	dragged, target anchor
	source          Source
}

// elementChecks are evaluated per axis in this order: left-left (top-top),
// right-right, left-right, right-left, center-center.
var elementChecks = []correspondence{
	{start, start, SourceElementEdge},
	{end, end, SourceElementEdge},
	{start, end, SourceElementEdge},
	{end, start, SourceElementEdge},
	{middle, middle, SourceElementCenter},
}

// frameChecks replace elementChecks for frame targets, in this order:
// center-center (middle-middle), then the same-named edges left-left
// (top-top) and right-right (bottom-bottom). Opposite edges are not paired.
var frameChecks = []correspondence{
	{middle, middle, SourceFrameCenter},
	{start, start, SourceFrameEdge},
	{end, end, SourceFrameEdge},
}

var axes = [2]Axis{Vertical, Horizontal}

type detector struct {
	cfg     config
	dragged canvas.Rect
	guides  []AlignmentGuide
	snap    map[Axis]float64
}

// Detect computes alignment guides for the element with id draggedID whose
// current bounds are dragged, against all other elements in elems.
//
// Non-frame targets get the five element correspondences per axis. Frames
// get only the frame checks (centre and same-named edges), never the
// element correspondences, so a frame edge is always reported as
// frame-edge.
func Detect(draggedID string, dragged canvas.Rect, elems []canvas.Element, opts ...Option) Result {
	d := &detector{
		cfg:     newConfig(opts),
		dragged: dragged,
		snap:    make(map[Axis]float64, 2),
	}

	var others []canvas.Element
	for _, e := range elems {
		if e.ID == draggedID {
			continue
		}
		others = append(others, e)
	}

	for _, e := range others {
		checks := elementChecks
		if e.IsFrame() {
			checks = frameChecks
		}
		for _, axis := range axes {
			target := project(e.Rect(), axis)
			for _, c := range checks {
				d.check(axis, c.dragged, target.at(c.target), c.source, e.ID)
			}
		}
	}

	if d.cfg.equalSpacing {
		for _, axis := range axes {
			d.equalSpacing(axis, others)
		}
	}

	res := Result{Guides: dedupe(d.guides)}
	if v, ok := d.snap[Vertical]; ok {
		res.SnapX = &v
	}
	if v, ok := d.snap[Horizontal]; ok {
		res.SnapY = &v
	}
	return res
}

// check compares one anchor of the dragged element against a target
// coordinate and records a guide when it is close enough.
func (d *detector) check(axis Axis, a anchor, target float64, source Source, sourceID string) {
	s := project(d.dragged, axis)
	dist := math.Abs(s.at(a) - target)
	if dist >= d.cfg.guideThreshold {
		return
	}

	strength := Potential
	if dist < d.cfg.activeThreshold {
		strength = Active
		if _, ok := d.snap[axis]; !ok {
			d.snap[axis] = target - a.offset(s.size)
		}
	}

	d.guides = append(d.guides, AlignmentGuide{
		Guide:    Guide{Axis: axis, Position: target, OwnerID: sourceID},
		Strength: strength,
		Source:   source,
		SourceID: sourceID,
	})
}

// equalSpacing looks at neighbouring non-frame elements that share the
// dragged element's band on the other axis. When two neighbours are g apart,
// the dragged element is offered positions g beyond either of them.
func (d *detector) equalSpacing(axis Axis, elems []canvas.Element) {
	cross := Horizontal
	if axis == Horizontal {
		cross = Vertical
	}
	band := project(d.dragged, cross)

	var row []canvas.Element
	for _, e := range elems {
		if e.IsFrame() {
			continue
		}
		c := project(e.Rect(), cross)
		if c.pos < band.pos+band.size && c.pos+c.size > band.pos {
			row = append(row, e)
		}
	}
	sort.SliceStable(row, func(i, j int) bool {
		return project(row[i].Rect(), axis).pos < project(row[j].Rect(), axis).pos
	})

	for i := 0; i+1 < len(row); i++ {
		a := project(row[i].Rect(), axis)
		b := project(row[i+1].Rect(), axis)
		gap := b.pos - (a.pos + a.size)
		if gap <= 0 {
			continue
		}
		d.check(axis, start, b.pos+b.size+gap, SourceEqualSpacing, row[i+1].ID)
		d.check(axis, end, a.pos-gap, SourceEqualSpacing, row[i].ID)
	}
}
