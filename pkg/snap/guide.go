package snap

import "math"

// Axis is the orientation of a guide line. A vertical guide sits at an x
// coordinate, a horizontal guide at a y coordinate.
type Axis string

const (
	Vertical   Axis = "vertical"
	Horizontal Axis = "horizontal"
)

// Strength tells how close the dragged element is to a guide.
type Strength string

const (
	Potential Strength = "potential"
	Active    Strength = "active"
)

// Source names the kind of feature a guide was derived from.
type Source string

const (
	SourceElementEdge   Source = "element-edge"
	SourceElementCenter Source = "element-center"
	SourceFrameEdge     Source = "frame-edge"
	SourceFrameCenter   Source = "frame-center"
	SourceEqualSpacing  Source = "equal-spacing"
)

// Guide is a candidate alignment line at a canvas position.
type Guide struct {
	Axis     Axis    `json:"type"`
	Position float64 `json:"position"`
	OwnerID  string  `json:"frameId"`
}

// AlignmentGuide is a guide with strength and provenance.
type AlignmentGuide struct {
	Guide
	Strength Strength `json:"strength"`
	Source   Source   `json:"source"`
	SourceID string   `json:"sourceId"`
}

// Active reports whether g is close enough to snap.
func (g AlignmentGuide) Active() bool { return g.Strength == Active }

type guideKey struct {
	axis Axis
	pos  int64
}

// dedupe collapses guides that share an axis and rounded position. The first
// occurrence keeps its slot; a later active guide replaces a potential one.
func dedupe(guides []AlignmentGuide) []AlignmentGuide {
	if len(guides) == 0 {
		return nil
	}
	index := make(map[guideKey]int, len(guides))
	out := make([]AlignmentGuide, 0, len(guides))
	for _, g := range guides {
		k := guideKey{g.Axis, int64(math.Round(g.Position))}
		i, ok := index[k]
		if !ok {
			index[k] = len(out)
			out = append(out, g)
			continue
		}
		if g.Active() && !out[i].Active() {
			out[i] = g
		}
	}
	return out
}
