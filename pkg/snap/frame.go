package snap

import (
	"math"

	"github.com/matzehuels/kanvax/pkg/canvas"
)

// FrameSnap is the result of [FrameCenters]. SnapX and SnapY are the frame
// center coordinates the dragged element's center should move to, or nil
// when no frame qualified on that axis.
type FrameSnap struct {
	Guides []Guide  `json:"guides"`
	SnapX  *float64 `json:"snapX"`
	SnapY  *float64 `json:"snapY"`
}

// FrameCenters snaps the center of dragged to nearby frame centers. Only
// frame elements are candidates, and the frame with id excludeID is skipped
// (typically the dragged element itself, or its parent frame).
func FrameCenters(dragged canvas.Rect, elems []canvas.Element, excludeID string, opts ...Option) FrameSnap {
	c := newConfig(opts)
	cx, cy := dragged.CenterX(), dragged.CenterY()

	var res FrameSnap
	for _, f := range elems {
		if !f.IsFrame() || f.ID == excludeID {
			continue
		}
		r := f.Rect()
		if fx := r.CenterX(); math.Abs(cx-fx) < c.frameThreshold {
			res.Guides = append(res.Guides, Guide{Axis: Vertical, Position: fx, OwnerID: f.ID})
			if res.SnapX == nil {
				res.SnapX = &fx
			}
		}
		if fy := r.CenterY(); math.Abs(cy-fy) < c.frameThreshold {
			res.Guides = append(res.Guides, Guide{Axis: Horizontal, Position: fy, OwnerID: f.ID})
			if res.SnapY == nil {
				res.SnapY = &fy
			}
		}
	}
	return res
}

// Apply moves r so that its center lands on the snapped frame center for
// every axis that snapped.
func (s FrameSnap) Apply(r canvas.Rect) canvas.Rect {
	if s.SnapX != nil {
		r.X = *s.SnapX - r.Width/2
	}
	if s.SnapY != nil {
		r.Y = *s.SnapY - r.Height/2
	}
	return r
}
