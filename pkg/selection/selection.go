// Package selection answers hit-testing and containment questions about
// elements, picks a spot for newly added images and computes the clip polygon
// that confines an image to a frame.
package selection

import (
	"math"
	"strconv"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/viewport"
)

// PlacementPadding is the horizontal gap left between the rightmost element
// and a newly placed image.
const PlacementPadding = 24.0

// InRect returns the ids of elements whose screen bounds overlap sel, a
// screen-space rectangle. Partial overlap counts. sel may have negative size
// from a reverse drag.
func InRect(elems []canvas.Element, sel canvas.Rect, scale float64, pan canvas.Point) []string {
	sel = sel.Normalize()
	var ids []string
	for _, e := range elems {
		if viewport.ElementScreenBounds(e, scale, pan).Intersects(sel) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// OverlapsFrame reports whether el overlaps frame in canvas space. Frames
// never count as overlapping another frame.
func OverlapsFrame(el, frame canvas.Element) bool {
	if el.IsFrame() || el.ID == frame.ID {
		return false
	}
	return el.Rect().Intersects(frame.Rect())
}

// InFrame returns the non-frame elements that overlap frame.
func InFrame(frame canvas.Element, elems []canvas.Element) []canvas.Element {
	var out []canvas.Element
	for _, e := range elems {
		if OverlapsFrame(e, frame) {
			out = append(out, e)
		}
	}
	return out
}

// NextImagePlacement returns the top-left canvas position for a new image of
// the given size. An empty canvas centers the image in the visible viewport;
// otherwise the image goes to the right of the element with the rightmost
// trailing edge, aligned to its top.
func NextImagePlacement(elems []canvas.Element, w, h, scale float64, pan canvas.Point, containerW, containerH float64) canvas.Point {
	if len(elems) == 0 {
		c := viewport.ScreenToCanvas(canvas.Pt(containerW/2, containerH/2), scale, pan)
		return canvas.Pt(c.X-w/2, c.Y-h/2)
	}

	rightmost := elems[0]
	for _, e := range elems[1:] {
		if e.X+e.Width > rightmost.X+rightmost.Width {
			rightmost = e
		}
	}
	return canvas.Pt(rightmost.X+rightmost.Width+PlacementPadding, rightmost.Y)
}

// ClipPath is the visible part of an image, in percent of the image's own
// bounds.
type ClipPath struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// String renders the clip as a CSS polygon, clockwise from the top-left.
func (c ClipPath) String() string {
	l, t, r, b := pct(c.Left), pct(c.Top), pct(c.Right), pct(c.Bottom)
	return "polygon(" + l + " " + t + ", " + r + " " + t + ", " + r + " " + b + ", " + l + " " + b + ")"
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// Clip computes the part of image that lies inside frame. It returns nil when
// the image is not clipped at all.
func Clip(image, frame canvas.Element, scale float64, pan canvas.Point) *ClipPath {
	img := viewport.ElementScreenBounds(image, scale, pan)
	fr := viewport.ElementScreenBounds(frame, scale, pan)
	if img.Width <= 0 || img.Height <= 0 || fr.Contains(img) {
		return nil
	}

	c := ClipPath{
		Left:   clampPct((fr.Left() - img.X) / img.Width * 100),
		Top:    clampPct((fr.Top() - img.Y) / img.Height * 100),
		Right:  clampPct((fr.Right() - img.X) / img.Width * 100),
		Bottom: clampPct((fr.Bottom() - img.Y) / img.Height * 100),
	}
	if c.Left == 0 && c.Top == 0 && c.Right == 100 && c.Bottom == 100 {
		return nil
	}
	return &c
}

func clampPct(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
