// Package resize computes element bounds while a resize handle is dragged.
//
// There are eight handles: the four edges n, s, e, w and the four corners
// ne, nw, se, sw. Deltas are the pointer movement since the drag started, in
// canvas units, and are always applied to the bounds at drag start.
//
// [AspectRatio] keeps width/height constant (used for images) and [Free]
// resizes each axis independently (used for frames). [ForElement] picks the
// right one for an element. Neither fails: the minimum size floors clamp
// silently.
package resize

import (
	"math"
	"strings"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/errors"
)

// Handle identifies a resize handle.
type Handle string

const (
	N  Handle = "n"
	S  Handle = "s"
	E  Handle = "e"
	W  Handle = "w"
	NE Handle = "ne"
	NW Handle = "nw"
	SE Handle = "se"
	SW Handle = "sw"
)

// Handles lists every handle.
var Handles = []Handle{N, S, E, W, NE, NW, SE, SW}

// Minimum sizes in canvas units.
const (
	MinAspectSize = 50.0
	MinFreeSize   = 100.0
)

// ParseHandle parses a handle name, ignoring case.
func ParseHandle(s string) (Handle, error) {
	h := Handle(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Handles {
		if h == known {
			return h, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidHandle, "unknown resize handle %q (want one of n, s, e, w, ne, nw, se, sw)", s)
}

// north, south, east, west report which edges a handle moves.
func (h Handle) north() bool { return h == N || h == NE || h == NW }
func (h Handle) south() bool { return h == S || h == SE || h == SW }
func (h Handle) east() bool  { return h == E || h == NE || h == SE }
func (h Handle) west() bool  { return h == W || h == NW || h == SW }

// IsCorner reports whether h is a corner handle.
func (h Handle) IsCorner() bool { return h == NE || h == NW || h == SE || h == SW }

// widthDelta is the signed change in width implied by dx.
func (h Handle) widthDelta(dx float64) float64 {
	switch {
	case h.east():
		return dx
	case h.west():
		return -dx
	}
	return 0
}

// heightDelta is the signed change in height implied by dy.
func (h Handle) heightDelta(dy float64) float64 {
	switch {
	case h.south():
		return dy
	case h.north():
		return -dy
	}
	return 0
}

// AspectRatio resizes start by the handle drag, preserving
// start.Width/start.Height.
//
// For corner handles the axis with the larger absolute delta drives the
// resize (width on a tie) and the other dimension follows the ratio; the
// opposite corner stays fixed. Edge handles resize along their axis and
// re-center the other one. The driving dimension never drops below
// [MinAspectSize].
func AspectRatio(start canvas.Rect, h Handle, dx, dy float64) canvas.Rect {
	ratio := start.Width / start.Height

	var w, ht float64
	switch {
	case h.IsCorner() && math.Abs(dx) >= math.Abs(dy), h == E, h == W:
		w = math.Max(MinAspectSize, start.Width+h.widthDelta(dx))
		ht = w / ratio
	case h.IsCorner(), h == N, h == S:
		ht = math.Max(MinAspectSize, start.Height+h.heightDelta(dy))
		w = ht * ratio
	default:
		return start
	}

	out := canvas.Rect{X: start.X, Y: start.Y, Width: w, Height: ht}
	switch {
	case h.west():
		out.X = start.X + (start.Width - w)
	case !h.east():
		out.X = start.X + (start.Width-w)/2
	}
	switch {
	case h.north():
		out.Y = start.Y + (start.Height - ht)
	case !h.south():
		out.Y = start.Y + (start.Height-ht)/2
	}
	return out
}

// Free resizes start by the handle drag with no ratio constraint. Each
// affected dimension is floored at [MinFreeSize] and the opposite edge stays
// fixed.
func Free(start canvas.Rect, h Handle, dx, dy float64) canvas.Rect {
	out := start
	if h.east() || h.west() {
		out.Width = math.Max(MinFreeSize, start.Width+h.widthDelta(dx))
		if h.west() {
			out.X = start.X + (start.Width - out.Width)
		}
	}
	if h.north() || h.south() {
		out.Height = math.Max(MinFreeSize, start.Height+h.heightDelta(dy))
		if h.north() {
			out.Y = start.Y + (start.Height - out.Height)
		}
	}
	return out
}

// ForElement resizes el with the behaviour its kind calls for: images keep
// their aspect ratio, frames resize freely.
func ForElement(el canvas.Element, h Handle, dx, dy float64) canvas.Rect {
	if el.IsFrame() {
		return Free(el.Rect(), h, dx, dy)
	}
	return AspectRatio(el.Rect(), h, dx, dy)
}
