// Package arrange aligns and distributes a selection of elements.
//
// Both operations return position updates for the caller to apply; the
// input elements are not modified. When the selection is too small for the
// operation to mean anything ([Align] needs two elements, [Distribute]
// three) the result is empty.
package arrange

import (
	"math"
	"sort"
	"strings"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/errors"
)

// Mode selects an alignment edge or center line.
type Mode string

const (
	Left   Mode = "left"
	Center Mode = "center"
	Right  Mode = "right"
	Top    Mode = "top"
	Middle Mode = "middle"
	Bottom Mode = "bottom"
)

// Modes lists every alignment mode.
var Modes = []Mode{Left, Center, Right, Top, Middle, Bottom}

// ParseMode parses an alignment mode, ignoring case.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "unknown align mode %q (want left, center, right, top, middle or bottom)", s)
}

// Axis selects the direction elements are distributed along.
type Axis string

const (
	Horizontal Axis = "horizontal"
	Vertical   Axis = "vertical"
)

// ParseAxis parses a distribution axis. "x" and "y" are accepted as
// shorthands.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "x":
		return Horizontal, nil
	case "vertical", "y":
		return Vertical, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "unknown distribute axis %q (want horizontal or vertical)", s)
}

// Align lines elements up against their union bounding box. Horizontal
// modes move x only, vertical modes move y only. Fewer than two elements or
// an unknown mode yield no updates.
func Align(elems []canvas.Element, mode Mode) []canvas.Update {
	if len(elems) < 2 {
		return nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range elems {
		minX = math.Min(minX, e.X)
		minY = math.Min(minY, e.Y)
		maxX = math.Max(maxX, e.X+e.Width)
		maxY = math.Max(maxY, e.Y+e.Height)
	}
	centerX := minX + (maxX-minX)/2
	centerY := minY + (maxY-minY)/2

	var place func(e canvas.Element) (float64, float64)
	switch mode {
	case Left:
		place = func(e canvas.Element) (float64, float64) { return minX, e.Y }
	case Center:
		place = func(e canvas.Element) (float64, float64) { return centerX - e.Width/2, e.Y }
	case Right:
		place = func(e canvas.Element) (float64, float64) { return maxX - e.Width, e.Y }
	case Top:
		place = func(e canvas.Element) (float64, float64) { return e.X, minY }
	case Middle:
		place = func(e canvas.Element) (float64, float64) { return e.X, centerY - e.Height/2 }
	case Bottom:
		place = func(e canvas.Element) (float64, float64) { return e.X, maxY - e.Height }
	default:
		return nil
	}

	updates := make([]canvas.Update, len(elems))
	for i, e := range elems {
		x, y := place(e)
		updates[i] = canvas.Update{ID: e.ID, X: x, Y: y}
	}
	return updates
}

// Distribute spaces elements so the gaps between neighbours are equal along
// axis. Elements are ordered by position (ties keep input order); the first
// and last stay in place and the rest are laid out between them. Gaps are
// equal regardless of element sizes; centers are not evenly spaced unless
// the sizes match. Fewer than three elements yield no updates. Updates are
// returned in distribution order.
func Distribute(elems []canvas.Element, axis Axis) []canvas.Update {
	if len(elems) < 3 {
		return nil
	}

	pos := func(e canvas.Element) float64 { return e.X }
	size := func(e canvas.Element) float64 { return e.Width }
	if axis == Vertical {
		pos = func(e canvas.Element) float64 { return e.Y }
		size = func(e canvas.Element) float64 { return e.Height }
	} else if axis != Horizontal {
		return nil
	}

	sorted := append([]canvas.Element(nil), elems...)
	sort.SliceStable(sorted, func(i, j int) bool { return pos(sorted[i]) < pos(sorted[j]) })

	first, last := sorted[0], sorted[len(sorted)-1]
	span := pos(last) + size(last) - pos(first)
	total := 0.0
	for _, e := range sorted {
		total += size(e)
	}
	gap := (span - total) / float64(len(sorted)-1)

	updates := make([]canvas.Update, len(sorted))
	cursor := pos(first)
	for i, e := range sorted {
		u := canvas.Update{ID: e.ID, X: e.X, Y: e.Y}
		if axis == Horizontal {
			u.X = cursor
		} else {
			u.Y = cursor
		}
		updates[i] = u
		cursor += size(e) + gap
	}
	return updates
}
