// Package animate tweens element positions with a spring-like ease.
package animate

import (
	"math"

	"github.com/matzehuels/kanvax/pkg/canvas"
)

// DefaultThreshold is the per-axis distance, in canvas units, below which an
// animation counts as finished.
const DefaultThreshold = 0.5

// Ease maps linear progress in [0, 1] onto a decaying oscillation that
// overshoots the target slightly and settles. Progress outside the range is
// clamped; Ease(1) is exactly 1.
func Ease(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return 1 - math.Exp(-6*p)*math.Cos(3*math.Pi*p)
}

// Interpolate returns the position progress of the way from current to
// target after easing.
func Interpolate(current, target canvas.Point, progress float64) canvas.Point {
	t := Ease(progress)
	return canvas.Point{
		X: current.X + (target.X-current.X)*t,
		Y: current.Y + (target.Y-current.Y)*t,
	}
}

// Complete reports whether current is within threshold of target on both
// axes. A non-positive threshold uses [DefaultThreshold].
func Complete(current, target canvas.Point, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return math.Abs(target.X-current.X) < threshold && math.Abs(target.Y-current.Y) < threshold
}

// Frames samples an animation from current to target at n evenly spaced
// progress steps, ending exactly on target.
func Frames(current, target canvas.Point, n int) []canvas.Point {
	if n < 1 {
		return nil
	}
	out := make([]canvas.Point, n)
	for i := range out {
		out[i] = Interpolate(current, target, float64(i+1)/float64(n))
	}
	return out
}
