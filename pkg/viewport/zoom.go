package viewport

import (
	"math"

	"github.com/matzehuels/kanvax/pkg/canvas"
)

// Default zoom parameters.
const (
	DefaultZoomSensitivity = 0.01
	DefaultZoomMin         = 0.1
	DefaultZoomMax         = 5.0
)

type zoomConfig struct {
	sensitivity float64
	min, max    float64
}

// ZoomOption configures [ZoomToPoint] and [ZoomAround].
type ZoomOption func(*zoomConfig)

// WithSensitivity sets how much scale changes per unit of wheel delta
// (default 0.01).
func WithSensitivity(s float64) ZoomOption {
	return func(c *zoomConfig) { c.sensitivity = s }
}

// WithZoomRange sets the allowed scale range (default 0.1 to 5).
func WithZoomRange(minScale, maxScale float64) ZoomOption {
	return func(c *zoomConfig) {
		c.min = minScale
		c.max = maxScale
	}
}

func newZoomConfig(opts []ZoomOption) zoomConfig {
	c := zoomConfig{
		sensitivity: DefaultZoomSensitivity,
		min:         DefaultZoomMin,
		max:         DefaultZoomMax,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// ZoomToPoint applies a wheel delta to the viewport. Positive deltaY zooms
// out. The canvas point under pointer stays at the same screen position.
// A zero delta returns scale and pan unchanged.
func ZoomToPoint(pointer canvas.Point, scale float64, pan canvas.Point, deltaY float64, opts ...ZoomOption) (float64, canvas.Point) {
	c := newZoomConfig(opts)
	if deltaY == 0 {
		return scale, pan
	}
	return zoom(pointer, scale, pan, 1-deltaY*c.sensitivity, c)
}

// ZoomAround multiplies the scale by factor, keeping point fixed on screen.
func ZoomAround(point canvas.Point, scale float64, pan canvas.Point, factor float64, opts ...ZoomOption) (float64, canvas.Point) {
	return zoom(point, scale, pan, factor, newZoomConfig(opts))
}

func zoom(pointer canvas.Point, scale float64, pan canvas.Point, factor float64, c zoomConfig) (float64, canvas.Point) {
	newScale := math.Min(math.Max(scale*factor, c.min), c.max)
	if newScale == scale {
		return scale, pan
	}
	ratio := newScale / scale
	return newScale, canvas.Point{
		X: pointer.X - (pointer.X-pan.X)*ratio,
		Y: pointer.Y - (pointer.Y-pan.Y)*ratio,
	}
}
