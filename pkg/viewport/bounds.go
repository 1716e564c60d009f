package viewport

import (
	"math"

	"github.com/matzehuels/kanvax/pkg/canvas"
)

// Bounds is the union box of a set of elements in canvas space.
type Bounds struct {
	MinX    float64 `json:"minX"`
	MinY    float64 `json:"minY"`
	MaxX    float64 `json:"maxX"`
	MaxY    float64 `json:"maxY"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
}

// Rect returns b as a rectangle.
func (b Bounds) Rect() canvas.Rect {
	return canvas.Rect{X: b.MinX, Y: b.MinY, Width: b.Width, Height: b.Height}
}

// Center returns the center of b.
func (b Bounds) Center() canvas.Point {
	return canvas.Point{X: b.CenterX, Y: b.CenterY}
}

// ContentBounds returns the union box of elems. It reports false for an
// empty slice.
func ContentBounds(elems []canvas.Element) (Bounds, bool) {
	if len(elems) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, e := range elems {
		b.MinX = math.Min(b.MinX, e.X)
		b.MinY = math.Min(b.MinY, e.Y)
		b.MaxX = math.Max(b.MaxX, e.X+e.Width)
		b.MaxY = math.Max(b.MaxY, e.Y+e.Height)
	}
	b.Width = b.MaxX - b.MinX
	b.Height = b.MaxY - b.MinY
	b.CenterX = b.MinX + b.Width/2
	b.CenterY = b.MinY + b.Height/2
	return b, true
}

// Default fit parameters.
const (
	DefaultFitPadding  = 0.8
	DefaultFitMinScale = 0.15
	DefaultFitMaxScale = 1.0
)

type fitConfig struct {
	padding  float64
	minScale float64
	maxScale float64
}

// FitOption configures [FitScale] and [FitToContent].
type FitOption func(*fitConfig)

// WithPadding sets the fraction of the container the content may occupy
// (default 0.8).
func WithPadding(p float64) FitOption {
	return func(c *fitConfig) { c.padding = p }
}

// WithScaleRange sets the allowed scale range (default 0.15 to 1).
func WithScaleRange(minScale, maxScale float64) FitOption {
	return func(c *fitConfig) {
		c.minScale = minScale
		c.maxScale = maxScale
	}
}

func newFitConfig(opts []FitOption) fitConfig {
	c := fitConfig{
		padding:  DefaultFitPadding,
		minScale: DefaultFitMinScale,
		maxScale: DefaultFitMaxScale,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// FitScale returns the scale at which content of the given size fits the
// container, leaving the padding margin. The result never exceeds the
// maximum scale and never drops below the minimum scale.
func FitScale(contentW, contentH, containerW, containerH float64, opts ...FitOption) float64 {
	c := newFitConfig(opts)
	scale := math.Min(containerW*c.padding/contentW, containerH*c.padding/contentH)
	scale = math.Min(scale, c.maxScale)
	return math.Max(scale, c.minScale)
}

// CenterPosition returns the pan that puts contentCenter at the center of a
// container of the given size at the given scale.
func CenterPosition(contentCenter canvas.Point, containerW, containerH, scale float64) canvas.Point {
	return canvas.Point{
		X: containerW/2 - contentCenter.X*scale,
		Y: containerH/2 - contentCenter.Y*scale,
	}
}

// FitToContent computes the scale and pan that frame all elems in the
// container. It reports false when elems is empty.
func FitToContent(elems []canvas.Element, containerW, containerH float64, opts ...FitOption) (float64, canvas.Point, bool) {
	b, ok := ContentBounds(elems)
	if !ok {
		return 0, canvas.Point{}, false
	}
	scale := FitScale(b.Width, b.Height, containerW, containerH, opts...)
	return scale, CenterPosition(b.Center(), containerW, containerH, scale), true
}
