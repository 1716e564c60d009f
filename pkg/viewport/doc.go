// Package viewport converts between canvas and screen space and computes
// viewport state (scale and pan) for fitting and zooming.
//
// # Coordinate Spaces
//
// Canvas space is the document coordinate system, independent of zoom. Screen
// space is the viewport pixel system. The two are related by a uniform scale
// and a pan offset:
//
//	screen = canvas*scale + pan
//
// Callers guarantee scale > 0.
//
// # Fitting
//
// [ContentBounds] measures the union box of a set of elements, [FitScale]
// picks a scale that fits that box into a container with padding, and
// [CenterPosition] computes the pan that centers it. [FitToContent] chains the
// three.
//
// # Zooming
//
// [ZoomToPoint] applies a wheel delta while keeping the canvas point under the
// pointer fixed on screen. [ZoomAround] does the same for an explicit factor.
package viewport
