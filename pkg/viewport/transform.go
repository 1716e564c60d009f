package viewport

import "github.com/matzehuels/kanvax/pkg/canvas"

// CanvasToScreen converts a canvas-space point to screen space.
func CanvasToScreen(pt canvas.Point, scale float64, pan canvas.Point) canvas.Point {
	return canvas.Point{X: pt.X*scale + pan.X, Y: pt.Y*scale + pan.Y}
}

// ScreenToCanvas converts a screen-space point to canvas space.
func ScreenToCanvas(pt canvas.Point, scale float64, pan canvas.Point) canvas.Point {
	return canvas.Point{X: (pt.X - pan.X) / scale, Y: (pt.Y - pan.Y) / scale}
}

// ElementScreenBounds returns the screen-space bounds of el.
func ElementScreenBounds(el canvas.Element, scale float64, pan canvas.Point) canvas.Rect {
	return RectToScreen(el.Rect(), scale, pan)
}

// RectToScreen converts a canvas-space rectangle to screen space.
func RectToScreen(r canvas.Rect, scale float64, pan canvas.Point) canvas.Rect {
	return canvas.Rect{
		X:      r.X*scale + pan.X,
		Y:      r.Y*scale + pan.Y,
		Width:  r.Width * scale,
		Height: r.Height * scale,
	}
}

// RectToCanvas converts a screen-space rectangle to canvas space.
func RectToCanvas(r canvas.Rect, scale float64, pan canvas.Point) canvas.Rect {
	return canvas.Rect{
		X:      (r.X - pan.X) / scale,
		Y:      (r.Y - pan.Y) / scale,
		Width:  r.Width / scale,
		Height: r.Height / scale,
	}
}
