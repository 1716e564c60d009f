// Package preview draws a canvas document as an SVG wireframe.
//
// # Overview
//
// Each element becomes a fixed-size Graphviz box pinned at its canvas
// position, so the neato engine lays nothing out and only draws. Frames are
// dashed and filled with their background color; images are solid boxes
// labelled with their name. Paint order is kept: later elements draw on top.
//
// # Usage
//
//	dot := preview.ToDOT(doc, preview.Options{Highlight: []string{"hero"}})
//	svg, err := preview.RenderSVG(ctx, dot)
//
// # Coordinates
//
// Canvas y grows downward and Graphviz y grows upward, so y is negated.
// Positions are written in points with inputscale=72; one canvas unit maps
// to Options.Scale points.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
package preview
