// Package snap detects alignment guides and snap targets for an element
// being dragged across the canvas.
//
// # Frame Center Snapping
//
// [FrameCenters] is the simple variant used while placing an element: the
// dragged element's center snaps to the center of any frame within
// [DefaultFrameThreshold] canvas units. The first qualifying frame in list
// order decides the snap per axis.
//
// # Alignment Guides
//
// [Detect] is the interactive variant. Every other element is compared edge
// to edge and center to center on both axes:
//
//	X: left-left, right-right, left-right, right-left, center-center
//	Y: top-top, bottom-bottom, top-bottom, bottom-top, middle-middle
//
// Frames are compared center to center and on their four edges. Neighbouring
// element pairs additionally produce equal-spacing guides when the dragged
// element would repeat their gap.
//
// A correspondence closer than [DefaultGuideThreshold] produces a guide. A
// guide closer than [DefaultActiveThreshold] is active, and the first active
// guide per axis (in element order, then check order) decides the snap
// position, back-computed from the matched edge.
//
// Guides are deduplicated by axis and rounded position so overlays do not
// draw the same line twice; an active guide replaces a potential one at the
// same spot.
//
// Results depend on the order of the element slice. Pass elements in
// document order to keep behaviour deterministic.
package snap
