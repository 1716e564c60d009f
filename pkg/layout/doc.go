// Package layout arranges a batch of elements into a masonry, bento or grid
// pattern.
//
// Layouts are deterministic heuristics: elements are placed in input order and
// nothing is reordered to save space. Each function returns one
// [canvas.Update] per element, in input order, carrying the new top-left
// position. Sizes are never changed.
//
// # Options
//
// All layouts accept the same options:
//
//	updates := layout.Grid(elems,
//	    layout.WithColumns(4),
//	    layout.WithGap(24),
//	    layout.WithStart(canvas.Pt(100, 100)),
//	)
//
// Defaults are a gap of 16, three columns, origin (0, 0) and no maximum width
// (masonry falls back to the average element width, bento to 800).
//
// # Masonry
//
// [Masonry] keeps a running bottom per column and drops each element into the
// shortest column (lowest index on ties). Column advance uses the element's
// height scaled to the column width.
//
// # Bento
//
// [Bento] alternates one full-width large cell with a row of two half-width
// cells. All cells are 4:3.
//
// # Grid
//
// [Grid] uses the largest width and height in the input as a single cell size.
package layout
