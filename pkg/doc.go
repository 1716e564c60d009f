// Package pkg provides the core libraries of kanvax, a geometry engine for
// infinite-canvas moodboards.
//
// # Overview
//
// A canvas document is a flat list of images and frames placed on an
// unbounded plane. The pkg directory is organized into three areas:
//
//  1. Geometry - pure functions over canvas rectangles
//  2. Orchestration - the pipeline that applies one operation to a document
//  3. Support - serialization, config, caching, previews and hooks
//
// # Architecture
//
// The typical data flow through a kanvax operation:
//
//	canvas.json
//	     ↓
//	[io] package (decode + sanitize)
//	     ↓
//	[pipeline] package (select ids, run one geometry op)
//	     ↓
//	[layout] / [arrange] / [viewport] packages (compute updates)
//	     ↓
//	canvas.Document.Apply → canvas.json
//
// Interactive editing calls the geometry packages directly: [snap] while an
// element is dragged, [resize] while a handle is pulled, [viewport] on wheel
// events and [animate] for smooth pans.
//
// # Quick Start
//
//	doc, _ := io.ImportJSON("board.json")
//	runner := pipeline.NewRunner(config.Default(), nil)
//	res, _ := runner.Run(ctx, doc, pipeline.Options{Op: pipeline.OpGrid})
//	_ = io.ExportJSON(res.Document, "board.grid.json")
//
// # Main Packages
//
// ## Geometry
//
// [canvas] - Points, rectangles, elements, documents and updates.
//
// [layout] - Grid, masonry and bento arrangements of a selection.
//
// [arrange] - Alignment, distribution and placement of new elements.
//
// [snap] - Alignment guides and snap offsets while dragging.
//
// [resize] - Handle-driven resizing with per-kind constraints.
//
// [viewport] - Screen/canvas transforms, zoom and fit-to-content.
//
// [selection] - Rubber-band selection and frame membership.
//
// [animate] - Pan interpolation with a spring ease.
//
// ## Orchestration
//
// [pipeline] - Runs one named operation over a document. Used by the CLI
// and the HTTP server so both behave the same.
//
// ## Support
//
// [io] - JSON document import and export.
//
// [config] - TOML configuration for gaps, zoom limits and server settings.
//
// [preview] - Graphviz wireframe rendering of a document.
//
// [cache] - File cache for rendered previews.
//
// [observability] - Hooks for pipeline and cache metrics.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/snap/...     # Specific package
//	go test -run Example       # Examples only
//
// [canvas]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/canvas
// [layout]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/layout
// [arrange]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/arrange
// [snap]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/snap
// [resize]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/resize
// [viewport]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/viewport
// [selection]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/selection
// [animate]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/animate
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/config
// [preview]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/preview
// [cache]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/kanvax/pkg/errors
package pkg
