// Package pipeline runs one batch operation over a canvas document.
//
// The CLI and the HTTP server both go through this package so that an
// operation means the same thing on every entry point. A run takes a
// document, an [Options] value naming the operation, and returns a new
// document with the resulting updates applied. The input document is never
// modified.
//
// # Operations
//
//   - align: line the selection up on an edge or center line
//   - distribute: equalize the gaps between selected elements
//   - masonry, bento, grid: batch layouts
//   - fit: compute the viewport that frames the selection
//   - place: append a new image next to the existing content
//
// # Usage
//
//	runner := pipeline.NewRunner(config.Default(), logger)
//	res, err := runner.Run(ctx, doc, pipeline.Options{
//	    Op:   pipeline.OpGrid,
//	    IDs:  []string{"a", "b", "c"},
//	})
//	if err != nil {
//	    return err
//	}
//	io.WriteJSON(res.Document, os.Stdout)
//
// # Selection
//
// IDs selects elements in document order. An empty selection means every
// element. Layouts start at the top-left corner of the selection unless
// Start is set, so laying out a group keeps it where it was.
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kanvax/pkg/arrange"
	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/config"
	"github.com/matzehuels/kanvax/pkg/errors"
)

// Operation names.
const (
	OpAlign      = "align"
	OpDistribute = "distribute"
	OpMasonry    = "masonry"
	OpBento      = "bento"
	OpGrid       = "grid"
	OpFit        = "fit"
	OpPlace      = "place"
)

// ValidOps is the set of supported operations.
var ValidOps = map[string]bool{
	OpAlign:      true,
	OpDistribute: true,
	OpMasonry:    true,
	OpBento:      true,
	OpGrid:       true,
	OpFit:        true,
	OpPlace:      true,
}

// LayoutOps are the operations handled by pkg/layout.
var LayoutOps = []string{OpMasonry, OpBento, OpGrid}

// Options describes a single run. Zero values fall back to the runner's
// config. This struct supports JSON serialization for API requests.
type Options struct {
	Op  string   `json:"op"`
	IDs []string `json:"ids,omitempty"`

	// align / distribute
	Mode string `json:"mode,omitempty"`
	Axis string `json:"axis,omitempty"`

	// masonry / bento / grid
	Gap      *float64      `json:"gap,omitempty"`
	Columns  int           `json:"columns,omitempty"`
	MaxWidth float64       `json:"max_width,omitempty"`
	Start    *canvas.Point `json:"start,omitempty"`

	// fit / place
	ContainerWidth  float64      `json:"container_width,omitempty"`
	ContainerHeight float64      `json:"container_height,omitempty"`
	Scale           float64      `json:"scale,omitempty"`
	Pan             canvas.Point `json:"pan"`

	// place
	Src    string  `json:"src,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Logger *log.Logger `json:"-"`

	mode      arrange.Mode
	axis      arrange.Axis
	validated bool
}

// ViewportState is a scale and pan pair.
type ViewportState struct {
	Scale float64      `json:"scale"`
	Pan   canvas.Point `json:"pan"`
}

// Result is the outcome of a run.
type Result struct {
	Document *canvas.Document `json:"document"`
	Updates  []canvas.Update  `json:"updates"`
	Viewport *ViewportState   `json:"viewport,omitempty"`
	Added    *canvas.Element  `json:"added,omitempty"`
	Stats    Stats            `json:"stats"`
}

// Stats summarizes a run.
type Stats struct {
	Elements int           `json:"elements"`
	Selected int           `json:"selected"`
	Updated  int           `json:"updated"`
	Duration time.Duration `json:"duration"`
}

// ValidateOp checks that op is a supported operation.
func ValidateOp(op string) error {
	if !ValidOps[op] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid op: %q (must be one of: align, distribute, masonry, bento, grid, fit, place)", op)
	}
	return nil
}

// IsLayout reports whether the operation is a batch layout.
func (o *Options) IsLayout() bool {
	for _, op := range LayoutOps {
		if o.Op == op {
			return true
		}
	}
	return false
}

// ValidateAndSetDefaults checks the options and fills zero values from cfg.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults(cfg config.Config) error {
	if o.validated {
		return nil
	}
	o.Op = strings.ToLower(strings.TrimSpace(o.Op))
	if err := ValidateOp(o.Op); err != nil {
		return err
	}

	switch o.Op {
	case OpAlign:
		m, err := arrange.ParseMode(o.Mode)
		if err != nil {
			return err
		}
		o.mode = m
	case OpDistribute:
		if o.Axis == "" {
			o.Axis = string(arrange.Horizontal)
		}
		a, err := arrange.ParseAxis(o.Axis)
		if err != nil {
			return err
		}
		o.axis = a
	case OpPlace:
		if o.Width <= 0 {
			o.Width = canvas.DefaultSize
		}
		if o.Height <= 0 {
			o.Height = canvas.DefaultSize
		}
	}

	o.SetLayoutDefaults(cfg.Layout)
	o.SetViewportDefaults(cfg.Viewport)

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults fills unset layout fields from l.
func (o *Options) SetLayoutDefaults(l config.Layout) {
	if o.Gap == nil {
		gap := l.Gap
		o.Gap = &gap
	}
	if o.Columns <= 0 {
		o.Columns = l.Columns
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = l.MaxWidth
	}
}

// SetViewportDefaults fills unset viewport fields from v.
func (o *Options) SetViewportDefaults(v config.Viewport) {
	if o.ContainerWidth <= 0 {
		o.ContainerWidth = v.ContainerWidth
	}
	if o.ContainerHeight <= 0 {
		o.ContainerHeight = v.ContainerHeight
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
}
