package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/kanvax/pkg/arrange"
	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/config"
	"github.com/matzehuels/kanvax/pkg/errors"
	"github.com/matzehuels/kanvax/pkg/layout"
	"github.com/matzehuels/kanvax/pkg/observability"
	"github.com/matzehuels/kanvax/pkg/selection"
	"github.com/matzehuels/kanvax/pkg/viewport"
)

// Runner executes operations with a fixed config.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Config config.Config
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses the default charm logger.
func NewRunner(cfg config.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Config: cfg, Logger: logger}
}

// Run executes opts against doc and returns a new document. The context is
// checked before any work is done.
func (r *Runner) Run(ctx context.Context, doc *canvas.Document, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document is required")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(r.Config); err != nil {
		return nil, err
	}

	start := time.Now()
	selected, err := doc.Select(opts.IDs)
	if err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRunStart(ctx, opts.Op, len(selected))

	result := &Result{Document: doc.Clone()}
	switch {
	case opts.IsLayout():
		result.Updates = r.layout(selected, opts)
	case opts.Op == OpAlign:
		result.Updates = arrange.Align(selected, opts.mode)
	case opts.Op == OpDistribute:
		result.Updates = arrange.Distribute(selected, opts.axis)
	case opts.Op == OpFit:
		result.Viewport = r.fit(selected, opts)
	case opts.Op == OpPlace:
		added := r.place(doc.Elements, opts)
		result.Added = &added
		result.Document.Elements = append(result.Document.Elements, added)
	}

	if len(result.Updates) > 0 {
		next, err := result.Document.Apply(result.Updates)
		if err != nil {
			err = errors.Wrap(errors.ErrCodeInternal, err, "apply %s", opts.Op)
			hooks.OnRunComplete(ctx, opts.Op, 0, time.Since(start), err)
			return nil, err
		}
		result.Document = next
	}

	result.Stats = Stats{
		Elements: len(doc.Elements),
		Selected: len(selected),
		Updated:  len(result.Updates),
		Duration: time.Since(start),
	}
	hooks.OnRunComplete(ctx, opts.Op, result.Stats.Updated, result.Stats.Duration, nil)
	opts.Logger.Info("ran operation",
		"op", opts.Op,
		"selected", result.Stats.Selected,
		"updated", result.Stats.Updated,
		"duration", result.Stats.Duration)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func (r *Runner) layout(elems []canvas.Element, opts Options) []canvas.Update {
	layoutOpts := []layout.Option{
		layout.WithGap(*opts.Gap),
		layout.WithColumns(opts.Columns),
		layout.WithStart(layoutStart(elems, opts)),
	}
	if opts.MaxWidth > 0 {
		layoutOpts = append(layoutOpts, layout.WithMaxWidth(opts.MaxWidth))
	}

	opts.Logger.Debug("layout", "op", opts.Op, "elements", len(elems), "columns", opts.Columns, "gap", *opts.Gap)
	switch opts.Op {
	case OpMasonry:
		return layout.Masonry(elems, layoutOpts...)
	case OpBento:
		return layout.Bento(elems, layoutOpts...)
	default:
		return layout.Grid(elems, layoutOpts...)
	}
}

func layoutStart(elems []canvas.Element, opts Options) canvas.Point {
	if opts.Start != nil {
		return *opts.Start
	}
	if b, ok := viewport.ContentBounds(elems); ok {
		return canvas.Pt(b.MinX, b.MinY)
	}
	return canvas.Point{}
}

func (r *Runner) fit(elems []canvas.Element, opts Options) *ViewportState {
	scale, pan, ok := viewport.FitToContent(elems, opts.ContainerWidth, opts.ContainerHeight, r.Config.Viewport.FitOptions()...)
	if !ok {
		return &ViewportState{Scale: 1}
	}
	return &ViewportState{Scale: scale, Pan: pan}
}

func (r *Runner) place(elems []canvas.Element, opts Options) canvas.Element {
	pos := selection.NextImagePlacement(elems, opts.Width, opts.Height, opts.Scale, opts.Pan, opts.ContainerWidth, opts.ContainerHeight)
	return canvas.NewImage(uuid.NewString(), opts.Src, pos.X, pos.Y, opts.Width, opts.Height)
}
