package pipeline

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/config"
	"github.com/matzehuels/kanvax/pkg/errors"
	"github.com/matzehuels/kanvax/pkg/observability"
)

func testDoc() *canvas.Document {
	return &canvas.Document{
		Name: "test",
		Elements: []canvas.Element{
			canvas.NewImage("a", "a.png", 100, 50, 100, 100),
			canvas.NewImage("b", "b.png", 0, 200, 50, 50),
			canvas.NewImage("c", "c.png", 300, 0, 20, 20),
		},
	}
}

func TestValidateOp(t *testing.T) {
	tests := []struct {
		op      string
		wantErr bool
	}{
		{"align", false},
		{"distribute", false},
		{"masonry", false},
		{"bento", false},
		{"grid", false},
		{"fit", false},
		{"place", false},
		{"pack", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateOp(tt.op)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOp(%q) error = %v, wantErr %v", tt.op, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Layout.Gap = 30

	opts := Options{Op: "Grid"}
	if err := opts.ValidateAndSetDefaults(cfg); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Op != OpGrid {
		t.Errorf("Op = %q, want grid", opts.Op)
	}
	if opts.Gap == nil || *opts.Gap != 30 {
		t.Errorf("Gap = %v, want 30", opts.Gap)
	}
	if opts.Columns != cfg.Layout.Columns {
		t.Errorf("Columns = %d, want %d", opts.Columns, cfg.Layout.Columns)
	}
	if opts.ContainerWidth != cfg.Viewport.ContainerWidth {
		t.Errorf("ContainerWidth = %v, want %v", opts.ContainerWidth, cfg.Viewport.ContainerWidth)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsExplicitZeroGap(t *testing.T) {
	zero := 0.0
	opts := Options{Op: OpGrid, Gap: &zero}
	if err := opts.ValidateAndSetDefaults(config.Default()); err != nil {
		t.Fatal(err)
	}
	if *opts.Gap != 0 {
		t.Errorf("Gap = %v, want explicit 0 kept", *opts.Gap)
	}
}

func TestOptionsValidate(t *testing.T) {
	cfg := config.Default()

	opts := Options{Op: OpAlign}
	if err := opts.ValidateAndSetDefaults(cfg); !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("align without mode error = %v, want INVALID_MODE", err)
	}

	opts = Options{Op: OpDistribute}
	if err := opts.ValidateAndSetDefaults(cfg); err != nil {
		t.Errorf("distribute without axis error = %v", err)
	}
	if opts.Axis != "horizontal" {
		t.Errorf("Axis = %q, want horizontal", opts.Axis)
	}

	opts = Options{Op: OpPlace}
	if err := opts.ValidateAndSetDefaults(cfg); err != nil {
		t.Fatal(err)
	}
	if opts.Width != canvas.DefaultSize || opts.Height != canvas.DefaultSize {
		t.Errorf("place size = %vx%v, want defaults", opts.Width, opts.Height)
	}
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{Op: OpMasonry}
	if err := opts.ValidateAndSetDefaults(config.Default()); err != nil {
		t.Fatal(err)
	}
	other := config.Default()
	other.Layout.Columns = 9
	if err := opts.ValidateAndSetDefaults(other); err != nil {
		t.Fatal(err)
	}
	if opts.Columns != config.Default().Layout.Columns {
		t.Error("Columns changed on second call")
	}
}

func TestRunGrid(t *testing.T) {
	doc := testDoc()
	runner := NewRunner(config.Default(), nil)

	res, err := runner.Run(context.Background(), doc, Options{Op: OpGrid})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// cell 100x100, gap 16, starting at the selection's top-left (0, 0)
	want := map[string]canvas.Point{"a": {X: 0, Y: 0}, "b": {X: 116, Y: 0}, "c": {X: 232, Y: 0}}
	for _, e := range res.Document.Elements {
		if p := canvas.Pt(e.X, e.Y); p != want[e.ID] {
			t.Errorf("%s at %v, want %v", e.ID, p, want[e.ID])
		}
	}
	if res.Stats.Updated != 3 || res.Stats.Selected != 3 {
		t.Errorf("Stats = %+v", res.Stats)
	}
	if doc.Elements[0].X != 100 {
		t.Error("input document was modified")
	}
}

func TestRunAlignSelection(t *testing.T) {
	res, err := NewRunner(config.Default(), nil).Run(context.Background(), testDoc(), Options{
		Op:   OpAlign,
		Mode: "left",
		IDs:  []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	a, _ := res.Document.Element("a")
	b, _ := res.Document.Element("b")
	c, _ := res.Document.Element("c")
	if a.X != 0 || b.X != 0 {
		t.Errorf("aligned x = %v, %v, want 0, 0", a.X, b.X)
	}
	if c.X != 300 {
		t.Errorf("unselected c moved to %v", c.X)
	}
}

func TestRunPlace(t *testing.T) {
	res, err := NewRunner(config.Default(), nil).Run(context.Background(), testDoc(), Options{
		Op:  OpPlace,
		Src: "new.png",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Document.Elements) != 4 || res.Added == nil {
		t.Fatalf("Run(place) did not add an element")
	}
	if got := canvas.Pt(res.Added.X, res.Added.Y); got != canvas.Pt(344, 0) {
		t.Errorf("placed at %v, want (344, 0)", got)
	}
	if res.Added.Src() != "new.png" || res.Added.ID == "" {
		t.Errorf("Added = %+v", res.Added)
	}
}

func TestRunFit(t *testing.T) {
	doc := &canvas.Document{Elements: []canvas.Element{canvas.NewImage("a", "", 0, 0, 100, 100)}}
	res, err := NewRunner(config.Default(), nil).Run(context.Background(), doc, Options{Op: OpFit})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := ViewportState{Scale: 1, Pan: canvas.Pt(910, 490)}
	if res.Viewport == nil || *res.Viewport != want {
		t.Errorf("Viewport = %+v, want %+v", res.Viewport, want)
	}
}

func TestRunErrors(t *testing.T) {
	runner := NewRunner(config.Default(), nil)

	_, err := runner.Run(context.Background(), testDoc(), Options{Op: OpGrid, IDs: []string{"zzz"}})
	if !errors.Is(err, errors.ErrCodeElementNotFound) {
		t.Errorf("unknown id error = %v, want ELEMENT_NOT_FOUND", err)
	}

	_, err = runner.Run(context.Background(), nil, Options{Op: OpGrid})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("nil document error = %v, want INVALID_INPUT", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.Run(ctx, testDoc(), Options{Op: OpGrid})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("canceled context error = %v, want context.Canceled", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	started, completed []string
	updated            int
}

func (h *recordingHooks) OnRunStart(_ context.Context, op string, _ int) {
	h.started = append(h.started, op)
}

func (h *recordingHooks) OnRunComplete(_ context.Context, op string, updated int, _ time.Duration, _ error) {
	h.completed = append(h.completed, op)
	h.updated = updated
}

func TestRunEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	if _, err := NewRunner(config.Default(), nil).Run(context.Background(), testDoc(), Options{Op: OpGrid}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(hooks.started) != 1 || hooks.started[0] != OpGrid {
		t.Errorf("started = %v, want [grid]", hooks.started)
	}
	if len(hooks.completed) != 1 || hooks.updated != 3 {
		t.Errorf("completed = %v updated = %d, want one grid run with 3 updates", hooks.completed, hooks.updated)
	}
}
