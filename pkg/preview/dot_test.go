package preview

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/kanvax/pkg/canvas"
)

func previewDoc() *canvas.Document {
	frame := canvas.NewFrame("board", 0, 0, 720, 360)
	frame.Frame.BackgroundColor = "#eeeeee"
	hidden := canvas.NewImage("hidden", "", 10, 10, 10, 10)
	hidden.Visible = false
	return &canvas.Document{
		Elements: []canvas.Element{
			frame,
			canvas.NewImage("hero", "hero.png", 36, 72, 144, 72),
			hidden,
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(previewDoc(), Options{})

	for _, want := range []string{
		"graph G {",
		"inputscale=72",
		`"board" [pos="360,-180!", width=10, height=5`,
		`fillcolor="#eeeeee"`,
		`"hero" [pos="108,-108!", width=2, height=1, label="hero"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"hidden"`) {
		t.Error("ToDOT() should skip invisible elements")
	}
	if !strings.Contains(dot, "dashed") {
		t.Error("ToDOT() frame should be dashed")
	}
}

func TestToDOTOptions(t *testing.T) {
	dot := ToDOT(previewDoc(), Options{Scale: 0.5, Highlight: []string{"hero"}, HideLabels: true})
	if !strings.Contains(dot, `"hero" [pos="54,-54!", width=1, height=0.5, label=""`) {
		t.Errorf("scaled node not found in:\n%s", dot)
	}
	if !strings.Contains(dot, "penwidth=3") {
		t.Error("highlighted element missing heavy outline")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(previewDoc(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), `not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
