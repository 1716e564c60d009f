package preview

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/kanvax/pkg/canvas"
)

const pointsPerInch = 72.0

// Options configures the wireframe.
type Options struct {
	// Scale is points per canvas unit. Zero means 1.
	Scale float64
	// Highlight lists element ids drawn with a heavy outline.
	Highlight []string
	// HideLabels drops element names from the boxes.
	HideLabels bool
}

// ToDOT converts doc to Graphviz DOT with every element pinned in place.
// Invisible elements are skipped.
func ToDOT(doc *canvas.Document, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	highlight := make(map[string]bool, len(opts.Highlight))
	for _, id := range opts.Highlight {
		highlight[id] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  overlap=true;\n")
	buf.WriteString("  outputorder=nodesfirst;\n")
	if doc.Background != "" {
		fmt.Fprintf(&buf, "  bgcolor=%q;\n", doc.Background)
	} else {
		buf.WriteString("  bgcolor=\"transparent\";\n")
	}
	buf.WriteString("  node [shape=box, fixedsize=true, fontsize=10];\n")
	buf.WriteString("\n")

	for _, e := range doc.Elements {
		if !e.Visible {
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", e.ID, strings.Join(attrs(e, scale, highlight[e.ID], !opts.HideLabels), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func attrs(e canvas.Element, scale float64, highlighted, labels bool) []string {
	c := e.Rect().Center()
	out := []string{
		fmt.Sprintf("pos=\"%s,%s!\"", num(c.X*scale), num(-c.Y*scale)),
		"width=" + num(e.Width*scale/pointsPerInch),
		"height=" + num(e.Height*scale/pointsPerInch),
	}

	label := ""
	if labels {
		label = e.Name
	}
	out = append(out, fmt.Sprintf("label=%q", label))

	if e.IsFrame() {
		out = append(out, "style=\"dashed,filled\"")
		fill := "white"
		if e.Frame != nil && e.Frame.BackgroundColor != "" {
			fill = e.Frame.BackgroundColor
		}
		out = append(out, fmt.Sprintf("fillcolor=%q", fill))
	} else {
		out = append(out, "style=filled", "fillcolor=\"#dbe7f5\"")
	}

	if e.Opacity < 1 {
		out = append(out, fmt.Sprintf("penwidth=%s", num(max(0.2, e.Opacity))))
	}
	if highlighted {
		out = append(out, "penwidth=3", "color=\"#e4572e\"")
	}
	return out
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders a DOT string to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
