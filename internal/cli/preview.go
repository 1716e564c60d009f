package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kanvax/pkg/cache"
	"github.com/matzehuels/kanvax/pkg/errors"
	"github.com/matzehuels/kanvax/pkg/observability"
	"github.com/matzehuels/kanvax/pkg/preview"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"

	cacheKindPreview = "preview"
)

// previewCommand creates the preview command that renders a wireframe.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output    string
		highlight string
		dotOnly   bool
		noCache   bool
	)
	opts := preview.Options{}

	cmd := &cobra.Command{
		Use:   "preview [doc.json]",
		Short: "Render a wireframe SVG of a document",
		Long: `Render a wireframe SVG of a document.

Every element is drawn as a box at its canvas position. Frames are dashed and
images are filled. The SVG is rendered by Graphviz and cached locally, so
previewing an unchanged document again is instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Highlight = parseIDs(highlight)
			format := formatSVG
			if dotOnly {
				format = formatDOT
			}
			return c.runPreview(cmd.Context(), args[0], output, format, opts, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg, - for stdout)")
	cmd.Flags().BoolVar(&dotOnly, "dot", false, "write the Graphviz DOT source instead of SVG")
	cmd.Flags().StringVar(&highlight, "highlight", "", "comma-separated element ids to outline")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 1, "points per canvas unit")
	cmd.Flags().BoolVar(&opts.HideLabels, "no-labels", false, "omit element names")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input, output, format string, opts preview.Options, noCache bool) error {
	doc, err := readDocument(input)
	if err != nil {
		return err
	}
	dot := preview.ToDOT(doc, opts)

	path := output
	if path == "" {
		if input == stdio {
			path = stdio
		} else {
			path = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
		}
	}

	data := []byte(dot)
	cached := false
	if format == formatSVG {
		if data, cached, err = c.renderSVG(ctx, dot, noCache); err != nil {
			return err
		}
	}

	if path == stdio {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	printSuccess("Preview complete")
	printFile(path)
	printRenderStats(len(doc.Elements), cached)
	return nil
}

// renderSVG renders dot, going through the preview cache.
func (c *CLI) renderSVG(ctx context.Context, dot string, noCache bool) ([]byte, bool, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, false, fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	hooks := observability.Cache()
	key := cache.PreviewKey([]byte(dot), formatSVG)
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		c.Logger.Debug("preview cache hit", "key", key)
		hooks.OnCacheHit(ctx, cacheKindPreview)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, cacheKindPreview)

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Rendering preview...")
	spinner.Start()
	svg, err := preview.RenderSVG(ctx, dot)
	if err != nil {
		spinner.StopWithError("Render failed")
		return nil, false, err
	}
	spinner.Stop()
	prog.done("Rendered preview", "bytes", len(svg))

	if err := store.Set(ctx, key, svg, cache.DefaultTTL); err != nil {
		printWarning("Could not cache preview: %v", err)
	} else {
		hooks.OnCacheSet(ctx, cacheKindPreview, len(svg))
	}
	return svg, false, nil
}
