package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kanvax/pkg/arrange"
	"github.com/matzehuels/kanvax/pkg/pipeline"
)

// layoutCommand creates the layout command for masonry, bento and grid.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		ids      string
		start    string
		gap      float64
		layoutOp string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [doc.json]",
		Short: "Arrange elements as a masonry, bento or grid layout",
		Long: `Arrange elements as a masonry, bento or grid layout.

The layout starts at the top-left of the selected elements unless --start is
given. Gap, columns and max width default to the [layout] section of the
config file. Use "-" to read the document from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Op = strings.ToLower(layoutOp)
			if !opts.IsLayout() {
				return fmt.Errorf("unknown layout type %q (want masonry, bento, grid)", layoutOp)
			}
			opts.IDs = parseIDs(ids)
			if cmd.Flags().Changed("gap") {
				opts.Gap = &gap
			}
			if start != "" {
				p, err := parsePoint(start)
				if err != nil {
					return err
				}
				opts.Start = &p
			}
			return c.runOp(cmd.Context(), args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<type>.json, - for stdout)")
	cmd.Flags().StringVarP(&layoutOp, "type", "t", pipeline.OpMasonry, "layout type: masonry (default), bento, grid")
	cmd.Flags().StringVar(&ids, "ids", "", "comma-separated element ids (default: all)")
	cmd.Flags().Float64Var(&gap, "gap", 0, "spacing between cells")
	cmd.Flags().IntVar(&opts.Columns, "columns", 0, "column count (masonry, grid)")
	cmd.Flags().Float64Var(&opts.MaxWidth, "max-width", 0, "total layout width")
	cmd.Flags().StringVar(&start, "start", "", "top-left corner x,y")

	return cmd
}

// alignCommand creates the align command.
func (c *CLI) alignCommand() *cobra.Command {
	var output, ids string
	opts := pipeline.Options{Op: pipeline.OpAlign}

	cmd := &cobra.Command{
		Use:   "align [doc.json]",
		Short: "Align elements against their shared bounding box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.IDs = parseIDs(ids)
			return c.runOp(cmd.Context(), args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.align.json, - for stdout)")
	cmd.Flags().StringVar(&ids, "ids", "", "comma-separated element ids (default: all)")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", string(arrange.Left), "alignment: "+joinModes())

	return cmd
}

// distributeCommand creates the distribute command.
func (c *CLI) distributeCommand() *cobra.Command {
	var output, ids string
	opts := pipeline.Options{Op: pipeline.OpDistribute}

	cmd := &cobra.Command{
		Use:   "distribute [doc.json]",
		Short: "Space elements evenly along an axis",
		Long: `Space elements evenly along an axis.

The first and last element keep their positions and the others are moved so
every gap between neighbours is equal. Needs at least three elements.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.IDs = parseIDs(ids)
			return c.runOp(cmd.Context(), args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.distribute.json, - for stdout)")
	cmd.Flags().StringVar(&ids, "ids", "", "comma-separated element ids (default: all)")
	cmd.Flags().StringVarP(&opts.Axis, "axis", "a", string(arrange.Horizontal), "axis: horizontal (x), vertical (y)")

	return cmd
}

// placeCommand creates the place command that adds a new image.
func (c *CLI) placeCommand() *cobra.Command {
	var output, size, pan, container string
	opts := pipeline.Options{Op: pipeline.OpPlace}

	cmd := &cobra.Command{
		Use:   "place [doc.json]",
		Short: "Add an image next to the existing content",
		Long: `Add an image next to the existing content.

On an empty canvas the image is centered in the viewport. Otherwise it is
placed to the right of the element whose right edge is furthest right.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if opts.Width, opts.Height, err = parseSize(size); err != nil {
				return err
			}
			if err := c.viewportFlags(&opts, pan, container); err != nil {
				return err
			}
			return c.runOp(cmd.Context(), args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.place.json, - for stdout)")
	cmd.Flags().StringVar(&opts.Src, "src", "", "image source URL or path")
	cmd.Flags().StringVar(&size, "size", "100x100", "image size WxH")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 1, "viewport scale")
	cmd.Flags().StringVar(&pan, "pan", "", "viewport pan x,y")
	cmd.Flags().StringVar(&container, "container", "", "viewport size WxH (default: from config)")

	return cmd
}

// fitCommand creates the fit command. It prints the viewport that frames
// all content and leaves the document untouched.
func (c *CLI) fitCommand() *cobra.Command {
	var container string
	var asJSON bool
	opts := pipeline.Options{Op: pipeline.OpFit}

	cmd := &cobra.Command{
		Use:   "fit [doc.json]",
		Short: "Compute the viewport that fits all content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.viewportFlags(&opts, "", container); err != nil {
				return err
			}
			return c.runFit(cmd.Context(), args[0], opts, asJSON)
		},
	}

	cmd.Flags().StringVar(&container, "container", "", "viewport size WxH (default: from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the viewport as JSON")

	return cmd
}

func (c *CLI) runFit(ctx context.Context, input string, opts pipeline.Options, asJSON bool) error {
	doc, err := readDocument(input)
	if err != nil {
		return err
	}
	res, err := pipeline.NewRunner(c.cfg, c.Logger).Run(ctx, doc, opts)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Viewport)
	}
	if res.Viewport == nil {
		printInfo("Document is empty, nothing to fit")
		return nil
	}
	printSuccess("Fit %d elements", res.Stats.Elements)
	printViewport(res.Viewport.Scale, res.Viewport.Pan)
	return nil
}

// viewportFlags fills the viewport fields of opts from --pan and --container.
func (c *CLI) viewportFlags(opts *pipeline.Options, pan, container string) error {
	if pan != "" {
		p, err := parsePoint(pan)
		if err != nil {
			return err
		}
		opts.Pan = p
	}
	if container != "" {
		w, h, err := parseSize(container)
		if err != nil {
			return err
		}
		opts.ContainerWidth, opts.ContainerHeight = w, h
	}
	return nil
}

func joinModes() string {
	names := make([]string, len(arrange.Modes))
	for i, m := range arrange.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
