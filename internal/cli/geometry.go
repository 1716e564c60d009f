package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/errors"
	"github.com/matzehuels/kanvax/pkg/resize"
	"github.com/matzehuels/kanvax/pkg/selection"
	"github.com/matzehuels/kanvax/pkg/snap"
	"github.com/matzehuels/kanvax/pkg/viewport"
)

// snapCommand creates the snap command. It simulates dragging one element
// to a new position and reports the guides and the snapped position.
func (c *CLI) snapCommand() *cobra.Command {
	var (
		id, to, output string
		simple         bool
	)

	cmd := &cobra.Command{
		Use:   "snap [doc.json]",
		Short: "Show alignment guides for an element dragged to a position",
		Long: `Show alignment guides for an element dragged to a position.

By default the dragged element is checked against every other element and
frame. With --simple its center only snaps to frame centers.

With -o the document is written with the element moved to the snapped
position.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			el, ok := doc.Element(id)
			if !ok {
				return errors.ElementNotFound("element", id)
			}
			pos, err := parsePoint(to)
			if err != nil {
				return err
			}

			dragged := el.Rect()
			dragged.X, dragged.Y = pos.X, pos.Y
			opts := c.cfg.Snap.Options()

			var snapped canvas.Rect
			if simple {
				res := snap.FrameCenters(dragged, doc.Elements, id, opts...)
				for _, g := range res.Guides {
					printDetail("%s guide at %s (frame %s)", g.Axis, formatNum(g.Position), g.OwnerID)
				}
				snapped = res.Apply(dragged)
			} else {
				res := snap.Detect(id, dragged, doc.Elements, opts...)
				for _, g := range res.Guides {
					line := fmt.Sprintf("%-10s %-8s %s from %s", g.Axis, formatNum(g.Position), g.Source, g.SourceID)
					if g.Active() {
						printSuccess("%s", line)
					} else {
						printDetail("%s", line)
					}
				}
				snapped = res.Apply(dragged)
			}

			printKeyValue("dragged", formatPoint(canvas.Pt(dragged.X, dragged.Y)))
			printKeyValue("snapped", formatPoint(canvas.Pt(snapped.X, snapped.Y)))

			if output == "" {
				return nil
			}
			next, err := doc.Apply([]canvas.Update{{ID: id, X: snapped.X, Y: snapped.Y}})
			if err != nil {
				return err
			}
			if err := writeDocument(next, output); err != nil {
				return err
			}
			if output != stdio {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "id of the dragged element")
	cmd.Flags().StringVar(&to, "to", "", "top-left position x,y the element is dragged to")
	cmd.Flags().BoolVar(&simple, "simple", false, "snap centers to frame centers only")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document with the element snapped")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// resizeCommand creates the resize command.
func (c *CLI) resizeCommand() *cobra.Command {
	var id, handle, delta, output string

	cmd := &cobra.Command{
		Use:   "resize [doc.json]",
		Short: "Resize an element by dragging one of its handles",
		Long: `Resize an element by dragging one of its handles.

Images keep their aspect ratio and frames resize freely. Handles are
n, s, e, w, ne, nw, se and sw.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := resize.ParseHandle(handle)
			if err != nil {
				return err
			}
			d, err := parsePoint(delta)
			if err != nil {
				return err
			}
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			el, ok := doc.Element(id)
			if !ok {
				return errors.ElementNotFound("element", id)
			}

			r := resize.ForElement(el, h, d.X, d.Y)
			next, err := doc.Resize(id, r)
			if err != nil {
				return err
			}

			path := outputPath(args[0], output, "resize")
			if err := writeDocument(next, path); err != nil {
				return err
			}
			if path == stdio {
				return nil
			}
			printSuccess("Resized %s to %s", id, formatSize(r.Width, r.Height))
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "id of the element to resize")
	cmd.Flags().StringVar(&handle, "handle", "se", "resize handle")
	cmd.Flags().StringVar(&delta, "delta", "0,0", "pointer movement dx,dy in canvas units")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.resize.json, - for stdout)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

// zoomCommand creates the zoom command.
func (c *CLI) zoomCommand() *cobra.Command {
	var (
		scale, deltaY, factor float64
		pan, pointer          string
	)

	cmd := &cobra.Command{
		Use:   "zoom",
		Short: "Compute the viewport after a wheel zoom at the pointer",
		Long: `Compute the viewport after a wheel zoom at the pointer.

The canvas point under the pointer stays under the pointer. A negative
--delta-y zooms in. --factor zooms by a fixed multiplier instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateScale(scale); err != nil {
				return err
			}
			p, err := parsePoint(pan)
			if err != nil {
				return err
			}
			ptr, err := parsePoint(pointer)
			if err != nil {
				return err
			}

			opts := c.cfg.Zoom.Options()
			var s float64
			var next canvas.Point
			if factor > 0 {
				s, next = viewport.ZoomAround(ptr, scale, p, factor, opts...)
			} else {
				s, next = viewport.ZoomToPoint(ptr, scale, p, deltaY, opts...)
			}
			printViewport(s, next)
			return nil
		},
	}

	cmd.Flags().Float64Var(&scale, "scale", 1, "current scale")
	cmd.Flags().StringVar(&pan, "pan", "0,0", "current pan x,y")
	cmd.Flags().StringVar(&pointer, "pointer", "0,0", "pointer position x,y in screen space")
	cmd.Flags().Float64Var(&deltaY, "delta-y", 0, "wheel delta")
	cmd.Flags().Float64Var(&factor, "factor", 0, "zoom multiplier (overrides --delta-y)")

	return cmd
}

// clipCommand creates the clip command.
func (c *CLI) clipCommand() *cobra.Command {
	var (
		imageID, frameID, pan string
		scale                 float64
	)

	cmd := &cobra.Command{
		Use:   "clip [doc.json]",
		Short: "Print the CSS clip polygon of an image inside a frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateScale(scale); err != nil {
				return err
			}
			p, err := parsePoint(pan)
			if err != nil {
				return err
			}
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			img, ok := doc.Element(imageID)
			if !ok {
				return errors.ElementNotFound("image", imageID)
			}
			frame, ok := doc.Element(frameID)
			if !ok {
				return errors.ElementNotFound("frame", frameID)
			}

			clip := selection.Clip(img, frame, scale, p)
			if clip == nil {
				printInfo("%s is not clipped by %s", imageID, frameID)
				return nil
			}
			fmt.Println(clip.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&imageID, "image", "", "image element id")
	cmd.Flags().StringVar(&frameID, "frame", "", "frame element id")
	cmd.Flags().Float64Var(&scale, "scale", 1, "viewport scale")
	cmd.Flags().StringVar(&pan, "pan", "0,0", "viewport pan x,y")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("frame")

	return cmd
}
