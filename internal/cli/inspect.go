package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kanvax/pkg/canvas"
	"github.com/matzehuels/kanvax/pkg/selection"
	"github.com/matzehuels/kanvax/pkg/viewport"
)

// inspectCommand creates the inspect command that summarizes a document.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [doc.json]",
		Short: "List the elements of a document with its bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			emit(StyleTitle.Render(documentTitle(doc)))
			if len(doc.Elements) == 0 {
				printInfo("No elements")
				return nil
			}
			emit(elementTable(doc.Elements))

			b, _ := viewport.ContentBounds(doc.Elements)
			printKeyValue("bounds", fmt.Sprintf("%s → %s", formatPoint(canvas.Pt(b.MinX, b.MinY)), formatPoint(canvas.Pt(b.MaxX, b.MaxY))))
			printKeyValue("size", formatSize(b.Width, b.Height))

			v := c.cfg.Viewport
			if scale, pan, ok := viewport.FitToContent(doc.Elements, v.ContainerWidth, v.ContainerHeight, v.FitOptions()...); ok {
				printKeyValue("fit", fmt.Sprintf("scale %s, pan %s", formatNum(scale), formatPoint(pan)))
			}
			return nil
		},
	}
}

func documentTitle(doc *canvas.Document) string {
	name := doc.Name
	if name == "" {
		name = "Untitled"
	}
	return fmt.Sprintf("%s (%d elements)", name, len(doc.Elements))
}

// elementTable renders one row per element. Images inside a frame list the
// frame in the last column.
func elementTable(elems []canvas.Element) string {
	parents := make(map[string][]string)
	for _, f := range canvas.Frames(elems) {
		for _, e := range selection.InFrame(f, elems) {
			parents[e.ID] = append(parents[e.ID], f.ID)
		}
	}

	rows := make([][]string, 0, len(elems))
	for _, e := range elems {
		flags := ""
		if e.Locked {
			flags += "L"
		}
		if !e.Visible {
			flags += "H"
		}
		rows = append(rows, []string{
			e.ID,
			string(e.Kind),
			formatPoint(canvas.Pt(e.X, e.Y)),
			formatSize(e.Width, e.Height),
			flags,
			strings.Join(parents[e.ID], ", "),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Kind", "Position", "Size", "Flags", "Frame").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(elems) {
				return lipgloss.NewStyle()
			}
			if elems[row].IsFrame() {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			if !elems[row].Visible {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}
