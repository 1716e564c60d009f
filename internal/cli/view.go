package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// viewCommand creates the view command that opens the interactive viewer.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view [doc.json]",
		Short: "Browse a document in an interactive terminal viewport",
		Long: `Browse a document in an interactive terminal viewport.

Pan with the arrow keys, zoom with +/- or the mouse wheel (the point under the
pointer stays fixed), press f to fit all content, tab to cycle the selection,
c to center on it and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewCanvasModel(doc, c.cfg),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("viewer: %w", err)
			}
			return nil
		},
	}
}
