package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/kanvax/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Kanvax arranges, snaps and previews infinite-canvas documents",
		Long: `Kanvax is the geometry engine of an infinite canvas editor. It reads canvas
documents (JSON lists of images and frames), runs layout, alignment, snapping,
resizing and viewport operations on them, and writes the result back.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/kanvax/kanvax.toml)")

	// Document operations
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.alignCommand())
	root.AddCommand(c.distributeCommand())
	root.AddCommand(c.fitCommand())
	root.AddCommand(c.placeCommand())

	// Interaction geometry
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.zoomCommand())
	root.AddCommand(c.clipCommand())

	// Inspection and output
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())

	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
