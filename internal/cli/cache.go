package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kanvax/pkg/cache"
)

// cacheCommand groups the preview cache subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered preview cache",
		Long: `Manage the rendered preview cache.

Rendered SVG previews are stored under $XDG_CACHE_HOME/kanvax, keyed by a
hash of the Graphviz source, and expire after a week.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached previews",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCacheClear()
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, err := cache.Dir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
	)
	return cmd
}

func runCacheClear() error {
	dir, err := cache.Dir()
	if err != nil {
		return fmt.Errorf("get cache dir: %w", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		printInfo("Cache is empty")
		return nil
	}

	store, err := cache.NewFileCache(dir)
	if err != nil {
		return err
	}
	n, err := store.Clear()
	if err != nil {
		return err
	}
	printSuccess("Cleared %d cached previews", n)
	printDetail("Directory: %s", dir)
	return nil
}
