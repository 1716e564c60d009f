package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/kanvax/internal/server"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the canvas engine over HTTP",
		Long: `Serve the canvas engine over HTTP.

Every document operation and interaction computation is available as a JSON
endpoint under /v1. Prometheus metrics are exposed on /metrics. The server
shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return server.New(cfg, c.Logger).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: from config, :8080)")

	return cmd
}
