package commands

import (
	"github.com/spf13/cobra"
	"github.com/vividus-framework/vividus-cli/internal/adapters/mcp"
)

func (c *CLI) newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve project tools over the Model Context Protocol on stdio",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.NewServer(c.app, c.logger).Serve()
		},
	}
}
