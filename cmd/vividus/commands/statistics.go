package commands

import (
	"github.com/spf13/cobra"
	"github.com/vividus-framework/vividus-cli/internal/app"
)

func (c *CLI) newValidateStatisticsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate-statistics",
		Short: "Compare the last run's statistics against the expected document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			expected, _ := cmd.Flags().GetString("expected")
			return c.app.ValidateStatistics(cmd.Context(), app.ValidateStatisticsOptions{ExpectedFile: expected})
		},
	}
	cmd.Flags().StringP("expected", "e", "", "Expected statistics document to compare against")
	return cmd
}
