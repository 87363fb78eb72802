package commands

import (
	"github.com/spf13/cobra"
	"github.com/vividus-framework/vividus-cli/internal/app"
)

func (c *CLI) newPrintStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print-steps",
		Short: "Print all steps available to the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			return c.app.PrintSteps(cmd.Context(), app.PrintStepsOptions{File: file})
		},
	}
	cmd.Flags().StringP("file", "f", "", "Write the steps to this file instead of stdout")
	return cmd
}
