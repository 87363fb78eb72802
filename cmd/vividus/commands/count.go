package commands

import (
	"github.com/spf13/cobra"
	"github.com/vividus-framework/vividus-cli/internal/app"
)

func (c *CLI) newCountScenariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count-scenarios",
		Short: "Count the scenarios in the project's stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return c.app.CountScenarios(cmd.Context(), app.CountScenariosOptions{Dir: dir})
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Story directory to count in")
	return cmd
}

func (c *CLI) newCountStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count-steps",
		Short: "Report step usage across the project's stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			top, _ := cmd.Flags().GetInt("top")
			return c.app.CountSteps(cmd.Context(), app.CountStepsOptions{Dir: dir, Top: top})
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Story directory to count in")
	cmd.Flags().IntP("top", "t", 0, "Report only the N most used steps")
	return cmd
}
