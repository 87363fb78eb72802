package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newValidateKnownIssuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-known-issues [args...]",
		Short: "Validate the project's known issue definitions",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are forwarded to the validator verbatim.
			return c.app.ValidateKnownIssues(cmd.Context(), args)
		},
	}
}

func (c *CLI) newReplaceDeprecatedStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace-deprecated-steps",
		Short: "Rewrite deprecated steps in place across the project's stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ReplaceDeprecatedSteps(cmd.Context())
		},
	}
}

func (c *CLI) newReplaceDeprecatedPropertiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace-deprecated-properties",
		Short: "Rewrite deprecated properties in place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ReplaceDeprecatedProperties(cmd.Context())
		},
	}
}
