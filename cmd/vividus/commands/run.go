package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vividus-framework/vividus-cli/internal/app"
	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"github.com/vividus-framework/vividus-cli/internal/ui/output"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the project's stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runStories(cmd, runOptionsFromFlags(cmd))
		},
	}
	addRunFlags(cmd)
	return cmd
}

// runStories launches the stories and prints the final verdict line. The
// line is printed for abnormal exits too: the runner output already went to
// stderr, the verdict is the one-line summary the user scans for.
func (c *CLI) runStories(cmd *cobra.Command, opts app.RunOptions) error {
	verdict, err := c.app.RunStories(cmd.Context(), opts)
	if err != nil {
		if errors.Is(err, domain.ErrAbnormalExit) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.Verdict(output.New(cmd.OutOrStdout()), verdict))
		}
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.Verdict(output.New(cmd.OutOrStdout()), verdict))
	return nil
}

// runOptionsFromFlags reads the shared run flags. Only flags the user
// actually set become overrides; unset flags leave the configured settings
// in place.
func runOptionsFromFlags(cmd *cobra.Command) app.RunOptions {
	var opts app.RunOptions

	if cmd.Flags().Changed("treat-known-issues-only-as-passed") {
		v, _ := cmd.Flags().GetBool("treat-known-issues-only-as-passed")
		opts.TreatKnownIssuesOnlyAsPassed = &v
	}
	if cmd.Flags().Changed("save-exit-code-to") {
		v, _ := cmd.Flags().GetString("save-exit-code-to")
		opts.FileToSaveExitCode = &v
	}
	if cmd.Flags().Changed("resolve-exit-code-path-against-output-dir") {
		v, _ := cmd.Flags().GetBool("resolve-exit-code-path-against-output-dir")
		opts.ResolveExitCodePathAgainstOutputDir = &v
	}
	if cmd.Flags().Changed("expected-statistics") {
		v, _ := cmd.Flags().GetString("expected-statistics")
		opts.ExpectedStatisticsFile = &v
	}
	opts.ValidateStatistics, _ = cmd.Flags().GetBool("validate-statistics")

	return opts
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("treat-known-issues-only-as-passed", false, "Treat exit code 1 (failures from known issues only) as a pass")
	cmd.Flags().String("save-exit-code-to", "", "File to save the runner exit code to")
	cmd.Flags().Bool("resolve-exit-code-path-against-output-dir", false, "Resolve a relative exit code path against the output directory instead of the project directory")
	cmd.Flags().Bool("validate-statistics", false, "Validate run statistics against the expected document after the run")
	cmd.Flags().String("expected-statistics", "", "Expected statistics document to compare against")
}
