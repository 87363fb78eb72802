// Package commands implements the CLI commands for the vividus test runner.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vividus-framework/vividus-cli/internal/app"
	"github.com/vividus-framework/vividus-cli/internal/build"
	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
)

// CLI represents the command line interface for vividus.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetProjectDir(dir string)
	SetOutput(stdout, stderr io.Writer)
	RunStories(ctx context.Context, opts app.RunOptions) (domain.Verdict, error)
	PrintSteps(ctx context.Context, opts app.PrintStepsOptions) error
	CountScenarios(ctx context.Context, opts app.CountScenariosOptions) error
	CountSteps(ctx context.Context, opts app.CountStepsOptions) error
	ValidateKnownIssues(ctx context.Context, args []string) error
	ReplaceDeprecatedSteps(ctx context.Context) error
	ReplaceDeprecatedProperties(ctx context.Context) error
	ValidateStatistics(ctx context.Context, opts app.ValidateStatisticsOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vividus",
		Short:         "Run and inspect Vividus test projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			dir, _ := cmd.Flags().GetString("project-dir")
			a.SetProjectDir(dir)
		},
	}

	rootCmd.PersistentFlags().StringP("project-dir", "p", ".", "Directory the project manifest search starts from")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newDebugCmd())
	rootCmd.AddCommand(c.newPrintStepsCmd())
	rootCmd.AddCommand(c.newCountScenariosCmd())
	rootCmd.AddCommand(c.newCountStepsCmd())
	rootCmd.AddCommand(c.newValidateKnownIssuesCmd())
	rootCmd.AddCommand(c.newReplaceDeprecatedStepsCmd())
	rootCmd.AddCommand(c.newReplaceDeprecatedPropertiesCmd())
	rootCmd.AddCommand(c.newValidateStatisticsCmd())
	rootCmd.AddCommand(c.newMCPCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
