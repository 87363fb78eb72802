// Package launch runs assembled runner invocations and turns their exit
// codes into verdicts.
package launch

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
	"go.trai.ch/zerr"
)

// Policy carries the settings that shape how a finished run is judged and
// where its exit code is persisted. The zero value is the strict policy
// used by all non-story operations.
type Policy struct {
	// TreatKnownIssuesOnlyAsPassed accepts exit code 1 as a passing run.
	TreatKnownIssuesOnlyAsPassed bool

	// StatisticsValidationScheduled defers the pass or fail decision to a
	// later statistics comparison.
	StatisticsValidationScheduled bool

	// ExitCodeFile is the resolved path the exit code is written to.
	// Empty disables persistence.
	ExitCodeFile string
}

// Launcher drives a Runner and interprets what came out of it.
type Launcher struct {
	runner ports.Runner
	logger ports.Logger
}

// NewLauncher creates a new Launcher.
func NewLauncher(runner ports.Runner, logger ports.Logger) *Launcher {
	return &Launcher{
		runner: runner,
		logger: logger,
	}
}

// Launch runs the invocation, persists its exit code when configured and
// returns the verdict. A not-OK verdict comes with ErrAbnormalExit.
func (l *Launcher) Launch(
	ctx context.Context,
	inv domain.Invocation,
	policy Policy,
	stdout, stderr io.Writer,
) (domain.Verdict, error) {
	l.logger.Info("running " + inv.MainClass)

	result, err := l.runner.Run(ctx, inv, stdout, stderr)
	if err != nil {
		return domain.Verdict{}, zerr.Wrap(err, "failed to run "+inv.MainClass)
	}

	// The exit code is persisted before interpretation so the file exists
	// even for runs the verdict later accepts.
	if policy.ExitCodeFile != "" {
		if err := l.saveExitCode(policy.ExitCodeFile, result.ExitCode); err != nil {
			return domain.Verdict{}, err
		}
	}

	verdict := domain.Interpret(domain.Outcome{
		ExitCode:                      result.ExitCode,
		KnownIssuesOnly:               policy.TreatKnownIssuesOnlyAsPassed,
		StatisticsValidationScheduled: policy.StatisticsValidationScheduled,
	})

	switch verdict.Reason {
	case domain.ReasonStatisticsDeferred:
		l.logger.Warn("story-level failures are deferred to statistics validation")
	case domain.ReasonKnownIssuesOnly:
		l.logger.Info("failures are known issues only, treating the run as passed")
	case domain.ReasonClean:
	case domain.ReasonAbnormalExit:
		return verdict, errors.Join(
			domain.ErrAbnormalExit,
			zerr.With(
				zerr.New(inv.MainClass+" exited with code "+domain.ExitCodeString(verdict.ExitCode)),
				"exit_code", verdict.ExitCode,
			),
		)
	}

	return verdict, nil
}

func (l *Launcher) saveExitCode(path string, code int) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExitCodeWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, []byte(domain.ExitCodeString(code)), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExitCodeWriteFailed.Error()), "path", path)
	}
	l.logger.Info("exit code " + domain.ExitCodeString(code) + " saved to " + path)
	return nil
}
