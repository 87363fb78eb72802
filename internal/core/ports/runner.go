package ports

import (
	"context"
	"io"

	"github.com/vividus-framework/vividus-cli/internal/core/domain"
)

// Runner defines the interface for launching framework runner processes.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run launches the invocation and blocks until the process finishes,
	// streaming its output into stdout and stderr.
	//
	// A non-zero exit code is reported through the result, not the error.
	// The error covers launch failures only: no java executable, a missing
	// working directory, or context cancellation.
	Run(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) (domain.ProcessResult, error)
}
