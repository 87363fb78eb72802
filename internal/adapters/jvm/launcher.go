// Package jvm launches framework runner classes in a Java process.
package jvm

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Launcher implements ports.Runner using os/exec.
type Launcher struct {
	logger ports.Logger
}

// NewLauncher creates a new Launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{
		logger: logger,
	}
}

// Run launches the invocation's main class in a fresh java process and blocks
// until it finishes. Process output is streamed into stdout and stderr while
// the process runs. A non-zero exit code is returned as data, not an error.
func (l *Launcher) Run(
	ctx context.Context,
	inv domain.Invocation,
	stdout, stderr io.Writer,
) (domain.ProcessResult, error) {
	java, err := l.findJava(inv.JavaExecutable)
	if err != nil {
		return domain.ProcessResult{}, err
	}

	cmd := exec.CommandContext(ctx, java, buildArgs(inv)...) //nolint:gosec // argv is assembled from the project manifest
	if inv.WorkingDir != "" {
		cmd.Dir = inv.WorkingDir
	}
	// The runner process needs the full environment: JAVA_HOME, proxy
	// settings and locale all affect the framework at runtime.
	cmd.Env = os.Environ()

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return domain.ProcessResult{}, zerr.Wrap(err, "failed to open stdout pipe")
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return domain.ProcessResult{}, zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return domain.ProcessResult{}, zerr.With(
			zerr.Wrap(err, domain.ErrRunnerStartFailed.Error()),
			"java", java,
		)
	}

	// Both pipes must be drained before Wait closes them.
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(stdout, outPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(stderr, errPipe)
		return err
	})
	copyErr := g.Wait()

	waitErr := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.ProcessResult{}, zerr.Wrap(ctxErr, "runner interrupted")
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return domain.ProcessResult{ExitCode: exitErr.ExitCode()}, nil
		}
		return domain.ProcessResult{}, zerr.Wrap(waitErr, "runner process failed")
	}
	if copyErr != nil {
		l.logger.Warn("runner output truncated: " + copyErr.Error())
	}

	return domain.ProcessResult{ExitCode: 0}, nil
}

// findJava resolves the java executable to launch, preferring the configured
// override, then JAVA_HOME, then PATH.
func (l *Launcher) findJava(override string) (string, error) {
	if override != "" {
		java, err := exec.LookPath(override)
		if err != nil {
			return "", zerr.With(
				zerr.Wrap(err, domain.ErrJavaNotFound.Error()),
				"configured", override,
			)
		}
		return java, nil
	}

	if home := os.Getenv("JAVA_HOME"); home != "" {
		candidate := filepath.Join(home, "bin", javaExecutableName())
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		l.logger.Warn("JAVA_HOME is set but has no java executable under bin, falling back to PATH")
	}

	java, err := exec.LookPath("java")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrJavaNotFound.Error())
	}
	return java, nil
}

func javaExecutableName() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}

// buildArgs assembles the java argv: JVM arguments first, then the classpath,
// then system properties sorted by key for a stable command line, then the
// main class and its arguments.
func buildArgs(inv domain.Invocation) []string {
	args := make([]string, 0, len(inv.JVMArgs)+len(inv.SystemProperties)+len(inv.Args)+3)
	args = append(args, inv.JVMArgs...)

	if len(inv.Classpath) > 0 {
		args = append(args, "-cp", strings.Join(inv.Classpath, string(os.PathListSeparator)))
	}

	keys := make([]string, 0, len(inv.SystemProperties))
	for k := range inv.SystemProperties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-D"+k+"="+inv.SystemProperties[k])
	}

	args = append(args, inv.MainClass)
	return append(args, inv.Args...)
}
