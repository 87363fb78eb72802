//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var vividusBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "vividus-e2e-*")
	if err != nil {
		panic(err)
	}

	vividusBinary = filepath.Join(tmpDir, "vividus")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", vividusBinary, "./cmd/vividus")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build vividus binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the scripts drive the runner through a shell shim")
	}

	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

// javaShim stands in for the JVM. It records its argv and obeys the
// FAKE_JAVA_* variables so scripts can steer runner behavior.
const javaShim = `#!/bin/sh
if [ -n "$FAKE_JAVA_LOG" ]; then
  printf '%s\n' "$*" >> "$FAKE_JAVA_LOG"
fi
if [ -n "$FAKE_JAVA_STDOUT" ]; then
  printf '%s\n' "$FAKE_JAVA_STDOUT"
fi
exit "${FAKE_JAVA_EXIT:-0}"
`

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	binDir := filepath.Join(env.WorkDir, ".bin")
	if err := os.MkdirAll(binDir, 0o750); err != nil {
		return err
	}
	//nolint:gosec // The shim must be executable
	if err := os.WriteFile(filepath.Join(binDir, "java"), []byte(javaShim), 0o755); err != nil {
		return err
	}

	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", filepath.Dir(vividusBinary)+string(os.PathListSeparator)+
		binDir+string(os.PathListSeparator)+currentPath)

	// Keep java discovery and the default repository lookup away from the
	// host environment.
	env.Setenv("JAVA_HOME", "")
	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}
