package domain

import "path/filepath"

// Settings is the explicit configuration for the launch pipeline, assembled
// from vividus.properties, VIVIDUS_* environment overrides and command-line
// flags. Flags win over environment, environment wins over the file.
type Settings struct {
	// TreatKnownIssuesOnlyAsPassed forgives exit code 1, the runner's
	// "failures caused by known issues only" outcome.
	TreatKnownIssuesOnlyAsPassed bool

	// FileToSaveExitCode enables exit-code persistence when non-empty.
	FileToSaveExitCode string

	// ResolvePathAgainstProjectBuildDir resolves FileToSaveExitCode under
	// OutputDir instead of the project directory.
	ResolvePathAgainstProjectBuildDir bool

	// ExpectedStatisticsFile is the reference document for statistics
	// validation. Validation refuses to run while it is unset.
	ExpectedStatisticsFile string

	// OutputDir is where the runner writes reports and statistics,
	// resolved against the project directory unless absolute.
	OutputDir string

	// RepositoryDir is the root of the local artifact repository.
	RepositoryDir string

	// JavaExecutable overrides java discovery. When empty, JAVA_HOME and
	// then PATH are consulted.
	JavaExecutable string

	// JVMArgs are extra JVM flags, already shell-split.
	JVMArgs []string

	// SystemProperties is the forwarded vividus.* property namespace; each
	// entry becomes a -D argument on every runner invocation.
	SystemProperties map[string]string
}

// ExitCodePath returns the file the exit code is persisted to, or "" when
// persistence is disabled. Relative paths resolve against outputDir when
// ResolvePathAgainstProjectBuildDir is set, otherwise against projectDir.
func (s Settings) ExitCodePath(projectDir, outputDir string) string {
	if s.FileToSaveExitCode == "" {
		return ""
	}
	if filepath.IsAbs(s.FileToSaveExitCode) {
		return s.FileToSaveExitCode
	}
	if s.ResolvePathAgainstProjectBuildDir {
		return filepath.Join(outputDir, s.FileToSaveExitCode)
	}
	return filepath.Join(projectDir, s.FileToSaveExitCode)
}

// ResolvedOutputDir returns OutputDir resolved against projectDir unless it
// is already absolute.
func (s Settings) ResolvedOutputDir(projectDir string) string {
	out := s.OutputDir
	if out == "" {
		out = DefaultOutputDirName
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(projectDir, out)
}
