package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingMandatoryDependency is returned when the manifest does not
	// declare the mandatory framework dependency.
	ErrMissingMandatoryDependency = zerr.New("missing mandatory dependency")

	// ErrMissingBomVersion is returned when vividus-bom is declared without a
	// version to pin the framework to.
	ErrMissingBomVersion = zerr.New("vividus-bom declares no version")

	// ErrRedundantVersionsWithBom is returned when framework dependencies carry
	// explicit versions even though vividus-bom already pins them.
	ErrRedundantVersionsWithBom = zerr.New("dependency versions must not be set when vividus-bom is declared")

	// ErrVersionMismatch is returned when framework dependencies disagree on
	// their version.
	ErrVersionMismatch = zerr.New("inconsistent dependency versions")

	// ErrUnpinnedFrameworkVersion is returned when the mandatory dependency has
	// no version and no vividus-bom is present to supply one.
	ErrUnpinnedFrameworkVersion = zerr.New("vividus declares no version and no vividus-bom is present")

	// ErrUnparsableFrameworkVersion is returned when the pinned framework
	// version is not a semantic version. Callers downgrade it to a warning.
	ErrUnparsableFrameworkVersion = zerr.New("framework version is not a semantic version")

	// ErrUnsupportedFrameworkVersion is returned when the pinned framework
	// version predates the oldest release this tool knows how to drive.
	ErrUnsupportedFrameworkVersion = zerr.New("framework version is not supported")

	ErrManifestNotFound    = zerr.New("could not find vividus.yaml")
	ErrManifestReadFailed  = zerr.New("failed to read manifest")
	ErrManifestParseFailed = zerr.New("failed to parse manifest")
	ErrMissingProjectName  = zerr.New("missing project name")
	ErrEmptyDependencyName = zerr.New("dependency name must not be empty")

	ErrSettingsReadFailed = zerr.New("failed to read properties file")
	ErrInvalidJvmArgs     = zerr.New("failed to parse jvmArgs")

	// ErrRepositoryNotFound is returned when the artifact repository directory
	// does not exist on disk.
	ErrRepositoryNotFound = zerr.New("artifact repository does not exist")

	// ErrArtifactNotFound is returned when a dependency cannot be located in
	// the artifact repository.
	ErrArtifactNotFound = zerr.New("artifact not found in repository")

	ErrStoreCreateFailed    = zerr.New("failed to create classpath cache directory")
	ErrStoreReadFailed      = zerr.New("failed to read classpath cache entry")
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal classpath cache entry")
	ErrStoreMarshalFailed   = zerr.New("failed to marshal classpath cache entry")
	ErrStoreWriteFailed     = zerr.New("failed to write classpath cache entry")

	// ErrJavaNotFound is returned when no java executable can be located via
	// settings, JAVA_HOME or PATH.
	ErrJavaNotFound = zerr.New("could not locate a java executable")

	// ErrRunnerStartFailed is returned when the runner process cannot be
	// spawned at all, as opposed to it running and exiting non-zero.
	ErrRunnerStartFailed = zerr.New("failed to start runner process")

	// ErrAbnormalExit is returned when the runner exits with a code outside
	// the set of outcomes the framework defines.
	ErrAbnormalExit = zerr.New("runner finished abnormally")

	ErrExitCodeWriteFailed = zerr.New("failed to save exit code")

	ErrMissingExpectedStatistics = zerr.New("expected statistics file is not configured")
	ErrStatisticsReadFailed      = zerr.New("failed to read statistics file")
	ErrStatisticsParseFailed     = zerr.New("failed to parse statistics file")

	// ErrStatisticsMismatch is returned when the produced run statistics
	// diverge from the expected ones.
	ErrStatisticsMismatch = zerr.New("run statistics do not match the expected statistics")
)
