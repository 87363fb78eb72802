// Package app implements the application layer for the vividus CLI.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
	"github.com/vividus-framework/vividus-cli/internal/engine/launch"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.ClasspathResolver
	store        ports.ClasspathStore
	launcher     *launch.Launcher
	logger       ports.Logger

	projectDir string
	stdout     io.Writer
	stderr     io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.ClasspathResolver,
	store ports.ClasspathStore,
	launcher *launch.Launcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		store:        store,
		launcher:     launcher,
		logger:       log,
		projectDir:   ".",
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// SetProjectDir sets the directory the manifest search starts from.
func (a *App) SetProjectDir(dir string) {
	if dir != "" {
		a.projectDir = dir
	}
}

// SetOutput redirects runner process output. Used by tests and the MCP
// server, which needs stdout kept clean for the protocol.
func (a *App) SetOutput(stdout, stderr io.Writer) {
	a.stdout = stdout
	a.stderr = stderr
}

// RunOptions configuration for the RunStories method. Pointer fields are
// command-line overrides; nil leaves the configured setting in place.
type RunOptions struct {
	TreatKnownIssuesOnlyAsPassed        *bool
	FileToSaveExitCode                  *string
	ResolveExitCodePathAgainstOutputDir *bool
	ExpectedStatisticsFile              *string

	// ValidateStatistics schedules statistics validation after the run,
	// deferring story-level failures to the comparison.
	ValidateStatistics bool

	// ExtraJVMArgs are appended after the configured jvmArgs. The debug
	// command injects its JDWP agent here.
	ExtraJVMArgs []string
}

// PrintStepsOptions configuration for the PrintSteps method.
type PrintStepsOptions struct {
	// File receives the printed steps instead of stdout when set.
	File string
}

// CountScenariosOptions configuration for the CountScenarios method.
type CountScenariosOptions struct {
	// Dir narrows the count to one story directory.
	Dir string
}

// CountStepsOptions configuration for the CountSteps method.
type CountStepsOptions struct {
	Dir string

	// Top limits the report to the N most used steps. Zero reports all.
	Top int
}

// ValidateStatisticsOptions configuration for the ValidateStatistics method.
type ValidateStatisticsOptions struct {
	// ExpectedFile overrides the configured expected statistics document.
	ExpectedFile string
}

// launchContext is everything a runner operation needs once the pipeline
// has run: the loaded project, its settings and the resolved classpath.
type launchContext struct {
	manifest  domain.Manifest
	settings  domain.Settings
	classpath []string
}

// RunStories executes the project's stories and returns the verdict. When
// statistics validation is scheduled, it runs right after the process ends
// and decides the overall outcome.
func (a *App) RunStories(ctx context.Context, opts RunOptions) (domain.Verdict, error) {
	lc, err := a.prepare(ctx)
	if err != nil {
		return domain.Verdict{}, err
	}

	settings := applyRunOverrides(lc.settings, opts)
	outputDir := settings.ResolvedOutputDir(lc.manifest.Dir)

	policy := launch.Policy{
		TreatKnownIssuesOnlyAsPassed:  settings.TreatKnownIssuesOnlyAsPassed,
		StatisticsValidationScheduled: opts.ValidateStatistics,
		ExitCodeFile:                  settings.ExitCodePath(lc.manifest.Dir, outputDir),
	}

	inv := a.buildInvocation(lc, domain.StoriesRunnerClass, opts.ExtraJVMArgs, nil)
	verdict, err := a.launcher.Launch(ctx, inv, policy, a.stdout, a.stderr)
	if err != nil {
		return verdict, err
	}

	if opts.ValidateStatistics {
		if err := a.compareStatistics(lc.manifest, settings); err != nil {
			return verdict, err
		}
	}

	return verdict, nil
}

// PrintSteps prints every step available to the project.
func (a *App) PrintSteps(ctx context.Context, opts PrintStepsOptions) error {
	var args []string
	if opts.File != "" {
		args = append(args, "--file", opts.File)
	}
	return a.runTool(ctx, domain.StepsPrinterClass, args)
}

// CountScenarios counts the scenarios under the project's story directory.
func (a *App) CountScenarios(ctx context.Context, opts CountScenariosOptions) error {
	var args []string
	if opts.Dir != "" {
		args = append(args, "--dir", opts.Dir)
	}
	return a.runTool(ctx, domain.ScenariosCounterClass, args)
}

// CountSteps reports step usage across the project's stories.
func (a *App) CountSteps(ctx context.Context, opts CountStepsOptions) error {
	var args []string
	if opts.Dir != "" {
		args = append(args, "--dir", opts.Dir)
	}
	if opts.Top > 0 {
		args = append(args, "--top", strconv.Itoa(opts.Top))
	}
	return a.runTool(ctx, domain.StepsCounterClass, args)
}

// ValidateKnownIssues checks the project's known issue definitions. Extra
// arguments are forwarded to the validator verbatim.
func (a *App) ValidateKnownIssues(ctx context.Context, args []string) error {
	return a.runTool(ctx, domain.KnownIssueValidatorClass, args)
}

// ReplaceDeprecatedSteps rewrites deprecated steps in place across the
// project's stories.
func (a *App) ReplaceDeprecatedSteps(ctx context.Context) error {
	return a.runTool(ctx, domain.DeprecatedStepsReplacerClass, nil)
}

// ReplaceDeprecatedProperties rewrites deprecated properties in place.
func (a *App) ReplaceDeprecatedProperties(ctx context.Context) error {
	return a.runTool(ctx, domain.DeprecatedPropertiesReplacerClass, nil)
}

// ValidateStatistics compares the last run's statistics against the
// expected document without launching anything.
func (a *App) ValidateStatistics(_ context.Context, opts ValidateStatisticsOptions) error {
	m, err := a.configLoader.LoadManifest(a.projectDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load project manifest")
	}

	settings, err := a.configLoader.LoadSettings(m.Dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load project settings")
	}
	if opts.ExpectedFile != "" {
		settings.ExpectedStatisticsFile = opts.ExpectedFile
	}

	return a.compareStatistics(m, settings)
}

// runTool launches an auxiliary runner class under the strict zero policy:
// any non-zero exit is a failure.
func (a *App) runTool(ctx context.Context, mainClass string, args []string) error {
	lc, err := a.prepare(ctx)
	if err != nil {
		return err
	}

	_, err = a.launcher.Launch(ctx, a.buildInvocation(lc, mainClass, nil, args), launch.Policy{}, a.stdout, a.stderr)
	return err
}

// prepare runs the launch pipeline up to the point where an invocation can
// be assembled.
func (a *App) prepare(_ context.Context) (*launchContext, error) {
	// 1. Load the manifest, walking up from the project directory
	m, err := a.configLoader.LoadManifest(a.projectDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project manifest")
	}

	// 2. Load the launch settings scoped to the manifest's directory
	settings, err := a.configLoader.LoadSettings(m.Dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project settings")
	}

	// 3. Enforce a single framework version across the dependency set
	version, err := domain.CheckConsistency(m)
	if err != nil {
		return nil, err
	}
	a.logger.Info("using framework version " + version)

	// 4. Gate on the minimum supported framework version
	if err := domain.CheckFrameworkVersion(version); err != nil {
		if !errors.Is(err, domain.ErrUnparsableFrameworkVersion) {
			return nil, err
		}
		// Dynamic version declarations cannot be compared.
		a.logger.Warn("cannot compare framework version \"" + version +
			"\" against the minimum " + domain.MinimumFrameworkVersion)
	}

	// 5. Resolve the classpath, cache first
	classpath, err := a.resolveClasspath(m, a.repositoryDir(settings, m.Dir), version)
	if err != nil {
		return nil, err
	}

	return &launchContext{manifest: m, settings: settings, classpath: classpath}, nil
}

func (a *App) resolveClasspath(m domain.Manifest, repoDir, version string) ([]string, error) {
	key := a.resolver.CacheKey(repoDir, m, version)

	cached, err := a.store.Get(m.Dir, key)
	if err != nil {
		// An unreadable cache is a miss, not a failure.
		a.logger.Warn("classpath cache unreadable: " + err.Error())
	}
	if classpathIntact(cached) {
		a.logger.Info(fmt.Sprintf("classpath cache hit, %d entries", len(cached)))
		return cached, nil
	}

	classpath, err := a.resolver.Resolve(repoDir, m, version)
	if err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("resolved %d classpath entries", len(classpath)))

	if err := a.store.Put(m.Dir, key, classpath); err != nil {
		a.logger.Warn("failed to cache the classpath: " + err.Error())
	}

	return classpath, nil
}

// classpathIntact reports whether a cached classpath can still be used.
// Entries disappear when the repository is pruned; any missing entry forces
// a fresh resolution.
func classpathIntact(entries []string) bool {
	if len(entries) == 0 {
		return false
	}
	for _, entry := range entries {
		if _, err := os.Stat(entry); err != nil {
			return false
		}
	}
	return true
}

func (a *App) buildInvocation(lc *launchContext, mainClass string, extraJVMArgs, args []string) domain.Invocation {
	props := make(map[string]string, len(lc.settings.SystemProperties))
	for k, v := range lc.settings.SystemProperties {
		props[k] = v
	}

	jvmArgs := make([]string, 0, len(lc.settings.JVMArgs)+len(extraJVMArgs))
	jvmArgs = append(jvmArgs, lc.settings.JVMArgs...)
	jvmArgs = append(jvmArgs, extraJVMArgs...)

	return domain.Invocation{
		MainClass:        mainClass,
		JavaExecutable:   lc.settings.JavaExecutable,
		Classpath:        lc.classpath,
		SystemProperties: props,
		JVMArgs:          jvmArgs,
		Args:             args,
		WorkingDir:       lc.manifest.Dir,
	}
}

func (a *App) repositoryDir(settings domain.Settings, projectDir string) string {
	dir := settings.RepositoryDir
	if dir == "" {
		return domain.DefaultRepositoryPath()
	}
	if !filepath.IsAbs(dir) {
		return filepath.Join(projectDir, dir)
	}
	return dir
}

func (a *App) compareStatistics(m domain.Manifest, settings domain.Settings) error {
	expectedPath := settings.ExpectedStatisticsFile
	if expectedPath == "" {
		return domain.ErrMissingExpectedStatistics
	}
	if !filepath.IsAbs(expectedPath) {
		expectedPath = filepath.Join(m.Dir, expectedPath)
	}
	actualPath := domain.StatisticsPath(settings.ResolvedOutputDir(m.Dir))

	expected, err := readJSONDocument(expectedPath)
	if err != nil {
		return err
	}
	actual, err := readJSONDocument(actualPath)
	if err != nil {
		return err
	}

	if diffs := domain.CompareStatistics(expected, actual); len(diffs) > 0 {
		return zerr.With(
			zerr.Wrap(domain.ErrStatisticsMismatch, domain.FormatDifferences(diffs)),
			"expected_file", expectedPath,
		)
	}

	a.logger.Info("statistics match the expected document")
	return nil
}

func readJSONDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStatisticsReadFailed.Error()), "path", path)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStatisticsParseFailed.Error()), "path", path)
	}
	return doc, nil
}

func applyRunOverrides(s domain.Settings, opts RunOptions) domain.Settings {
	if opts.TreatKnownIssuesOnlyAsPassed != nil {
		s.TreatKnownIssuesOnlyAsPassed = *opts.TreatKnownIssuesOnlyAsPassed
	}
	if opts.FileToSaveExitCode != nil {
		s.FileToSaveExitCode = *opts.FileToSaveExitCode
	}
	if opts.ResolveExitCodePathAgainstOutputDir != nil {
		s.ResolvePathAgainstProjectBuildDir = *opts.ResolveExitCodePathAgainstOutputDir
	}
	if opts.ExpectedStatisticsFile != nil {
		s.ExpectedStatisticsFile = *opts.ExpectedStatisticsFile
	}
	return s
}
