package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vividus-framework/vividus-cli/internal/app"
	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"github.com/vividus-framework/vividus-cli/internal/core/ports/mocks"
	"github.com/vividus-framework/vividus-cli/internal/engine/launch"
	"go.uber.org/mock/gomock"
)

type testComponents struct {
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockClasspathResolver
	store    *mocks.MockClasspathStore
	runner   *mocks.MockRunner
	logger   *mocks.MockLogger
}

func newTestComponents(t *testing.T) (*app.Components, *testComponents) {
	t.Helper()
	ctrl := gomock.NewController(t)

	tc := &testComponents{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockClasspathResolver(ctrl),
		store:    mocks.NewMockClasspathStore(ctrl),
		runner:   mocks.NewMockRunner(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	tc.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	tc.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	application := app.New(tc.loader, tc.resolver, tc.store, launch.NewLauncher(tc.runner, tc.logger), tc.logger)
	application.SetOutput(io.Discard, io.Discard)

	return &app.Components{App: application, Logger: tc.logger}, tc
}

func staticProvider(components *app.Components) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _ := newTestComponents(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, staticProvider(components))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	components, tc := newTestComponents(t)

	tc.loader.EXPECT().LoadManifest(".").Return(domain.Manifest{}, errors.New("load failed"))
	tc.logger.EXPECT().Error(gomock.Any())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run"}, stderr, staticProvider(components))

	assert.Equal(t, 1, exitCode)
}

// TestRun_AbnormalExit verifies the quiet failure path: the runner's exit
// code already reached the user, so nothing is logged.
func TestRun_AbnormalExit(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	components, tc := newTestComponents(t)

	projectDir := t.TempDir()
	manifest := domain.Manifest{
		Dir:     projectDir,
		Project: "demo",
		Group:   domain.DefaultGroup,
		Dependencies: []domain.Dependency{
			{Group: domain.DefaultGroup, Name: domain.BomDependencyName, Version: "0.6.7"},
			{Group: domain.DefaultGroup, Name: domain.MandatoryDependencyName},
		},
	}
	settings := domain.Settings{RepositoryDir: filepath.Join(projectDir, "repo")}

	tc.loader.EXPECT().LoadManifest(projectDir).Return(manifest, nil)
	tc.loader.EXPECT().LoadSettings(projectDir).Return(settings, nil)
	tc.resolver.EXPECT().CacheKey(settings.RepositoryDir, manifest, "0.6.7").Return("cachekey")
	tc.store.EXPECT().Get(projectDir, "cachekey").Return(nil, nil)
	tc.resolver.EXPECT().Resolve(settings.RepositoryDir, manifest, "0.6.7").Return([]string{filepath.Join(projectDir, "vividus.jar")}, nil)
	tc.store.EXPECT().Put(projectDir, "cachekey", gomock.Any()).Return(nil)
	tc.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ProcessResult{ExitCode: 2}, nil)

	// No Error expectation on the logger: a logged error fails the test.
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run", "-p", projectDir}, stderr, staticProvider(components))

	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	components, tc := newTestComponents(t)

	blockCh := make(chan struct{})
	tc.loader.EXPECT().LoadManifest(gomock.Any()).DoAndReturn(func(string) (domain.Manifest, error) {
		select {
		case <-blockCh:
			return domain.Manifest{}, context.Canceled
		case <-time.After(5 * time.Second):
			return domain.Manifest{}, errors.New("timeout in mock")
		}
	})
	tc.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	retCh := make(chan int)

	go func() {
		retCh <- run(ctx, []string{"run"}, io.Discard, staticProvider(components))
	}()

	// Wait a bit to ensure run() reaches LoadManifest()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-retCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
