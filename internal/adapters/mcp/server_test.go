package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vividus-framework/vividus-cli/internal/app"
	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"github.com/vividus-framework/vividus-cli/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeOps records what the tool handlers ask of the application and writes
// canned output to whatever stream the server routed it to.
type fakeOps struct {
	stdout io.Writer
	stderr io.Writer

	runOpts    *app.RunOptions
	runVerdict domain.Verdict
	runErr     error

	printOutput string
	toolErr     error

	countScenariosOpts *app.CountScenariosOptions
	countStepsOpts     *app.CountStepsOptions
}

func (f *fakeOps) SetOutput(stdout, stderr io.Writer) {
	f.stdout = stdout
	f.stderr = stderr
}

func (f *fakeOps) RunStories(_ context.Context, opts app.RunOptions) (domain.Verdict, error) {
	f.runOpts = &opts
	return f.runVerdict, f.runErr
}

func (f *fakeOps) PrintSteps(_ context.Context, _ app.PrintStepsOptions) error {
	if f.toolErr != nil {
		return f.toolErr
	}
	fmt.Fprint(f.stdout, f.printOutput)
	return nil
}

func (f *fakeOps) CountScenarios(_ context.Context, opts app.CountScenariosOptions) error {
	f.countScenariosOpts = &opts
	if f.toolErr != nil {
		return f.toolErr
	}
	fmt.Fprint(f.stdout, f.printOutput)
	return nil
}

func (f *fakeOps) CountSteps(_ context.Context, opts app.CountStepsOptions) error {
	f.countStepsOpts = &opts
	if f.toolErr != nil {
		return f.toolErr
	}
	fmt.Fprint(f.stdout, f.printOutput)
	return nil
}

func (f *fakeOps) ValidateKnownIssues(_ context.Context, _ []string) error {
	return f.toolErr
}

func newTestServer(t *testing.T, ops *fakeOps) *Server {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return NewServer(ops, log)
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestServer_HandleRunStories(t *testing.T) {
	t.Run("forwards the leniency override", func(t *testing.T) {
		ops := &fakeOps{runVerdict: domain.Verdict{OK: true, Reason: domain.ReasonKnownIssuesOnly, ExitCode: 1}}
		s := newTestServer(t, ops)

		res, err := s.handleRunStories(context.Background(), toolRequest(map[string]any{
			"treat_known_issues_only_as_passed": true,
		}))

		require.NoError(t, err)
		assert.False(t, res.IsError)
		require.NotNil(t, ops.runOpts)
		require.NotNil(t, ops.runOpts.TreatKnownIssuesOnlyAsPassed)
		assert.True(t, *ops.runOpts.TreatKnownIssuesOnlyAsPassed)

		text := resultText(t, res)
		assert.Contains(t, text, "known issues only")
		assert.Contains(t, text, "exit code 1")
	})

	t.Run("leaves the setting alone when the argument is absent", func(t *testing.T) {
		ops := &fakeOps{runVerdict: domain.Verdict{OK: true, Reason: domain.ReasonClean}}
		s := newTestServer(t, ops)

		res, err := s.handleRunStories(context.Background(), toolRequest(nil))

		require.NoError(t, err)
		assert.False(t, res.IsError)
		require.NotNil(t, ops.runOpts)
		assert.Nil(t, ops.runOpts.TreatKnownIssuesOnlyAsPassed)
	})

	t.Run("abnormal exit becomes a tool error", func(t *testing.T) {
		ops := &fakeOps{runErr: errors.Join(domain.ErrAbnormalExit, errors.New("exit code 2"))}
		s := newTestServer(t, ops)

		res, err := s.handleRunStories(context.Background(), toolRequest(nil))

		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "run failed")
	})

	t.Run("routes runner output away from stdout", func(t *testing.T) {
		ops := &fakeOps{runVerdict: domain.Verdict{OK: true, Reason: domain.ReasonClean}}
		s := newTestServer(t, ops)

		_, err := s.handleRunStories(context.Background(), toolRequest(nil))

		require.NoError(t, err)
		require.NotNil(t, ops.stdout)
		_, isLogWriter := ops.stdout.(io.Closer)
		assert.True(t, isLogWriter, "runner stdout should be bridged into the logger")
	})
}

func TestServer_HandlePrintSteps(t *testing.T) {
	t.Run("returns the captured printer output", func(t *testing.T) {
		ops := &fakeOps{printOutput: "Given I open the application\nWhen I click\n"}
		s := newTestServer(t, ops)

		res, err := s.handlePrintSteps(context.Background(), toolRequest(nil))

		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Equal(t, ops.printOutput, resultText(t, res))
	})

	t.Run("failures become tool errors", func(t *testing.T) {
		ops := &fakeOps{toolErr: errors.New("no classpath")}
		s := newTestServer(t, ops)

		res, err := s.handlePrintSteps(context.Background(), toolRequest(nil))

		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "failed to print steps")
	})
}

func TestServer_HandleCountScenarios(t *testing.T) {
	ops := &fakeOps{printOutput: "Scenarios: 42\n"}
	s := newTestServer(t, ops)

	res, err := s.handleCountScenarios(context.Background(), toolRequest(map[string]any{
		"dir": "story/web",
	}))

	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.NotNil(t, ops.countScenariosOpts)
	assert.Equal(t, "story/web", ops.countScenariosOpts.Dir)
	assert.Equal(t, "Scenarios: 42\n", resultText(t, res))
}

func TestServer_HandleCountSteps(t *testing.T) {
	ops := &fakeOps{printOutput: "42 total\n"}
	s := newTestServer(t, ops)

	// JSON numbers arrive as float64.
	res, err := s.handleCountSteps(context.Background(), toolRequest(map[string]any{
		"dir": "story",
		"top": float64(5),
	}))

	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.NotNil(t, ops.countStepsOpts)
	assert.Equal(t, "story", ops.countStepsOpts.Dir)
	assert.Equal(t, 5, ops.countStepsOpts.Top)
}

func TestServer_HandleValidateKnownIssues(t *testing.T) {
	t.Run("reports valid definitions", func(t *testing.T) {
		ops := &fakeOps{}
		s := newTestServer(t, ops)

		res, err := s.handleValidateKnownIssues(context.Background(), toolRequest(nil))

		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Contains(t, resultText(t, res), "valid")
	})

	t.Run("validation failure becomes a tool error", func(t *testing.T) {
		ops := &fakeOps{toolErr: errors.New("malformed known issue")}
		s := newTestServer(t, ops)

		res, err := s.handleValidateKnownIssues(context.Background(), toolRequest(nil))

		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "known issue validation failed")
	})
}
