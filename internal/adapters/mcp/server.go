// Package mcp exposes the launch pipeline as Model Context Protocol tools.
package mcp

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/vividus-framework/vividus-cli/internal/adapters/jvm"
	"github.com/vividus-framework/vividus-cli/internal/app"
	"github.com/vividus-framework/vividus-cli/internal/build"
	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
)

// Operations is the application surface the MCP tools drive. Handlers run
// one at a time over stdio, so redirecting the output streams per call is
// safe.
type Operations interface {
	SetOutput(stdout, stderr io.Writer)
	RunStories(ctx context.Context, opts app.RunOptions) (domain.Verdict, error)
	PrintSteps(ctx context.Context, opts app.PrintStepsOptions) error
	CountScenarios(ctx context.Context, opts app.CountScenariosOptions) error
	CountSteps(ctx context.Context, opts app.CountStepsOptions) error
	ValidateKnownIssues(ctx context.Context, args []string) error
}

// Server wraps the application and exposes it via Model Context Protocol.
type Server struct {
	ops    Operations
	logger ports.Logger
	server *server.MCPServer
}

// NewServer creates a new MCP server over the application operations.
func NewServer(ops Operations, logger ports.Logger) *Server {
	s := &Server{
		ops:    ops,
		logger: logger,
	}

	s.server = server.NewMCPServer(
		"vividus-cli",
		build.Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	return s
}

// registerTools registers all MCP tools for the runner operations
func (s *Server) registerTools() {
	runTool := mcp.NewTool("vividus_run_stories",
		mcp.WithDescription("Run the project's stories and report the verdict"),
		mcp.WithBoolean("treat_known_issues_only_as_passed",
			mcp.Description("Accept exit code 1 (failures caused by known issues only) as passed"),
		),
	)
	s.server.AddTool(runTool, s.handleRunStories)

	printStepsTool := mcp.NewTool("vividus_print_steps",
		mcp.WithDescription("Print every step available to the project"),
	)
	s.server.AddTool(printStepsTool, s.handlePrintSteps)

	countScenariosTool := mcp.NewTool("vividus_count_scenarios",
		mcp.WithDescription("Count the scenarios in the project's stories"),
		mcp.WithString("dir",
			mcp.Description("Story directory to count, relative to the project"),
		),
	)
	s.server.AddTool(countScenariosTool, s.handleCountScenarios)

	countStepsTool := mcp.NewTool("vividus_count_steps",
		mcp.WithDescription("Report step usage across the project's stories"),
		mcp.WithString("dir",
			mcp.Description("Story directory to scan, relative to the project"),
		),
		mcp.WithNumber("top",
			mcp.Description("Limit the report to the N most used steps"),
		),
	)
	s.server.AddTool(countStepsTool, s.handleCountSteps)

	validateKnownIssuesTool := mcp.NewTool("vividus_validate_known_issues",
		mcp.WithDescription("Validate the project's known issue definitions"),
	)
	s.server.AddTool(validateKnownIssuesTool, s.handleValidateKnownIssues)
}

// handleRunStories handles vividus_run_stories tool calls. Runner output is
// routed through the logger; the result carries the verdict only.
func (s *Server) handleRunStories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := app.RunOptions{}
	if _, ok := request.GetArguments()["treat_known_issues_only_as_passed"]; ok {
		lenient := request.GetBool("treat_known_issues_only_as_passed", false)
		opts.TreatKnownIssuesOnlyAsPassed = &lenient
	}

	done := s.routeOutputToLogs()
	defer done()

	verdict, err := s.ops.RunStories(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("run failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"stories passed (%s, exit code %d)", verdict.Reason, verdict.ExitCode,
	)), nil
}

// handlePrintSteps handles vividus_print_steps tool calls
func (s *Server) handlePrintSteps(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, done := s.captureOutput()
	defer done()

	if err := s.ops.PrintSteps(ctx, app.PrintStepsOptions{}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to print steps: %v", err)), nil
	}

	return mcp.NewToolResultText(out.String()), nil
}

// handleCountScenarios handles vividus_count_scenarios tool calls
func (s *Server) handleCountScenarios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, done := s.captureOutput()
	defer done()

	opts := app.CountScenariosOptions{Dir: request.GetString("dir", "")}
	if err := s.ops.CountScenarios(ctx, opts); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to count scenarios: %v", err)), nil
	}

	return mcp.NewToolResultText(out.String()), nil
}

// handleCountSteps handles vividus_count_steps tool calls
func (s *Server) handleCountSteps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, done := s.captureOutput()
	defer done()

	opts := app.CountStepsOptions{
		Dir: request.GetString("dir", ""),
		Top: request.GetInt("top", 0),
	}
	if err := s.ops.CountSteps(ctx, opts); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to count steps: %v", err)), nil
	}

	return mcp.NewToolResultText(out.String()), nil
}

// handleValidateKnownIssues handles vividus_validate_known_issues tool calls
func (s *Server) handleValidateKnownIssues(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, done := s.captureOutput()
	defer done()

	if err := s.ops.ValidateKnownIssues(ctx, nil); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("known issue validation failed: %v", err)), nil
	}

	text := out.String()
	if text == "" {
		text = "known issue definitions are valid"
	}
	return mcp.NewToolResultText(text), nil
}

// captureOutput buffers runner stdout for the duration of one tool call so
// it can be returned as the result. Stderr still flows through the logger.
func (s *Server) captureOutput() (*bytes.Buffer, func()) {
	buf := &bytes.Buffer{}
	errLog := jvm.NewLogWriter(s.logger, "error")
	s.ops.SetOutput(buf, errLog)
	return buf, func() {
		_ = errLog.Close()
	}
}

// routeOutputToLogs sends both runner streams through the logger, keeping
// stdout clean for the protocol.
func (s *Server) routeOutputToLogs() func() {
	outLog := jvm.NewLogWriter(s.logger, "info")
	errLog := jvm.NewLogWriter(s.logger, "error")
	s.ops.SetOutput(outLog, errLog)
	return func() {
		_ = outLog.Close()
		_ = errLog.Close()
	}
}

// Serve starts the MCP server using stdio transport. It blocks until the
// client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.server)
}
