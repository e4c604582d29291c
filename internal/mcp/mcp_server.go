// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/adtools/mediamath/core"
	"github.com/adtools/mediamath/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	familyEnum = mcp.Enum("cpm", "cpv", "ctr", "viewRate")
	modeEnum   = mcp.Enum("explicit", "auto")
	fieldEnum  = mcp.Enum("budget", "impressions", "views", "clicks", "cpm", "cpv", "ctr", "viewRate")
	rateEnum   = mcp.Enum("cpm", "cpv", "ctr", "viewRate")
)

// valueOptions declares one optional number argument per metric field.
func valueOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("budget", mcp.Description("Total spend in currency units.")),
		mcp.WithNumber("impressions", mcp.Description("Number of ad impressions.")),
		mcp.WithNumber("views", mcp.Description("Number of views or clicks, depending on family.")),
		mcp.WithNumber("clicks", mcp.Description("Number of clicks.")),
		mcp.WithNumber("cpm", mcp.Description("Cost per 1,000 impressions.")),
		mcp.WithNumber("cpv", mcp.Description("Cost per view or click.")),
		mcp.WithNumber("ctr", mcp.Description("Click-through rate in percent.")),
		mcp.WithNumber("viewRate", mcp.Description("View or listen-through rate in percent.")),
	}
}

// NewMCPServer initializes and configures the mediamath MCP server without starting it.
// The session tools share one in-memory calculator for the server's lifetime.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Mediamath Calculator Server",
		"1.0.0",
		server.WithLogging(),
	)

	evaluator := core.NewEvaluatorFromConfig(baseCfg)
	h := &toolHandler{
		baseCfg:   baseCfg,
		evaluator: evaluator,
		session:   core.NewSession(evaluator),
	}

	// --- 1. Tool: solve ---
	solveOpts := []mcp.ToolOption{
		mcp.WithDescription("Solve the unknown quantity of a metric family from the other two and benchmark the rate metric."),
		mcp.WithString("family", mcp.Description("Metric family."), mcp.Required(), familyEnum),
		mcp.WithString("target", mcp.Description("Field to solve for in explicit mode. Defaults to the family's rate metric."), fieldEnum),
		mcp.WithString("mode", mcp.Description("explicit (default) or auto, which infers the target from known values."), modeEnum),
		mcp.WithString("industry", mcp.Description("Benchmark industry, e.g. Retail.")),
		mcp.WithString("media", mcp.Description("Benchmark media type, e.g. Display.")),
	}
	s.AddTool(mcp.NewTool("solve", append(solveOpts, valueOptions()...)...), h.handleSolve)

	// --- 2. Tool: evaluate_benchmark ---
	s.AddTool(mcp.NewTool("evaluate_benchmark",
		mcp.WithDescription("Compare a rate metric value against the industry benchmark."),
		mcp.WithString("metric", mcp.Description("Rate metric to evaluate."), mcp.Required(), rateEnum),
		mcp.WithNumber("value", mcp.Description("The metric value."), mcp.Required()),
		mcp.WithString("industry", mcp.Description("Benchmark industry."), mcp.Required()),
		mcp.WithString("media", mcp.Description("Benchmark media type."), mcp.Required()),
	), h.handleEvaluate)

	// --- 3. Tool: list_benchmarks ---
	s.AddTool(mcp.NewTool("list_benchmarks",
		mcp.WithDescription("List benchmark reference values, optionally filtered. Zero means no benchmark."),
		mcp.WithString("industry", mcp.Description("Only this industry.")),
		mcp.WithString("media", mcp.Description("Only this media type.")),
	), h.handleListBenchmarks)

	// --- 4. Tool: session_set ---
	sessionOpts := []mcp.ToolOption{
		mcp.WithDescription("Update the shared calculator session. Every change recomputes the result and benchmark."),
		mcp.WithString("family", mcp.Description("Switch family; resets the target to its rate metric."), familyEnum),
		mcp.WithString("target", mcp.Description("Field to solve for in explicit mode."), fieldEnum),
		mcp.WithString("mode", mcp.Description("explicit or auto."), modeEnum),
		mcp.WithString("industry", mcp.Description("Benchmark industry. Use \"none\" to clear.")),
		mcp.WithString("media", mcp.Description("Benchmark media type. Use \"none\" to clear.")),
		mcp.WithString("clear", mcp.Description("Comma-separated fields to unset.")),
	}
	s.AddTool(mcp.NewTool("session_set", append(sessionOpts, valueOptions()...)...), h.handleSessionSet)

	// --- 5. Tool: session_state ---
	s.AddTool(mcp.NewTool("session_state",
		mcp.WithDescription("Return the shared calculator session."),
	), h.handleSessionState)

	// --- 6. Tool: session_reset ---
	s.AddTool(mcp.NewTool("session_reset",
		mcp.WithDescription("Clear all values in the shared calculator session."),
	), h.handleSessionReset)

	return s
}

// StartMCPServer starts the mediamath MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
