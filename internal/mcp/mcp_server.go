// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gantt/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Gantt MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Gantt Chart Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: render_gantt ---
	s.AddTool(mcp.NewTool("render_gantt",
		mcp.WithDescription("Render a task CSV (Task, Start, End, optional Owner columns) as a Gantt chart PNG."),
		mcp.WithString("input_path", mcp.Description("Path to the task CSV (defaults to the configured input, tasks.csv).")),
		mcp.WithString("output_path", mcp.Description("Path of the PNG to write (defaults to the configured output image, gantt.png).")),
	), h.handleRenderGantt)

	// --- 2. Tool: list_tasks ---
	s.AddTool(mcp.NewTool("list_tasks",
		mcp.WithDescription("Load a task CSV and list its tasks in chart order (by start date, then end date)."),
		mcp.WithString("input_path", mcp.Description("Path to the task CSV (defaults to the configured input, tasks.csv).")),
	), h.handleListTasks)

	return s
}

// StartMCPServer starts the Gantt MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
