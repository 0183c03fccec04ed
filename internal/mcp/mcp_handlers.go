package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/gantt/core"
	"github.com/huangsam/gantt/internal/contract"
	"github.com/huangsam/gantt/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

// renderResult is the payload returned by render_gantt.
type renderResult struct {
	OutputPath   string   `json:"output_path"`
	TaskCount    int      `json:"task_count"`
	OwnerLabeled bool     `json:"owner_labeled"`
	TickLabels   []string `json:"tick_labels"`
}

func (h *toolHandler) handleRenderGantt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("input_path", ""); p != "" {
		cfg.InputPath = p
	}
	if p := request.GetString("output_path", ""); p != "" {
		cfg.OutputImage = p
	}

	chart, err := core.RenderWithHistory(ctx, cfg.InputPath, cfg.OutputImage, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(renderResult{
		OutputPath:   cfg.OutputImage,
		TaskCount:    chart.BarCount(),
		OwnerLabeled: chart.OwnerLabeled(),
		TickLabels:   chart.TickLabels(),
	}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListTasks(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath := h.baseCfg.InputPath
	if p := request.GetString("input_path", ""); p != "" {
		inputPath = p
	}

	tasks, err := core.LoadTasks(inputPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading tasks failed: %v", err)), nil
	}

	enriched := schema.EnrichTasks(core.SortTasks(tasks))
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
