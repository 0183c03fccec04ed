// Package core has core logic for loading, ordering and charting tasks.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/gantt/internal/contract"
	"github.com/huangsam/gantt/internal/outwriter"
	"github.com/huangsam/gantt/internal/plotwriter"
	"github.com/huangsam/gantt/schema"
)

// Render runs the full pipeline for one chart: load, validate, sort, build and save.
// On failure no image is written and any existing file at outputPath is left untouched.
func Render(ctx context.Context, inputPath, outputPath string) (schema.Chart, error) {
	tasks, err := LoadTasks(inputPath)
	if err != nil {
		return schema.Chart{}, err
	}
	if err := ctx.Err(); err != nil {
		return schema.Chart{}, err
	}

	chart := BuildChart(SortTasks(tasks))
	if err := ctx.Err(); err != nil {
		return schema.Chart{}, err
	}

	if err := plotwriter.WritePNG(chart, outputPath); err != nil {
		return schema.Chart{}, &IOError{Op: "write", Path: outputPath, Err: err}
	}
	return chart, nil
}

// RenderWithHistory runs Render and records the outcome in render history.
// History problems are reported but never fail the render.
func RenderWithHistory(ctx context.Context, inputPath, outputPath string, mgr contract.HistoryManager) (schema.Chart, error) {
	run := schema.RenderRun{
		InputPath:  inputPath,
		OutputPath: outputPath,
		StartTime:  time.Now(),
	}

	chart, err := Render(ctx, inputPath, outputPath)
	run.EndTime = time.Now()
	run.TaskCount = chart.BarCount()
	run.OwnerLabeled = chart.OwnerLabeled()
	run.Err = err
	recordRun(mgr, run)

	return chart, err
}

// ExecuteRender renders the configured input to the configured image and prints a confirmation.
// It serves as the main entry point for the root and 'render' commands.
func ExecuteRender(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	if _, err := RenderWithHistory(ctx, cfg.InputPath, cfg.OutputImage, mgr); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", cfg.OutputImage)
	return nil
}

// ExecuteTasks loads and sorts the configured input and prints the tasks in render order.
// It serves as the main entry point for the 'tasks' command.
func ExecuteTasks(_ context.Context, cfg *contract.Config) error {
	tasks, err := LoadTasks(cfg.InputPath)
	if err != nil {
		return err
	}
	return outwriter.WriteTasks(SortTasks(tasks), cfg)
}

// recordRun stores the run in render history when a store is configured.
func recordRun(mgr contract.HistoryManager, run schema.RenderRun) {
	if mgr == nil {
		return
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}
	if _, err := store.RecordRun(run); err != nil {
		contract.LogWarn("Cannot record render history", err)
	}
}
