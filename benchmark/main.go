// Package main measures how long the gantt CLI takes to render charts of increasing size.
// It generates synthetic task files, renders each one several times with render history
// disabled and with SQLite history enabled, and writes a CSV summary for documentation.
//
// Prerequisites:
// - gantt binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated task files, charts and the history database
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the average render time for one task count and history backend.
type BenchmarkResult struct {
	Tasks       int
	NoHistory   string
	WithHistory string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir    string
	Timeout    time.Duration
	Runs       int
	TaskCounts []int
	Seed       uint64
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:    os.Args[1],
		Timeout:    2 * time.Minute,
		Runs:       5,
		TaskCounts: []int{10, 100, 500, 2000},
		Seed:       42,
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the gantt binary exists and the work dir is usable
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("gantt"); err != nil {
		return fmt.Errorf("gantt binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// runBenchmarks renders every generated file with and without history
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult
	rng := rand.New(rand.NewPCG(config.Seed, config.Seed))
	dbPath := filepath.Join(config.WorkDir, "bench_history.db")

	fmt.Printf("Starting benchmark: %d sizes, %v timeout, %d runs each\n",
		len(config.TaskCounts), config.Timeout, config.Runs)

	for _, n := range config.TaskCounts {
		inputPath := filepath.Join(config.WorkDir, fmt.Sprintf("tasks_%d.csv", n))
		if err := writeTasks(inputPath, n, rng); err != nil {
			return nil, err
		}
		outputPath := filepath.Join(config.WorkDir, fmt.Sprintf("gantt_%d.png", n))
		fmt.Printf("Benchmarking %d tasks\n", n)

		noHistory := averageTime(runBenchmark(config, inputPath, outputPath, "none", ""))
		withHistory := averageTime(runBenchmark(config, inputPath, outputPath, "sqlite", dbPath))
		fmt.Printf("  No history: %s, SQLite history: %s\n", noHistory, withHistory)

		results = append(results, BenchmarkResult{Tasks: n, NoHistory: noHistory, WithHistory: withHistory})
	}

	return results, nil
}

// writeTasks generates n tasks spread over one year, about a third of them with owners
func writeTasks(path string, n int, rng *rand.Rand) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Task", "Start", "End", "Owner"}); err != nil {
		return err
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	owners := []string{"Alice", "Bob", "Carol", "", "", "", "", "", ""}
	for i := range n {
		start := base.AddDate(0, 0, rng.IntN(365))
		end := start.AddDate(0, 0, rng.IntN(30))
		record := []string{
			"Task " + strconv.Itoa(i+1),
			start.Format("2006-01-02"),
			end.Format("2006-01-02"),
			owners[rng.IntN(len(owners))],
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// runBenchmark renders the file config.Runs times and returns the successful durations
func runBenchmark(config BenchmarkConfig, inputPath, outputPath, backend, connStr string) []float64 {
	args := []string{"render", inputPath, outputPath, "--history-backend", backend}
	if connStr != "" {
		args = append(args, "--history-db-connect", connStr)
	}

	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("gantt", args...)
		cmd.Dir = config.WorkDir

		done := make(chan bool, 1)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && strings.Contains(string(output), "Saved ") {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	return times
}

// averageTime formats the mean of times, or TIMEOUT when no run succeeded
func averageTime(times []float64) string {
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("gantt_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"tasks", "no_history_avg", "sqlite_history_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{strconv.Itoa(result.Tasks), result.NoHistory, result.WithHistory}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %6d tasks: No history: %s, SQLite history: %s\n", result.Tasks, result.NoHistory, result.WithHistory)
	}
}
