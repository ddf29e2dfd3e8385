// Package main provides a performance benchmarking tool for the Trendscope CLI.
// It measures execution times across synthetic datasets of different sizes and
// command types, running each test multiple times, treating the first
// successful run as cold and averaging the rest as warm, generating CSV output
// for performance analysis and documentation.
//
// Prerequisites:
// - trendscope binary installed and available in PATH
//
// Usage: go run benchmark/main.go [dataset-base-dir]
//
//	dataset-base-dir: Directory where synthetic datasets are generated
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-tracking average, cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset        string
	Command        string
	NoTrackingTime string
	ColdTime       string
	WarmTime       string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	DatasetBase    string
	Timeout        time.Duration
	Workers        int
	NoTrackingRuns int
	TrackingRuns   int
	DatasetSizes   map[string]int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [dataset-base-dir]\n", os.Args[0])
		os.Exit(1)
	}
	datasetBase := os.Args[1]

	config := BenchmarkConfig{
		DatasetBase:    datasetBase,
		Timeout:        5 * time.Minute,
		Workers:        14,
		NoTrackingRuns: 3,
		TrackingRuns:   4,
		DatasetSizes: map[string]int{
			"small":  100,
			"medium": 2000,
			"large":  20000,
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear any persisted run data using trendscope runs clear
	fmt.Printf("Clearing run data...\n")
	clearCmd := exec.Command("trendscope", "runs", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear run data: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Run data cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies the trendscope binary exists and generates the
// synthetic datasets when missing.
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if trendscope is available
	if _, err := exec.LookPath("trendscope"); err != nil {
		return fmt.Errorf("trendscope binary not found in PATH")
	}

	// Generate datasets that don't exist yet
	for name, accounts := range config.DatasetSizes {
		datasetPath := filepath.Join(config.DatasetBase, name)
		if _, err := os.Stat(filepath.Join(datasetPath, "accounts.csv")); os.IsNotExist(err) {
			fmt.Printf("Generating %s dataset (%d accounts)\n", name, accounts)
			if err := generateDataset(datasetPath, accounts); err != nil {
				return fmt.Errorf("failed to generate dataset %s: %w", name, err)
			}
		}
	}

	return nil
}

// generateDataset writes a synthetic accounts.csv and metrics.csv with 24
// monthly points per account and per metric.
func generateDataset(dir string, accounts int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(42)) // Deterministic datasets across runs

	accountsFile, err := os.Create(filepath.Join(dir, "accounts.csv"))
	if err != nil {
		return err
	}
	defer func() { _ = accountsFile.Close() }()

	metricsFile, err := os.Create(filepath.Join(dir, "metrics.csv"))
	if err != nil {
		return err
	}
	defer func() { _ = metricsFile.Close() }()

	accountsWriter := csv.NewWriter(accountsFile)
	metricsWriter := csv.NewWriter(metricsFile)
	defer accountsWriter.Flush()
	defer metricsWriter.Flush()

	if err := accountsWriter.Write([]string{"account_id", "name", "current_arr"}); err != nil {
		return err
	}
	if err := metricsWriter.Write([]string{"account_id", "metric", "date", "value"}); err != nil {
		return err
	}

	firstMonth := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range accounts {
		id := fmt.Sprintf("acct-%06d", i)
		name := fmt.Sprintf("Account %d", i)
		arr := 10000 + rng.Float64()*490000
		health := 40 + rng.Float64()*50

		// Monthly growth between -3% and +5%
		growth := 0.97 + rng.Float64()*0.08

		for m := range 24 {
			date := firstMonth.AddDate(0, m, 0).Format("2006-01-02")
			if err := metricsWriter.Write([]string{id, "arr", date, strconv.FormatFloat(arr, 'f', 2, 64)}); err != nil {
				return err
			}
			if err := metricsWriter.Write([]string{id, "health", date, strconv.FormatFloat(health, 'f', 1, 64)}); err != nil {
				return err
			}
			arr *= growth
			health += rng.Float64()*2 - 1
		}

		if err := accountsWriter.Write([]string{id, name, strconv.FormatFloat(arr, 'f', 2, 64)}); err != nil {
			return err
		}
	}

	accountsWriter.Flush()
	metricsWriter.Flush()
	if err := accountsWriter.Error(); err != nil {
		return err
	}
	return metricsWriter.Error()
}

// runBenchmarks executes all benchmark tests across configured datasets
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d workers, no-tracking: %d runs, tracking: %d runs\n",
		len(config.DatasetSizes), config.Timeout, config.Workers, config.NoTrackingRuns, config.TrackingRuns)

	for _, name := range []string{"small", "medium", "large"} {
		fmt.Printf("Benchmarking %s\n", name)

		datasetPath := filepath.Join(config.DatasetBase, name)

		for _, command := range []string{"segments", "portfolio", "report"} {
			result := runBenchmarkSuite(config, name, datasetPath, command)
			results = append(results, result)
		}
	}

	return results
}

// runBenchmarkSuite runs both no-tracking and tracking benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, dataset, datasetPath, command string) BenchmarkResult {
	fmt.Printf("Running %s analysis on %s\n", command, dataset)

	// Helper to run a benchmark phase
	runPhase := func(runBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, datasetPath, command, runBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No run tracking
	_, noTrackingAvg := runPhase("none", config.NoTrackingRuns, "No-tracking")

	// Phase 2: SQLite run tracking
	coldTime, warmAvg := runPhase("sqlite", config.TrackingRuns, "Tracking")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-tracking average: %s, Cold time: %s, Warm average: %s\n", noTrackingAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:        dataset,
		Command:        command,
		NoTrackingTime: noTrackingAvg,
		ColdTime:       coldTimeStr,
		WarmTime:       warmAvg,
	}
}

// runBenchmark executes a trendscope command multiple times with the specified
// run backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, datasetPath, command, runBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{
		command, datasetPath,
		"--run-backend", runBackend,
		"--workers", strconv.Itoa(config.Workers),
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("trendscope", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Analysis completed in") &&
		strings.Contains(outputStr, "workers")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/trendscope_benchmark_%s.csv", timestamp)

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

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "no_tracking_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoTrackingTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "segments", "Segments Analysis:")
	printCommandSummary(results, "portfolio", "Portfolio Analysis:")
	printCommandSummary(results, "report", "Full Report:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-tracking: %s, Cold: %s, Warm: %s\n", result.Dataset, result.NoTrackingTime, result.ColdTime, result.WarmTime)
		}
	}
}
