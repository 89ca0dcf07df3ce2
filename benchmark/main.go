// Package main measures response times of a running hoopstats dashboard.
// Each endpoint is requested several times; the first successful request is
// reported as cold and the rest are averaged as warm. Results are written to CSV.
//
// Prerequisites:
// - a dashboard started with `hoopstats serve`
//
// Usage: go run benchmark/main.go [base-url]
//
//	base-url: Dashboard address, e.g. http://localhost:8080
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// BenchmarkResult holds the cold time and warm average of one endpoint.
type BenchmarkResult struct {
	Endpoint string
	Group    string
	ColdTime string
	WarmTime string
	Failures int
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	BaseURL   string
	Timeout   time.Duration
	Runs      int
	Endpoints map[string][]string
	Order     []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [base-url]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		BaseURL: strings.TrimSuffix(os.Args[1], "/"),
		Timeout: 30 * time.Second,
		Runs:    10,
		Order:   []string{"pages", "charts", "api"},
		Endpoints: map[string][]string{
			"pages": {
				"/?tab=overview",
				"/?tab=exploration&metric=ADJOE",
				"/?tab=exploration&metric=ADJDE",
				"/?tab=model",
				"/?tab=results",
			},
			"charts": {
				"/charts/scatter.svg",
				"/charts/residuals.svg",
				"/charts/permutation.svg",
				"/charts/coefficients.png",
			},
			"api": {
				"/api/view?tab=exploration",
				"/api/scatter",
				"/api/residuals",
				"/api/permutation",
				"/api/tables",
			},
		},
	}

	client := &http.Client{Timeout: config.Timeout}
	if err := checkPrerequisites(client, config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(client, config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the dashboard answers its health check
func checkPrerequisites(client *http.Client, config BenchmarkConfig) error {
	resp, err := client.Get(config.BaseURL + "/healthz")
	if err != nil {
		return fmt.Errorf("dashboard not reachable at %s: %w", config.BaseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %s", resp.Status)
	}
	return nil
}

// runBenchmarks executes every endpoint of every group
func runBenchmarks(client *http.Client, config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %s, %d runs per endpoint, %v timeout\n", config.BaseURL, config.Runs, config.Timeout)

	for _, group := range config.Order {
		fmt.Printf("Benchmarking %s\n", group)
		for _, endpoint := range config.Endpoints[group] {
			results = append(results, runEndpoint(client, config, group, endpoint))
		}
	}
	return results
}

// runEndpoint requests one endpoint config.Runs times
func runEndpoint(client *http.Client, config BenchmarkConfig, group, endpoint string) BenchmarkResult {
	var times []float64
	failures := 0
	for range config.Runs {
		start := time.Now()
		if err := fetch(client, config.BaseURL+endpoint); err != nil {
			failures++
			continue
		}
		times = append(times, time.Since(start).Seconds()*1000)
	}

	result := BenchmarkResult{Endpoint: endpoint, Group: group, ColdTime: "FAILED", WarmTime: "FAILED", Failures: failures}
	if len(times) > 0 {
		result.ColdTime = fmt.Sprintf("%.2fms", times[0])
	}
	if len(times) > 1 {
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		result.WarmTime = fmt.Sprintf("%.2fms", sum/float64(len(times)-1))
	}
	fmt.Printf("  %-36s cold: %s, warm: %s, failures: %d\n", endpoint, result.ColdTime, result.WarmTime, failures)
	return result
}

// fetch reads a full response body and fails on non-200 status codes
func fetch(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %s", url, resp.Status)
	}
	return nil
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/hoopstats_benchmark_%s.csv", timestamp)

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

	if err := writer.Write([]string{"group", "endpoint", "cold_time", "warm_avg", "failures"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		if err := writer.Write([]string{r.Group, r.Endpoint, r.ColdTime, r.WarmTime, fmt.Sprint(r.Failures)}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results per group
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, group := range config.Order {
		fmt.Printf("%s:\n", strings.ToUpper(group[:1])+group[1:])
		for _, r := range results {
			if r.Group == group {
				fmt.Printf("  %-36s: Cold: %s, Warm: %s\n", r.Endpoint, r.ColdTime, r.WarmTime)
			}
		}
	}
}
