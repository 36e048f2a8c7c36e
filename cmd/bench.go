package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"go-fundamentals/internal/basics"
	"go-fundamentals/internal/memory"
)

func newBenchCmd() *cobra.Command {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark acquire, fill and release cycles against a memory source",
		Long: `Runs --workers goroutines for --duration. Each iteration acquires --count ints
from the selected source, fills them with squares and releases them.
Measures and reports throughput and latency metrics.`,
		Args: cobra.NoArgs,
		RunE: runBench,
	}

	benchCmd.Flags().StringP("source", "s", "heap", "Dynamic-memory source (heap, mmap, cgo)")
	benchCmd.Flags().IntP("count", "n", basics.SquaresCount, "Number of ints per allocation")
	benchCmd.Flags().IntP("workers", "w", runtime.NumCPU(), "Number of concurrent workers")
	benchCmd.Flags().DurationP("duration", "t", 5*time.Second, "Duration to run the benchmark")
	benchCmd.Flags().Bool("json", false, "Print results as JSON")
	return benchCmd
}

type BenchmarkResults struct {
	Source       string        `json:"source"`
	TotalOps     int           `json:"totalOps"`
	Failures     int           `json:"failures"`
	ElapsedTime  time.Duration `json:"elapsedTime"`
	OpsPerSecond float64       `json:"opsPerSecond"`
	LatencyNs    float64       `json:"latencyNs"`
}

func runBench(cmd *cobra.Command, args []string) error {
	count, err := getCount(cmd.Flags())
	if err != nil {
		return err
	}

	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return fmt.Errorf("failed to get workers: %w", err)
	}
	if workers <= 0 {
		return fmt.Errorf("--workers must be positive, got %d", workers)
	}

	duration, err := cmd.Flags().GetDuration("duration")
	if err != nil {
		return fmt.Errorf("failed to get duration: %w", err)
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json: %w", err)
	}

	src, closeSource, err := createSource(cmd)
	if err != nil {
		return err
	}
	defer closeSource()

	out := cmd.OutOrStdout()
	if !asJSON {
		fmt.Fprintf(out, "Starting allocation benchmark...\n")
		fmt.Fprintf(out, "Source: %s\n", src.Name())
		fmt.Fprintf(out, "Ints per allocation: %d\n", count)
		fmt.Fprintf(out, "Duration: %v\n", duration)
		fmt.Fprintf(out, "Workers: %d\n", workers)
		fmt.Fprintln(out)
	}

	results, err := executeBenchmark(cmd.Context(), src, count, workers, duration)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	printResults(out, results)
	return nil
}

func executeBenchmark(ctx context.Context, src memory.Source, count, workers int, duration time.Duration) (*BenchmarkResults, error) {
	startTime := time.Now()

	// Shared counters for all workers
	var totalOps, totalLatency, failures atomic.Int64

	benchCtx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			workerBenchmark(benchCtx, src, count, &totalOps, &totalLatency, &failures)
		}()
	}
	wg.Wait()

	actualElapsed := time.Since(startTime)
	finalOps := totalOps.Load()

	if finalOps == 0 {
		return nil, fmt.Errorf("no operations completed (%d allocation failures)", failures.Load())
	}

	return &BenchmarkResults{
		Source:       src.Name(),
		TotalOps:     int(finalOps),
		Failures:     int(failures.Load()),
		ElapsedTime:  actualElapsed,
		OpsPerSecond: float64(finalOps) / actualElapsed.Seconds(),
		LatencyNs:    float64(totalLatency.Load()) / float64(finalOps),
	}, nil
}

func workerBenchmark(ctx context.Context, src memory.Source, count int, totalOps, totalLatency, failures *atomic.Int64) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		opStart := time.Now()

		buf, err := src.Alloc(count)
		if err != nil {
			// Count it and keep going
			failures.Add(1)
			continue
		}
		basics.FillSquares(buf)
		err = buf.Close()

		opLatency := time.Since(opStart)
		if err != nil {
			failures.Add(1)
			continue
		}

		totalOps.Add(1)
		totalLatency.Add(opLatency.Nanoseconds())
	}
}

func printResults(w io.Writer, results *BenchmarkResults) {
	fmt.Fprintf(w, "=== Benchmark Results ===\n")
	fmt.Fprintf(w, "Source: %s\n", results.Source)
	fmt.Fprintf(w, "Total ops: %d\n", results.TotalOps)
	fmt.Fprintf(w, "Failures: %d\n", results.Failures)
	fmt.Fprintf(w, "Total elapsed time: %v\n", results.ElapsedTime.Round(time.Millisecond))
	fmt.Fprintf(w, "Ops/sec: %.2f\n", results.OpsPerSecond)
	fmt.Fprintf(w, "Latency (mean): %.2f ns\n", results.LatencyNs)
	fmt.Fprintf(w, "========================\n")

	fmt.Fprintf(w, "\n=== Markdown Table ===\n")
	fmt.Fprintf(w, "| Source | Total Ops | Duration (ms) | Ops/sec | Latency (ns) |\n")
	fmt.Fprintf(w, "|--------|-----------|---------------|---------|--------------|\n")
	fmt.Fprintf(w, "| %s | %d | %d | %.2f | %.2f |\n",
		results.Source,
		results.TotalOps,
		results.ElapsedTime.Milliseconds(),
		results.OpsPerSecond,
		results.LatencyNs)
	fmt.Fprintf(w, "======================\n")
}
