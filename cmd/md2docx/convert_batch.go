package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	md2docx "github.com/alnah/go-md2docx"
)

// fileConverter converts one markdown file to a .docx file.
type fileConverter interface {
	ConvertFile(ctx context.Context, inputPath, outputPath string, settings md2docx.Input) (*md2docx.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ fileConverter = (*md2docx.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently with up to workers goroutines.
// The converter is shared: it holds no per-conversion state.
// Results are returned in the order of files.
func convertBatch(ctx context.Context, conv fileConverter, files []FileToConvert, settings md2docx.Input, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], settings)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv fileConverter, f FileToConvert, settings md2docx.Input) ConversionResult {
	start := time.Now()
	_, err := conv.ConvertFile(ctx, f.InputPath, f.OutputPath, settings)
	return ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
		Err:        err,
		Duration:   time.Since(start),
	}
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstFailure returns the error of the first failed result, or nil.
func firstFailure(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Returns the number of failed conversions.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %s\n", r.InputPath, formatError(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "Converted %s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Converted %s -> %s\n", r.InputPath, r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
