package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	autoanchors "github.com/alnah/go-autoanchors"
	"github.com/alnah/go-autoanchors/internal/fileutil"
	"github.com/alnah/go-autoanchors/internal/pipeline"
)

// Sentinel errors for batch operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrReadInput     = errors.New("failed to read input file")
	ErrWriteOutput   = errors.New("failed to write output file")
	ErrConverterInit = errors.New("failed to initialize converter")
)

// conversionParams groups parameters shared across the batch.
type conversionParams struct {
	listView   bool
	inlineCSS  bool
	pdf        bool
	styleLinks string // <link> tags for pages with anchors, when CSS is not inlined
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Headers    int
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams, logger zerolog.Logger) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire(ctx)
			if err != nil {
				// Converter creation failed, mark this worker's jobs as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("%w: %w", ErrConverterInit, err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
				logger.Debug().
					Str("input", files[idx].InputPath).
					Int("headers", results[idx].Headers).
					Dur("duration", results[idx].Duration).
					Msg("converted")
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
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadInput, err))
	}
	if len(content) == 0 && !params.pdf {
		// Nothing to anchor; the output mirrors the input.
		if err := fileutil.WriteFile(f.OutputPath, content); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		result.Duration = time.Since(start)
		return result
	}

	res, err := conv.Convert(ctx, autoanchors.Input{
		Content:   string(content),
		Format:    f.Format,
		SourceDir: filepath.Dir(f.InputPath),
		ListView:  params.listView,
		InlineCSS: params.inlineCSS,
		PDF:       params.pdf,
	})
	if err != nil {
		return fail(err)
	}
	result.Headers = res.Headers

	data := res.PDF
	if !params.pdf {
		out := string(res.HTML)
		if res.Headers > 0 && params.styleLinks != "" {
			out = pipeline.InsertHead(out, params.styleLinks)
		}
		data = []byte(out)
	}

	if err := fileutil.WriteFile(f.OutputPath, data); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	result.Duration = time.Since(start)
	return result
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

// printResults outputs conversion results. Failures are logged; created
// files go to stdout. Returns the number of failures.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment, logger zerolog.Logger) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			logger.Error().Err(r.Err).Str("input", r.InputPath).Msg("FAILED")
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d headers, %v)\n", r.InputPath, r.OutputPath, r.Headers, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
