package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/dgallion1/pdfoutline/internal/sidecar"
	"github.com/dgallion1/pdfoutline/internal/source"
)

// Runner processes every supported document in a directory and writes one
// JSON sidecar per input. Documents run in parallel; pages and lines
// within one document stay strictly sequential inside the extractor.
type Runner struct {
	extractor *outline.Extractor
	stats     *ExtractStats
	log       *slog.Logger

	Workers   int
	SkipEmpty bool // don't write sidecars for documents with no headings
}

func NewRunner(ex *outline.Extractor, stats *ExtractStats, log *slog.Logger) *Runner {
	return &Runner{
		extractor: ex,
		stats:     stats,
		log:       log,
		Workers:   4,
		SkipEmpty: true,
	}
}

// Summary reports what a batch run did.
type Summary struct {
	Found     int // supported files discovered
	Processed int // sidecars written
	Skipped   int // empty outlines not written (SkipEmpty policy)
	Failed    int // sidecar write failures
}

type fileOutcome int

const (
	outcomeProcessed fileOutcome = iota
	outcomeSkipped
	outcomeFailed
)

// Run scans inputDir (non-recursive) and extracts every supported file.
// Per-document failures are logged and counted, never fatal for the
// batch; only the directory scan itself can return an error.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (Summary, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !source.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	r.log.Info("batch scan", "dir", inputDir, "files", len(files))

	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make(chan fileOutcome, len(files))
	sem := make(chan struct{}, workers)

	for _, name := range files {
		select {
		case <-ctx.Done():
			results <- outcomeFailed
			continue
		case sem <- struct{}{}:
		}
		go func(name string) {
			defer func() { <-sem }()
			results <- r.processFile(filepath.Join(inputDir, name), outputDir)
		}(name)
	}

	sum := Summary{Found: len(files)}
	for range files {
		switch <-results {
		case outcomeProcessed:
			sum.Processed++
		case outcomeSkipped:
			sum.Skipped++
		case outcomeFailed:
			sum.Failed++
		}
	}

	r.log.Info("batch complete",
		"found", sum.Found,
		"processed", sum.Processed,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
		"output_dir", outputDir,
	)
	return sum, nil
}

func (r *Runner) processFile(path, outputDir string) fileOutcome {
	log := r.log.With("file", filepath.Base(path))

	start := time.Now()
	res := r.extractor.ExtractFile(path)
	if r.stats != nil {
		r.stats.Record(time.Since(start))
	}

	if len(res.Outline) == 0 {
		if r.SkipEmpty {
			log.Info("no headings found, skipping sidecar")
			return outcomeSkipped
		}
	}

	out := sidecar.PathFor(outputDir, path)
	if err := sidecar.Write(out, res); err != nil {
		log.Error("write sidecar", "error", err)
		return outcomeFailed
	}

	log.Info("extracted", "headings", len(res.Outline), "title", res.Title, "sidecar", out)
	return outcomeProcessed
}
