package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// BatchOptions tunes RunBatch. Zero values select the defaults.
type BatchOptions struct {
	// Workers bounds concurrent documents; default 2. Documents are
	// independent, so only memory and CPU limit this.
	Workers int
	// SkipThresholdBytes: an existing output file larger than this marks the
	// document as already processed. Default 100; tiny files are assumed to
	// be failed or empty runs worth redoing.
	SkipThresholdBytes int64
	// OutputDir receives the JSON files; empty writes next to each input.
	OutputDir string
}

func (o BatchOptions) withDefaults() BatchOptions {
	if o.Workers <= 0 {
		o.Workers = 2
	}
	if o.SkipThresholdBytes <= 0 {
		o.SkipThresholdBytes = 100
	}
	return o
}

// BatchSummary reports what a batch run did.
type BatchSummary struct {
	Processed int
	Skipped   int
	Failed    int
}

// RunBatch processes every PDF in dir. Files are discovered once, taken in
// lexicographic order, and distributed over a bounded worker pool. A failure
// on one document is logged and counted, never fatal to the batch; the only
// error this returns is failure to read the directory itself.
func (x *Extractor) RunBatch(ctx context.Context, dir string, opts BatchOptions) (BatchSummary, error) {
	opts = opts.withDefaults()

	pdfs, err := listPDFs(dir)
	if err != nil {
		return BatchSummary{}, err
	}

	var summary BatchSummary
	jobs := make(chan string)
	results := make(chan outcome)

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pdfPath := range jobs {
				results <- x.processOne(ctx, pdfPath, opts)
			}
		}()
	}
	go func() {
		defer close(jobs)
		for _, p := range pdfs {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		switch r {
		case outcomeProcessed:
			summary.Processed++
		case outcomeSkipped:
			summary.Skipped++
		case outcomeFailed:
			summary.Failed++
		}
	}

	x.log.Info().
		Int("processed", summary.Processed).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("batch done")
	return summary, nil
}

type outcome int

const (
	outcomeProcessed outcome = iota
	outcomeSkipped
	outcomeFailed
)

func (x *Extractor) processOne(ctx context.Context, pdfPath string, opts BatchOptions) outcome {
	outPath := OutputPath(pdfPath, opts.OutputDir)
	if info, err := os.Stat(outPath); err == nil && info.Size() > opts.SkipThresholdBytes {
		x.log.Info().Str("file", filepath.Base(pdfPath)).Str("output", outPath).Msg("output exists, skipping")
		return outcomeSkipped
	}

	qs, err := x.ExtractFile(ctx, pdfPath)
	if err != nil {
		x.log.Error().Err(err).Str("file", filepath.Base(pdfPath)).Msg("document failed")
		return outcomeFailed
	}
	if err := WriteJSON(outPath, qs); err != nil {
		x.log.Error().Err(err).Str("file", filepath.Base(pdfPath)).Msg("write failed")
		return outcomeFailed
	}
	x.log.Info().Str("output", outPath).Int("questions", len(qs)).Msg("saved")
	return outcomeProcessed
}

// OutputPath derives the JSON sibling for a PDF: same base name, .json
// extension, in outDir when given.
func OutputPath(pdfPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath)) + ".json"
	if outDir == "" {
		return filepath.Join(filepath.Dir(pdfPath), base)
	}
	return filepath.Join(outDir, base)
}

func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read batch dir: %w", err)
	}
	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			pdfs = append(pdfs, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(pdfs)
	return pdfs, nil
}
