// Command qsift extracts bilingual multiple-choice questions from scanned
// exam PDFs into JSON, one output file per input document.
//
// Single file:
//
//	qsift -input "Pyq BPSC.pdf"
//
// Batch over a directory (skips documents whose JSON already exists):
//
//	qsift -dir ./scans -out ./json
//
// Requires tesseract (with the eng and hin trained data) and poppler-utils
// on PATH. Runtime knobs are environment variables, see the config package;
// a .env file next to the binary is honored.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/devkant/qsift/config"
	"github.com/devkant/qsift/exam"
	"github.com/devkant/qsift/logging"
	"github.com/devkant/qsift/ocr"
	"github.com/devkant/qsift/pipeline"
	"github.com/devkant/qsift/raster"
)

type options struct {
	input   string
	dir     string
	out     string
	exams   string
	verbose bool
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "qsift: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: qsift [-input file.pdf | -dir scans/] [flags]\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.input, "input", "", "Single PDF to process")
	flag.StringVar(&opts.dir, "dir", ".", "Directory of PDFs to process in batch (ignored with -input)")
	flag.StringVar(&opts.out, "out", "", "Directory for JSON output (default: next to each input)")
	flag.StringVar(&opts.exams, "exams", "", "YAML overlay for the filename-to-exam table (default: QSIFT_EXAM_TABLE)")
	flag.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	flag.Parse()
	return opts
}

func run(opts options) error {
	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.Name, cfg.Env)
	if opts.verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	tablePath := opts.exams
	if tablePath == "" {
		tablePath = cfg.Exam.TablePath
	}
	exams, err := exam.Load(tablePath)
	if err != nil {
		return err
	}

	rasterizer, err := raster.NewPoppler(cfg.OCR.DPI)
	if err != nil {
		return err
	}

	extractor := pipeline.New(rasterizer, ocr.NewTesseract(), exams, pipeline.Options{
		Languages: cfg.OCR.Languages,
		PSM:       cfg.OCR.PSM,
		ExamYear:  cfg.Exam.Year,
		ExamShift: cfg.Exam.Shift,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.IntoContext(ctx, log)

	if opts.input != "" {
		return runSingle(ctx, extractor, opts)
	}
	return runBatch(ctx, extractor, cfg, opts)
}

func runSingle(ctx context.Context, x *pipeline.Extractor, opts options) error {
	qs, err := x.ExtractFile(ctx, opts.input)
	if err != nil {
		return err
	}
	outDir := opts.out
	outPath := pipeline.OutputPath(opts.input, outDir)
	if err := pipeline.WriteJSON(outPath, qs); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Str("output", outPath).Int("questions", len(qs)).Msg("saved")
	return nil
}

func runBatch(ctx context.Context, x *pipeline.Extractor, cfg *config.App, opts options) error {
	outDir := opts.out
	if outDir == "" {
		outDir = cfg.Batch.OutputDir
	}
	summary, err := x.RunBatch(ctx, opts.dir, pipeline.BatchOptions{
		Workers:            cfg.Batch.Workers,
		SkipThresholdBytes: cfg.Batch.SkipThresholdBytes,
		OutputDir:          outDir,
	})
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		logging.FromContext(ctx).Warn().Int("failed", summary.Failed).Msg("some documents failed")
	}
	return nil
}
