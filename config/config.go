// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// App holds every tunable of the extraction run. Defaults reproduce the
// settings the parsing heuristics were calibrated against, so a bare
// environment behaves like the reference runs.
type App struct {
	Name string `env:"QSIFT_APP_NAME" envDefault:"qsift"`
	Env  string `env:"QSIFT_ENV" envDefault:"development"`

	OCR   OCR
	Batch Batch
	Exam  Exam
}

// OCR groups recognition settings.
type OCR struct {
	// Languages are Tesseract trained-data names recognized together.
	Languages []string `env:"QSIFT_OCR_LANGS" envSeparator:"," envDefault:"eng,hin"`
	// PSM 6 assumes a single uniform block of text, which fits a half-page
	// column better (and runs faster) than full auto layout analysis.
	PSM int `env:"QSIFT_OCR_PSM" envDefault:"6"`
	// DPI is the rasterization resolution handed to pdftoppm.
	DPI int `env:"QSIFT_RASTER_DPI" envDefault:"200"`
}

// Batch governs directory-level processing.
type Batch struct {
	// Workers bounds how many documents are processed concurrently.
	Workers int `env:"QSIFT_WORKERS" envDefault:"2"`
	// SkipThresholdBytes: an existing output file larger than this counts as
	// already processed and the document is skipped.
	SkipThresholdBytes int64 `env:"QSIFT_SKIP_THRESHOLD" envDefault:"100"`
	// OutputDir receives the JSON files; empty means next to the input.
	OutputDir string `env:"QSIFT_OUTPUT_DIR" envDefault:""`
}

// Exam carries the per-run source metadata stamped onto every record.
type Exam struct {
	Year  int    `env:"QSIFT_EXAM_YEAR" envDefault:"2023"`
	Shift string `env:"QSIFT_EXAM_SHIFT" envDefault:"Unknown"`
	// TablePath optionally points at a YAML overlay for the filename table.
	TablePath string `env:"QSIFT_EXAM_TABLE" envDefault:""`
}

// Load parses environment variables into an App config.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Batch.Workers < 1 {
		return nil, fmt.Errorf("QSIFT_WORKERS must be at least 1, got %d", cfg.Batch.Workers)
	}
	if len(cfg.OCR.Languages) == 0 {
		return nil, fmt.Errorf("QSIFT_OCR_LANGS must name at least one language")
	}
	for _, l := range cfg.OCR.Languages {
		if strings.TrimSpace(l) == "" {
			return nil, fmt.Errorf("QSIFT_OCR_LANGS contains an empty language entry")
		}
	}
	return cfg, nil
}
