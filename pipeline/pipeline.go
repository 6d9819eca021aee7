// Package pipeline wires rasterization, OCR and parsing into the per-document
// extraction flow and the directory batch runner around it.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/devkant/qsift/exam"
	"github.com/devkant/qsift/mcq"
	"github.com/devkant/qsift/ocr"
	"github.com/devkant/qsift/parse"
	"github.com/devkant/qsift/raster"
)

// Options tunes one Extractor. Zero values select the calibrated defaults.
type Options struct {
	// Languages are the OCR language hints; default eng+hin.
	Languages []string
	// PSM is the Tesseract page segmentation mode; default 6.
	PSM int
	// ExamYear and ExamShift are stamped onto every record.
	ExamYear  int
	ExamShift string
}

func (o Options) withDefaults() Options {
	if len(o.Languages) == 0 {
		o.Languages = []string{"eng", "hin"}
	}
	if o.PSM == 0 {
		o.PSM = 6
	}
	if o.ExamYear == 0 {
		o.ExamYear = 2023
	}
	if o.ExamShift == "" {
		o.ExamShift = "Unknown"
	}
	return o
}

// Extractor runs the full per-document pipeline. It is safe for concurrent
// use across documents as long as the injected rasterizer and engine are.
type Extractor struct {
	raster raster.Rasterizer
	engine ocr.Engine
	exams  exam.Table
	opts   Options
	log    zerolog.Logger
}

// New assembles an extractor from its collaborators. exams may be nil, in
// which case every document resolves to the generic exam name.
func New(r raster.Rasterizer, e ocr.Engine, exams exam.Table, opts Options, log zerolog.Logger) *Extractor {
	return &Extractor{
		raster: r,
		engine: e,
		exams:  exams,
		opts:   opts.withDefaults(),
		log:    log,
	}
}

// ExtractFile processes one PDF end to end: rasterize, OCR each half-page
// column, parse the flattened line stream, validate and order the records.
// Rasterization failure aborts the document; OCR failure on a single column
// is logged and that column contributes no lines.
func (x *Extractor) ExtractFile(ctx context.Context, pdfPath string) ([]*mcq.Question, error) {
	base := filepath.Base(pdfPath)
	examName := x.exams.Lookup(base)
	log := x.log.With().Str("file", base).Str("exam", examName).Logger()
	log.Info().Msg("processing document")

	pages, err := x.raster.Rasterize(ctx, pdfPath)
	if err != nil {
		return nil, fmt.Errorf("rasterize %s: %w", base, err)
	}

	lines := x.readColumns(ctx, log, pages)

	src := mcq.SourceInfo{
		ExamName:      examName,
		ExamYear:      x.opts.ExamYear,
		ExamDateShift: x.opts.ExamShift,
	}
	qs := parse.Parse(lines, src)
	qs = parse.Validate(qs)
	parse.SortByID(qs)

	log.Info().Int("pages", len(pages)).Int("questions", len(qs)).Msg("document done")
	return qs, nil
}

// readColumns OCRs the left then right half of every page in document order
// and flattens the recognized text into one line stream. The ordering is the
// contract the parser depends on: the accumulator has no layout information,
// only line sequence.
func (x *Extractor) readColumns(ctx context.Context, log zerolog.Logger, pages []raster.Page) []string {
	var lines []string
	for _, page := range pages {
		halves := []struct {
			side   string
			region ocr.Region
		}{
			{"left", ocr.Region{X: 0, Y: 0, Width: page.Width / 2, Height: page.Height}},
			{"right", ocr.Region{X: page.Width / 2, Y: 0, Width: page.Width - page.Width/2, Height: page.Height}},
		}
		for _, h := range halves {
			in := ocr.NewInput(
				fmt.Sprintf("page-%d-%s", page.Index, h.side),
				page.PNG,
				ocr.WithLanguages(x.opts.Languages...),
				ocr.WithPSM(x.opts.PSM),
				ocr.WithRegion(h.region),
			)
			res, err := x.engine.Recognize(ctx, in)
			if err != nil {
				log.Warn().Err(err).Int("page", page.Index).Str("column", h.side).Msg("ocr failed, column skipped")
				continue
			}
			lines = append(lines, res.Lines()...)
		}
	}
	return lines
}

// WriteJSON serializes records to path as a two-space-indented JSON array.
// HTML escaping is off and non-Latin text is written verbatim, so Devanagari
// survives byte-for-byte.
func WriteJSON(path string, qs []*mcq.Question) error {
	if qs == nil {
		qs = []*mcq.Question{}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(qs); err != nil {
		f.Close()
		return fmt.Errorf("encode output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
