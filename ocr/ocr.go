package ocr

import (
	"context"
	"strconv"
	"strings"
)

// Region is a rectangular area in pixel coordinates, origin in the upper-left
// corner of the image. The pipeline uses regions to OCR one half-page column
// at a time without re-encoding the page image per column.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// IsEmpty reports whether the region has non-positive dimensions.
func (r Region) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Input is one image submitted for recognition.
type Input struct {
	// ID is echoed back in the Result for correlation; the pipeline uses
	// "page-<n>-left" / "page-<n>-right".
	ID string
	// Image is PNG-encoded page data.
	Image []byte
	// Languages lists Tesseract trained-data hints, e.g. "eng", "hin".
	// Multiple languages are recognized in one pass.
	Languages []string
	// DPI is the effective resolution of the image; zero means unknown.
	DPI int
	// Region restricts recognition to a subsection of the image. Nil means
	// the full image.
	Region *Region
	// Variables carries provider-specific knobs (e.g. Tesseract's
	// tessedit_pageseg_mode) without widening the API surface.
	Variables map[string]string
}

// Result is the recognition output for one input.
type Result struct {
	InputID string
	// PlainText is the raw newline-delimited text as the provider emitted
	// it, trimmed of outer whitespace but otherwise untouched.
	PlainText string
}

// Lines splits the plain text into candidate lines. No per-line trimming or
// blank filtering happens here; the parser owns line hygiene.
func (r Result) Lines() []string {
	if r.PlainText == "" {
		return nil
	}
	return strings.Split(r.PlainText, "\n")
}

// Engine is the provider contract: one image in, one result out. Recognize
// must honor ctx cancellation between units of work where the provider
// allows it.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}

// Option mutates an Input before submission.
type Option func(*Input)

// WithLanguages sets the language hints on the input.
func WithLanguages(langs ...string) Option {
	return func(in *Input) { in.Languages = append([]string(nil), langs...) }
}

// WithDPI sets the effective resolution on the input.
func WithDPI(dpi int) Option {
	return func(in *Input) { in.DPI = dpi }
}

// WithRegion restricts recognition to a subsection of the image. An empty
// region clears the restriction.
func WithRegion(region Region) Option {
	return func(in *Input) {
		if region.IsEmpty() {
			in.Region = nil
			return
		}
		in.Region = &region
	}
}

// WithPSM sets Tesseract's page segmentation mode. Scanned exam columns OCR
// best with mode 6 ("assume a single uniform block of text").
func WithPSM(mode int) Option {
	return func(in *Input) {
		if in.Variables == nil {
			in.Variables = make(map[string]string)
		}
		in.Variables["tessedit_pageseg_mode"] = strconv.Itoa(mode)
	}
}

// NewInput builds an input for a PNG-encoded image with the given options
// applied in order.
func NewInput(id string, png []byte, opts ...Option) Input {
	in := Input{ID: id, Image: png}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
