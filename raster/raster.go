// Package raster converts PDF documents into per-page images for OCR. The
// default implementation shells out to poppler's pdftoppm, which is the same
// renderer the original tooling around these exam scans relied on; the
// Rasterizer interface keeps the pipeline testable without poppler installed.
package raster

import "context"

// Page is one rasterized PDF page. PNG holds the encoded image; Width and
// Height are its pixel dimensions, needed by callers that OCR sub-regions.
type Page struct {
	Index  int
	PNG    []byte
	Width  int
	Height int
}

// Rasterizer renders every page of a PDF, in document order.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath string) ([]Page, error)
}
