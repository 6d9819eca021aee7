package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrPopplerNotFound is returned by NewPoppler when the pdftoppm binary is
// not on PATH.
var ErrPopplerNotFound = errors.New("pdftoppm not found in PATH; install poppler-utils")

const pagePrefix = "page"

// Poppler rasterizes PDFs by invoking pdftoppm into a temporary directory and
// reading back the emitted PNG files.
type Poppler struct {
	binary string
	dpi    int
}

// NewPoppler probes for the pdftoppm binary and returns a rasterizer
// rendering at the given resolution. dpi <= 0 selects 200, matching the
// quality the parsing heuristics were tuned against.
func NewPoppler(dpi int) (*Poppler, error) {
	bin, err := exec.LookPath("pdftoppm")
	if err != nil {
		return nil, ErrPopplerNotFound
	}
	if dpi <= 0 {
		dpi = 200
	}
	return &Poppler{binary: bin, dpi: dpi}, nil
}

// Rasterize renders every page of the PDF at the configured DPI. Pages come
// back in document order. Any failure aborts the whole document; per-document
// recovery is the caller's concern.
func (p *Poppler) Rasterize(ctx context.Context, pdfPath string) ([]Page, error) {
	tmp, err := os.MkdirTemp("", "qsift-raster-*")
	if err != nil {
		return nil, fmt.Errorf("create raster dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	prefix := filepath.Join(tmp, pagePrefix)
	cmd := exec.CommandContext(ctx, p.binary, "-png", "-r", strconv.Itoa(p.dpi), pdfPath, prefix)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm %s: %w (%s)", pdfPath, err, strings.TrimSpace(stderr.String()))
	}

	names, err := pageFiles(tmp)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", pdfPath)
	}

	pages := make([]Page, 0, len(names))
	for i, name := range names {
		data, err := os.ReadFile(filepath.Join(tmp, name))
		if err != nil {
			return nil, fmt.Errorf("read page image: %w", err)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode page image %s: %w", name, err)
		}
		pages = append(pages, Page{Index: i, PNG: data, Width: cfg.Width, Height: cfg.Height})
	}
	return pages, nil
}

// pageFiles lists the emitted page PNGs in page-number order. pdftoppm names
// files page-1.png, page-2.png, ... page-10.png; lexicographic order would
// interleave them, so the numeric suffix decides.
func pageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list raster dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".png") && strings.HasPrefix(e.Name(), pagePrefix) {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return pageNumber(names[i]) < pageNumber(names[j])
	})
	return names, nil
}

func pageNumber(name string) int {
	base := strings.TrimSuffix(name, ".png")
	idx := strings.LastIndexByte(base, '-')
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}
