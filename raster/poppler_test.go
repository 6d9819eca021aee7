package raster

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPageFilesNumericOrder(t *testing.T) {
	dir := t.TempDir()
	// Deliberately created out of order, with a double-digit page that would
	// sort before page-2 lexicographically.
	for _, name := range []string{"page-10.png", "page-2.png", "page-1.png", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	names, err := pageFiles(dir)
	if err != nil {
		t.Fatalf("pageFiles() error = %v", err)
	}
	want := []string{"page-1.png", "page-2.png", "page-10.png"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("unexpected order: %v, want %v", names, want)
	}
}

func TestPageNumber(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"page-1.png", 1},
		{"page-10.png", 10},
		{"page-007.png", 7},
		{"weird.png", 0},
	}
	for _, tc := range cases {
		if got := pageNumber(tc.name); got != tc.want {
			t.Fatalf("pageNumber(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestNewPopplerDefaultsDPI(t *testing.T) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		t.Skip("pdftoppm not installed in PATH")
	}
	p, err := NewPoppler(0)
	if err != nil {
		t.Fatalf("NewPoppler() error = %v", err)
	}
	if p.dpi != 200 {
		t.Fatalf("unexpected default dpi: %d", p.dpi)
	}
}

func TestRasterizeCorruptPDF(t *testing.T) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		t.Skip("pdftoppm not installed in PATH")
	}
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.pdf")
	if err := os.WriteFile(bad, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	p, err := NewPoppler(72)
	if err != nil {
		t.Fatalf("NewPoppler() error = %v", err)
	}
	if _, err := p.Rasterize(context.Background(), bad); err == nil {
		t.Fatalf("expected error for corrupt pdf")
	}
}
