package ocr

// Package ocr defines the recognition boundary between the extraction
// pipeline and whichever OCR provider backs it. The default provider is
// Tesseract via gosseract; the Engine interface keeps the pipeline testable
// with fakes and leaves room for remote providers without changing callers.
