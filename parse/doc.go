// Package parse turns the flattened stream of OCR'd text lines from a scanned
// exam booklet into structured question records.
//
// The pipeline is deliberately split into small, independently testable
// stages:
//
//   - Classify assigns each trimmed line a role (noise, question start,
//     option start, continuation) using cheap textual heuristics.
//   - Accumulator consumes classified lines in stream order and maintains the
//     keyed collection of in-progress records, routing English and Hindi text
//     into parallel fields.
//   - Validate drops pseudo-questions that are OCR artifacts or instruction
//     paragraphs.
//   - SortByID orders the survivors by numeric question identifier.
//
// The stages are pure with respect to their inputs: no logging, no I/O, no
// clocks. Re-running them over the same line sequence yields identical
// records, which keeps golden-file comparisons byte-stable.
package parse
