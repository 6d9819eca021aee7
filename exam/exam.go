// Package exam resolves scanned-booklet filenames to exam names. The mapping
// is static configuration: a built-in table covering the known BPSC/BSSC
// scans, optionally overlaid from a YAML file so new booklets don't require a
// rebuild. The table is passed into the pipeline explicitly; nothing in the
// core reads it ambiently.
package exam

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultName is used when a filename has no table entry.
const DefaultName = "Generic Exam"

// Table maps a PDF base filename (including extension) to a human-readable
// exam name.
type Table map[string]string

// Defaults returns the built-in filename table.
func Defaults() Table {
	return Table{
		"1-5 TRE 2.0.pdf":                      "BPSC TRE 2.0 (1-5)",
		"1-5.pdf":                              "BPSC TRE 1.0 (1-5)",
		"6-8 MATHS SCIENCE (1).pdf":            "BPSC TRE 2.0 (6-8 Maths Science)",
		"6-8 MATHS SCIENCE.pdf":                "BPSC TRE 2.0 (6-8 Maths Science)",
		"6-8 SOCIAL SCIENCE.pdf":               "BPSC TRE 2.0 (6-8 Social Science)",
		"9-10 MATHS TRE 1.0.pdf":               "BPSC TRE 1.0 (9-10 Maths)",
		"9-10 SCIENCE (1).pdf":                 "BPSC TRE 1.0 (9-10 Science)",
		"9-10 SCIENCE TRE -1.0.pdf":            "BPSC TRE 1.0 (9-10 Science)",
		"9-10 SCIENCE.pdf":                     "BPSC TRE 1.0 (9-10 Science)",
		"9-10 SOCIAL SCIENCE TRE 2.0.pdf":      "BPSC TRE 2.0 (9-10 Social Science)",
		"9-10 Social Science.pdf":              "BPSC TRE 1.0 (9-10 Social Science)",
		"9-10 social science (1).pdf":          "BPSC TRE 1.0 (9-10 Social Science)",
		"BPSC - DSO PT 2025.pdf":               "BPSC DSO PT 2025",
		"BPSC - Mineral Development Officer Exam 2025 - GS Paper.pdf": "BPSC Mineral Dev Officer 2025",
		"BPSC Law Officer GS Question Paper.pdf":                      "BPSC Law Officer GS",
		"BPSC Motor Vehicle Inspectors. QP.pdf":                       "BPSC Motor Vehicle Inspector",
		"BPSC Public Relation Officer GS Question Paper.pdf":          "BPSC PRO GS",
		"BSSC FIELD ASSISTANT EXAMINATION 10-8-2025 QUESTIONS.pdf":    "BSSC Field Assistant 2025",
		"Pyq BPSC.pdf": "BPSC PYQ Generic",
	}
}

// Lookup returns the exam name for filename, or DefaultName on a miss.
func (t Table) Lookup(filename string) string {
	if name, ok := t[filename]; ok {
		return name
	}
	return DefaultName
}

// tableFile is the YAML overlay document shape.
type tableFile struct {
	Exams map[string]string `yaml:"exams"`
}

// Load returns the built-in table overlaid with entries from the YAML file at
// path. Overlay entries win on key collisions. An empty path returns the
// defaults unchanged.
func Load(path string) (Table, error) {
	t := Defaults()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exam table: %w", err)
	}
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse exam table %s: %w", path, err)
	}
	for k, v := range f.Exams {
		t[k] = v
	}
	return t, nil
}
