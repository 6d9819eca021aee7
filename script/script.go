// Package script classifies text by writing system. Exam booklets interleave
// English and Hindi renditions of the same content; the parser uses this
// package to route each line into the matching language field.
package script

// Devanagari reports whether s contains at least one code point from the
// Devanagari Unicode block (U+0900 through U+097F). A single qualifying rune
// anywhere in the string is enough; there is no majority rule.
func Devanagari(s string) bool {
	for _, r := range s {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}
