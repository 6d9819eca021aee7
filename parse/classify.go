package parse

import (
	"regexp"
	"strings"
)

// Kind is the role a line plays in the question stream.
type Kind int

const (
	// KindNoise marks instructional boilerplate that must not reach the
	// accumulator, not even as continuation text.
	KindNoise Kind = iota
	// KindQuestion starts (or re-activates) a question record.
	KindQuestion
	// KindOption starts a new answer option on the current record.
	KindOption
	// KindContinuation extends whichever stem or option is currently open.
	KindContinuation
)

// Line is one classified input line. ID is set only for KindQuestion and holds
// the raw captured digit run. Text holds the captured remainder for question
// and option lines, and the full line for continuations.
type Line struct {
	Kind Kind
	ID   string
	Text string
}

// Question starts look like "1.", "10)", "Q1.", "Q. 5.", "Question 3." and may
// carry a booklet set prefix such as "H-10." or "E-10.". The prefix is
// recognized so the digits still parse, but it is not part of the identifier.
var questionStart = regexp.MustCompile(`(?i)^\s*(?:q\.?|question)?\s*(?:[a-z]-)?(\d+)\s*[.)]\s+(.*)`)

// Options look like "(A)", "(b)", "A)", "A.", "1)", "(1)". The marker
// character is matched but never used; option order alone implies the letter.
var optionStart = regexp.MustCompile(`^\s*(?:\(([A-Za-z0-9])\)|([A-Za-z0-9])[).])\s+(.*)`)

// skipKeywords flag instruction-block lines. Matching is case-insensitive
// substring containment and takes priority over both start patterns, so a
// numbered instruction line ("1. Time Allowed: ...") never opens a record.
var skipKeywords = []string{
	"Instructions",
	"Time Allowed",
	"Maximum Marks",
	"Rough Work",
	"Booklet Series",
	"Candidate’s Roll Number",
}

// Classify assigns a role to one trimmed, non-empty line. The noise check runs
// first, then the question pattern, then the option pattern; anything left is
// a continuation.
func Classify(line string) Line {
	lower := strings.ToLower(line)
	for _, kw := range skipKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return Line{Kind: KindNoise, Text: line}
		}
	}
	if m := questionStart.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindQuestion, ID: m[1], Text: m[2]}
	}
	if m := optionStart.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindOption, Text: m[3]}
	}
	return Line{Kind: KindContinuation, Text: line}
}
