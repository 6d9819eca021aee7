package parse

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/devkant/qsift/mcq"
)

// maxStemRunes is the stem length beyond which an option-less record is
// assumed to be a mis-captured instruction paragraph rather than a question.
const maxStemRunes = 500

// Parse runs the classifier and accumulator over raw lines in stream order.
// Lines are trimmed here; blank lines contribute nothing. The result is in
// first-seen order and unfiltered — callers follow with Validate and SortByID.
func Parse(lines []string, src mcq.SourceInfo) []*mcq.Question {
	acc := NewAccumulator(src)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		acc.Feed(Classify(line))
	}
	return acc.Records()
}

// Validate drops records that carry no stem in either language, and records
// whose stem ballooned past maxStemRunes without a single option in either
// language. The latter catches instruction paragraphs that slipped past the
// keyword filter because they happened to start with a number ("Section 1.
// ..."). Surviving records pass through unchanged, order preserved.
func Validate(qs []*mcq.Question) []*mcq.Question {
	out := qs[:0:0]
	for _, q := range qs {
		if q.Question == "" && q.QuestionHindi == "" {
			continue
		}
		long := utf8.RuneCountInString(q.Question) > maxStemRunes ||
			utf8.RuneCountInString(q.QuestionHindi) > maxStemRunes
		if long && len(q.Options) == 0 && len(q.OptionsHindi) == 0 {
			continue
		}
		out = append(out, q)
	}
	return out
}

// SortByID stable-sorts records ascending by the numeric value of their
// identifier. A non-numeric identifier cannot come out of the question-start
// pattern, but if one appears it sorts as 0 rather than failing.
func SortByID(qs []*mcq.Question) {
	sort.SliceStable(qs, func(i, j int) bool {
		return numericID(qs[i].ID) < numericID(qs[j].ID)
	})
}

func numericID(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, idPrefix))
	if err != nil {
		return 0
	}
	return n
}
