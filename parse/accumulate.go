package parse

import (
	"github.com/devkant/qsift/mcq"
	"github.com/devkant/qsift/script"
)

// idPrefix marks records whose answer key has not been resolved yet. The
// downstream question bank replaces it when keys are matched in.
const idPrefix = "UNK"

// Accumulator is the parsing state machine. It holds the keyed collection of
// in-progress records plus a pointer to the one record currently receiving
// text. The zero state has no current record; option and continuation lines
// arriving in that state are dropped.
//
// Records are keyed by the raw captured digit string. Re-encountering a seen
// key re-activates the existing record rather than creating a duplicate; this
// is what merges the separately printed English and Hindi renditions of one
// question into a single record. Duplicate numbering across unrelated booklet
// sections merges too — the stream carries no page signal to tell them apart.
type Accumulator struct {
	src     mcq.SourceInfo
	byID    map[string]*mcq.Question
	order   []string
	current *mcq.Question
}

// NewAccumulator returns an empty accumulator. src is stamped onto every
// record created during the pass.
func NewAccumulator(src mcq.SourceInfo) *Accumulator {
	return &Accumulator{
		src:  src,
		byID: make(map[string]*mcq.Question),
	}
}

// Feed advances the machine by one classified line.
func (a *Accumulator) Feed(ln Line) {
	switch ln.Kind {
	case KindQuestion:
		rec, ok := a.byID[ln.ID]
		if !ok {
			rec = mcq.New(idPrefix+ln.ID, a.src)
			a.byID[ln.ID] = rec
			a.order = append(a.order, ln.ID)
		}
		a.current = rec
		if script.Devanagari(ln.Text) {
			rec.QuestionHindi = joinSpace(rec.QuestionHindi, ln.Text)
		} else {
			rec.Question = joinSpace(rec.Question, ln.Text)
		}

	case KindOption:
		if a.current == nil {
			return
		}
		if script.Devanagari(ln.Text) {
			a.current.OptionsHindi = append(a.current.OptionsHindi, ln.Text)
		} else {
			a.current.Options = append(a.current.Options, ln.Text)
		}

	case KindContinuation:
		if a.current == nil {
			return
		}
		// Once a script has options, all further continuation text in that
		// script extends the last option; the stem is considered closed.
		if script.Devanagari(ln.Text) {
			if n := len(a.current.OptionsHindi); n > 0 {
				a.current.OptionsHindi[n-1] = joinSpace(a.current.OptionsHindi[n-1], ln.Text)
			} else {
				a.current.QuestionHindi = joinSpace(a.current.QuestionHindi, ln.Text)
			}
		} else {
			if n := len(a.current.Options); n > 0 {
				a.current.Options[n-1] = joinSpace(a.current.Options[n-1], ln.Text)
			} else {
				a.current.Question = joinSpace(a.current.Question, ln.Text)
			}
		}
	}
}

// Records returns the accumulated records in first-seen key order. The slice
// is rebuilt per call; the records themselves are shared, not copied.
func (a *Accumulator) Records() []*mcq.Question {
	out := make([]*mcq.Question, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.byID[id])
	}
	return out
}

// joinSpace appends s to dst with a single separating space, avoiding a
// leading space when dst is still empty.
func joinSpace(dst, s string) string {
	if dst == "" {
		return s
	}
	return dst + " " + s
}
