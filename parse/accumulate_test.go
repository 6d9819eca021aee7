package parse

import (
	"reflect"
	"testing"

	"github.com/devkant/qsift/mcq"
)

var testSrc = mcq.SourceInfo{ExamName: "Test Exam", ExamYear: 2023, ExamDateShift: "Unknown"}

func feedAll(t *testing.T, lines []string) []*mcq.Question {
	t.Helper()
	acc := NewAccumulator(testSrc)
	for _, ln := range lines {
		acc.Feed(Classify(ln))
	}
	return acc.Records()
}

func TestAccumulatorTwoQuestions(t *testing.T) {
	qs := feedAll(t, []string{
		"1. What is X?",
		"(A) Alpha",
		"(B) Beta",
		"2. What is Y?",
		"(A) Gamma",
	})
	if len(qs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(qs))
	}
	if qs[0].ID != "UNK1" || qs[1].ID != "UNK2" {
		t.Fatalf("unexpected ids: %q, %q", qs[0].ID, qs[1].ID)
	}
	if qs[0].Question != "What is X?" || qs[1].Question != "What is Y?" {
		t.Fatalf("unexpected stems: %q, %q", qs[0].Question, qs[1].Question)
	}
	if !reflect.DeepEqual(qs[0].Options, []string{"Alpha", "Beta"}) {
		t.Fatalf("unexpected options for q1: %+v", qs[0].Options)
	}
	if !reflect.DeepEqual(qs[1].Options, []string{"Gamma"}) {
		t.Fatalf("unexpected options for q2: %+v", qs[1].Options)
	}
}

func TestAccumulatorMergesBilingualDuplicate(t *testing.T) {
	// The Hindi rendition of question 1 appears later in the stream, after
	// question 2. The repeated id must re-activate the record, not duplicate it.
	qs := feedAll(t, []string{
		"1. What is the capital of Bihar?",
		"(A) Patna",
		"2. What is Y?",
		"1. बिहार की राजधानी क्या है?",
		"(A) पटना",
	})
	if len(qs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(qs))
	}
	q1 := qs[0]
	if q1.Question != "What is the capital of Bihar?" {
		t.Fatalf("unexpected english stem: %q", q1.Question)
	}
	if q1.QuestionHindi != "बिहार की राजधानी क्या है?" {
		t.Fatalf("unexpected hindi stem: %q", q1.QuestionHindi)
	}
	if !reflect.DeepEqual(q1.Options, []string{"Patna"}) {
		t.Fatalf("unexpected options: %+v", q1.Options)
	}
	if !reflect.DeepEqual(q1.OptionsHindi, []string{"पटना"}) {
		t.Fatalf("unexpected hindi options: %+v", q1.OptionsHindi)
	}
}

func TestAccumulatorRepeatedQuestionLineExtendsStem(t *testing.T) {
	qs := feedAll(t, []string{
		"1. First half of the stem",
		"1. second half",
	})
	if len(qs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(qs))
	}
	if got := qs[0].Question; got != "First half of the stem second half" {
		t.Fatalf("unexpected stem: %q", got)
	}
}

func TestAccumulatorContinuationExtendsLastOption(t *testing.T) {
	qs := feedAll(t, []string{
		"1. Stem",
		"(A) Option text",
		"continued",
	})
	if got := qs[0].Options; !reflect.DeepEqual(got, []string{"Option text continued"}) {
		t.Fatalf("unexpected options: %+v", got)
	}
	if qs[0].Question != "Stem" {
		t.Fatalf("continuation leaked into stem: %q", qs[0].Question)
	}
}

func TestAccumulatorContinuationExtendsStemBeforeOptions(t *testing.T) {
	qs := feedAll(t, []string{
		"1. A question that wraps",
		"onto the next line",
		"(A) Alpha",
	})
	if got := qs[0].Question; got != "A question that wraps onto the next line" {
		t.Fatalf("unexpected stem: %q", got)
	}
}

func TestAccumulatorRoutesContinuationPerScript(t *testing.T) {
	// English already has an option open; Hindi does not. An English
	// continuation extends the option while a Hindi continuation still
	// extends the Hindi stem.
	qs := feedAll(t, []string{
		"1. Stem",
		"1. हिन्दी प्रश्न",
		"(A) Alpha",
		"english tail",
		"हिन्दी पूंछ",
	})
	q := qs[0]
	if !reflect.DeepEqual(q.Options, []string{"Alpha english tail"}) {
		t.Fatalf("unexpected options: %+v", q.Options)
	}
	if q.QuestionHindi != "हिन्दी प्रश्न हिन्दी पूंछ" {
		t.Fatalf("unexpected hindi stem: %q", q.QuestionHindi)
	}
}

func TestAccumulatorDropsStraysBeforeFirstQuestion(t *testing.T) {
	qs := feedAll(t, []string{
		"(A) stray option artifact",
		"stray continuation",
		"1. Real question",
	})
	if len(qs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(qs))
	}
	if len(qs[0].Options) != 0 {
		t.Fatalf("stray option attached to record: %+v", qs[0].Options)
	}
	if qs[0].Question != "Real question" {
		t.Fatalf("unexpected stem: %q", qs[0].Question)
	}
}

func TestAccumulatorNoiseNeverReachesRecords(t *testing.T) {
	qs := feedAll(t, []string{
		"1. Real question",
		"Time Allowed: 2 hours",
		"(A) Alpha",
	})
	if qs[0].Question != "Real question" {
		t.Fatalf("noise leaked into stem: %q", qs[0].Question)
	}
	if !reflect.DeepEqual(qs[0].Options, []string{"Alpha"}) {
		t.Fatalf("unexpected options: %+v", qs[0].Options)
	}
}

func TestAccumulatorPlaceholderMetadata(t *testing.T) {
	qs := feedAll(t, []string{"7. Stem"})
	q := qs[0]
	if q.SourceInfo != testSrc {
		t.Fatalf("unexpected source info: %+v", q.SourceInfo)
	}
	if q.Classification.Subject != "Unknown" || q.Properties.QuestionType != "MCQ" {
		t.Fatalf("unexpected placeholders: %+v %+v", q.Classification, q.Properties)
	}
	if q.Correct != "" || q.Explanation != (mcq.Explanation{}) {
		t.Fatalf("answer fields must stay empty at this stage")
	}
	if q.Tags == nil || q.Options == nil || q.OptionsHindi == nil {
		t.Fatalf("list fields must be empty, not nil, for JSON output")
	}
}
