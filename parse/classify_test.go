package parse

import "testing"

func TestClassifyQuestionStarts(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		wantID string
		wantTx string
	}{
		{"bare number dot", "1. What is X?", "1", "What is X?"},
		{"bare number paren", "10) Pick one", "10", "Pick one"},
		{"q label", "Q1. Pick one", "1", "Pick one"},
		{"q dot label spaced", "Q. 5. Pick one", "5", "Pick one"},
		{"question label", "Question 3. Pick one", "3", "Pick one"},
		{"lowercase label", "q.3. Pick one", "3", "Pick one"},
		{"hindi set prefix", "H-10. पहला प्रश्न", "10", "पहला प्रश्न"},
		{"english set prefix", "E-10. First question", "10", "First question"},
		{"lowercase set prefix", "e-7. First question", "7", "First question"},
		{"space before separator", "12 . Pick one", "12", "Pick one"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.in)
			if got.Kind != KindQuestion {
				t.Fatalf("Classify(%q).Kind = %v, want KindQuestion", tc.in, got.Kind)
			}
			if got.ID != tc.wantID {
				t.Fatalf("Classify(%q).ID = %q, want %q", tc.in, got.ID, tc.wantID)
			}
			if got.Text != tc.wantTx {
				t.Fatalf("Classify(%q).Text = %q, want %q", tc.in, got.Text, tc.wantTx)
			}
		})
	}
}

func TestClassifyOptionStarts(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		wantTx string
	}{
		{"parenthesized upper", "(A) Alpha", "Alpha"},
		{"parenthesized lower", "(b) Beta", "Beta"},
		{"paren after", "A) Gamma", "Gamma"},
		{"dot after", "A. Delta", "Delta"},
		{"parenthesized digit", "(1) Epsilon", "Epsilon"},
		{"latin marker hindi text", "(A) पटना", "पटना"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.in)
			if got.Kind != KindOption {
				t.Fatalf("Classify(%q).Kind = %v, want KindOption", tc.in, got.Kind)
			}
			if got.Text != tc.wantTx {
				t.Fatalf("Classify(%q).Text = %q, want %q", tc.in, got.Text, tc.wantTx)
			}
		})
	}
}

func TestClassifyNoiseBeatsQuestionPattern(t *testing.T) {
	// These also match the question-start numbering pattern; the keyword
	// check must win.
	lines := []string{
		"1. Time Allowed: three hours",
		"2. Maximum Marks: 150",
		"instructions for candidates",
		"Space for ROUGH WORK",
		"Booklet Series A",
	}
	for _, in := range lines {
		if got := Classify(in); got.Kind != KindNoise {
			t.Fatalf("Classify(%q).Kind = %v, want KindNoise", in, got.Kind)
		}
	}
}

func TestClassifyContinuations(t *testing.T) {
	lines := []string{
		"continued text of a wrapped line",
		"12.",        // separator but no trailing text
		"1)No space", // no space after separator
		"of the following statements",
	}
	for _, in := range lines {
		if got := Classify(in); got.Kind != KindContinuation {
			t.Fatalf("Classify(%q).Kind = %v, want KindContinuation", in, got.Kind)
		}
		if got := Classify(in); got.Text != in {
			t.Fatalf("Classify(%q).Text = %q, want full line", in, got.Text)
		}
	}
}
