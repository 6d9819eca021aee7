// Package mcq defines the question-record data model emitted by the
// extraction pipeline. Field names and nesting mirror the JSON schema consumed
// by the downstream question bank, so struct tags here are load-bearing.
package mcq

// SourceInfo identifies the exam a question was lifted from. All three fields
// are supplied per run from configuration, never parsed out of page content.
type SourceInfo struct {
	ExamName      string `json:"examName"`
	ExamYear      int    `json:"examYear"`
	ExamDateShift string `json:"examDateShift"`
}

// Classification is filled by a separate tagging stage; the extractor emits
// placeholder values only.
type Classification struct {
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	SubTopic string `json:"subTopic"`
}

// Properties carries static per-question attributes.
type Properties struct {
	Difficulty   string `json:"difficulty"`
	QuestionType string `json:"questionType"`
}

// Explanation holds the worked-solution fields. The extractor leaves every
// field empty; an enrichment stage populates them later.
type Explanation struct {
	Summary           string `json:"summary"`
	AnalysisCorrect   string `json:"analysis_correct"`
	AnalysisIncorrect string `json:"analysis_incorrect"`
	Conclusion        string `json:"conclusion"`
	Fact              string `json:"fact"`
}

// Question is one multiple-choice question in up to two languages. The English
// and Hindi stems and option lists accumulate independently; option order is
// first-seen order and stands in for the option letters, which are never
// stored.
type Question struct {
	ID             string         `json:"id"`
	SourceInfo     SourceInfo     `json:"sourceInfo"`
	Classification Classification `json:"classification"`
	Tags           []string       `json:"tags"`
	Properties     Properties     `json:"properties"`
	Question       string         `json:"question"`
	QuestionHindi  string         `json:"question_hi"`
	Options        []string       `json:"options"`
	OptionsHindi   []string       `json:"options_hi"`
	Correct        string         `json:"correct"`
	Explanation    Explanation    `json:"explanation"`
}

// New returns a question with the fixed placeholder metadata every freshly
// parsed record starts with. Answer-key resolution and classification happen
// downstream, so Correct and Classification stay at their defaults.
func New(id string, src SourceInfo) *Question {
	return &Question{
		ID:         id,
		SourceInfo: src,
		Classification: Classification{
			Subject:  "Unknown",
			Topic:    "Unknown",
			SubTopic: "Unknown",
		},
		Tags: []string{},
		Properties: Properties{
			Difficulty:   "Medium",
			QuestionType: "MCQ",
		},
		Options:      []string{},
		OptionsHindi: []string{},
	}
}
