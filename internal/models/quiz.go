package models

// QuestionType selects how an answer is judged
type QuestionType string

const (
	QuestionMultipleChoice    QuestionType = "multiple-choice"
	QuestionSentenceSelection QuestionType = "sentence-selection"
	QuestionGrammar           QuestionType = "grammar"
	QuestionFillBlank         QuestionType = "fill-blank"
	QuestionRelativeClause    QuestionType = "relative-clause"
	QuestionSpeaking          QuestionType = "speaking"
	QuestionWriting           QuestionType = "writing"
)

// HasOptions reports whether the question is answered by picking an option
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionMultipleChoice, QuestionSentenceSelection, QuestionGrammar, QuestionRelativeClause:
		return true
	}
	return false
}

// Question is a single quiz question. For option questions CorrectOption is
// the zero-based index of the right option; fill-blank questions use
// CorrectText instead.
type Question struct {
	ID            int          `json:"id"`
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectOption int          `json:"-"`
	CorrectText   string       `json:"-"`
	Explanation   string       `json:"explanation,omitempty"`
	RelatedWord   string       `json:"relatedWord"`
}

// QuizSection groups related questions
type QuizSection struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Quiz is an ordered list of sections belonging to one chapter
type Quiz struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	Chapter             string        `json:"chapter"`
	CompletionKey       string        `json:"-"`
	RequirePerfectScore bool          `json:"requirePerfectScore"`
	Sections            []QuizSection `json:"sections"`
}

// Questions flattens all sections into a single ordered list
func (q *Quiz) Questions() []Question {
	var out []Question
	for _, section := range q.Sections {
		out = append(out, section.Questions...)
	}
	return out
}
