package quiz

import (
	"strconv"
	"strings"

	"earthwords/internal/models"
)

// Grade judges a submitted answer. Option questions take the zero-based
// option index; fill-blank answers compare case-insensitively after trimming.
// Speaking and writing prompts have no reference answer and accept any
// non-blank response.
func Grade(q models.Question, answer string) bool {
	answer = strings.TrimSpace(answer)

	switch {
	case q.Type.HasOptions():
		idx, err := strconv.Atoi(answer)
		if err != nil || idx < 0 || idx >= len(q.Options) {
			return false
		}
		return idx == q.CorrectOption
	case q.Type == models.QuestionFillBlank:
		return strings.EqualFold(answer, strings.TrimSpace(q.CorrectText))
	case q.Type == models.QuestionSpeaking, q.Type == models.QuestionWriting:
		return answer != ""
	}
	return false
}
