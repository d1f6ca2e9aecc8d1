package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Identifiers are lower case words joined by single spaces or hyphens,
// e.g. "tectonic plates", "earth-unit" or "id-2b1f...".
var identifierRegex = regexp.MustCompile(`^[a-z0-9]+(?:[ -][a-z0-9]+)*$`)

const (
	maxIdentifierLength = 64
	maxAnswerLength     = 500
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateIdentifier checks a catalog or sticker identifier taken from a URL
func ValidateIdentifier(field, value string) error {
	if value == "" {
		return ValidationError{Field: field, Message: field + " is required"}
	}
	if len(value) > maxIdentifierLength {
		return ValidationError{Field: field, Message: fmt.Sprintf("%s must be at most %d characters", field, maxIdentifierLength)}
	}
	if !identifierRegex.MatchString(value) {
		return ValidationError{Field: field, Message: "invalid " + field}
	}
	return nil
}

// ValidateAnswer checks a free text quiz answer
func ValidateAnswer(answer string) error {
	if !utf8.ValidString(answer) {
		return ValidationError{Field: "answer", Message: "answer must be valid UTF-8"}
	}
	if utf8.RuneCountInString(strings.TrimSpace(answer)) > maxAnswerLength {
		return ValidationError{Field: "answer", Message: fmt.Sprintf("answer must be at most %d characters", maxAnswerLength)}
	}
	return nil
}
