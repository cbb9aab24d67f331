// Package domain holds question validation for the answer workflow
package domain

import (
	"strings"
	"unicode"

	perr "repoqa/internal/platform/errors"
)

// maxQuestionLen is the byte cap on a trimmed question
const maxQuestionLen = 2000

// Question is a validated, trimmed user question
// The zero value is invalid; construct one through NewQuestion
type Question struct {
	text string
}

// String returns the trimmed question text
func (q Question) String() string { return q.text }

// IsZero reports whether q was never constructed through NewQuestion
func (q Question) IsZero() bool { return q.text == "" }

// NewQuestion trims and validates raw question text.
// Newlines and tabs are fine; any other control character is rejected
func NewQuestion(raw string) (Question, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return Question{}, perr.Validationf("question cannot be empty")
	}
	if len(trimmed) > maxQuestionLen {
		return Question{}, perr.Validationf(
			"question must be %d characters or less, got %d", maxQuestionLen, len(trimmed))
	}
	for _, c := range trimmed {
		if unicode.IsControl(c) && c != '\n' && c != '\t' {
			return Question{}, perr.Validationf("question contains invalid control characters")
		}
	}

	return Question{text: trimmed}, nil
}
