package quizgen

import (
	"fmt"
	"strings"
)

// StructuralValidator checks prompt and option shape: non-blank prompt,
// at least two options for option-bearing kinds, every option non-blank
// and unique case-insensitively.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if strings.TrimSpace(q.Prompt) == "" {
		return &ValidationError{
			Check:   v.Name(),
			Code:    ValidationEmptyPrompt,
			Message: "question text is blank",
		}
	}

	if q.Kind != KindMultipleChoice && q.Kind != KindMultiSelect {
		return nil
	}

	if len(q.Options) < 2 {
		return &ValidationError{
			Check:   v.Name(),
			Code:    ValidationTooFewOptions,
			Message: fmt.Sprintf("need at least 2 options, got %d", len(q.Options)),
		}
	}

	seen := make(map[string]bool, len(q.Options))
	for i, o := range q.Options {
		trimmed := strings.TrimSpace(o)
		if trimmed == "" {
			return &ValidationError{
				Check:   v.Name(),
				Code:    ValidationEmptyOption,
				Message: fmt.Sprintf("option %s is blank", OptionLetter(i)),
			}
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			return &ValidationError{
				Check:   v.Name(),
				Code:    ValidationDuplicateOption,
				Message: fmt.Sprintf("duplicate option %q", trimmed),
			}
		}
		seen[key] = true
	}

	return nil
}
