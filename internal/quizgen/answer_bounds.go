package quizgen

import (
	"fmt"
	"strings"
)

// AnswerBoundsValidator checks that the stored correct answer actually
// selects something: indices within the option range, multi-select sets
// non-empty, strictly ascending and duplicate-free, accepted short
// answers present and non-blank.
type AnswerBoundsValidator struct{}

func (v *AnswerBoundsValidator) Name() string { return "answer-bounds" }

func (v *AnswerBoundsValidator) Validate(q *Question) *ValidationError {
	switch q.Kind {
	case KindMultipleChoice:
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return &ValidationError{
				Check:   v.Name(),
				Code:    ValidationAnswerOutOfBounds,
				Message: fmt.Sprintf("correct index %d outside %d options", q.Correct, len(q.Options)),
			}
		}

	case KindMultiSelect:
		if len(q.CorrectSet) == 0 {
			return &ValidationError{
				Check:   v.Name(),
				Code:    ValidationNoCorrectAnswer,
				Message: "no correct options selected",
			}
		}
		prev := -1
		for _, idx := range q.CorrectSet {
			if idx < 0 || idx >= len(q.Options) {
				return &ValidationError{
					Check:   v.Name(),
					Code:    ValidationAnswerOutOfBounds,
					Message: fmt.Sprintf("correct index %d outside %d options", idx, len(q.Options)),
				}
			}
			if idx <= prev {
				return &ValidationError{
					Check:   v.Name(),
					Code:    ValidationAnswerOutOfBounds,
					Message: "correct indices must be strictly ascending",
				}
			}
			prev = idx
		}

	case KindShortAnswer:
		if len(q.Accepted) == 0 {
			return &ValidationError{
				Check:   v.Name(),
				Code:    ValidationNoCorrectAnswer,
				Message: "no accepted answers",
			}
		}
		for i, a := range q.Accepted {
			if strings.TrimSpace(a) == "" {
				return &ValidationError{
					Check:   v.Name(),
					Code:    ValidationNoCorrectAnswer,
					Message: fmt.Sprintf("accepted answer %d is blank", i+1),
				}
			}
		}
	}

	return nil
}
