package quizgen

import "fmt"

// Validator re-checks an invariant on a built Question. The parser is
// expected to establish every invariant already; validators catch what
// slips through and guard questions built by other paths.
// Implementations must be stateless and must not mutate the question.
type Validator interface {
	// Name returns a short identifier for error messages and logging,
	// e.g. "structural", "answer-bounds".
	Name() string

	// Validate returns nil if the question passes the check.
	Validate(q *Question) *ValidationError
}

// ValidationCode classifies a validation failure.
type ValidationCode string

const (
	ValidationEmptyPrompt       ValidationCode = "empty_prompt"
	ValidationEmptyOption       ValidationCode = "empty_option"
	ValidationDuplicateOption   ValidationCode = "duplicate_option"
	ValidationTooFewOptions     ValidationCode = "too_few_options"
	ValidationAnswerOutOfBounds ValidationCode = "answer_out_of_bounds"
	ValidationNoCorrectAnswer   ValidationCode = "no_correct_answer"
)

// ValidationError describes why a question failed a check.
type ValidationError struct {
	Check   string // Name of the validator that failed
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Check, e.Message)
}
