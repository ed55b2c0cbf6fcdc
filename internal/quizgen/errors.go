package quizgen

import (
	"errors"
	"fmt"

	"github.com/abhik/quizzer/internal/llm"
)

// ProviderFailedError wraps a provider failure. The generator makes no
// further calls: whether to retry transport or auth problems is the
// caller's decision, not the generator's.
type ProviderFailedError struct {
	Err error
}

func (e *ProviderFailedError) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *ProviderFailedError) Unwrap() error { return e.Err }

// RetriesExhaustedError reports that every attempt produced a rejected
// question. LastErr is the final rejection.
type RetriesExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("no valid question after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *RetriesExhaustedError) Unwrap() error { return e.LastErr }

// retryable reports whether a fresh attempt could help: the model
// produced a bad question rather than the provider failing.
func retryable(err error) bool {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return true
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return true
	}
	var invalid *llm.ErrInvalidResponse
	return errors.As(err, &invalid)
}
