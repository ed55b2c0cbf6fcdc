package quizgen

import "time"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators run on every parsed
	// question. They execute in order; the first failure rejects the
	// question.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAttempts bounds how many model replies Generate considers
	// before giving up. Only rejected replies consume attempts; provider
	// failures end the call immediately.
	MaxAttempts int

	// RetryWait is the pause before each repeat attempt. Zero disables
	// the wait.
	RetryWait time.Duration

	// MaxRecent is the maximum number of recent prompts included in the
	// do-not-repeat block.
	MaxRecent int
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators:  []Validator{&StructuralValidator{}, &AnswerBoundsValidator{}},
		MaxTokens:   512,
		Temperature: 0.7,
		MaxAttempts: 3,
		RetryWait:   time.Second,
		MaxRecent:   8,
	}
}
