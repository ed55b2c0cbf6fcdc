package quizgen

import "context"

// Generator produces quiz questions.
type Generator interface {
	// Generate produces a single question for the request.
	// Returns a validated Question or an error.
	Generate(ctx context.Context, req Request) (*Question, error)
}

// Request describes the question to generate.
type Request struct {
	// Topic the question must cover.
	Topic string

	// Kind of question to ask for.
	Kind Kind

	// Role is the persona line sent as the system message.
	Role string

	// Recent lists prompts already asked for this topic and kind,
	// included in the do-not-repeat block.
	Recent []string
}
