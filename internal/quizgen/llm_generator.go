package quizgen

import (
	"context"
	"time"

	"github.com/abhik/quizzer/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a single validated question. A reply rejected by the
// parser or a validator is retried up to MaxAttempts with a RetryWait
// pause between attempts; provider failures end the call at once.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")
	ctx = llm.WithTopic(ctx, req.Topic)

	attempts := g.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := sleepCtx(ctx, g.config.RetryWait); err != nil {
				return nil, &ProviderFailedError{Err: err}
			}
		}

		q, err := g.generateOnce(ctx, req)
		if err == nil {
			return q, nil
		}
		if !retryable(err) {
			return nil, &ProviderFailedError{Err: err}
		}
		lastErr = err
	}

	return nil, &RetriesExhaustedError{Attempts: attempts, LastErr: lastErr}
}

// generateOnce runs one build, call, parse, validate cycle.
func (g *LLMGenerator) generateOnce(ctx context.Context, req Request) (*Question, error) {
	system, user := BuildPrompt(req, g.config)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Schema:      SchemaFor(req.Kind),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	q, err := Parse(resp.Content, req.Topic, req.Kind)
	if err != nil {
		return nil, err
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// sleepCtx waits for d or until the context is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
