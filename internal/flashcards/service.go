// Package flashcards generates reinforcement question/answer cards from
// a scored quiz question and appends them to a per-session CSV deck.
package flashcards

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhik/quizzer/internal/llm"
)

// DefaultCount is the number of cards requested per generation.
const DefaultCount = 10

const (
	maxTokens   = 1024
	temperature = 0.7
)

// Card is a single flash card.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Config parameterizes card generation.
type Config struct {
	// Count is the number of cards requested per generation.
	// Zero means DefaultCount.
	Count int
}

// Service generates flash cards through an LLM provider.
type Service struct {
	provider llm.Provider
	count    int
}

// NewService builds a Service on the provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	count := cfg.Count
	if count <= 0 {
		count = DefaultCount
	}
	return &Service{provider: provider, count: count}
}

// Generate asks the model for reinforcement cards covering one scored
// question and its correct answer. A reply without a single usable card
// is an error.
func (s *Service) Generate(ctx context.Context, question, answer string) ([]Card, error) {
	ctx = llm.WithPurpose(ctx, "flashcards")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(s.count, question, answer)},
		},
		Schema:      deckSchema,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("flashcard generation failed: %w", err)
	}

	return parseCards(resp.Content)
}

// parseCards reads the flashcards object out of a raw model reply,
// dropping cards with a blank side.
func parseCards(raw json.RawMessage) ([]Card, error) {
	var payload struct {
		Flashcards []Card `json:"flashcards"`
	}
	if err := json.Unmarshal(llm.StripFences(raw), &payload); err != nil {
		return nil, fmt.Errorf("flashcard response is not a valid deck: %w", err)
	}

	var cards []Card
	for _, c := range payload.Flashcards {
		c.Question = strings.TrimSpace(c.Question)
		c.Answer = strings.TrimSpace(c.Answer)
		if c.Question == "" || c.Answer == "" {
			continue
		}
		cards = append(cards, c)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("flashcard response contained no cards")
	}
	return cards, nil
}
