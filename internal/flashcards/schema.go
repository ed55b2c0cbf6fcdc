package flashcards

import "github.com/abhik/quizzer/internal/llm"

var deckSchema = &llm.Schema{
	Name:        "flashcard-deck",
	Description: "Reinforcement flash cards for a quiz question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"flashcards": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"answer":   map[string]any{"type": "string"},
					},
					"required": []any{"question", "answer"},
				},
			},
		},
		"required": []any{"flashcards"},
	},
}
