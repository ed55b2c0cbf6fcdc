package quizgen

import "github.com/abhik/quizzer/internal/llm"

// SchemaFor returns the response schema passed to the provider for a
// kind. Schema-capable adapters enforce shape at the source; the parser
// re-checks everything regardless.
func SchemaFor(kind Kind) *llm.Schema {
	switch kind {
	case KindTrueFalse:
		return tfSchema
	case KindMultiSelect:
		return multiSelectSchema
	case KindShortAnswer:
		return shortSchema
	default:
		return mcqSchema
	}
}

var mcqSchema = &llm.Schema{
	Name:        "quiz-mcq",
	Description: "A multiple-choice question with one correct option",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"description": "Always \"mcq\"",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question text",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    2,
				"description": "The options in display order; the first is lettered \"a\"",
			},
			"correct": map[string]any{
				"type":        "string",
				"description": "The letter of the correct option, e.g. \"a\"",
			},
		},
		"required": []any{"question", "options", "correct"},
	},
}

var tfSchema = &llm.Schema{
	Name:        "quiz-tf",
	Description: "A statement judged true or false",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"description": "Always \"tf\"",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The statement text",
			},
			"correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the statement is true",
			},
		},
		"required": []any{"question", "correct"},
	},
}

var multiSelectSchema = &llm.Schema{
	Name:        "quiz-multi-select",
	Description: "A question where two or more options are correct",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"description": "Always \"multi_select\"",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question text",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    2,
				"description": "The options in display order; the first is lettered \"a\"",
			},
			"correct": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "The letters of every correct option, e.g. [\"a\", \"c\"]",
			},
		},
		"required": []any{"question", "options", "correct"},
	},
}

var shortSchema = &llm.Schema{
	Name:        "quiz-short",
	Description: "A question answered with a one-line code snippet or keyword",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"description": "Always \"short\"",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question text, with input/output variable lines when needed",
			},
			"correct": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "Every acceptable answer string",
			},
		},
		"required": []any{"question", "correct"},
	},
}
