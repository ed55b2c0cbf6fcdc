package llm

import "fmt"

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// groqModels maps friendly names to Groq model IDs.
var groqModels = map[string]string{
	"llama3-70b": "llama3-70b-8192",
	"llama3-8b":  "llama3-8b-8192",
}

// GroqProvider wraps OpenAIProvider with Groq-specific defaults.
// Groq exposes an OpenAI-compatible API, so the underlying SDK is reused.
type GroqProvider struct {
	*OpenAIProvider
}

// NewGroqProvider creates a provider targeting the Groq API.
func NewGroqProvider(cfg GroqConfig) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}

	model := resolveModel(cfg.Model, groqModels)

	return &GroqProvider{
		OpenAIProvider: newOpenAIProvider(cfg.APIKey, model, baseURL),
	}, nil
}
