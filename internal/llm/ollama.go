package llm

const defaultOllamaBaseURL = "http://localhost:11434/v1"

// Ollama ignores the bearer token, but the SDK requires one to be set.
const ollamaPlaceholderKey = "ollama"

// OllamaProvider wraps OpenAIProvider to talk to a locally hosted
// Ollama server through its OpenAI-compatible endpoint.
type OllamaProvider struct {
	*OpenAIProvider
}

// NewOllamaProvider creates a provider targeting a local Ollama server.
// There is no API key; an unreachable server surfaces as
// ErrProviderUnavailable on the first Generate call.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "llama3"
	}

	return &OllamaProvider{
		OpenAIProvider: newOpenAIProvider(ollamaPlaceholderKey, model, baseURL),
	}, nil
}
