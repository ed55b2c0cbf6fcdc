package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "groq", "gemini", "flash", "lite", "ollama", "anthropic", "mock".
	// "flash" and "lite" are Gemini model shorthands kept from the quiz
	// config format.
	Provider string

	Groq      GroqConfig
	Gemini    GeminiConfig
	Ollama    OllamaConfig
	Anthropic AnthropicConfig

	// Timeout is the maximum duration for a single LLM request.
	// Default: 30s.
	Timeout time.Duration
}

// GroqConfig holds Groq-specific configuration. Groq exposes an
// OpenAI-compatible chat completions API.
type GroqConfig struct {
	APIKey  string
	Model   string // Default: "llama3-70b-8192"
	BaseURL string // Default: "https://api.groq.com/openai/v1"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-2.0-flash"
}

// OllamaConfig holds configuration for a locally hosted Ollama server,
// reached through its OpenAI-compatible endpoint. No API key required.
type OllamaConfig struct {
	Model   string // Default: "llama3"
	BaseURL string // Default: "http://localhost:11434/v1"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "groq",
		Groq: GroqConfig{
			Model: "llama3-70b-8192",
		},
		Gemini: GeminiConfig{
			// Model left empty so provider shorthands (flash, lite)
			// can pick their own default in the factory.
		},
		Ollama: OllamaConfig{
			Model: "llama3",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	return ApplyEnv(DefaultConfig())
}

// ApplyEnv overlays environment variables on cfg. Standard provider key
// variables (GROQ_API_KEY, GEMINI_API_KEY, ANTHROPIC_API_KEY) are read
// directly; QUIZZER_* variables override provider and model selection.
func ApplyEnv(cfg Config) Config {
	if p := os.Getenv("QUIZZER_PROVIDER"); p != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(p))
	}

	// QUIZZER_MODEL targets whichever provider is active; the
	// per-provider model variables below win when both are set.
	if m := os.Getenv("QUIZZER_MODEL"); m != "" {
		cfg = cfg.WithModel(m)
	}

	if k := os.Getenv("GROQ_API_KEY"); k != "" {
		cfg.Groq.APIKey = k
	}
	if m := os.Getenv("QUIZZER_GROQ_MODEL"); m != "" {
		cfg.Groq.Model = m
	}

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("QUIZZER_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if u := os.Getenv("OLLAMA_HOST"); u != "" {
		cfg.Ollama.BaseURL = u
	}
	if m := os.Getenv("QUIZZER_OLLAMA_MODEL"); m != "" {
		cfg.Ollama.Model = m
	}

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("QUIZZER_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Groq → Gemini → Anthropic) and returns a Config for the first
// provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()

	if cfg.Groq.APIKey != "" {
		cfg.Provider = "groq"
		return cfg, true
	}
	if cfg.Gemini.APIKey != "" {
		cfg.Provider = "gemini"
		return cfg, true
	}
	if cfg.Anthropic.APIKey != "" {
		cfg.Provider = "anthropic"
		return cfg, true
	}

	return Config{}, false
}

// WithModel returns a copy of the config with the active provider's
// model replaced. Empty model leaves the default in place.
func (c Config) WithModel(model string) Config {
	if model == "" {
		return c
	}
	switch c.Provider {
	case "groq":
		c.Groq.Model = model
	case "gemini", "flash", "lite":
		c.Gemini.Model = model
	case "ollama":
		c.Ollama.Model = model
	case "anthropic":
		c.Anthropic.Model = model
	}
	return c
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "groq":
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required for the groq provider")
		}
	case "gemini", "flash", "lite":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the %s provider", c.Provider)
		}
	case "ollama":
		// Local server, no API key needed.
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
