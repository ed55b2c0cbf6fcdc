package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhik/quizzer/internal/sessionlog"
)

// KnownProviders lists every provider name NewProvider accepts, in
// display order.
func KnownProviders() []string {
	return []string{"groq", "gemini", "flash", "lite", "ollama", "anthropic", "mock"}
}

// KnownProvider reports whether name selects a provider.
func KnownProvider(name string) bool {
	for _, p := range KnownProviders() {
		if p == name {
			return true
		}
	}
	return false
}

// NewProvider creates a Provider from configuration, wrapped with the
// transcript middleware. Each Generate call performs exactly one
// provider request; retry policy belongs to the caller.
func NewProvider(ctx context.Context, cfg Config, log sessionlog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "groq":
		base, err = NewGroqProvider(cfg.Groq)
	case "gemini", "flash", "lite":
		gemCfg := cfg.Gemini
		if gemCfg.Model == "" {
			gemCfg.Model = cfg.Provider
		}
		base, err = NewGeminiProvider(ctx, gemCfg)
	case "ollama":
		base, err = NewOllamaProvider(cfg.Ollama)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q (supported: %s)", cfg.Provider, strings.Join(KnownProviders(), ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if cfg.Timeout > 0 {
		base = &deadlineProvider{inner: base, timeout: cfg.Timeout}
	}
	return WithTranscript(base, cfg.Provider, log), nil
}

// deadlineProvider bounds each request with Config.Timeout. It sits
// inside the transcript wrapper so timed-out calls are still recorded.
type deadlineProvider struct {
	inner   Provider
	timeout time.Duration
}

func (p *deadlineProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.inner.Generate(ctx, req)
}

func (p *deadlineProvider) ModelID() string { return p.inner.ModelID() }
