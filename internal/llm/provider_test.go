package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhik/quizzer/internal/sessionlog"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.TotalTokens != 15 {
		t.Fatalf("expected 15 total tokens, got %d", resp1.Usage.TotalTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "question-gen")
	if p := PurposeFrom(ctx); p != "question-gen" {
		t.Fatalf("expected 'question-gen', got %q", p)
	}
}

func TestTopicContext(t *testing.T) {
	ctx := context.Background()
	if topic := TopicFrom(ctx); topic != "" {
		t.Fatalf("expected empty topic, got %q", topic)
	}

	ctx = WithTopic(ctx, "Python Lists")
	if topic := TopicFrom(ctx); topic != "Python Lists" {
		t.Fatalf("expected 'Python Lists', got %q", topic)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "groq without key",
			cfg:     Config{Provider: "groq"},
			wantErr: true,
		},
		{
			name:    "groq with key",
			cfg:     Config{Provider: "groq", Groq: GroqConfig{APIKey: "gsk-test"}},
			wantErr: false,
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "flash shorthand without key",
			cfg:     Config{Provider: "flash"},
			wantErr: true,
		},
		{
			name:    "lite shorthand with key",
			cfg:     Config{Provider: "lite", Gemini: GeminiConfig{APIKey: "ai-test"}},
			wantErr: false,
		},
		{
			name:    "ollama needs no key",
			cfg:     Config{Provider: "ollama"},
			wantErr: false,
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv_OverlaysOnExisting(t *testing.T) {
	t.Setenv("QUIZZER_PROVIDER", " Gemini ")
	t.Setenv("GEMINI_API_KEY", "ai-env-key")
	t.Setenv("QUIZZER_MODEL", "gemini-2.5-pro")
	t.Setenv("QUIZZER_GROQ_MODEL", "mixtral-8x7b-32768")
	t.Setenv("GROQ_API_KEY", "")

	cfg := DefaultConfig()
	cfg.Groq.APIKey = "gsk-from-file"

	got := ApplyEnv(cfg)
	if got.Provider != "gemini" {
		t.Fatalf("expected provider 'gemini', got %q", got.Provider)
	}
	if got.Gemini.APIKey != "ai-env-key" {
		t.Fatalf("expected env API key, got %q", got.Gemini.APIKey)
	}
	if got.Gemini.Model != "gemini-2.5-pro" {
		t.Fatalf("expected QUIZZER_MODEL applied to active provider, got %q", got.Gemini.Model)
	}
	if got.Groq.Model != "mixtral-8x7b-32768" {
		t.Fatalf("expected env groq model, got %q", got.Groq.Model)
	}
	// Values the environment does not set survive the overlay.
	if got.Groq.APIKey != "gsk-from-file" {
		t.Fatalf("expected file API key preserved, got %q", got.Groq.APIKey)
	}
}

func TestApplyEnv_ProviderModelWinsOverGeneric(t *testing.T) {
	t.Setenv("QUIZZER_PROVIDER", "gemini")
	t.Setenv("QUIZZER_MODEL", "gemini-2.5-pro")
	t.Setenv("QUIZZER_GEMINI_MODEL", "gemini-2.0-flash-lite")

	got := ApplyEnv(DefaultConfig())
	if got.Gemini.Model != "gemini-2.0-flash-lite" {
		t.Fatalf("expected provider-specific model to win, got %q", got.Gemini.Model)
	}
}

func TestKnownProvider(t *testing.T) {
	for _, name := range KnownProviders() {
		if !KnownProvider(name) {
			t.Errorf("KnownProvider(%q) = false, want true", name)
		}
	}
	if KnownProvider("watson") {
		t.Error("KnownProvider(\"watson\") = true, want false")
	}
}

func TestConfig_WithModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "groq"

	got := cfg.WithModel("mixtral-8x7b-32768")
	if got.Groq.Model != "mixtral-8x7b-32768" {
		t.Fatalf("expected groq model override, got %q", got.Groq.Model)
	}

	cfg.Provider = "lite"
	got = cfg.WithModel("gemini-2.5-flash")
	if got.Gemini.Model != "gemini-2.5-flash" {
		t.Fatalf("expected gemini model override, got %q", got.Gemini.Model)
	}

	got = cfg.WithModel("")
	if got.Gemini.Model != cfg.Gemini.Model {
		t.Fatalf("empty model should leave config unchanged")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, sessionlog.NullLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected model id mock, got %q", p.ModelID())
	}
}

func TestNewProvider_UnknownName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "watson"

	_, err := NewProvider(context.Background(), cfg, sessionlog.NullLogger{})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "unknown LLM provider") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestDeadlineProvider_BoundsRequests(t *testing.T) {
	p := &deadlineProvider{inner: blockingProvider{}, timeout: 10 * time.Millisecond}

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
