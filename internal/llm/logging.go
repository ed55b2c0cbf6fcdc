package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhik/quizzer/internal/sessionlog"
)

// TranscriptProvider is a decorator that records every LLM exchange to
// the session log.
type TranscriptProvider struct {
	inner    Provider
	provider string
	log      sessionlog.Logger
}

// WithTranscript wraps a Provider with exchange logging. The provider
// argument is the configured provider name recorded with each exchange.
func WithTranscript(p Provider, provider string, log sessionlog.Logger) Provider {
	return &TranscriptProvider{inner: p, provider: provider, log: log}
}

func (t *TranscriptProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := t.inner.Generate(ctx, req)

	x := sessionlog.Exchange{
		Provider:  t.provider,
		Model:     t.inner.ModelID(),
		Topic:     TopicFrom(ctx),
		Purpose:   PurposeFrom(ctx),
		Prompt:    serializeRequest(req),
		LatencyMs: time.Since(start).Milliseconds(),
	}

	if resp != nil {
		x.Model = resp.Model
		x.RawResponse = string(resp.Content)
	}
	if err != nil {
		x.RawResponse = fmt.Sprintf("(error: %v)", err)
	}

	// Record the exchange but never fail the request over it.
	if logErr := t.log.RecordExchange(x); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM exchange: %v\n", logErr)
	}

	return resp, err
}

func (t *TranscriptProvider) ModelID() string {
	return t.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
