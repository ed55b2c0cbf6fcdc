package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhik/quizzer/internal/llm"
	"github.com/abhik/quizzer/internal/sessionlog"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check provider configuration with a minimal request",
	Long: `Check resolves the AI provider from flags and environment, sends a
minimal request, and reports the model and round-trip latency.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("provider", "", "Provider to check (default: QUIZZER_PROVIDER or groq)")
	checkCmd.Flags().String("model", "", "Model override")
}

func runCheck(cmd *cobra.Command, args []string) error {
	pc := llm.ApplyEnv(llm.DefaultConfig())
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		pc.Provider = strings.ToLower(strings.TrimSpace(p))
	}
	if m, _ := cmd.Flags().GetString("model"); m != "" {
		pc = pc.WithModel(m)
	}
	if err := pc.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	provider, err := llm.NewProvider(ctx, pc, sessionlog.NullLogger{})
	if err != nil {
		return err
	}

	fmt.Printf("Provider: %s\n", pc.Provider)
	fmt.Printf("Model:    %s\n", provider.ModelID())

	start := time.Now()
	resp, err := provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: ok"}},
		MaxTokens: 8,
	})
	latency := time.Since(start)

	if err != nil {
		// A truncated reply still proves the round trip worked.
		var truncated *llm.ErrMaxTokensExceeded
		if !errors.As(err, &truncated) {
			return fmt.Errorf("provider check failed: %w", err)
		}
	}

	fmt.Printf("Latency:  %s\n", latency.Round(time.Millisecond))
	if resp != nil {
		fmt.Printf("Tokens:   %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}
	fmt.Println("OK")
	return nil
}
