package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhik/quizzer/internal/config"
	"github.com/abhik/quizzer/internal/llm"
	"github.com/abhik/quizzer/internal/quizgen"
	"github.com/abhik/quizzer/internal/sessionlog"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated questions for a topic (no logging, no scoring)",
	Long: `Generate questions for one topic and print them with their answers.

This is a stateless developer tool: nothing is logged and nothing is
scored. Useful for judging question quality before putting a topic in a
quiz config.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic to generate questions about (required)")
	previewCmd.Flags().String("kind", "mcq", "Question kind: mcq, tf, multi_select, or short")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().String("role", config.DefaultRole, "Persona line for the system prompt")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	kindVal, _ := cmd.Flags().GetString("kind")
	count, _ := cmd.Flags().GetInt("count")
	role, _ := cmd.Flags().GetString("role")

	kind, err := quizgen.ParseKind(kindVal)
	if err != nil {
		return fmt.Errorf("invalid kind %q: must be mcq, tf, multi_select, or short", kindVal)
	}

	ctx := cmd.Context()
	pc := llm.ApplyEnv(llm.DefaultConfig())
	if err := pc.Validate(); err != nil {
		return err
	}
	provider, err := llm.NewProvider(ctx, pc, sessionlog.NullLogger{})
	if err != nil {
		return err
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	fmt.Printf("Topic: %s (%s)\n", topic, kind)
	fmt.Printf("Generating %d questions with %s...\n\n", count, provider.ModelID())

	var recent []string
	for i := 1; i <= count; i++ {
		q, err := gen.Generate(ctx, quizgen.Request{
			Topic:  topic,
			Kind:   kind,
			Role:   role,
			Recent: recent,
		})
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}
		recent = append(recent, q.Prompt)

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %s. %s\n", quizgen.OptionLetter(j), opt)
		}
		fmt.Printf("Answer: %s\n\n", q.CorrectAnswerText())
	}
	return nil
}
