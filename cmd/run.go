package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhik/quizzer/internal/app"
	"github.com/abhik/quizzer/internal/config"
	"github.com/abhik/quizzer/internal/flashcards"
	"github.com/abhik/quizzer/internal/llm"
	"github.com/abhik/quizzer/internal/quizgen"
	"github.com/abhik/quizzer/internal/sessionlog"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive quiz session",
	Long: `Run loads a quiz config (JSON or YAML), generates questions with the
configured AI provider, and scores your answers interactively.`,
	RunE: runQuiz,
}

func init() {
	runCmd.Flags().StringP("config", "c", "", "Path to the quiz config file (required)")
	runCmd.Flags().Int("questions", 0, "Override the number of questions")
	runCmd.Flags().Bool("shuffle", false, "Shuffle the question plan")
	_ = runCmd.MarkFlagRequired("config")
}

// runQuiz builds the session from config, environment, and flags, in
// that priority order, and hands it to the interactive loop.
func runQuiz(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")

	cfg, warnings, err := config.Load(path)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if n, _ := cmd.Flags().GetInt("questions"); n > 0 {
		cfg.Questions = n
	}
	if cmd.Flags().Changed("shuffle") {
		cfg.Shuffle, _ = cmd.Flags().GetBool("shuffle")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, err := sessionlog.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer log.Close()

	pc := llm.ApplyEnv(cfg.ProviderConfig())
	if err := pc.Validate(); err != nil {
		return err
	}
	provider, err := llm.NewProvider(ctx, pc, log)
	if err != nil {
		return err
	}

	a := app.New(app.Options{
		Config:    cfg,
		Generator: quizgen.New(provider, quizgen.DefaultConfig()),
		Logger:    log,
		Cards:     flashcards.NewService(provider, flashcards.Config{Count: cfg.Flashcards.Count}),
		Model:     provider.ModelID(),
	})
	return a.Run(ctx)
}
