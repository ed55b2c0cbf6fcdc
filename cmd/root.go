package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizzer",
	Short: "AI-generated quizzes in the terminal",
	Long: `Quizzer turns a topic list into an interactive quiz: questions are
generated by an AI provider, answers are scored on the spot, and every
session can be logged to a JSONL or CSV transcript.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
