package main

import (
	"os"

	"github.com/abhik/quizzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
