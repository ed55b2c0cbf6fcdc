package quizgen

import (
	"fmt"
	"strings"
)

// buildDedup formats recently asked prompts as a numbered list,
// respecting the max limit. Oldest entries are dropped first.
func buildDedup(recent []string, max int) string {
	if max > 0 && len(recent) > max {
		recent = recent[len(recent)-max:]
	}

	var b strings.Builder
	for i, q := range recent {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
