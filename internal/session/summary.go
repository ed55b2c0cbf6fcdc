package session

import (
	"fmt"
	"math"
)

// Summary is the end-of-session result.
type Summary struct {
	Score   int
	Total   int
	Percent float64 // 0-100, rounded to one decimal
}

// String renders the summary line, e.g. "Score: 2/3 (66.7%)".
func (s Summary) String() string {
	return fmt.Sprintf("Score: %d/%d (%.1f%%)", s.Score, s.Total, s.Percent)
}

// Summary builds the final result from the running score. An unanswered
// session scores 0%.
func (c *Controller) Summary() Summary {
	var pct float64
	if c.score.Answered > 0 {
		pct = float64(c.score.Correct) / float64(c.score.Answered) * 100
	}
	return Summary{
		Score:   c.score.Correct,
		Total:   c.score.Answered,
		Percent: math.Round(pct*10) / 10,
	}
}
