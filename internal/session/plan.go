package session

import (
	"math/rand/v2"

	"github.com/abhik/quizzer/internal/quizgen"
)

// Step is one planned question: a topic paired with a question kind.
type Step struct {
	Topic string
	Kind  quizgen.Kind
}

// Plan is the ordered list of questions a session will serve.
type Plan struct {
	Steps []Step
}

// Len returns the number of planned questions.
func (p Plan) Len() int { return len(p.Steps) }

// BuildPlan builds the session plan: the cross product of topics (outer,
// in order) and kinds (inner, in order). A questions count > 0 resizes
// the plan to exactly that length, truncating or cycling the cross
// product as needed. Shuffle then permutes the final plan once.
func BuildPlan(topics []string, kinds []quizgen.Kind, questions int, shuffle bool) Plan {
	var steps []Step
	for _, topic := range topics {
		for _, kind := range kinds {
			steps = append(steps, Step{Topic: topic, Kind: kind})
		}
	}

	if questions > 0 && len(steps) > 0 {
		resized := make([]Step, questions)
		for i := range resized {
			resized[i] = steps[i%len(steps)]
		}
		steps = resized
	}

	if shuffle {
		rand.Shuffle(len(steps), func(i, j int) {
			steps[i], steps[j] = steps[j], steps[i]
		})
	}

	return Plan{Steps: steps}
}
