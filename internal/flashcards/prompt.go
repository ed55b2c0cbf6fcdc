package flashcards

import "fmt"

// promptTemplate asks for an exact number of reinforcement card pairs
// as a bare JSON object.
const promptTemplate = `Based on this quiz question and answer, generate exactly %d flash card-style
question/answer pairs that help reinforce the concept.

Original Question: %s
Correct Answer: %s

Return ONLY valid JSON (no markdown):
{
    "flashcards": [
        {"question": "...", "answer": "..."},
        {"question": "...", "answer": "..."}
    ]
}`

func buildPrompt(count int, question, answer string) string {
	return fmt.Sprintf(promptTemplate, count, question, answer)
}
