package quizgen

import (
	"fmt"
	"strings"
)

// Kind identifies how a question is asked and answered.
type Kind string

const (
	// KindMultipleChoice is a single-answer question with lettered options.
	KindMultipleChoice Kind = "mcq"

	// KindTrueFalse is a statement judged true or false.
	KindTrueFalse Kind = "tf"

	// KindMultiSelect has two or more correct options; the full set must
	// be selected for credit.
	KindMultiSelect Kind = "multi_select"

	// KindShortAnswer is answered with free text, typically a one-line
	// code snippet or keyword.
	KindShortAnswer Kind = "short"
)

// kindAliases maps accepted config spellings to canonical kinds.
var kindAliases = map[string]Kind{
	"mcq":             KindMultipleChoice,
	"multiple_choice": KindMultipleChoice,
	"tf":              KindTrueFalse,
	"true_false":      KindTrueFalse,
	"multi_select":    KindMultiSelect,
	"multi":           KindMultiSelect,
	"short":           KindShortAnswer,
	"short_answer":    KindShortAnswer,
}

// ParseKind resolves a config spelling to a Kind. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown question type %q", s)
	}
	return k, nil
}

// AllKinds returns every kind in canonical order.
func AllKinds() []Kind {
	return []Kind{KindMultipleChoice, KindTrueFalse, KindMultiSelect, KindShortAnswer}
}

// Question is a generated quiz question ready for display and scoring.
// Which fields are populated depends on Kind.
type Question struct {
	// Kind identifies the question format.
	Kind Kind

	// Topic is the configured topic the question was generated for.
	Topic string

	// Prompt is the question text shown to the user. For short answer
	// questions it may span multiple lines (input/output variable hints).
	Prompt string

	// Options holds the lettered options for mcq and multi_select.
	// Empty for other kinds.
	Options []string

	// Correct is the index into Options of the right answer (mcq only).
	Correct int

	// CorrectSet holds the indices of all right answers in strictly
	// ascending order (multi_select only).
	CorrectSet []int

	// CorrectBool is the right answer for tf questions.
	CorrectBool bool

	// Accepted lists the answers accepted for short answer questions.
	// Matching is case-insensitive on trimmed text.
	Accepted []string
}

// OptionLetter returns the display letter for an option index: 0 -> "A".
func OptionLetter(i int) string {
	return string(rune('A' + i))
}

// CorrectAnswerText renders the canonical correct answer for logs and
// summaries, e.g. "B. four", "True", "A, C", or "y = str(x)".
func (q *Question) CorrectAnswerText() string {
	switch q.Kind {
	case KindMultipleChoice:
		if q.Correct >= 0 && q.Correct < len(q.Options) {
			return fmt.Sprintf("%s. %s", OptionLetter(q.Correct), q.Options[q.Correct])
		}
		return ""
	case KindTrueFalse:
		if q.CorrectBool {
			return "True"
		}
		return "False"
	case KindMultiSelect:
		letters := make([]string, len(q.CorrectSet))
		for i, idx := range q.CorrectSet {
			letters[i] = OptionLetter(idx)
		}
		return strings.Join(letters, ", ")
	case KindShortAnswer:
		if len(q.Accepted) > 0 {
			return q.Accepted[0]
		}
		return ""
	}
	return ""
}
