package quizgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Answer is a user's answer to a question. Exactly one representation is
// meaningful, selected by Kind; build answers with the constructors.
type Answer struct {
	Kind    Kind
	Index   int    // mcq: selected option
	Indices []int  // multi_select: selected options, ascending, unique
	Bool    bool   // tf
	Text    string // short answer
}

// IndexAnswer selects a single option by index.
func IndexAnswer(i int) Answer { return Answer{Kind: KindMultipleChoice, Index: i} }

// IndicesAnswer selects a set of options. Duplicates collapse and order
// does not matter.
func IndicesAnswer(indices ...int) Answer {
	seen := make(map[int]bool, len(indices))
	set := make([]int, 0, len(indices))
	for _, i := range indices {
		if !seen[i] {
			seen[i] = true
			set = append(set, i)
		}
	}
	sort.Ints(set)
	return Answer{Kind: KindMultiSelect, Indices: set}
}

// BoolAnswer answers a true/false question.
func BoolAnswer(v bool) Answer { return Answer{Kind: KindTrueFalse, Bool: v} }

// TextAnswer answers a short answer question.
func TextAnswer(s string) Answer { return Answer{Kind: KindShortAnswer, Text: s} }

// Display renders the answer the way the user would write it: option
// letters, True/False, or the entered text.
func (a Answer) Display() string {
	switch a.Kind {
	case KindMultipleChoice:
		return OptionLetter(a.Index)
	case KindTrueFalse:
		if a.Bool {
			return "True"
		}
		return "False"
	case KindMultiSelect:
		letters := make([]string, len(a.Indices))
		for i, idx := range a.Indices {
			letters[i] = OptionLetter(idx)
		}
		return strings.Join(letters, ", ")
	case KindShortAnswer:
		return a.Text
	}
	return ""
}

// CheckAnswer reports whether ans is correct for q. The answer must have
// been built for the question's kind.
//
// Multi-select requires the exact correct set. Short answer matching is
// case-insensitive on trimmed text against any accepted answer.
func CheckAnswer(q *Question, ans Answer) bool {
	switch q.Kind {
	case KindMultipleChoice:
		return ans.Index == q.Correct

	case KindTrueFalse:
		return ans.Bool == q.CorrectBool

	case KindMultiSelect:
		if len(ans.Indices) != len(q.CorrectSet) {
			return false
		}
		for i, idx := range ans.Indices {
			if idx != q.CorrectSet[i] {
				return false
			}
		}
		return true

	case KindShortAnswer:
		got := strings.ToLower(strings.TrimSpace(ans.Text))
		for _, a := range q.Accepted {
			if got == strings.ToLower(strings.TrimSpace(a)) {
				return true
			}
		}
		return false
	}
	return false
}

// Feedback renders the feedback line for a scored answer.
func Feedback(q *Question, correct bool) string {
	if correct {
		return "Correct!"
	}

	switch q.Kind {
	case KindTrueFalse:
		if q.CorrectBool {
			return "Incorrect. The answer is True."
		}
		return "Incorrect. The answer is False."

	case KindMultiSelect:
		letters := make([]string, len(q.CorrectSet))
		for i, idx := range q.CorrectSet {
			letters[i] = OptionLetter(idx)
		}
		return fmt.Sprintf("Incorrect. Required: %s", strings.Join(letters, ", "))

	case KindShortAnswer:
		expected := ""
		if len(q.Accepted) > 0 {
			expected = q.Accepted[0]
		}
		return fmt.Sprintf("Incorrect. Expected: %s", expected)

	default:
		return fmt.Sprintf("Incorrect. The correct answer was %s.", OptionLetter(q.Correct))
	}
}

// ParseAnswerInput converts terminal input into an Answer for the kind.
// Letters and 1-based numbers select options; t/f and true/false answer
// tf questions; comma or space separated lists select multiple options.
// The returned error is suitable for a re-prompt message.
func ParseAnswerInput(kind Kind, text string) (Answer, error) {
	trimmed := strings.TrimSpace(text)

	switch kind {
	case KindMultipleChoice:
		idx, err := parseOptionToken(trimmed)
		if err != nil {
			return Answer{}, err
		}
		return IndexAnswer(idx), nil

	case KindTrueFalse:
		switch strings.ToLower(trimmed) {
		case "t", "true":
			return BoolAnswer(true), nil
		case "f", "false":
			return BoolAnswer(false), nil
		}
		return Answer{}, fmt.Errorf("answer true or false (t/f)")

	case KindMultiSelect:
		fields := strings.FieldsFunc(trimmed, func(r rune) bool { return r == ',' || r == ' ' })
		if len(fields) == 0 {
			return Answer{}, fmt.Errorf("select at least one option")
		}
		indices := make([]int, 0, len(fields))
		for _, f := range fields {
			idx, err := parseOptionToken(f)
			if err != nil {
				return Answer{}, err
			}
			indices = append(indices, idx)
		}
		return IndicesAnswer(indices...), nil

	case KindShortAnswer:
		if trimmed == "" {
			return Answer{}, fmt.Errorf("answer is empty")
		}
		return TextAnswer(trimmed), nil
	}

	return Answer{}, fmt.Errorf("unsupported question kind %q", kind)
}

// parseOptionToken reads a single option reference: a letter or a
// 1-based number.
func parseOptionToken(s string) (int, error) {
	norm := normalizeLetter(s)
	if idx := letterIndex(norm); idx >= 0 {
		return idx, nil
	}
	if n, err := strconv.Atoi(norm); err == nil && n >= 1 {
		return n - 1, nil
	}
	return 0, fmt.Errorf("invalid option %q", s)
}
