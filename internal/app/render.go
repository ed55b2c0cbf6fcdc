package app

import (
	"fmt"

	"github.com/abhik/quizzer/internal/quizgen"
)

// renderQuestion writes the status line, topic, prompt, and the
// kind-specific body: lettered options for choice questions, a
// select-all hint for multi-select, a code block for short answers.
func (a *App) renderQuestion(q *quizgen.Question) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, hintStyle.Render(fmt.Sprintf("Question %d ready.", a.ctrl.Score().Answered+1)))
	fmt.Fprintln(a.out, topicStyle.Render(q.Topic))
	fmt.Fprintln(a.out)

	if q.Kind == quizgen.KindShortAnswer {
		fmt.Fprintln(a.out, codeStyle.Render(q.Prompt))
	} else {
		fmt.Fprintln(a.out, promptStyle.Render(q.Prompt))
	}

	switch q.Kind {
	case quizgen.KindMultiSelect:
		fmt.Fprintln(a.out, hintStyle.Render("(Select all that apply)"))
		a.renderOptions(q)
	case quizgen.KindMultipleChoice:
		a.renderOptions(q)
	}
	fmt.Fprintln(a.out)
}

func (a *App) renderOptions(q *quizgen.Question) {
	for i, opt := range q.Options {
		fmt.Fprintf(a.out, "  %s. %s\n", quizgen.OptionLetter(i), opt)
	}
}

// answerPrompt is the input prompt shown for the question's kind.
func answerPrompt(q *quizgen.Question) string {
	switch q.Kind {
	case quizgen.KindMultipleChoice:
		return fmt.Sprintf("Answer (A-%s): ", quizgen.OptionLetter(len(q.Options)-1))
	case quizgen.KindTrueFalse:
		return "Answer (true/false): "
	case quizgen.KindMultiSelect:
		return "Answer (letters, comma separated): "
	default:
		return "Answer: "
	}
}
