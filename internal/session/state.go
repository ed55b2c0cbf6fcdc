package session

import (
	"fmt"

	"github.com/abhik/quizzer/internal/quizgen"
)

// State is the controller's position in the session lifecycle.
type State int

const (
	// StateAwaitingQuestion means no question is up yet; Advance serves one.
	StateAwaitingQuestion State = iota

	// StateQuestionPending means a question is displayed and unanswered.
	StateQuestionPending

	// StateAnswered means the current question has been scored.
	StateAnswered

	// StateComplete means the session is over; no further transitions.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateAwaitingQuestion:
		return "awaiting-question"
	case StateQuestionPending:
		return "question-pending"
	case StateAnswered:
		return "answered"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// StateError reports an operation called in a state that does not allow it.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s in state %s", e.Op, e.State)
}

// KindMismatchError reports an answer built for a different question kind
// than the pending question. The submission is rejected without scoring.
type KindMismatchError struct {
	QuestionKind quizgen.Kind
	AnswerKind   quizgen.Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("answer kind %q does not match question kind %q", e.AnswerKind, e.QuestionKind)
}
