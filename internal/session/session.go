// Package session runs one quiz from first question to final score. The
// controller is a small state machine driven by the interactive loop:
// Advance serves the next planned question, SubmitAnswer scores it, End
// finishes early. It owns the score, the per-question event trail, and
// the answer records written to the session log.
package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhik/quizzer/internal/quizgen"
	"github.com/abhik/quizzer/internal/sessionlog"
)

// Config describes the session to run.
type Config struct {
	// Topics to quiz on, in plan order.
	Topics []string

	// Kinds of questions to ask per topic, in plan order.
	Kinds []quizgen.Kind

	// Role is the persona line passed through to the generator.
	Role string

	// Questions overrides the plan length when > 0, truncating or
	// cycling the topic/kind cross product.
	Questions int

	// Shuffle permutes the plan once at construction.
	Shuffle bool

	// OnLogError receives session log write failures. Defaults to a
	// stderr warning. Log failures never block a transition.
	OnLogError func(error)
}

// Score is the running tally of answered questions.
type Score struct {
	Answered int
	Correct  int
}

// ScoredEvent records one scored answer. Events are append-only and are
// not modified after SubmitAnswer returns.
type ScoredEvent struct {
	Question *quizgen.Question
	Answer   quizgen.Answer
	Correct  bool
	Feedback string
	At       time.Time
}

// recentKey groups asked prompts by topic and kind for the generator's
// do-not-repeat block.
type recentKey struct {
	topic string
	kind  quizgen.Kind
}

// Controller steps a single quiz session through its plan. It is not
// safe for concurrent use; the interactive loop drives it from one
// goroutine.
type Controller struct {
	gen  quizgen.Generator
	log  sessionlog.Logger
	cfg  Config
	plan Plan

	state   State
	next    int
	current *quizgen.Question
	score   Score
	events  []ScoredEvent
	recent  map[recentKey][]string

	logFailures int
	onLogError  func(error)
	now         func() time.Time
}

// New builds a controller with its question plan. A nil logger disables
// logging.
func New(gen quizgen.Generator, log sessionlog.Logger, cfg Config) *Controller {
	if log == nil {
		log = sessionlog.NullLogger{}
	}
	onLogError := cfg.OnLogError
	if onLogError == nil {
		onLogError = func(err error) {
			fmt.Fprintf(os.Stderr, "warning: session log: %v\n", err)
		}
	}

	return &Controller{
		gen:        gen,
		log:        log,
		cfg:        cfg,
		plan:       BuildPlan(cfg.Topics, cfg.Kinds, cfg.Questions, cfg.Shuffle),
		state:      StateAwaitingQuestion,
		recent:     make(map[recentKey][]string),
		onLogError: onLogError,
		now:        time.Now,
	}
}

// Advance generates and pins the next planned question, moving to
// StateQuestionPending. With no steps left it moves to StateComplete and
// returns nil. On generator failure the state and plan position are
// unchanged, so the caller may retry the same step.
func (c *Controller) Advance(ctx context.Context) (*quizgen.Question, error) {
	switch c.state {
	case StateAwaitingQuestion, StateAnswered:
	default:
		return nil, &StateError{Op: "advance", State: c.state}
	}

	if c.next >= len(c.plan.Steps) {
		c.current = nil
		c.state = StateComplete
		return nil, nil
	}

	step := c.plan.Steps[c.next]
	key := recentKey{topic: step.Topic, kind: step.Kind}

	q, err := c.gen.Generate(ctx, quizgen.Request{
		Topic:  step.Topic,
		Kind:   step.Kind,
		Role:   c.cfg.Role,
		Recent: c.recent[key],
	})
	if err != nil {
		return nil, err
	}

	c.next++
	c.current = q
	c.state = StateQuestionPending
	c.recent[key] = append(c.recent[key], q.Prompt)
	return q, nil
}

// SubmitAnswer scores the pending question exactly once, records the
// event, and moves to StateAnswered. An answer for the wrong kind is a
// *KindMismatchError and leaves the question pending. A submit in any
// state without a pending question is a *StateError.
func (c *Controller) SubmitAnswer(ans quizgen.Answer) (*ScoredEvent, error) {
	if c.state != StateQuestionPending {
		return nil, &StateError{Op: "submit answer", State: c.state}
	}
	if ans.Kind != c.current.Kind {
		return nil, &KindMismatchError{QuestionKind: c.current.Kind, AnswerKind: ans.Kind}
	}

	correct := quizgen.CheckAnswer(c.current, ans)
	ev := ScoredEvent{
		Question: c.current,
		Answer:   ans,
		Correct:  correct,
		Feedback: quizgen.Feedback(c.current, correct),
		At:       c.now(),
	}

	c.events = append(c.events, ev)
	c.score.Answered++
	if correct {
		c.score.Correct++
	}
	c.state = StateAnswered

	c.logAnswer(ev)
	return &ev, nil
}

// End finishes the session from any state. A pending question is
// discarded unscored. Ending a complete session is a no-op.
func (c *Controller) End() {
	c.current = nil
	c.state = StateComplete
}

// State returns the controller's current state.
func (c *Controller) State() State { return c.state }

// Current returns the question being asked or just answered, nil before
// the first question and after the session completes.
func (c *Controller) Current() *quizgen.Question { return c.current }

// Score returns the running score.
func (c *Controller) Score() Score { return c.score }

// Events returns a copy of the scored events in submission order.
func (c *Controller) Events() []ScoredEvent {
	events := make([]ScoredEvent, len(c.events))
	copy(events, c.events)
	return events
}

// PlanLen returns the total number of planned questions.
func (c *Controller) PlanLen() int { return c.plan.Len() }

// LogFailures returns the number of session log writes that failed.
func (c *Controller) LogFailures() int { return c.logFailures }

// logAnswer emits the answer record. Failures are counted and reported
// through the callback; they never fail the submission.
func (c *Controller) logAnswer(ev ScoredEvent) {
	q := ev.Question
	err := c.log.RecordAnswer(sessionlog.AnswerRecord{
		Topic:         q.Topic,
		QuestionType:  string(q.Kind),
		Question:      q.Prompt,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswerText(),
		UserAnswer:    ev.Answer.Display(),
		IsCorrect:     ev.Correct,
		Feedback:      ev.Feedback,
	})
	if err != nil {
		c.logFailures++
		c.onLogError(err)
	}
}
