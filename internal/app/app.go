// Package app drives an interactive quiz session on a terminal: it
// renders questions, reads and validates answers, shows feedback, and
// closes the session with a score line and the final log records.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhik/quizzer/internal/config"
	"github.com/abhik/quizzer/internal/flashcards"
	"github.com/abhik/quizzer/internal/llm"
	"github.com/abhik/quizzer/internal/quizgen"
	"github.com/abhik/quizzer/internal/session"
	"github.com/abhik/quizzer/internal/sessionlog"
)

// errQuit signals that the user chose to finish early.
var errQuit = errors.New("quit")

// Options wires the quiz session together.
type Options struct {
	Config    config.Config
	Generator quizgen.Generator
	Logger    sessionlog.Logger

	// Cards enables the flash card feature when non-nil.
	Cards *flashcards.Service

	// Model is the resolved model id shown in the session header and
	// recorded at session start.
	Model string

	// Input and Output default to stdin and stdout.
	Input  io.Reader
	Output io.Writer
}

// App runs one quiz session from the first question to the score line.
type App struct {
	cfg   config.Config
	ctrl  *session.Controller
	log   sessionlog.Logger
	cards *flashcards.Service
	deck  *flashcards.Deck
	model string
	in    *lineReader
	out   io.Writer
}

// New builds an App from options, applying stdin/stdout defaults.
func New(opts Options) *App {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = sessionlog.NullLogger{}
	}

	ctrl := session.New(opts.Generator, log, session.Config{
		Topics:    opts.Config.Topics,
		Kinds:     opts.Config.Kinds,
		Role:      opts.Config.Role,
		Questions: opts.Config.Questions,
		Shuffle:   opts.Config.Shuffle,
	})

	return &App{
		cfg:   opts.Config,
		ctrl:  ctrl,
		log:   log,
		cards: opts.Cards,
		model: opts.Model,
		in:    newLineReader(in),
		out:   out,
	}
}

// Run plays the session until the plan is exhausted, the user quits, or
// the context is canceled. The summary and closing records are written
// on every path.
func (a *App) Run(ctx context.Context) error {
	a.printHeader()
	a.recordStart()

	for {
		q, err := a.ctrl.Advance(ctx)
		if err != nil {
			if retry := a.offerRetry(ctx, err); !retry {
				a.ctrl.End()
				break
			}
			continue
		}
		if q == nil {
			break
		}

		a.renderQuestion(q)

		ans, err := a.readAnswer(ctx, q)
		if err != nil {
			a.ctrl.End()
			break
		}

		ev, err := a.ctrl.SubmitAnswer(ans)
		if err != nil {
			// Unreachable in this loop; surface it rather than hide it.
			fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
			a.ctrl.End()
			break
		}

		a.printFeedback(ev)

		if err := a.afterAnswer(ctx, ev); err != nil {
			a.ctrl.End()
			break
		}
	}

	a.finish()
	return nil
}

// printHeader shows the quiz title, the model in use, and where the
// session transcript lands.
func (a *App) printHeader() {
	fmt.Fprintln(a.out, titleStyle.Render(a.cfg.Title))
	fmt.Fprintln(a.out, hintStyle.Render(fmt.Sprintf("Provider: %s (%s)", a.cfg.AI.Provider, a.model)))
	if path := a.log.Path(); path != "" {
		fmt.Fprintln(a.out, hintStyle.Render("Session log: "+path))
	}
}

func (a *App) recordStart() {
	kinds := make([]string, len(a.cfg.Kinds))
	for i, k := range a.cfg.Kinds {
		kinds[i] = string(k)
	}
	err := a.log.RecordSessionStart(sessionlog.SessionInfo{
		Title:         a.cfg.Title,
		Role:          a.cfg.Role,
		Topics:        a.cfg.Topics,
		Provider:      a.cfg.AI.Provider,
		Model:         a.model,
		QuestionTypes: kinds,
	})
	if err != nil {
		warn(err)
	}
}

// offerRetry reports a failed generation and asks whether to try the
// same question again. Canceled contexts and closed input quit.
func (a *App) offerRetry(ctx context.Context, genErr error) bool {
	if ctx.Err() != nil {
		return false
	}
	fmt.Fprintln(a.out, errorStyle.Render("Question unavailable: "+genErr.Error()))
	fmt.Fprintln(a.out, hintStyle.Render("[Enter] retry  [q] finish"))

	line, err := a.in.readLine(ctx)
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) != "q"
}

// readAnswer prompts until the input parses for the question's kind and
// stays inside the option range.
func (a *App) readAnswer(ctx context.Context, q *quizgen.Question) (quizgen.Answer, error) {
	for {
		fmt.Fprint(a.out, answerPrompt(q))

		line, err := a.in.readLine(ctx)
		if err != nil {
			return quizgen.Answer{}, err
		}

		ans, err := quizgen.ParseAnswerInput(q.Kind, line)
		if err == nil {
			err = checkRange(q, ans)
		}
		if err != nil {
			fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
			continue
		}
		return ans, nil
	}
}

// checkRange rejects option selections beyond the question's options.
// ParseAnswerInput already guarantees non-negative indices.
func checkRange(q *quizgen.Question, ans quizgen.Answer) error {
	last := len(q.Options) - 1
	switch ans.Kind {
	case quizgen.KindMultipleChoice:
		if ans.Index > last {
			return fmt.Errorf("choose A-%s", quizgen.OptionLetter(last))
		}
	case quizgen.KindMultiSelect:
		for _, idx := range ans.Indices {
			if idx > last {
				return fmt.Errorf("choose options A-%s", quizgen.OptionLetter(last))
			}
		}
	}
	return nil
}

func (a *App) printFeedback(ev *session.ScoredEvent) {
	if ev.Correct {
		fmt.Fprintln(a.out, correctStyle.Render("✓ "+ev.Feedback))
	} else {
		fmt.Fprintln(a.out, wrongStyle.Render("✗ "+ev.Feedback))
	}
}

// afterAnswer waits for the next action: continue, generate flash
// cards, or finish. Returns errQuit when the user is done.
func (a *App) afterAnswer(ctx context.Context, ev *session.ScoredEvent) error {
	hints := "[Enter] next  [q] finish"
	if a.cards != nil {
		hints = "[Enter] next  [f] flash cards  [q] finish"
	}

	for {
		fmt.Fprintln(a.out, hintStyle.Render(hints))

		line, err := a.in.readLine(ctx)
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return nil
		case "q":
			return errQuit
		case "f":
			if a.cards != nil {
				a.saveFlashcards(ctx, ev)
			}
		}
	}
}

// saveFlashcards generates reinforcement cards for the answered
// question and appends them to the session deck. Failures warn and
// leave the session running.
func (a *App) saveFlashcards(ctx context.Context, ev *session.ScoredEvent) {
	fmt.Fprintln(a.out, hintStyle.Render("Generating flash cards..."))

	ctx = llm.WithTopic(ctx, ev.Question.Topic)
	cards, err := a.cards.Generate(ctx, ev.Question.Prompt, ev.Question.CorrectAnswerText())
	if err != nil {
		fmt.Fprintln(a.out, errorStyle.Render("Flash cards unavailable: "+err.Error()))
		return
	}

	if a.deck == nil {
		deck, err := flashcards.NewDeck(a.cfg.Flashcards.DeckDir)
		if err != nil {
			fmt.Fprintln(a.out, errorStyle.Render("Cannot save flash cards: "+err.Error()))
			return
		}
		a.deck = deck
	}
	if err := a.deck.Append(cards); err != nil {
		fmt.Fprintln(a.out, errorStyle.Render("Cannot save flash cards: "+err.Error()))
		return
	}

	total, err := a.deck.CardCount()
	if err != nil {
		total = len(cards)
	}
	fmt.Fprintln(a.out, correctStyle.Render(
		fmt.Sprintf("Saved %d cards (%d in deck) to %s", len(cards), total, a.deck.Path())))
}

// finish prints the score line and writes the result and session end
// records.
func (a *App) finish() {
	sum := a.ctrl.Summary()

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, titleStyle.Render(sum.String()))
	if a.deck != nil {
		if n, err := a.deck.CardCount(); err == nil && n > 0 {
			fmt.Fprintln(a.out, hintStyle.Render(fmt.Sprintf("Flash cards: %s (%d cards)", a.deck.Path(), n)))
		}
	}

	err := a.log.RecordResult(sessionlog.Result{
		Score:          sum.Score,
		TotalQuestions: sum.Total,
		Percent:        sum.Percent,
	})
	if err != nil {
		warn(err)
	}
	if err := a.log.RecordSessionEnd(); err != nil {
		warn(err)
	}
}

func warn(err error) {
	fmt.Fprintf(os.Stderr, "warning: session log: %v\n", err)
}
