package sessionlog

import (
	"encoding/json"
	"strings"
)

// SessionInfo captures the quiz setup recorded at session start.
type SessionInfo struct {
	Title         string
	Role          string
	Topics        []string
	Provider      string
	Model         string
	QuestionTypes []string
}

func (s SessionInfo) payload() map[string]any {
	return map[string]any{
		"title":  s.Title,
		"role":   s.Role,
		"topics": s.Topics,
		"ai_config": map[string]string{
			"provider": s.Provider,
			"model":    s.Model,
		},
		"question_types": s.QuestionTypes,
	}
}

// Exchange is a single round trip to the model: the prompt that was sent
// and the raw text that came back (or the error that replaced it).
type Exchange struct {
	Provider    string
	Model       string
	Topic       string
	Purpose     string
	Prompt      string
	RawResponse string
	LatencyMs   int64
}

func (x Exchange) payload() map[string]any {
	p := map[string]any{
		"provider":     x.Provider,
		"model":        x.Model,
		"topic":        x.Topic,
		"prompt":       x.Prompt,
		"raw_response": x.RawResponse,
	}
	if x.Purpose != "" {
		p["purpose"] = x.Purpose
	}
	if x.LatencyMs > 0 {
		p["latency_ms"] = x.LatencyMs
	}

	// When the raw reply is a readable question object, surface its
	// fields alongside the raw text.
	if question, options, correct, ok := probeQuestion(x.RawResponse); ok {
		p["question"] = question
		if options != nil {
			p["options"] = options
		}
		if correct != "" {
			p["correct_answer"] = correct
		}
	}

	return p
}

// probeQuestion attempts to read question fields out of a raw model
// reply. Best effort only; any failure reports ok=false.
func probeQuestion(raw string) (question string, options any, correct string, ok bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var probe struct {
		Question string          `json:"question"`
		Options  any             `json:"options"`
		Correct  json.RawMessage `json:"correct"`
	}
	if err := json.Unmarshal([]byte(s), &probe); err != nil || probe.Question == "" {
		return "", nil, "", false
	}

	correct = strings.Trim(strings.TrimSpace(string(probe.Correct)), `"`)
	return probe.Question, probe.Options, correct, true
}

// AnswerRecord is the scored outcome of one question.
type AnswerRecord struct {
	Topic         string
	QuestionType  string
	Question      string
	Options       []string
	CorrectAnswer string
	UserAnswer    string
	IsCorrect     bool
	Feedback      string
}

func (a AnswerRecord) payload() map[string]any {
	p := map[string]any{
		"topic":          a.Topic,
		"question_type":  a.QuestionType,
		"question":       a.Question,
		"correct_answer": a.CorrectAnswer,
		"user_answer":    a.UserAnswer,
		"is_correct":     a.IsCorrect,
		"feedback":       a.Feedback,
	}
	if len(a.Options) > 0 {
		p["options"] = a.Options
	}
	return p
}

// Result is the final score recorded before session end.
type Result struct {
	Score          int
	TotalQuestions int
	Percent        float64
}

func (r Result) payload() map[string]any {
	return map[string]any{
		"score":           r.Score,
		"total_questions": r.TotalQuestions,
		"percent":         r.Percent,
	}
}
