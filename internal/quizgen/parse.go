package quizgen

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/abhik/quizzer/internal/llm"
)

// ParseCode classifies why a model reply could not become a Question.
type ParseCode string

const (
	// ParseUnrecognized means the body is not a JSON question object or a
	// field has a shape the parser does not accept.
	ParseUnrecognized ParseCode = "unrecognized"

	// ParseMissingField means a required field is absent or blank.
	ParseMissingField ParseCode = "missing_field"

	// ParseEmptyOptions means an option-bearing kind arrived without options.
	ParseEmptyOptions ParseCode = "empty_options"

	// ParseAnswerOutOfRange means the correct answer references no option,
	// or a multi-select answer repeats one.
	ParseAnswerOutOfRange ParseCode = "answer_out_of_range"
)

// ParseError describes a model reply the parser rejected. The reply is
// never patched up: anything outside the tolerated shapes fails here and
// the generator asks for a fresh question.
type ParseError struct {
	Code   ParseCode
	Field  string
	Detail string
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parse %s: field %q: %s", e.Code, e.Field, e.Detail)
	}
	return fmt.Sprintf("parse %s: %s", e.Code, e.Detail)
}

// rawQuestion is the wire shape before normalization. Options and Correct
// stay raw because models emit them in several shapes.
type rawQuestion struct {
	Type     string          `json:"type"`
	Question string          `json:"question"`
	Options  json.RawMessage `json:"options"`
	Correct  json.RawMessage `json:"correct"`
}

// Parse turns a raw model reply into a Question of the requested kind.
//
// Tolerated noise: surrounding whitespace and Markdown fences; options as
// a letter-keyed object instead of an array; answer letters in any case
// with trailing punctuation; the correct answer spelled as full option
// text; tf answers as "true"/"false" strings; a single accepted string
// for short answer; a type field disagreeing with the requested kind
// (the request wins).
func Parse(raw json.RawMessage, topic string, kind Kind) (*Question, error) {
	body := llm.StripFences(raw)

	var rq rawQuestion
	if err := json.Unmarshal(body, &rq); err != nil {
		return nil, &ParseError{Code: ParseUnrecognized, Detail: fmt.Sprintf("not a question object: %v", err)}
	}

	prompt := strings.TrimSpace(rq.Question)
	if prompt == "" {
		return nil, &ParseError{Code: ParseMissingField, Field: "question", Detail: "absent or blank"}
	}

	q := &Question{Kind: kind, Topic: topic, Prompt: prompt}

	switch kind {
	case KindMultipleChoice:
		opts, perr := parseOptions(rq.Options)
		if perr != nil {
			return nil, perr
		}
		idx, perr := parseCorrectIndex(rq.Correct, opts)
		if perr != nil {
			return nil, perr
		}
		q.Options = opts
		q.Correct = idx

	case KindMultiSelect:
		opts, perr := parseOptions(rq.Options)
		if perr != nil {
			return nil, perr
		}
		set, perr := parseCorrectSet(rq.Correct, opts)
		if perr != nil {
			return nil, perr
		}
		q.Options = opts
		q.CorrectSet = set

	case KindTrueFalse:
		v, perr := parseCorrectBool(rq.Correct)
		if perr != nil {
			return nil, perr
		}
		q.CorrectBool = v

	case KindShortAnswer:
		accepted, perr := parseAccepted(rq.Correct)
		if perr != nil {
			return nil, perr
		}
		q.Accepted = accepted

	default:
		return nil, &ParseError{Code: ParseUnrecognized, Detail: fmt.Sprintf("unsupported question kind %q", kind)}
	}

	return q, nil
}

func missingValue(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// parseOptions decodes the options field, accepting the array form or
// the legacy letter-keyed object form (values taken in key order).
func parseOptions(raw json.RawMessage) ([]string, *ParseError) {
	if missingValue(raw) {
		return nil, &ParseError{Code: ParseEmptyOptions, Field: "options", Detail: "absent"}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return trimOptions(list)
	}

	var keyed map[string]string
	if err := json.Unmarshal(raw, &keyed); err == nil {
		keys := make([]string, 0, len(keyed))
		for k := range keyed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		list = list[:0]
		for _, k := range keys {
			list = append(list, keyed[k])
		}
		return trimOptions(list)
	}

	return nil, &ParseError{Code: ParseUnrecognized, Field: "options", Detail: "neither an array nor a letter-keyed object"}
}

func trimOptions(list []string) ([]string, *ParseError) {
	if len(list) == 0 {
		return nil, &ParseError{Code: ParseEmptyOptions, Field: "options", Detail: "empty list"}
	}
	out := make([]string, len(list))
	for i, o := range list {
		out[i] = strings.TrimSpace(o)
	}
	return out, nil
}

// parseCorrectIndex resolves the mcq correct field to an option index.
func parseCorrectIndex(raw json.RawMessage, options []string) (int, *ParseError) {
	if missingValue(raw) {
		return 0, &ParseError{Code: ParseMissingField, Field: "correct", Detail: "absent"}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, &ParseError{Code: ParseUnrecognized, Field: "correct", Detail: "not a string"}
	}
	if strings.TrimSpace(s) == "" {
		return 0, &ParseError{Code: ParseMissingField, Field: "correct", Detail: "blank"}
	}
	return resolveOption(s, options)
}

// parseCorrectSet resolves the multi-select correct field to a strictly
// ascending index set.
func parseCorrectSet(raw json.RawMessage, options []string) ([]int, *ParseError) {
	if missingValue(raw) {
		return nil, &ParseError{Code: ParseMissingField, Field: "correct", Detail: "absent"}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, &ParseError{Code: ParseUnrecognized, Field: "correct", Detail: "not a list of letters"}
	}
	if len(list) == 0 {
		return nil, &ParseError{Code: ParseMissingField, Field: "correct", Detail: "empty list"}
	}

	seen := make(map[int]bool, len(list))
	set := make([]int, 0, len(list))
	for _, s := range list {
		idx, perr := resolveOption(s, options)
		if perr != nil {
			return nil, perr
		}
		if seen[idx] {
			return nil, &ParseError{Code: ParseAnswerOutOfRange, Field: "correct", Detail: fmt.Sprintf("duplicate answer %q", s)}
		}
		seen[idx] = true
		set = append(set, idx)
	}
	sort.Ints(set)
	return set, nil
}

// parseCorrectBool resolves the tf correct field from a boolean or a
// "true"/"false" string.
func parseCorrectBool(raw json.RawMessage) (bool, *ParseError) {
	if missingValue(raw) {
		return false, &ParseError{Code: ParseMissingField, Field: "correct", Detail: "absent"}
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, &ParseError{Code: ParseUnrecognized, Field: "correct", Detail: "not a boolean"}
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "":
		return false, &ParseError{Code: ParseMissingField, Field: "correct", Detail: "blank"}
	}
	return false, &ParseError{Code: ParseUnrecognized, Field: "correct", Detail: fmt.Sprintf("%q is not true or false", s)}
}

// parseAccepted resolves the short-answer correct field from a list of
// strings or a single string.
func parseAccepted(raw json.RawMessage) ([]string, *ParseError) {
	if missingValue(raw) {
		return nil, &ParseError{Code: ParseMissingField, Field: "correct", Detail: "absent"}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, &ParseError{Code: ParseUnrecognized, Field: "correct", Detail: "not a string or list of strings"}
		}
		list = []string{s}
	}

	out := make([]string, 0, len(list))
	for _, s := range list {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, &ParseError{Code: ParseMissingField, Field: "correct", Detail: "no non-blank accepted answers"}
	}
	return out, nil
}

// resolveOption maps an answer reference to an option index. A single
// letter in range wins; otherwise the reference is matched against the
// option texts case-insensitively.
func resolveOption(s string, options []string) (int, *ParseError) {
	norm := normalizeLetter(s)
	if idx := letterIndex(norm); idx >= 0 && idx < len(options) {
		return idx, nil
	}

	want := strings.ToLower(strings.TrimSpace(s))
	for i, o := range options {
		if strings.ToLower(o) == want {
			return i, nil
		}
	}
	return 0, &ParseError{Code: ParseAnswerOutOfRange, Field: "correct", Detail: fmt.Sprintf("%q matches no option", s)}
}

// normalizeLetter lowers an answer letter and strips the trailing
// punctuation models add ("A.", "b)").
func normalizeLetter(s string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(s)), ".)")
}

// letterIndex converts a normalized letter to an option index, or -1.
func letterIndex(s string) int {
	if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
		return -1
	}
	return int(s[0] - 'a')
}
