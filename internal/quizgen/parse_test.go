package quizgen

import (
	"encoding/json"
	"errors"
	"testing"
)

func assertParseCode(t *testing.T, err error, code ParseCode) *ParseError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected parse error with code %q", code)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if perr.Code != code {
		t.Fatalf("expected code %q, got %q (%v)", code, perr.Code, perr)
	}
	return perr
}

func TestParse_MCQ(t *testing.T) {
	raw := json.RawMessage(`{"type":"mcq","question":"What is 2+2?","options":["two","four","six","eight"],"correct":"b"}`)
	q, err := Parse(raw, "Arithmetic", KindMultipleChoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Kind != KindMultipleChoice {
		t.Errorf("expected mcq kind, got %q", q.Kind)
	}
	if q.Topic != "Arithmetic" {
		t.Errorf("expected topic Arithmetic, got %q", q.Topic)
	}
	if q.Prompt != "What is 2+2?" {
		t.Errorf("unexpected prompt: %q", q.Prompt)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if q.Correct != 1 {
		t.Errorf("expected correct index 1, got %d", q.Correct)
	}
}

func TestParse_MCQ_Fenced(t *testing.T) {
	raw := json.RawMessage("```json\n{\"question\":\"Pick one\",\"options\":[\"x\",\"y\"],\"correct\":\"a\"}\n```")
	q, err := Parse(raw, "T", KindMultipleChoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Correct != 0 {
		t.Errorf("expected correct index 0, got %d", q.Correct)
	}
}

func TestParse_MCQ_LegacyKeyedOptions(t *testing.T) {
	raw := json.RawMessage(`{"question":"Pick one","options":{"a":"first","b":"second","c":"third"},"correct":"c"}`)
	q, err := Parse(raw, "T", KindMultipleChoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(q.Options))
	}
	if q.Options[0] != "first" || q.Options[2] != "third" {
		t.Errorf("options out of key order: %v", q.Options)
	}
	if q.Correct != 2 {
		t.Errorf("expected correct index 2, got %d", q.Correct)
	}
}

func TestParse_MCQ_LetterPunctuation(t *testing.T) {
	for _, correct := range []string{`"B"`, `"b."`, `"B)"`, `" b "`} {
		raw := json.RawMessage(`{"question":"Pick one","options":["x","y","z"],"correct":` + correct + `}`)
		q, err := Parse(raw, "T", KindMultipleChoice)
		if err != nil {
			t.Fatalf("correct=%s: unexpected error: %v", correct, err)
		}
		if q.Correct != 1 {
			t.Errorf("correct=%s: expected index 1, got %d", correct, q.Correct)
		}
	}
}

func TestParse_MCQ_CorrectAsOptionText(t *testing.T) {
	raw := json.RawMessage(`{"question":"Pick one","options":["red","green","blue"],"correct":"Green"}`)
	q, err := Parse(raw, "T", KindMultipleChoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Correct != 1 {
		t.Errorf("expected index 1, got %d", q.Correct)
	}
}

func TestParse_TypeFieldMismatchIgnored(t *testing.T) {
	raw := json.RawMessage(`{"type":"tf","question":"Pick one","options":["x","y"],"correct":"a"}`)
	q, err := Parse(raw, "T", KindMultipleChoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Kind != KindMultipleChoice {
		t.Errorf("requested kind should win, got %q", q.Kind)
	}
}

func TestParse_NotJSON(t *testing.T) {
	err := mustParseErr(t, `Sorry, I cannot do that.`, KindMultipleChoice)
	assertParseCode(t, err, ParseUnrecognized)
}

func TestParse_ArrayBody(t *testing.T) {
	err := mustParseErr(t, `[1, 2, 3]`, KindMultipleChoice)
	assertParseCode(t, err, ParseUnrecognized)
}

func TestParse_MissingQuestion(t *testing.T) {
	err := mustParseErr(t, `{"options":["x","y"],"correct":"a"}`, KindMultipleChoice)
	perr := assertParseCode(t, err, ParseMissingField)
	if perr.Field != "question" {
		t.Errorf("expected field question, got %q", perr.Field)
	}
}

func TestParse_BlankQuestion(t *testing.T) {
	err := mustParseErr(t, `{"question":"   ","options":["x","y"],"correct":"a"}`, KindMultipleChoice)
	assertParseCode(t, err, ParseMissingField)
}

func TestParse_MissingOptions(t *testing.T) {
	err := mustParseErr(t, `{"question":"Pick one","correct":"a"}`, KindMultipleChoice)
	perr := assertParseCode(t, err, ParseEmptyOptions)
	if perr.Field != "options" {
		t.Errorf("expected field options, got %q", perr.Field)
	}
}

func TestParse_EmptyOptionsArray(t *testing.T) {
	err := mustParseErr(t, `{"question":"Pick one","options":[],"correct":"a"}`, KindMultipleChoice)
	assertParseCode(t, err, ParseEmptyOptions)
}

func TestParse_MissingCorrect(t *testing.T) {
	err := mustParseErr(t, `{"question":"Pick one","options":["x","y"]}`, KindMultipleChoice)
	perr := assertParseCode(t, err, ParseMissingField)
	if perr.Field != "correct" {
		t.Errorf("expected field correct, got %q", perr.Field)
	}
}

func TestParse_CorrectLetterOutOfRange(t *testing.T) {
	err := mustParseErr(t, `{"question":"Pick one","options":["x","y"],"correct":"e"}`, KindMultipleChoice)
	assertParseCode(t, err, ParseAnswerOutOfRange)
}

func TestParse_CorrectTextNoMatch(t *testing.T) {
	err := mustParseErr(t, `{"question":"Pick one","options":["red","green"],"correct":"purple"}`, KindMultipleChoice)
	assertParseCode(t, err, ParseAnswerOutOfRange)
}

func TestParse_CorrectWrongShape(t *testing.T) {
	err := mustParseErr(t, `{"question":"Pick one","options":["x","y"],"correct":2}`, KindMultipleChoice)
	assertParseCode(t, err, ParseUnrecognized)
}

func TestParse_TrueFalse(t *testing.T) {
	tests := []struct {
		correct  string
		expected bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"False"`, false},
		{`" TRUE "`, true},
	}
	for _, tt := range tests {
		raw := json.RawMessage(`{"question":"The sky is blue.","correct":` + tt.correct + `}`)
		q, err := Parse(raw, "T", KindTrueFalse)
		if err != nil {
			t.Fatalf("correct=%s: unexpected error: %v", tt.correct, err)
		}
		if q.CorrectBool != tt.expected {
			t.Errorf("correct=%s: expected %t", tt.correct, tt.expected)
		}
	}
}

func TestParse_TrueFalse_BadString(t *testing.T) {
	err := mustParseErr(t, `{"question":"S","correct":"maybe"}`, KindTrueFalse)
	assertParseCode(t, err, ParseUnrecognized)
}

func TestParse_TrueFalse_MissingCorrect(t *testing.T) {
	err := mustParseErr(t, `{"question":"S"}`, KindTrueFalse)
	assertParseCode(t, err, ParseMissingField)
}

func TestParse_MultiSelect(t *testing.T) {
	raw := json.RawMessage(`{"question":"Which are primes?","options":["2","3","4","5"],"correct":["a","b","d"]}`)
	q, err := Parse(raw, "T", KindMultiSelect)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.CorrectSet) != 3 {
		t.Fatalf("expected 3 correct indices, got %d", len(q.CorrectSet))
	}
	for i, want := range []int{0, 1, 3} {
		if q.CorrectSet[i] != want {
			t.Errorf("index %d: expected %d, got %d", i, want, q.CorrectSet[i])
		}
	}
}

func TestParse_MultiSelect_SortsLetters(t *testing.T) {
	raw := json.RawMessage(`{"question":"Q","options":["w","x","y","z"],"correct":["C","a"]}`)
	q, err := Parse(raw, "T", KindMultiSelect)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CorrectSet[0] != 0 || q.CorrectSet[1] != 2 {
		t.Errorf("expected [0 2], got %v", q.CorrectSet)
	}
}

func TestParse_MultiSelect_DuplicateLetters(t *testing.T) {
	err := mustParseErr(t, `{"question":"Q","options":["x","y"],"correct":["a","A."]}`, KindMultiSelect)
	assertParseCode(t, err, ParseAnswerOutOfRange)
}

func TestParse_MultiSelect_OutOfRange(t *testing.T) {
	err := mustParseErr(t, `{"question":"Q","options":["x","y"],"correct":["a","f"]}`, KindMultiSelect)
	assertParseCode(t, err, ParseAnswerOutOfRange)
}

func TestParse_MultiSelect_EmptyCorrect(t *testing.T) {
	err := mustParseErr(t, `{"question":"Q","options":["x","y"],"correct":[]}`, KindMultiSelect)
	assertParseCode(t, err, ParseMissingField)
}

func TestParse_MultiSelect_CorrectNotList(t *testing.T) {
	err := mustParseErr(t, `{"question":"Q","options":["x","y"],"correct":"a"}`, KindMultiSelect)
	assertParseCode(t, err, ParseUnrecognized)
}

func TestParse_ShortAnswer(t *testing.T) {
	raw := json.RawMessage(`{"question":"Create a string from an integer\ninput variable: x\noutput variable: y","correct":["y = str(x)","y=str(x)"]}`)
	q, err := Parse(raw, "T", KindShortAnswer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Accepted) != 2 {
		t.Fatalf("expected 2 accepted answers, got %d", len(q.Accepted))
	}
	if q.Accepted[0] != "y = str(x)" {
		t.Errorf("unexpected first accepted answer: %q", q.Accepted[0])
	}
}

func TestParse_ShortAnswer_SingleString(t *testing.T) {
	raw := json.RawMessage(`{"question":"What keyword defines a function?","correct":"def"}`)
	q, err := Parse(raw, "T", KindShortAnswer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Accepted) != 1 || q.Accepted[0] != "def" {
		t.Errorf("expected [def], got %v", q.Accepted)
	}
}

func TestParse_ShortAnswer_BlankEntriesDropped(t *testing.T) {
	raw := json.RawMessage(`{"question":"Q","correct":["  ","def",""]}`)
	q, err := Parse(raw, "T", KindShortAnswer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Accepted) != 1 || q.Accepted[0] != "def" {
		t.Errorf("expected [def], got %v", q.Accepted)
	}
}

func TestParse_ShortAnswer_AllBlank(t *testing.T) {
	err := mustParseErr(t, `{"question":"Q","correct":["  ",""]}`, KindShortAnswer)
	assertParseCode(t, err, ParseMissingField)
}

func TestParse_ShortAnswer_WrongShape(t *testing.T) {
	err := mustParseErr(t, `{"question":"Q","correct":42}`, KindShortAnswer)
	assertParseCode(t, err, ParseUnrecognized)
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Code: ParseMissingField, Field: "correct", Detail: "absent"}
	expected := `parse missing_field: field "correct": absent`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}

	err = &ParseError{Code: ParseUnrecognized, Detail: "not a question object"}
	expected = `parse unrecognized: not a question object`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func mustParseErr(t *testing.T, raw string, kind Kind) error {
	t.Helper()
	_, err := Parse(json.RawMessage(raw), "T", kind)
	if err == nil {
		t.Fatal("expected parse error")
	}
	return err
}
