package quizgen

import "testing"

func TestCheckAnswer_MCQ(t *testing.T) {
	q := validMCQ() // correct index 1
	if !CheckAnswer(q, IndexAnswer(1)) {
		t.Error("expected correct")
	}
	if CheckAnswer(q, IndexAnswer(0)) {
		t.Error("expected incorrect")
	}
}

func TestCheckAnswer_TrueFalse(t *testing.T) {
	q := &Question{Kind: KindTrueFalse, Prompt: "S", CorrectBool: true}
	if !CheckAnswer(q, BoolAnswer(true)) {
		t.Error("expected correct")
	}
	if CheckAnswer(q, BoolAnswer(false)) {
		t.Error("expected incorrect")
	}
}

func TestCheckAnswer_MultiSelect(t *testing.T) {
	q := &Question{
		Kind:       KindMultiSelect,
		Prompt:     "Q",
		Options:    []string{"w", "x", "y", "z"},
		CorrectSet: []int{0, 2},
	}
	if !CheckAnswer(q, IndicesAnswer(0, 2)) {
		t.Error("expected exact set to be correct")
	}
	if !CheckAnswer(q, IndicesAnswer(2, 0)) {
		t.Error("expected order not to matter")
	}
	if CheckAnswer(q, IndicesAnswer(0)) {
		t.Error("expected subset to be incorrect")
	}
	if CheckAnswer(q, IndicesAnswer(0, 1, 2)) {
		t.Error("expected superset to be incorrect")
	}
	if CheckAnswer(q, IndicesAnswer(1, 3)) {
		t.Error("expected disjoint set to be incorrect")
	}
}

func TestCheckAnswer_ShortAnswer(t *testing.T) {
	q := &Question{
		Kind:     KindShortAnswer,
		Prompt:   "Q",
		Accepted: []string{"y = str(x)", "y=str(x)"},
	}
	if !CheckAnswer(q, TextAnswer("y = str(x)")) {
		t.Error("expected exact match to be correct")
	}
	if !CheckAnswer(q, TextAnswer("  Y = STR(X)  ")) {
		t.Error("expected case-insensitive trimmed match to be correct")
	}
	if !CheckAnswer(q, TextAnswer("y=str(x)")) {
		t.Error("expected second accepted answer to be correct")
	}
	if CheckAnswer(q, TextAnswer("y = int(x)")) {
		t.Error("expected wrong answer to be incorrect")
	}
	if CheckAnswer(q, TextAnswer("")) {
		t.Error("expected empty answer to be incorrect")
	}
}

func TestIndicesAnswer_Dedupes(t *testing.T) {
	ans := IndicesAnswer(2, 0, 2, 0)
	if len(ans.Indices) != 2 || ans.Indices[0] != 0 || ans.Indices[1] != 2 {
		t.Errorf("expected [0 2], got %v", ans.Indices)
	}
}

func TestFeedback_Correct(t *testing.T) {
	if got := Feedback(validMCQ(), true); got != "Correct!" {
		t.Errorf("got %q", got)
	}
}

func TestFeedback_Incorrect(t *testing.T) {
	tests := []struct {
		name     string
		q        *Question
		expected string
	}{
		{
			name:     "mcq",
			q:        validMCQ(), // correct index 1
			expected: "Incorrect. The correct answer was B.",
		},
		{
			name:     "tf true",
			q:        &Question{Kind: KindTrueFalse, CorrectBool: true},
			expected: "Incorrect. The answer is True.",
		},
		{
			name:     "tf false",
			q:        &Question{Kind: KindTrueFalse, CorrectBool: false},
			expected: "Incorrect. The answer is False.",
		},
		{
			name: "multi select",
			q: &Question{
				Kind:       KindMultiSelect,
				Options:    []string{"w", "x", "y"},
				CorrectSet: []int{0, 2},
			},
			expected: "Incorrect. Required: A, C",
		},
		{
			name: "short answer",
			q: &Question{
				Kind:     KindShortAnswer,
				Accepted: []string{"y = str(x)"},
			},
			expected: "Incorrect. Expected: y = str(x)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Feedback(tt.q, false); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseAnswerInput_MCQ(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"a", 0},
		{"B", 1},
		{"c.", 2},
		{"2", 1},
		{" d ", 3},
	}
	for _, tt := range tests {
		ans, err := ParseAnswerInput(KindMultipleChoice, tt.input)
		if err != nil {
			t.Errorf("input %q: unexpected error: %v", tt.input, err)
			continue
		}
		if ans.Index != tt.expected {
			t.Errorf("input %q: expected index %d, got %d", tt.input, tt.expected, ans.Index)
		}
	}

	if _, err := ParseAnswerInput(KindMultipleChoice, "hello"); err == nil {
		t.Error("expected error for non-option input")
	}
	if _, err := ParseAnswerInput(KindMultipleChoice, ""); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseAnswerInput_TrueFalse(t *testing.T) {
	for _, input := range []string{"t", "T", "true", "TRUE"} {
		ans, err := ParseAnswerInput(KindTrueFalse, input)
		if err != nil || !ans.Bool {
			t.Errorf("input %q: expected true answer, got %+v (%v)", input, ans, err)
		}
	}
	for _, input := range []string{"f", "false", "False"} {
		ans, err := ParseAnswerInput(KindTrueFalse, input)
		if err != nil || ans.Bool {
			t.Errorf("input %q: expected false answer, got %+v (%v)", input, ans, err)
		}
	}
	if _, err := ParseAnswerInput(KindTrueFalse, "yes"); err == nil {
		t.Error("expected error for unrecognized input")
	}
}

func TestParseAnswerInput_MultiSelect(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
	}{
		{"a,c", []int{0, 2}},
		{"c, a", []int{0, 2}},
		{"a c", []int{0, 2}},
		{"1,3", []int{0, 2}},
		{"b", []int{1}},
	}
	for _, tt := range tests {
		ans, err := ParseAnswerInput(KindMultiSelect, tt.input)
		if err != nil {
			t.Errorf("input %q: unexpected error: %v", tt.input, err)
			continue
		}
		if len(ans.Indices) != len(tt.expected) {
			t.Errorf("input %q: expected %v, got %v", tt.input, tt.expected, ans.Indices)
			continue
		}
		for i, want := range tt.expected {
			if ans.Indices[i] != want {
				t.Errorf("input %q: expected %v, got %v", tt.input, tt.expected, ans.Indices)
				break
			}
		}
	}

	if _, err := ParseAnswerInput(KindMultiSelect, "  "); err == nil {
		t.Error("expected error for empty selection")
	}
	if _, err := ParseAnswerInput(KindMultiSelect, "a,?"); err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestParseAnswerInput_ShortAnswer(t *testing.T) {
	ans, err := ParseAnswerInput(KindShortAnswer, "  y = str(x)  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ans.Text != "y = str(x)" {
		t.Errorf("expected trimmed text, got %q", ans.Text)
	}

	if _, err := ParseAnswerInput(KindShortAnswer, "   "); err == nil {
		t.Error("expected error for blank input")
	}
}

func TestAnswerDisplay(t *testing.T) {
	tests := []struct {
		ans  Answer
		want string
	}{
		{IndexAnswer(1), "B"},
		{BoolAnswer(true), "True"},
		{BoolAnswer(false), "False"},
		{IndicesAnswer(2, 0), "A, C"},
		{TextAnswer("y = str(x)"), "y = str(x)"},
	}
	for _, tt := range tests {
		if got := tt.ans.Display(); got != tt.want {
			t.Errorf("Display() = %q, want %q", got, tt.want)
		}
	}
}
