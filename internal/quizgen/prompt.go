package quizgen

import (
	"fmt"
	"strings"
)

// fallbackRole is used when a request carries no role line. Config
// normally supplies one before requests get here.
const fallbackRole = "Act as a helpful technical interviewer."

// BuildPrompt constructs the system and user messages for a generation
// request. Output is deterministic: the same request and config always
// produce byte-identical messages.
func BuildPrompt(req Request, cfg Config) (system, user string) {
	system = strings.TrimSpace(req.Role)
	if system == "" {
		system = fallbackRole
	}

	var b strings.Builder
	b.WriteString(kindInstruction(req.Kind, req.Topic))
	fmt.Fprintf(&b, "\nTopic: %q\n", req.Topic)

	b.WriteString("\nGUIDELINES:\n")
	b.WriteString("- Return ONLY valid JSON.\n")
	b.WriteString("- No Markdown blocks (```json).\n")
	b.WriteString("- Use this EXACT JSON schema:\n")
	b.WriteString(kindExample(req.Kind))

	if len(req.Recent) > 0 {
		b.WriteString("\n\nDo not repeat any of these recently asked questions:\n")
		b.WriteString(buildDedup(req.Recent, cfg.MaxRecent))
	}

	return system, b.String()
}

// kindInstruction returns the generation instruction for a kind with the
// topic folded in.
func kindInstruction(kind Kind, topic string) string {
	switch kind {
	case KindTrueFalse:
		return fmt.Sprintf("Generate a True/False question about %s.", topic)
	case KindMultiSelect:
		return fmt.Sprintf("Generate a difficult question about %s where TWO or MORE options are correct.", topic)
	case KindShortAnswer:
		return fmt.Sprintf(`Generate a question about %s that requires a specific one-line code snippet or keyword answer.

If the question involves variables, specify them below the question text using this format:
- "input variable: <name>" for any pre-existing variables the user should use
- "output variable: <name>" for the variable the user should assign the result to

Examples:
1. Question with output only:
   "Write the code to create a dictionary with {"a":1, "b":2}
   output variable: x"
   Answer: x = {"a":1, "b":2}

2. Question with input and output:
   "Write the code to create a string from an integer
   input variable: x
   output variable: y"
   Answer: y = str(x)

3. Question with no variables:
   "What keyword is used to define a function in Python?"
   Answer: def

Only include variable specifications when the question requires them. Omit them for keyword or concept questions.`, topic)
	default:
		return fmt.Sprintf("Generate a multiple-choice question about %s with 4 options and 1 correct answer. Make the options detailed.", topic)
	}
}

// kindExample returns the schema example embedded in the prompt.
func kindExample(kind Kind) string {
	switch kind {
	case KindTrueFalse:
		return `{
    "type": "tf",
    "question": "Statement text...",
    "correct": true
}`
	case KindMultiSelect:
		return `{
    "type": "multi_select",
    "question": "Question text...",
    "options": ["...", "...", "...", "..."],
    "correct": ["a", "c"]
}`
	case KindShortAnswer:
		return `{
    "type": "short",
    "question": "Write the code to create a string from an integer\ninput variable: x\noutput variable: y",
    "correct": ["y = str(x)"]
}`
	default:
		return `{
    "type": "mcq",
    "question": "Question text...",
    "options": ["...", "...", "...", "..."],
    "correct": "a"
}`
	}
}
