package sessionlog

// Field names that can appear in session log records. Configs whitelist
// a subset; everything else is dropped at write time.
var availableFields = map[string]bool{
	// Common fields
	"timestamp": true, "date": true, "time": true,
	"session_id": true, "event_type": true,

	// AI exchange fields
	"provider": true, "model": true, "topic": true, "purpose": true,
	"prompt": true, "raw_response": true, "latency_ms": true,

	// Question/answer fields
	"question_type": true, "question": true, "options": true,
	"correct_answer": true, "user_answer": true, "is_correct": true,
	"feedback": true,

	// Session result fields
	"score": true, "total_questions": true, "percent": true,

	// Session start fields
	"title": true, "role": true, "topics": true, "ai_config": true,
	"question_types": true,
}

// defaultFields is the selection used when the config names none.
var defaultFields = []string{
	"timestamp", "session_id", "event_type", "topic", "question",
	"user_answer", "is_correct", "score", "total_questions", "percent",
}

// csvFieldOrder fixes the column order for tabular output. Only enabled
// fields appear; the order here decides the header.
var csvFieldOrder = []string{
	"timestamp", "date", "time", "session_id", "event_type",
	"provider", "model", "topic", "purpose",
	"question_type", "question", "options",
	"correct_answer", "user_answer", "is_correct", "feedback",
	"prompt", "raw_response", "latency_ms",
	"score", "total_questions", "percent",
	"title", "role", "topics", "ai_config", "question_types",
}

// resolveFields turns a configured field list into the enabled set.
// nil/empty selects the defaults; a single "*" selects every field;
// unknown names are dropped.
func resolveFields(fields []string) map[string]bool {
	if len(fields) == 1 && fields[0] == "*" {
		enabled := make(map[string]bool, len(availableFields))
		for f := range availableFields {
			enabled[f] = true
		}
		return enabled
	}

	if len(fields) == 0 {
		fields = defaultFields
	}

	enabled := make(map[string]bool, len(fields))
	for _, f := range fields {
		if availableFields[f] {
			enabled[f] = true
		}
	}
	return enabled
}
