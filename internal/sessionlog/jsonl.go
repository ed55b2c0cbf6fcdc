package sessionlog

import "encoding/json"

// JSONLLogger writes one self-describing JSON object per line to
// session_<id>.jsonl.
type JSONLLogger struct {
	*sink
}

func newJSONLLogger(cfg Config) (*JSONLLogger, error) {
	s, err := newSink(cfg, "jsonl")
	if err != nil {
		return nil, err
	}
	return &JSONLLogger{sink: s}, nil
}

func (l *JSONLLogger) logEvent(eventType string, payload map[string]any) error {
	data := l.record(eventType, payload)

	line, err := json.Marshal(data)
	if err != nil {
		return &LogError{Op: "write", Err: err}
	}
	line = append(line, '\n')

	if _, err := l.file.Write(line); err != nil {
		return &LogError{Op: "write", Err: err}
	}
	return nil
}

func (l *JSONLLogger) RecordSessionStart(info SessionInfo) error {
	return l.logEvent("session_start", info.payload())
}

func (l *JSONLLogger) RecordExchange(x Exchange) error {
	return l.logEvent("ai_exchange", x.payload())
}

func (l *JSONLLogger) RecordAnswer(rec AnswerRecord) error {
	return l.logEvent("question_answer", rec.payload())
}

func (l *JSONLLogger) RecordResult(res Result) error {
	return l.logEvent("session_result", res.payload())
}

func (l *JSONLLogger) RecordSessionEnd() error {
	return l.logEvent("session_end", map[string]any{})
}
