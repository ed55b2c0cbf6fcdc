package sessionlog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
)

// CSVLogger writes tabular rows to session_<id>.csv. The header row is
// written before the first record and lists the enabled fields in a
// fixed order; rows leave disabled or absent fields as empty cells.
type CSVLogger struct {
	*sink
	w             *csv.Writer
	columns       []string
	headerWritten bool
}

func newCSVLogger(cfg Config) (*CSVLogger, error) {
	s, err := newSink(cfg, "csv")
	if err != nil {
		return nil, err
	}

	var columns []string
	for _, f := range csvFieldOrder {
		if s.enabled[f] {
			columns = append(columns, f)
		}
	}

	return &CSVLogger{
		sink:    s,
		w:       csv.NewWriter(s.file),
		columns: columns,
	}, nil
}

func (l *CSVLogger) logEvent(eventType string, payload map[string]any) error {
	data := l.record(eventType, payload)

	if !l.headerWritten {
		if err := l.w.Write(l.columns); err != nil {
			return &LogError{Op: "write", Err: err}
		}
		l.headerWritten = true
	}

	row := make([]string, len(l.columns))
	for i, col := range l.columns {
		if v, ok := data[col]; ok {
			row[i] = cellValue(v)
		}
	}

	if err := l.w.Write(row); err != nil {
		return &LogError{Op: "write", Err: err}
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return &LogError{Op: "write", Err: err}
	}
	return nil
}

// cellValue renders a record value into a CSV cell. Composite values
// are JSON-encoded so they survive the flat format.
func cellValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

func (l *CSVLogger) RecordSessionStart(info SessionInfo) error {
	return l.logEvent("session_start", info.payload())
}

func (l *CSVLogger) RecordExchange(x Exchange) error {
	return l.logEvent("ai_exchange", x.payload())
}

func (l *CSVLogger) RecordAnswer(rec AnswerRecord) error {
	return l.logEvent("question_answer", rec.payload())
}

func (l *CSVLogger) RecordResult(res Result) error {
	return l.logEvent("session_result", res.payload())
}

func (l *CSVLogger) RecordSessionEnd() error {
	return l.logEvent("session_end", map[string]any{})
}

func (l *CSVLogger) Close() error {
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		l.file.Close()
		return &LogError{Op: "write", Err: err}
	}
	return l.file.Close()
}
