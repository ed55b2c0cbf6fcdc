// Package sessionlog appends quiz session events to per-session log
// files. Two encodings are supported: line-delimited JSON and CSV.
// Records carry only the fields enabled in the config, so transcripts
// can be as lean or as complete as the quiz author wants.
package sessionlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Logger records session events to an append-only sink. A failed record
// returns an error and leaves the sink usable for the next one.
type Logger interface {
	RecordSessionStart(info SessionInfo) error
	RecordExchange(x Exchange) error
	RecordAnswer(rec AnswerRecord) error
	RecordResult(res Result) error
	RecordSessionEnd() error

	// Path returns the sink file path, or "" for the no-op logger.
	Path() string
	Close() error
}

// DefaultDir is where session log files land when no directory is
// configured.
const DefaultDir = "logs"

// Config selects and parameterizes the sink.
type Config struct {
	Type   string   // "jsonl" or "csv"; anything else disables logging
	Dir    string   // default DefaultDir
	Fields []string // enabled record fields; empty → defaults, ["*"] → all
}

// New builds the logger described by cfg. Empty and unknown types
// return the no-op logger; logging is strictly optional.
func New(cfg Config) (Logger, error) {
	switch strings.ToLower(cfg.Type) {
	case "jsonl":
		return newJSONLLogger(cfg)
	case "csv":
		return newCSVLogger(cfg)
	default:
		return NullLogger{}, nil
	}
}

// NullLogger discards every event.
type NullLogger struct{}

func (NullLogger) RecordSessionStart(SessionInfo) error { return nil }
func (NullLogger) RecordExchange(Exchange) error        { return nil }
func (NullLogger) RecordAnswer(AnswerRecord) error      { return nil }
func (NullLogger) RecordResult(Result) error            { return nil }
func (NullLogger) RecordSessionEnd() error              { return nil }
func (NullLogger) Path() string                         { return "" }
func (NullLogger) Close() error                         { return nil }

// sink is the shared state behind the file-backed loggers: one session
// file opened for append, plus the enabled-field set.
type sink struct {
	sessionID string
	enabled   map[string]bool
	file      *os.File
	path      string
	now       func() time.Time
}

func newSink(cfg Config, ext string) (*sink, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &LogError{Op: "open", Err: err}
	}

	id := newSessionID()
	path := filepath.Join(dir, fmt.Sprintf("session_%s.%s", id, ext))

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, &LogError{Op: "open", Err: err}
	}

	return &sink{
		sessionID: id,
		enabled:   resolveFields(cfg.Fields),
		file:      file,
		path:      path,
		now:       time.Now,
	}, nil
}

// newSessionID returns a 32-char hex id.
func newSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// record assembles one event: common fields first (when enabled), then
// the enabled subset of the payload.
func (s *sink) record(eventType string, payload map[string]any) map[string]any {
	data := make(map[string]any, len(payload)+5)

	if s.enabled["event_type"] {
		data["event_type"] = eventType
	}
	t := s.now().UTC().Truncate(time.Second)
	if s.enabled["timestamp"] {
		data["timestamp"] = t.Format(time.RFC3339)
	}
	if s.enabled["date"] {
		data["date"] = t.Format("2006-01-02")
	}
	if s.enabled["time"] {
		data["time"] = t.Format("15:04:05")
	}
	if s.enabled["session_id"] {
		data["session_id"] = s.sessionID
	}

	for k, v := range payload {
		if s.enabled[k] {
			data[k] = v
		}
	}
	return data
}

func (s *sink) Path() string { return s.path }

func (s *sink) Close() error { return s.file.Close() }
