package sessionlog

import "fmt"

// LogError describes a failed sink operation. Op is "open" when the
// sink could not be created and "write" when appending a record failed.
type LogError struct {
	Op  string
	Err error
}

func (e *LogError) Error() string {
	return fmt.Sprintf("session log %s: %v", e.Op, e.Err)
}

func (e *LogError) Unwrap() error { return e.Err }
