package app

import (
	"bufio"
	"context"
	"io"
)

// lineReader reads input lines on a goroutine so reads can be abandoned
// when the context is canceled. A terminal read cannot be interrupted
// directly, so the pending line is simply left unconsumed.
type lineReader struct {
	lines chan string
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lr.lines <- sc.Text()
		}
		close(lr.lines)
	}()
	return lr
}

// readLine returns the next input line. It reports the context error
// when canceled and io.EOF when input is exhausted.
func (lr *lineReader) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
