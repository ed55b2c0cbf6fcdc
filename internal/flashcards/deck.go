package flashcards

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultDeckDir is where session decks are written.
const DefaultDeckDir = "flashcards"

// Deck appends cards to one CSV file per session. The file appears on
// the first append; every field is quoted so cards can hold commas and
// newlines.
type Deck struct {
	path string
}

// NewDeck prepares a session deck under dir. The file name carries the
// creation time and a short session id.
func NewDeck(dir string) (*Deck, error) {
	if dir == "" {
		dir = DefaultDeckDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create deck dir: %w", err)
	}

	sid := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	name := fmt.Sprintf("flashcards_%s_%s.csv", time.Now().Format("20060102_150405"), sid)
	return &Deck{path: filepath.Join(dir, name)}, nil
}

// Path returns the deck file path.
func (d *Deck) Path() string { return d.path }

// Append adds cards to the deck file, one question,answer row each.
func (d *Deck) Append(cards []Card) error {
	if len(cards) == 0 {
		return nil
	}

	f, err := os.OpenFile(d.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open deck: %w", err)
	}

	var b strings.Builder
	for _, c := range cards {
		b.WriteString(quote(c.Question))
		b.WriteByte(',')
		b.WriteString(quote(c.Answer))
		b.WriteByte('\n')
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("write deck: %w", err)
	}
	return f.Close()
}

// CardCount re-reads the deck file and counts its rows. A deck with no
// appends yet counts zero.
func (d *Deck) CardCount() (int, error) {
	f, err := os.Open(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	count := 0
	for {
		if _, err := r.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			return 0, fmt.Errorf("read deck: %w", err)
		}
		count++
	}
}

// quote renders one always-quoted CSV field, doubling inner quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
