// internal/daily/daily.go
//
// Daily puzzle selection.
//
// "Today's" letters normally come from an external source (a dated puzzle
// page). LetterSource abstracts that collaborator; SaltedSource is the
// offline stand-in that derives the letters deterministically from
// HMAC(salt, YYYY-MM-DD) over a list of base words.

package daily

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/spellingbee/internal/generator"
	"github.com/robalobadob/spellingbee/internal/puzzle"
)

// ErrNoLetterSource means no letters are available for the requested day.
var ErrNoLetterSource = errors.New("daily: no letter source available")

// LetterSource supplies the center and outer letters for a date.
type LetterSource interface {
	Letters(ctx context.Context, date time.Time) (center rune, outer string, err error)
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDateKey parses a YYYY-MM-DD key.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	return int(dateHash(date, salt, "") % uint64(max(n, 1)))
}

func dateHash(date time.Time, salt, label string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date) + label))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

// SaltedSource picks a base word and its center letter per day.
type SaltedSource struct {
	Bases []string
	Salt  string
}

// Letters implements LetterSource.
func (s *SaltedSource) Letters(ctx context.Context, date time.Time) (rune, string, error) {
	if len(s.Bases) == 0 {
		return 0, "", ErrNoLetterSource
	}
	base := puzzle.Normalize(s.Bases[WordIndex(date, s.Salt, len(s.Bases))])
	distinct := []rune{}
	seen := puzzle.LetterSet{}
	for _, r := range base {
		if !seen.Has(r) {
			seen[r] = struct{}{}
			distinct = append(distinct, r)
		}
	}
	if len(distinct) != puzzle.OuterSize+1 {
		return 0, "", fmt.Errorf("%w: base word %q has %d distinct letters", ErrNoLetterSource, base, len(distinct))
	}
	center := distinct[dateHash(date, s.Salt, "/center")%uint64(len(distinct))]
	outer, err := generator.OuterFromBase(center, base)
	if err != nil {
		return 0, "", err
	}
	return center, outer, nil
}
