// internal/puzzle/puzzle.go
//
// Puzzle definition: the immutable {center, outer, words} record produced by
// the corpus generator and consumed read-only by game sessions.
//
// Wire format (JSON):
//   {"center":"t","outer":"opqrsu","words":["quotes", ...]}
//
// Notes:
//   - Outer letters keep their generation order; Key() depends on it.
//   - Words are not required to be subsets of the alphabet: generated words
//     are near-anagrams and always carry one foreign letter.
//   - Words may repeat when the same word sits in two dictionary tiers.

package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// OuterSize is the number of outer letters around the center.
const OuterSize = 6

// ConfigurationError reports a malformed puzzle seed or definition.
type ConfigurationError struct {
	Center rune
	Outer  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("puzzle: invalid configuration (center %q, outer %q): %s", e.Center, e.Outer, e.Reason)
}

// Puzzle is a generated puzzle definition.
type Puzzle struct {
	center rune
	outer  string
	words  []string
	index  map[string]struct{}
}

// CheckSeed validates a center letter and its six outer letters.
func CheckSeed(center rune, outer string) error {
	fail := func(reason string) error {
		return &ConfigurationError{Center: center, Outer: outer, Reason: reason}
	}
	if !unicode.IsLetter(center) || unicode.ToLower(center) != center {
		return fail("center must be a lowercase letter")
	}
	seen := make(LetterSet, OuterSize)
	for _, r := range outer {
		if r == center {
			return fail("outer letters contain the center")
		}
		if !unicode.IsLetter(r) || unicode.ToLower(r) != r {
			return fail(fmt.Sprintf("outer letter %q is not a lowercase letter", r))
		}
		if seen.Has(r) {
			return fail(fmt.Sprintf("outer letter %q repeated", r))
		}
		seen[r] = struct{}{}
	}
	if len(seen) != OuterSize {
		return fail(fmt.Sprintf("need %d distinct outer letters, got %d", OuterSize, len(seen)))
	}
	return nil
}

// New builds a Puzzle, validating the seed and the word list.
func New(center rune, outer string, words []string) (*Puzzle, error) {
	if err := CheckSeed(center, outer); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, &ConfigurationError{Center: center, Outer: outer, Reason: "word list is empty"}
	}
	index := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" || strings.ToLower(w) != w {
			return nil, &ConfigurationError{Center: center, Outer: outer, Reason: fmt.Sprintf("word %q is not lowercase", w)}
		}
		index[w] = struct{}{}
	}
	return &Puzzle{
		center: center,
		outer:  outer,
		words:  append([]string(nil), words...),
		index:  index,
	}, nil
}

// Center returns the center letter.
func (p *Puzzle) Center() rune { return p.center }

// Outer returns the outer letters in generation order.
func (p *Puzzle) Outer() string { return p.outer }

// Words returns a copy of the word list in scan order.
func (p *Puzzle) Words() []string { return append([]string(nil), p.words...) }

// Total is the number of distinct words.
func (p *Puzzle) Total() int { return len(p.index) }

// Contains is an exact-match membership test.
func (p *Puzzle) Contains(word string) bool {
	_, ok := p.index[word]
	return ok
}

// Alphabet returns the seven puzzle letters.
func (p *Puzzle) Alphabet() LetterSet {
	set := LettersOf(p.outer)
	set[p.center] = struct{}{}
	return set
}

// Key identifies the puzzle for progress storage: center followed by the
// outer letters in generation order.
func (p *Puzzle) Key() string { return string(p.center) + p.outer }

// wirePuzzle is the JSON shape of a puzzle definition.
type wirePuzzle struct {
	Center string   `json:"center"`
	Outer  string   `json:"outer"`
	Words  []string `json:"words"`
}

// MarshalJSON encodes the center as a one-letter string.
func (p *Puzzle) MarshalJSON() ([]byte, error) {
	return json.Marshal(wirePuzzle{Center: string(p.center), Outer: p.outer, Words: p.words})
}

// UnmarshalJSON decodes and validates a definition.
func (p *Puzzle) UnmarshalJSON(data []byte) error {
	var w wirePuzzle
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if utf8.RuneCountInString(w.Center) != 1 {
		return &ConfigurationError{Outer: w.Outer, Reason: fmt.Sprintf("center %q must be a single letter", w.Center)}
	}
	center, _ := utf8.DecodeRuneInString(w.Center)
	parsed, err := New(center, w.Outer, w.Words)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

// Read decodes a definition from r.
func Read(r io.Reader) (*Puzzle, error) {
	var p Puzzle
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode puzzle: %w", err)
	}
	return &p, nil
}

// Load reads a definition file.
func Load(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// IsConfigurationError reports whether err carries a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
