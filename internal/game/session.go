// internal/game/session.go
//
// Session engine for a single puzzle.
// Responsibilities:
//   - Hold the live state: current guess, found words, letter order and the
//     transient rejection message.
//   - Apply one Action at a time through Dispatch and report side effects
//     (progress writes, message timers) as Effects for the caller to run.
//   - Classify keyboard letters with the same one-foreign-letter tolerance
//     used to explain rejected guesses.
//
// Submit rules, in order:
//   1. A guess in the word list is accepted unless already found
//      ("Already found"). Acceptance emits a Persist of all found words.
//   2. Otherwise the rejection names the first failing check:
//      more than one foreign letter ("Too many new letters"), more than one
//      alphabet letter missing ("... Missing: ..."), else "Not in wordlist".
//   3. Every rejection clears the guess, stores nothing and emits a
//      ClearAfter for its message.
//
// A Session is owned by one caller and is not safe for concurrent use.

package game

import (
	"errors"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/robalobadob/spellingbee/internal/puzzle"
)

// Session is the live state of one puzzle.
type Session struct {
	puzzle   *puzzle.Puzzle
	alphabet puzzle.LetterSet
	found    []string
	foundSet map[string]struct{}
	guess    []rune
	letters  []rune

	message *Rejection
	seq     uint64
}

// Option customises a new Session.
type Option func(*Session)

// WithLetterOrder starts the session with the outer letters in order. An
// order that is not a permutation of the outer letters is ignored.
func WithLetterOrder(order string) Option {
	return func(s *Session) {
		rs := []rune(order)
		if len(rs) != len(s.letters) {
			return
		}
		want := puzzle.LettersOf(s.puzzle.Outer())
		got := puzzle.LettersOf(order)
		if len(got) != len(want) || len(want.Minus(got)) != 0 {
			return
		}
		s.letters = rs
	}
}

// NewSession starts a session for p, seeded with saved progress: found
// words joined by newlines. Saved lines that are blank, repeated, or not in
// the word list are dropped.
func NewSession(p *puzzle.Puzzle, saved string, opts ...Option) (*Session, error) {
	if p == nil {
		return nil, errors.New("game: nil puzzle")
	}
	s := &Session{
		puzzle:   p,
		alphabet: p.Alphabet(),
		foundSet: make(map[string]struct{}),
		letters:  []rune(p.Outer()),
	}
	for _, line := range strings.Split(saved, "\n") {
		w := strings.TrimSpace(line)
		if w == "" || !p.Contains(w) {
			continue
		}
		if _, dup := s.foundSet[w]; dup {
			continue
		}
		s.found = append(s.found, w)
		s.foundSet[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dispatch applies a and returns the effects the caller must perform.
func (s *Session) Dispatch(a Action) []Effect {
	switch a := a.(type) {
	case AppendLetter:
		s.guess = append(s.guess, unicode.ToLower(a.Letter))
	case Backspace:
		if n := len(s.guess); n > 0 {
			s.guess = s.guess[:n-1]
		}
	case Shuffle:
		swap := func(i, j int) { s.letters[i], s.letters[j] = s.letters[j], s.letters[i] }
		if a.Rand != nil {
			a.Rand.Shuffle(len(s.letters), swap)
		} else {
			rand.Shuffle(len(s.letters), swap)
		}
	case Submit:
		return s.submit()
	case ClearMessage:
		if s.message != nil && a.Seq == s.seq {
			s.message = nil
		}
	}
	return nil
}

func (s *Session) submit() []Effect {
	guess := string(s.guess)
	s.guess = s.guess[:0]

	if !s.puzzle.Contains(guess) {
		return s.reject(s.explain(guess))
	}
	if _, dup := s.foundSet[guess]; dup {
		return s.reject(Rejection{Reason: AlreadyFound, Guess: guess})
	}

	s.found = append(s.found, guess)
	s.foundSet[guess] = struct{}{}
	s.message = nil
	s.seq++
	return []Effect{Persist{Key: s.puzzle.Key(), Value: strings.Join(s.found, "\n")}}
}

// explain picks the rejection for a guess missing from the word list.
func (s *Session) explain(guess string) Rejection {
	letters := puzzle.LettersOf(guess)
	if len(letters.Minus(s.alphabet)) > 1 {
		return Rejection{Reason: TooManyNewLetters, Guess: guess}
	}
	if missing := s.alphabet.Minus(letters); len(missing) > 1 {
		return Rejection{Reason: MissingLetters, Guess: guess, Missing: missing}
	}
	return Rejection{Reason: NotInWordlist, Guess: guess}
}

func (s *Session) reject(r Rejection) []Effect {
	s.seq++
	s.message = &r
	return []Effect{ClearAfter{Delay: MessageTTL, Seq: s.seq}}
}

// extras lists the distinct guess letters outside the alphabet, in typing order.
func (s *Session) extras() []rune {
	var out []rune
	seen := puzzle.LetterSet{}
	for _, r := range s.guess {
		if s.alphabet.Has(r) || seen.Has(r) {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Status classifies letter against the alphabet and the current guess.
func (s *Session) Status(letter rune) LetterStatus {
	letter = unicode.ToLower(letter)
	if s.alphabet.Has(letter) {
		return StatusInGrid
	}
	extras := s.extras()
	switch {
	case len(extras) == 0:
		return StatusNormal
	case extras[0] == letter:
		return StatusPurple
	default:
		return StatusDisabled
	}
}

// Statuses classifies every letter a–z.
func (s *Session) Statuses() map[rune]LetterStatus {
	out := make(map[rune]LetterStatus, 26)
	for r := 'a'; r <= 'z'; r++ {
		out[r] = s.Status(r)
	}
	return out
}

// Puzzle returns the session's puzzle definition.
func (s *Session) Puzzle() *puzzle.Puzzle { return s.puzzle }

// Key is the progress-store key of the puzzle.
func (s *Session) Key() string { return s.puzzle.Key() }

// Center returns the center letter.
func (s *Session) Center() rune { return s.puzzle.Center() }

// Guess returns the current guess.
func (s *Session) Guess() string { return string(s.guess) }

// Letters returns the outer letters in display order.
func (s *Session) Letters() string { return string(s.letters) }

// Found returns the found words in discovery order.
func (s *Session) Found() []string { return append([]string(nil), s.found...) }

// Progress reports found and total distinct words.
func (s *Session) Progress() (found, total int) { return len(s.found), s.puzzle.Total() }

// Message returns the current rejection, if any, and its sequence number.
func (s *Session) Message() (Rejection, uint64, bool) {
	if s.message == nil {
		return Rejection{}, s.seq, false
	}
	return *s.message, s.seq, true
}
