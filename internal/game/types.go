// internal/game/types.go
//
// Core type definitions for the puzzle session engine.
// Defines:
//   - Action: the discrete user inputs a Session accepts.
//   - Effect: side effects a Session asks its caller to perform.
//   - LetterStatus: keyboard classification of a letter.
//   - Rejection: why a submitted guess was refused.

package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Action is one user input to Session.Dispatch.
type Action interface{ isAction() }

// AppendLetter adds a typed letter to the current guess.
type AppendLetter struct{ Letter rune }

// Backspace removes the last letter of the current guess.
type Backspace struct{}

// Shuffle permutes the display order of the outer letters. A nil Rand uses
// the package-level generator.
type Shuffle struct{ Rand *rand.Rand }

// Submit checks the current guess against the word list.
type Submit struct{}

// ClearMessage clears the transient message if it is still message Seq.
type ClearMessage struct{ Seq uint64 }

func (AppendLetter) isAction() {}
func (Backspace) isAction()    {}
func (Shuffle) isAction()      {}
func (Submit) isAction()       {}
func (ClearMessage) isAction() {}

// Effect is a side effect requested by Dispatch.
type Effect interface{ isEffect() }

// Persist asks for Value to be stored under Key, replacing what was there.
type Persist struct {
	Key   string
	Value string
}

// ClearAfter asks for ClearMessage{Seq} to be dispatched after Delay.
type ClearAfter struct {
	Delay time.Duration
	Seq   uint64
}

func (Persist) isEffect()    {}
func (ClearAfter) isEffect() {}

// MessageTTL is how long a rejection message stays up.
const MessageTTL = time.Second

// LetterStatus classifies a letter for the keyboard.
type LetterStatus string

const (
	StatusNormal   LetterStatus = "normal"
	StatusInGrid   LetterStatus = "in_grid"
	StatusPurple   LetterStatus = "purple"   // the one tolerated foreign letter
	StatusDisabled LetterStatus = "disabled" // a second foreign letter would be too many
)

// Reason enumerates rejection causes.
type Reason int

const (
	TooManyNewLetters Reason = iota + 1
	MissingLetters
	NotInWordlist
	AlreadyFound
)

// Rejection describes a refused guess.
type Rejection struct {
	Reason  Reason
	Guess   string
	Missing []rune // set for MissingLetters
}

// Message is the user-facing text.
func (r Rejection) Message() string {
	switch r.Reason {
	case TooManyNewLetters:
		return "Too many new letters"
	case MissingLetters:
		letters := make([]string, len(r.Missing))
		for i, m := range r.Missing {
			letters[i] = string(m)
		}
		return "All letters except one must be included. Missing: " + strings.Join(letters, ", ")
	case NotInWordlist:
		return "Not in wordlist"
	case AlreadyFound:
		return "Already found"
	}
	return fmt.Sprintf("rejected (%d)", int(r.Reason))
}

func (r Rejection) String() string { return r.Message() }
