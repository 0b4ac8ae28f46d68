// internal/puzzle/letters.go
//
// Letter-set helpers shared by the corpus generator and the session engine.
//
// The central rule is the near-anagram ("one swap") relation: a candidate
// letter set matches a puzzle alphabet when exactly one alphabet letter is
// missing from the candidate and exactly one candidate letter is foreign to
// the alphabet. The same tolerance drives guess validation and the keyboard
// letter statuses, so both sides must go through these helpers.

package puzzle

import (
	"sort"
	"strings"
	"unicode"
)

// LetterSet is a set of distinct letters.
type LetterSet map[rune]struct{}

// LettersOf collects the distinct runes of s.
func LettersOf(s string) LetterSet {
	set := make(LetterSet, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether r is in the set.
func (s LetterSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Minus returns the letters of s absent from other, sorted.
func (s LetterSet) Minus(other LetterSet) []rune {
	var out []rune
	for r := range s {
		if !other.Has(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// countMinus is Minus without the allocation.
func (s LetterSet) countMinus(other LetterSet) int {
	n := 0
	for r := range s {
		if !other.Has(r) {
			n++
		}
	}
	return n
}

// NearAnagram reports whether candidate differs from alphabet by exactly one
// substitution: one alphabet letter absent and one foreign letter present.
func NearAnagram(alphabet, candidate LetterSet) bool {
	return alphabet.countMinus(candidate) == 1 && candidate.countMinus(alphabet) == 1
}

// Normalize strips everything but letters from a dictionary line and
// lowercases the rest.
func Normalize(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range strings.TrimSpace(line) {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
