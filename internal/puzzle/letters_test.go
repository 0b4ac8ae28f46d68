package puzzle

import (
	"reflect"
	"testing"
)

func TestNearAnagram(t *testing.T) {
	base := LettersOf("gamecock")

	cases := []struct {
		word string
		want bool
	}{
		{"lockage", true},   // m missing, l foreign
		{"bloop", false},    // most of the alphabet missing
		{"gamecock", false}, // exact alphabet, no swap
		{"camelback", false},
		{"comake", false}, // only g missing, nothing foreign
	}
	for _, tc := range cases {
		t.Run(tc.word, func(t *testing.T) {
			if got := NearAnagram(base, LettersOf(tc.word)); got != tc.want {
				t.Fatalf("NearAnagram(gamecock, %s) = %v, want %v", tc.word, got, tc.want)
			}
		})
	}
}

func TestNearAnagramSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"gamecock", "lockage"},
		{"gamecock", "bloop"},
		{"topqrsu", "quotes"},
		{"topqrsu", "sprout"},
		{"abcdefg", "abcdefh"},
	}
	for _, p := range pairs {
		a, b := LettersOf(p[0]), LettersOf(p[1])
		if NearAnagram(a, b) != NearAnagram(b, a) {
			t.Errorf("NearAnagram not symmetric for %q/%q", p[0], p[1])
		}
	}
}

func TestMinusSorted(t *testing.T) {
	got := LettersOf("topqrsu").Minus(LettersOf("quotes"))
	want := []rune{'p', 'r'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Minus = %q, want %q", got, want)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  Lockage\r": "lockage",
		"o'clock":     "oclock",
		"re-cap":      "recap",
		"":            "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
