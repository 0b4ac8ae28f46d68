package generator

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"

	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/words"
)

func testTiers() *words.Tiers {
	return words.New(fstest.MapFS{
		"english-words.10": {Data: []byte("bloop\nlockage\ngame\n")},
		// 15 is missing on purpose
		"english-words.20": {Data: []byte("comaker\n  Lockage \ncockle\n")},
		"english-words.50": {Data: []byte("lockage\n")},
	})
}

func TestGenerateGamecock(t *testing.T) {
	g := New(testTiers(), zerolog.Nop())
	outer, err := OuterFromBase('g', "gamecock")
	if err != nil {
		t.Fatal(err)
	}
	p, err := g.Generate(context.Background(), 'g', outer, 40)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := []string{"lockage", "comaker", "lockage"}
	if got := p.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
	if p.Contains("bloop") || p.Contains("cockle") {
		t.Fatal("non near-anagram accepted")
	}
	if p.Center() != 'g' || p.Outer() != "amecok" {
		t.Fatalf("seed = %q/%q", p.Center(), p.Outer())
	}
}

func TestGenerateRespectsCeiling(t *testing.T) {
	g := New(testTiers(), zerolog.Nop())
	p, err := g.Generate(context.Background(), 'g', "amecok", 10)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Words(); !reflect.DeepEqual(got, []string{"lockage"}) {
		t.Fatalf("words = %v", got)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	g := New(testTiers(), zerolog.Nop())
	a, err := g.Generate(context.Background(), 'g', "amecok", 50)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.Generate(context.Background(), 'g', "amecok", 50)
	if err != nil {
		t.Fatal(err)
	}
	wa, wb := a.Words(), b.Words()
	sort.Strings(wa)
	sort.Strings(wb)
	if !reflect.DeepEqual(wa, wb) {
		t.Fatalf("runs differ: %v vs %v", wa, wb)
	}
}

func TestGenerateIncludesExactlyPredicateMatches(t *testing.T) {
	lines := []string{"lockage", "comaker", "bloop", "gamecock", "cockade", "mockage", "geckos"}
	data := ""
	for _, l := range lines {
		data += l + "\n"
	}
	g := New(words.New(fstest.MapFS{"english-words.10": {Data: []byte(data)}}), zerolog.Nop())
	p, err := g.Generate(context.Background(), 'g', "amecok", 10)
	if err != nil {
		t.Fatal(err)
	}
	alphabet := p.Alphabet()
	for _, l := range lines {
		want := puzzle.NearAnagram(alphabet, puzzle.LettersOf(l))
		if p.Contains(l) != want {
			t.Errorf("%s: included=%v, predicate=%v", l, p.Contains(l), want)
		}
	}
}

func TestGenerateConfigurationError(t *testing.T) {
	g := New(testTiers(), zerolog.Nop())
	for _, outer := range []string{"amec", "amecog", "amecoo"} {
		_, err := g.Generate(context.Background(), 'g', outer, 40)
		if !puzzle.IsConfigurationError(err) {
			t.Errorf("outer %q: want ConfigurationError, got %v", outer, err)
		}
	}
}

func TestGenerateEmptyCorpus(t *testing.T) {
	g := New(testTiers(), zerolog.Nop())
	_, err := g.Generate(context.Background(), 'z', "qxjvwy", 40)
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("want ErrEmptyCorpus, got %v", err)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(testTiers(), zerolog.Nop()).Generate(ctx, 'g', "amecok", 40)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestOuterFromBase(t *testing.T) {
	cases := []struct {
		center rune
		base   string
		want   string
		ok     bool
	}{
		{'g', "gamecock", "amecok", true},
		{'t', "quoters", "quoers", true},
		{'x', "gamecock", "", false},
		{'g', "gag", "", false},
	}
	for _, tc := range cases {
		got, err := OuterFromBase(tc.center, tc.base)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("OuterFromBase(%q, %s) = %q, %v; want %q", tc.center, tc.base, got, err, tc.want)
		}
		if !tc.ok && !puzzle.IsConfigurationError(err) {
			t.Errorf("OuterFromBase(%q, %s): want ConfigurationError, got %v", tc.center, tc.base, err)
		}
	}
}
