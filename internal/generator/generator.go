// internal/generator/generator.go
//
// Corpus generator: derives a puzzle's word list from a tiered dictionary.
//
// For every tier from the floor to the obscurity ceiling, each dictionary
// line is normalized (letters only, lowercase) and kept when its letter set
// is a near-anagram of the seven-letter puzzle alphabet. Kept words are
// stored in scan order in their dictionary spelling (trimmed, lowercased).
//
// Notes:
//   - Missing tiers are skipped with a debug log.
//   - The same word found in two tiers is kept twice; sessions only ever
//     test membership, so duplicates are harmless.

package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/words"
)

// DefaultObscurity is the default tier ceiling.
const DefaultObscurity = 40

// ErrEmptyCorpus means no dictionary word matched the puzzle alphabet.
var ErrEmptyCorpus = errors.New("generator: no words match the puzzle letters")

// Generator scans dictionary tiers for puzzle words.
type Generator struct {
	tiers *words.Tiers
	log   zerolog.Logger
}

// New constructs a Generator over the given tiers.
func New(tiers *words.Tiers, logger zerolog.Logger) *Generator {
	return &Generator{tiers: tiers, log: logger.With().Str("component", "generator").Logger()}
}

// Generate builds the puzzle for center and outer using the global logger.
func Generate(ctx context.Context, center rune, outer string, tiers *words.Tiers, maxObscurity int) (*puzzle.Puzzle, error) {
	return New(tiers, log.Logger).Generate(ctx, center, outer, maxObscurity)
}

// Generate validates the seed and scans tiers up to maxObscurity.
func (g *Generator) Generate(ctx context.Context, center rune, outer string, maxObscurity int) (*puzzle.Puzzle, error) {
	if err := puzzle.CheckSeed(center, outer); err != nil {
		return nil, err
	}
	alphabet := puzzle.LettersOf(outer)
	alphabet[center] = struct{}{}

	var found []string
	for _, level := range g.tiers.Levels(maxObscurity) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		before := len(found)
		err := g.tiers.Scan(ctx, level, func(line string) error {
			if puzzle.NearAnagram(alphabet, puzzle.LettersOf(puzzle.Normalize(line))) {
				found = append(found, strings.ToLower(strings.TrimSpace(line)))
			}
			return nil
		})
		switch {
		case errors.Is(err, words.ErrMissingTier):
			g.log.Debug().Int("level", level).Msg("tier missing, skipped")
			continue
		case err != nil:
			return nil, fmt.Errorf("scan tier %d: %w", level, err)
		}
		g.log.Debug().Int("level", level).Int("matches", len(found)-before).Msg("tier scanned")
	}

	if len(found) == 0 {
		return nil, ErrEmptyCorpus
	}
	g.log.Info().Str("key", string(center)+outer).Int("words", len(found)).Msg("corpus generated")
	return puzzle.New(center, outer, found)
}

// OuterFromBase derives the six outer letters from a base word: its distinct
// letters in order of first appearance, minus the center.
func OuterFromBase(center rune, base string) (string, error) {
	var b strings.Builder
	seen := puzzle.LetterSet{center: {}}
	for _, r := range puzzle.Normalize(base) {
		if seen.Has(r) {
			continue
		}
		seen[r] = struct{}{}
		b.WriteRune(r)
	}
	outer := b.String()
	if !puzzle.LettersOf(puzzle.Normalize(base)).Has(center) {
		return "", &puzzle.ConfigurationError{Center: center, Outer: outer, Reason: fmt.Sprintf("base word %q does not contain the center", base)}
	}
	if err := puzzle.CheckSeed(center, outer); err != nil {
		return "", err
	}
	return outer, nil
}
