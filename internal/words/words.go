// internal/words/words.go
//
// Tiered dictionary access for the corpus generator.
//
// Tiers:
//   - A tier is a flat word list named "english-words.<level>", one word per
//     line; higher levels hold rarer words.
//   - Levels are scanned from Floor upward in fixed Steps to a ceiling.
//   - A missing tier file is not an error: the level is skipped.
//
// Sources (Open):
//   1. If WORDS_DIR is set, tiers are read from that directory.
//   2. Otherwise the small embedded sample in assets/wordlists is used.
//
// Environment variables:
//   WORDS_DIR=/path/to/wordlists

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/robalobadob/spellingbee/assets"
)

const (
	DefaultPrefix = "english-words."
	DefaultFloor  = 10
	DefaultStep   = 5
)

// ErrMissingTier marks a tier level with no dictionary file.
var ErrMissingTier = errors.New("words: tier file missing")

// Tiers reads obscurity-ranked word lists from a file system.
type Tiers struct {
	FS     fs.FS
	Prefix string
	Floor  int
	Step   int
}

// New wraps fsys with the default naming and level steps.
func New(fsys fs.FS) *Tiers {
	return &Tiers{FS: fsys, Prefix: DefaultPrefix, Floor: DefaultFloor, Step: DefaultStep}
}

// Open returns WORDS_DIR tiers when configured, else the embedded sample.
func Open(dir string) *Tiers {
	if dir == "" {
		dir = os.Getenv("WORDS_DIR")
	}
	if dir != "" {
		return New(os.DirFS(dir))
	}
	return New(assets.Wordlists())
}

// Levels lists the tier levels from Floor to ceiling inclusive.
func (t *Tiers) Levels(ceiling int) []int {
	step := t.Step
	if step <= 0 {
		step = DefaultStep
	}
	var out []int
	for lvl := t.Floor; lvl <= ceiling; lvl += step {
		out = append(out, lvl)
	}
	return out
}

// Name is the file name of a tier level.
func (t *Tiers) Name(level int) string {
	return t.Prefix + strconv.Itoa(level)
}

// Scan calls fn for every line of the given tier, in file order.
// A missing file yields an error wrapping ErrMissingTier.
func (t *Tiers) Scan(ctx context.Context, level int, fn func(line string) error) error {
	f, err := t.FS.Open(t.Name(level))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingTier, t.Name(level))
		}
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		if n++; n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := fn(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Read loads a whole tier.
func (t *Tiers) Read(ctx context.Context, level int) ([]string, error) {
	var out []string
	err := t.Scan(ctx, level, func(line string) error {
		out = append(out, line)
		return nil
	})
	return out, err
}
