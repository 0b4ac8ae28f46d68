package daily

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robalobadob/spellingbee/internal/puzzle"
)

// CurrentName is the file holding the current puzzle.
const CurrentName = "today.json"

// Archive stores generated puzzles as <dir>/<YYYY-MM-DD>.json plus a copy
// of the latest one in <dir>/today.json.
type Archive struct{ dir string }

func NewArchive(dir string) *Archive { return &Archive{dir: dir} }

// Dir returns the archive directory.
func (a *Archive) Dir() string { return a.dir }

func (a *Archive) pathFor(date string) string {
	return filepath.Join(a.dir, date+".json")
}

// Save writes p under date and makes it the current puzzle.
func (a *Archive) Save(date string, p *puzzle.Puzzle) error {
	if p == nil {
		return errors.New("daily: nil puzzle")
	}
	if _, err := ParseDateKey(date); err != nil {
		return fmt.Errorf("daily: bad date %q: %w", date, err)
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	for _, path := range []string{a.pathFor(date), filepath.Join(a.dir, CurrentName)} {
		if err := writeFile(path, data); err != nil {
			return err
		}
	}
	return nil
}

// writeFile replaces path atomically.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".puzzle-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads the puzzle archived for date.
func (a *Archive) Load(date string) (*puzzle.Puzzle, error) {
	if _, err := ParseDateKey(date); err != nil {
		return nil, fmt.Errorf("daily: bad date %q: %w", date, err)
	}
	return puzzle.Load(a.pathFor(date))
}

// Current reads today.json.
func (a *Archive) Current() (*puzzle.Puzzle, error) {
	return puzzle.Load(filepath.Join(a.dir, CurrentName))
}
