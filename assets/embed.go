// assets/embed.go
//
// Embedded defaults shipped with the binary:
//   - wordlists/english-words.<level>: a small tiered dictionary sample.
//   - sql/*.sql: migrations for the sqlite progress store.
//   - bases.txt: base words seeding the daily letter source.

package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed wordlists sql bases.txt
var FS embed.FS

// Wordlists returns the embedded dictionary tiers.
func Wordlists() fs.FS { return sub("wordlists") }

// Migrations returns the embedded sqlite migrations.
func Migrations() fs.FS { return sub("sql") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(FS, dir)
	if err != nil {
		// dir is a compile-time embed pattern
		panic(err)
	}
	return f
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// BaseWords lists the embedded daily base words.
func BaseWords() ([]string, error) {
	return readLines("bases.txt")
}
