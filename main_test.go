package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robalobadob/spellingbee/internal/puzzle"
)

func runBee(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("bee %v: %v", args, err)
	}
	return out.String()
}

func TestGenerateCommand(t *testing.T) {
	t.Setenv("WORDS_DIR", "")
	t.Setenv("BEE_WORDS_DIR", "")

	out := runBee(t, "", "generate", "g", "gamecock", "-o", "40", "--log-level", "error")
	p, err := puzzle.Read(strings.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a puzzle: %v\n%s", err, out)
	}
	if p.Key() != "gamecok" {
		t.Fatalf("key = %q", p.Key())
	}
	if !p.Contains("lockage") || !p.Contains("comaker") {
		t.Fatalf("words = %v", p.Words())
	}
}

func TestPlayCommand(t *testing.T) {
	dir := t.TempDir()
	p, err := puzzle.New('g', "amecok", []string{"lockage", "comaker"})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "puzzle.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	db := filepath.Join(dir, "bee.db")

	out := runBee(t, "lockage\nlockage\n:found\n:quit\n",
		"play", "--puzzle", path, "--db", db, "--log-level", "error")
	for _, want := range []string{"[g] a m e c o k", "1/2 words", "Already found", "\nlockage\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// progress survives a new session
	out = runBee(t, ":quit\n", "play", "--puzzle", path, "--db", db, "--log-level", "error")
	if !strings.Contains(out, "1/2 words") {
		t.Fatalf("progress not restored:\n%s", out)
	}
}
