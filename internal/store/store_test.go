package store

import (
	"context"
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, st Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := st.Load(ctx, "topqrsu"); err != nil || ok {
		t.Fatalf("Load on empty store = ok %v, err %v", ok, err)
	}
	if err := st.Save(ctx, "topqrsu", "quotes"); err != nil {
		t.Fatal(err)
	}
	if err := st.Save(ctx, "topqrsu", "quotes\nposture"); err != nil {
		t.Fatal(err)
	}
	got, ok, err := st.Load(ctx, "topqrsu")
	if err != nil || !ok || got != "quotes\nposture" {
		t.Fatalf("Load = %q, %v, %v", got, ok, err)
	}
	if _, ok, _ := st.Load(ctx, "gamecok"); ok {
		t.Fatal("unrelated key reported present")
	}
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bee.db")
	st, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	exerciseStore(t, st)
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	// progress and migrations survive reopening
	st, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()
	got, ok, err := st.Load(context.Background(), "topqrsu")
	if err != nil || !ok || got != "quotes\nposture" {
		t.Fatalf("after reopen Load = %q, %v, %v", got, ok, err)
	}
}
