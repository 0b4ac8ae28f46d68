package httpserver

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/spellingbee/internal/puzzle"
)

// mapSource serves puzzles from memory.
type mapSource struct {
	byDate  map[string]*puzzle.Puzzle
	current *puzzle.Puzzle
}

func (m mapSource) Load(date string) (*puzzle.Puzzle, error) {
	if p, ok := m.byDate[date]; ok {
		return p, nil
	}
	return nil, fs.ErrNotExist
}

func (m mapSource) Current() (*puzzle.Puzzle, error) {
	if m.current == nil {
		return nil, fs.ErrNotExist
	}
	return m.current, nil
}

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	quotes, err := puzzle.New('t', "opqrsu", []string{"quotes", "posture"})
	if err != nil {
		t.Fatal(err)
	}
	gamecock, err := puzzle.New('g', "amecok", []string{"lockage"})
	if err != nil {
		t.Fatal(err)
	}
	src := mapSource{
		byDate:  map[string]*puzzle.Puzzle{"2026-10-18": quotes, "2026-10-17": gamecock},
		current: gamecock,
	}
	return New(src, Config{
		Secret: []byte("test-secret"),
		Now:    func() time.Time { return fixedNow },
	}, zerolog.Nop())
}

func play(t *testing.T, s *Server, token, body string) (int, playRes) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/play", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var res playRes
	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return rec.Code, res
}

func letters(word string) string {
	parts := make([]string, 0, len(word))
	for _, r := range word {
		parts = append(parts, `{"type":"letter","letter":"`+string(r)+`"}`)
	}
	return strings.Join(parts, ",")
}

func TestToday(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/puzzle/today", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var v puzzleView
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	if v.Key != "topqrsu" || v.Total != 2 || v.Date != "2026-10-18" {
		t.Fatalf("view = %+v", v)
	}
	if strings.Contains(rec.Body.String(), "quotes") {
		t.Fatal("public view leaks the word list")
	}
}

func TestPuzzleByDate(t *testing.T) {
	s := newTestServer(t)
	cases := map[string]int{
		"/puzzle/2026-10-17": http.StatusOK,
		"/puzzle/2026-01-01": http.StatusNotFound,
	}
	for path, want := range cases {
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != want {
			t.Errorf("%s: status %d, want %d", path, rec.Code, want)
		}
	}
}

func TestPlayFlow(t *testing.T) {
	s := newTestServer(t)

	// type part of the word, then finish it in a second request
	code, res := play(t, s, "", `{"actions":[`+letters("quo")+`]}`)
	if code != http.StatusOK || res.Guess != "quo" {
		t.Fatalf("first request: %d %+v", code, res)
	}
	if res.Statuses["q"] != "in_grid" || res.Statuses["e"] != "normal" {
		t.Fatalf("statuses = %v", res.Statuses)
	}

	code, res = play(t, s, res.Token, `{"actions":[`+letters("tes")+`,{"type":"submit"}]}`)
	if code != http.StatusOK {
		t.Fatalf("second request: %d", code)
	}
	if len(res.Found) != 1 || res.Found[0] != "quotes" || res.Guess != "" || res.Message != "" {
		t.Fatalf("after submit: %+v", res)
	}

	// the same word again is rejected and not duplicated
	code, res = play(t, s, res.Token, `{"actions":[`+letters("quotes")+`,{"type":"submit"}]}`)
	if code != http.StatusOK || res.Message != "Already found" || res.FoundCount != 1 {
		t.Fatalf("duplicate: %d %+v", code, res)
	}
	if res.ClearAfterMs != 1000 {
		t.Fatalf("clearAfterMs = %d", res.ClearAfterMs)
	}
}

func TestPlayShuffleKeepsOrder(t *testing.T) {
	s := newTestServer(t)
	_, res := play(t, s, "", `{"actions":[{"type":"shuffle","seed":7}]}`)
	order := res.Letters

	_, res = play(t, s, res.Token, `{"actions":[]}`)
	if res.Letters != order {
		t.Fatalf("letter order lost between requests: %q vs %q", res.Letters, order)
	}
}

func TestPlayRejectsTamperedToken(t *testing.T) {
	s := newTestServer(t)
	_, res := play(t, s, "", `{"actions":[`+letters("quotes")+`,{"type":"submit"}]}`)
	if res.FoundCount != 1 {
		t.Fatalf("setup: %+v", res)
	}

	forged := res.Token + "x"
	code, res := play(t, s, forged, `{"actions":[]}`)
	if code != http.StatusOK || res.FoundCount != 0 {
		t.Fatalf("forged token accepted: %d %+v", code, res)
	}
}

func TestPlayBadRequests(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{
		`not json`,
		`{"actions":[{"type":"dance"}]}`,
		`{"actions":[{"type":"letter","letter":"ab"}]}`,
	} {
		if code, _ := play(t, s, "", body); code != http.StatusBadRequest {
			t.Errorf("%s: status %d", body, code)
		}
	}
	if code, _ := play(t, s, "", `{"date":"1999-01-01","actions":[]}`); code != http.StatusNotFound {
		t.Errorf("unknown date: status %d", code)
	}
}
