// internal/httpserver/routes_puzzle.go
//
// HTTP routes for playing the archived daily puzzles.
//   - GET  /puzzle/today  → public view of today's puzzle (falls back to today.json)
//   - GET  /puzzle/{date} → public view of an archived puzzle
//   - POST /play          → apply actions to the caller's session
//
// Public views never include the word list, only its size.
//
// /play request:
//   {"date":"2026-10-18","actions":[{"type":"letter","letter":"q"},{"type":"submit"}]}
// Action types: letter, backspace, shuffle (optional seed), submit, clear (seq).
// The state token comes from "Authorization: Bearer" or the bee_state cookie;
// a missing, invalid, or stale token starts a fresh session.

package httpserver

import (
	"encoding/json"
	"errors"
	"io/fs"
	"math/rand/v2"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/spellingbee/internal/daily"
	"github.com/robalobadob/spellingbee/internal/game"
	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/store"
)

const maxActions = 256

// mountPuzzle registers the puzzle routes.
func (s *Server) mountPuzzle(r chi.Router) {
	r.Get("/puzzle/today", s.handleToday)
	r.Get("/puzzle/{date}", s.handlePuzzle)
	r.Post("/play", s.handlePlay)
}

// puzzleView is the public shape of a puzzle.
type puzzleView struct {
	Date   string `json:"date"`
	Key    string `json:"key"`
	Center string `json:"center"`
	Outer  string `json:"outer"`
	Total  int    `json:"total"`
}

func viewOf(date string, p *puzzle.Puzzle) puzzleView {
	return puzzleView{Date: date, Key: p.Key(), Center: string(p.Center()), Outer: p.Outer(), Total: p.Total()}
}

// resolve loads the puzzle for date; an empty date means today, falling back
// to the current puzzle when today has no archive entry.
func (s *Server) resolve(date string) (string, *puzzle.Puzzle, error) {
	if date != "" {
		p, err := s.src.Load(date)
		return date, p, err
	}
	today := daily.DateKey(s.cfg.Now())
	p, err := s.src.Load(today)
	if errors.Is(err, fs.ErrNotExist) {
		p, err = s.src.Current()
	}
	return today, p, err
}

// writeLoadError maps a puzzle lookup failure to a status code.
func (s *Server) writeLoadError(w http.ResponseWriter, date string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		writeError(w, http.StatusNotFound, "no_puzzle")
		return
	}
	if _, perr := daily.ParseDateKey(date); perr != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}
	s.log.Error().Err(err).Str("date", date).Msg("load puzzle")
	writeError(w, http.StatusInternalServerError, "load_failed")
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	date, p, err := s.resolve("")
	if err != nil {
		s.writeLoadError(w, date, err)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(date, p))
}

func (s *Server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	_, p, err := s.resolve(date)
	if err != nil {
		s.writeLoadError(w, date, err)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(date, p))
}

// -----------------------------------------------------------------------------
// /play

type actionReq struct {
	Type   string  `json:"type"`
	Letter string  `json:"letter,omitempty"`
	Seed   *uint64 `json:"seed,omitempty"`
	Seq    uint64  `json:"seq,omitempty"`
}

type playReq struct {
	Date    string      `json:"date"`
	Actions []actionReq `json:"actions"`
}

type playRes struct {
	Token        string            `json:"token"`
	Date         string            `json:"date"`
	Center       string            `json:"center"`
	Letters      string            `json:"letters"`
	Guess        string            `json:"guess"`
	Found        []string          `json:"found"`
	FoundCount   int               `json:"foundCount"`
	Total        int               `json:"total"`
	Message      string            `json:"message,omitempty"`
	MessageSeq   uint64            `json:"messageSeq,omitempty"`
	ClearAfterMs int64             `json:"clearAfterMs,omitempty"`
	Statuses     map[string]string `json:"statuses"`
}

// toAction converts a wire action into a game action.
func toAction(a actionReq) (game.Action, error) {
	switch a.Type {
	case "letter":
		if utf8.RuneCountInString(a.Letter) != 1 {
			return nil, errors.New("letter must be one character")
		}
		r, _ := utf8.DecodeRuneInString(a.Letter)
		return game.AppendLetter{Letter: r}, nil
	case "backspace":
		return game.Backspace{}, nil
	case "shuffle":
		if a.Seed != nil {
			return game.Shuffle{Rand: rand.New(rand.NewPCG(*a.Seed, *a.Seed))}, nil
		}
		return game.Shuffle{}, nil
	case "submit":
		return game.Submit{}, nil
	case "clear":
		return game.ClearMessage{Seq: a.Seq}, nil
	}
	return nil, errors.New("unknown action " + a.Type)
}

// handlePlay rebuilds the caller's session, applies the actions in order
// and returns the new state with a re-signed token.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req playReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if len(req.Actions) > maxActions {
		writeError(w, http.StatusBadRequest, "too_many_actions")
		return
	}
	actions := make([]game.Action, 0, len(req.Actions))
	for _, a := range req.Actions {
		act, err := toAction(a)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_action")
			return
		}
		actions = append(actions, act)
	}

	var prev *stateClaims
	if tok := bearerOrCookie(r); tok != "" {
		c, err := s.parseState(tok)
		if err != nil {
			s.log.Debug().Err(err).Msg("discarding state token")
		} else {
			prev = c
		}
	}
	if req.Date == "" && prev != nil {
		req.Date = prev.Date
	}

	date, p, err := s.resolve(req.Date)
	if err != nil {
		s.writeLoadError(w, date, err)
		return
	}
	if prev != nil && prev.Key != p.Key() {
		prev = nil
	}

	// Progress lives in the token; a throwaway store lets the Player run
	// its Persist effects unchanged.
	ctx := r.Context()
	progress := store.NewMemory()
	var opts []game.Option
	if prev != nil {
		_ = progress.Save(ctx, p.Key(), prev.Progress)
		opts = append(opts, game.WithLetterOrder(prev.Order))
	}
	pl, err := game.Open(ctx, p, progress, s.log, opts...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	if prev != nil {
		pl.Type(ctx, prev.Guess)
	}

	var pending *game.ClearAfter
	for _, act := range actions {
		for _, e := range pl.Do(ctx, act) {
			if c, ok := e.(game.ClearAfter); ok {
				pending = &c
			}
		}
	}

	sess := pl.Session()
	saved, _, _ := progress.Load(ctx, p.Key())
	tok, exp, err := s.signState(stateClaims{
		Date:     date,
		Key:      p.Key(),
		Progress: saved,
		Guess:    sess.Guess(),
		Order:    sess.Letters(),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("sign state")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setStateCookie(w, tok, exp)

	found, total := sess.Progress()
	res := playRes{
		Token:      tok,
		Date:       date,
		Center:     string(sess.Center()),
		Letters:    sess.Letters(),
		Guess:      sess.Guess(),
		Found:      append([]string{}, sess.Found()...),
		FoundCount: found,
		Total:      total,
		Statuses:   make(map[string]string, 26),
	}
	if msg, seq, ok := sess.Message(); ok {
		res.Message = msg.Message()
		res.MessageSeq = seq
		if pending != nil && pending.Seq == seq {
			res.ClearAfterMs = pending.Delay.Milliseconds()
		}
	}
	for letter, st := range sess.Statuses() {
		res.Statuses[string(letter)] = string(st)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeError writes a JSON error body.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
