// internal/game/player.go
//
// Player couples a Session with a progress Store and runs the Persist
// effects Dispatch produces. Store failures are logged and swallowed: losing
// a progress write must never end a game.

package game

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/store"
)

// Player runs a Session against a Store.
type Player struct {
	session *Session
	store   store.Store
	log     zerolog.Logger
}

// Open loads saved progress for p and starts a session. An unreadable store
// starts the session with no progress.
func Open(ctx context.Context, p *puzzle.Puzzle, st store.Store, logger zerolog.Logger, opts ...Option) (*Player, error) {
	logger = logger.With().Str("puzzle", p.Key()).Logger()

	saved, _, err := st.Load(ctx, p.Key())
	if err != nil {
		logger.Warn().Err(err).Msg("load progress failed, starting empty")
		saved = ""
	}
	sess, err := NewSession(p, saved, opts...)
	if err != nil {
		return nil, err
	}
	return &Player{session: sess, store: st, log: logger}, nil
}

// Session exposes the underlying session for queries.
func (pl *Player) Session() *Session { return pl.session }

// Do dispatches a, performs Persist effects and returns the rest.
func (pl *Player) Do(ctx context.Context, a Action) []Effect {
	effects := pl.session.Dispatch(a)
	rest := effects[:0]
	for _, e := range effects {
		p, ok := e.(Persist)
		if !ok {
			rest = append(rest, e)
			continue
		}
		if err := pl.store.Save(ctx, p.Key, p.Value); err != nil {
			pl.log.Warn().Err(err).Msg("save progress failed")
			continue
		}
		pl.log.Debug().Int("found", len(pl.session.found)).Msg("progress saved")
	}
	return rest
}

// Type dispatches one AppendLetter per rune of word.
func (pl *Player) Type(ctx context.Context, word string) {
	for _, r := range word {
		pl.Do(ctx, AppendLetter{Letter: r})
	}
}
