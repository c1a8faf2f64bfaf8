// Package scores persists the outcome of finished matches.
package scores

import (
	"context"
	"errors"
	"log"
	"time"

	"lightcycle/internal/game"
)

// ErrInvalidResult is returned when a result names no winner.
var ErrInvalidResult = errors.New("scores: result has no winner")

// Result is one finished match.
type Result struct {
	Winner  int       `json:"winner"`
	Frames  int       `json:"frames"`
	Steps   int       `json:"steps"`
	EndedAt time.Time `json:"ended_at"`
}

// Totals counts wins per player.
type Totals struct {
	Matches     int `json:"matches"`
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`
}

// Store records results. Implementations are safe for concurrent use.
type Store interface {
	Record(ctx context.Context, r Result) error
	Totals(ctx context.Context) (Totals, error)
	// Recent returns up to n results, newest first.
	Recent(ctx context.Context, n int) ([]Result, error)
	Close() error
}

// FromStats converts match counters into a result stamped at now.
func FromStats(s game.Stats, now time.Time) Result {
	return Result{Winner: s.Winner, Frames: s.Frames, Steps: s.Steps, EndedAt: now.UTC()}
}

func validate(r Result) error {
	if r.Winner != 1 && r.Winner != 2 {
		return ErrInvalidResult
	}
	return nil
}

func (t *Totals) add(winner int) {
	t.Matches++
	switch winner {
	case 1:
		t.Player1Wins++
	case 2:
		t.Player2Wins++
	}
}

// Open picks the store for the given settings: PostgreSQL when dsn is set,
// otherwise the JSON file at path.
func Open(ctx context.Context, dsn, path string) (Store, error) {
	if dsn != "" {
		return NewPostgresStore(ctx, dsn)
	}
	return NewJSONStore(path)
}

// RecordOnFinish subscribes to m's bus and records every finished match in
// store. Failures are logged; the game carries on.
func RecordOnFinish(store Store, m *game.Match) {
	m.Events().Subscribe(game.EventFinished, func(game.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := store.Record(ctx, FromStats(m.Stats(), time.Now())); err != nil {
			log.Printf("scores: %v", err)
		}
	})
}
