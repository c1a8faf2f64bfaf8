package app

import (
	"context"
	"log"

	"lightcycle/internal/audio"
	"lightcycle/internal/core"
	"lightcycle/internal/game"
	"lightcycle/internal/render"
	"lightcycle/internal/scores"
	"lightcycle/internal/spectate"
)

// Session wires a match to its framebuffer and the optional outputs: sound
// cues, result storage and the spectator stream. Both hosts drive one.
type Session struct {
	match  *game.Match
	fb     core.Framebuffer
	store  scores.Store
	hub    *spectate.Hub
	audio  *audio.Player
	cancel context.CancelFunc
}

// NewSession builds a session from cfg. Optional outputs that fail to start
// are logged and left off.
func NewSession(ctx context.Context, cfg *Config) *Session {
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{match: game.New(cfg.MatchConfig()), cancel: cancel}

	if cfg.PostgresDSN != "" || cfg.ScoresPath != "" {
		store, err := scores.Open(ctx, cfg.PostgresDSN, cfg.ScoresPath)
		if err != nil {
			log.Printf("scores disabled: %v", err)
		} else {
			s.store = store
			scores.RecordOnFinish(store, s.match)
		}
	}

	if cfg.Audio {
		p := audio.NewPlayer(cfg.Volume)
		if err := p.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			s.audio = p
			s.match.Events().SubscribeAll(p.HandleEvent)
		}
	}

	if cfg.SpectateAddr != "" {
		s.hub = spectate.NewHub(render.DefaultPalette.Hex())
		go func() {
			if err := s.hub.Serve(ctx, cfg.SpectateAddr); err != nil {
				log.Printf("spectate disabled: %v", err)
			}
		}()
	}

	if cfg.Debug {
		s.match.Events().Subscribe(game.EventFinished, func(e game.Event) {
			st := s.match.Stats()
			log.Printf("match over: player %d wins after %d steps (%d frames)", e.Player, st.Steps, st.Frames)
		})
	}

	s.match.Draw(&s.fb)
	return s
}

// Match returns the running match.
func (s *Session) Match() *game.Match { return s.match }

// Framebuffer returns the frame drawn by the last Frame call.
func (s *Session) Framebuffer() *core.Framebuffer { return &s.fb }

// Frame advances the match by one frame, redraws it and publishes the result
// to spectators.
func (s *Session) Frame(in game.Input) *core.Framebuffer {
	s.match.Update(in)
	s.match.Draw(&s.fb)
	if s.hub != nil {
		s.hub.Publish(&s.fb)
	}
	return &s.fb
}

// Reset starts a new match, keeping every output attached.
func (s *Session) Reset() {
	s.match.Reset()
	s.match.Draw(&s.fb)
}

// Totals reports stored wins, if a store is attached.
func (s *Session) Totals(ctx context.Context) (scores.Totals, bool) {
	if s.store == nil {
		return scores.Totals{}, false
	}
	t, err := s.store.Totals(ctx)
	if err != nil {
		log.Printf("scores: %v", err)
		return scores.Totals{}, false
	}
	return t, true
}

// Close stops the spectator stream and releases the store and speaker.
func (s *Session) Close() {
	s.cancel()
	if s.audio != nil {
		s.audio.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("scores: close: %v", err)
		}
	}
}
