package app

import (
	"context"
	"fmt"
	"time"

	"lightcycle/internal/core"
	"lightcycle/internal/game"
	"lightcycle/internal/render"
	"lightcycle/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// Terminal runs a session on a tcell screen.
type Terminal struct {
	screen  tcell.Screen
	session *Session
	painter *render.TerminalPainter
	step    *core.FixedStep
	pending game.Input
	status  tcell.Style
	record  string
}

// NewTerminal prepares screen, which must already be initialised.
func NewTerminal(screen tcell.Screen, session *Session, tps int) *Terminal {
	t := &Terminal{
		screen:  screen,
		session: session,
		step:    core.NewFixedStep(tps),
		status:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
	t.fit()
	session.Match().Events().Subscribe(game.EventFinished, func(game.Event) {
		t.record = ""
		if tot, ok := session.Totals(context.Background()); ok {
			t.record = fmt.Sprintf("  P1 %d - %d AI", tot.Player1Wins, tot.Player2Wins)
		}
	})
	return t
}

func (t *Terminal) fit() {
	w, h := t.screen.Size()
	t.painter = render.NewTerminalPainter(render.DefaultPalette, render.StepForScreen(w, h-1))
}

// HandleEvent applies one input event. It reports false when the player asked
// to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			t.pending |= game.InputTurnLeft
		case tcell.KeyRight:
			t.pending |= game.InputTurnRight
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				t.pending |= game.InputTurnLeft
			case 'd':
				t.pending |= game.InputTurnRight
			case 'v', ' ':
				t.pending |= game.InputToggleView
			case 'r':
				t.session.Reset()
				t.pending = 0
			}
		}
	case *tcell.EventResize:
		t.fit()
		t.screen.Sync()
	}
	return true
}

// Tick runs one frame with the input gathered since the last tick and redraws.
func (t *Terminal) Tick() {
	t.session.Frame(t.pending)
	t.pending = 0
	t.Draw()
}

// Draw paints the current frame and the status line below it.
func (t *Terminal) Draw() {
	t.screen.Clear()
	t.painter.Draw(t.screen, t.session.Framebuffer(), 0, 0)
	_, h := t.painter.Size()
	t.drawText(0, h, t.statusLine())
	t.screen.Show()
}

func (t *Terminal) statusLine() string {
	m := t.session.Match()
	if msg := ui.ResultText(m.Winner()); msg != "" {
		return msg + t.record + "  r: restart  q: quit"
	}
	return fmt.Sprintf("%s view  arrows: turn  v: toggle view  q: quit", m.View())
}

func (t *Terminal) drawText(x, y int, s string) {
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, t.status)
	}
}

// Run polls input and ticks at the configured rate until ctx ends or the
// player quits.
func (t *Terminal) Run(ctx context.Context) {
	done := make(chan struct{})
	defer close(done)
	events := forwardEvents(t.screen.PollEvent, done)

	ticker := time.NewTicker(t.step.Interval() / 2)
	defer ticker.Stop()
	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || !t.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			if t.step.ShouldStep() {
				t.Tick()
			}
		}
	}
}

// forwardEvents feeds poll results into the returned channel until poll
// returns nil or done is closed, then closes the channel.
func forwardEvents(poll func() tcell.Event, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := poll()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
