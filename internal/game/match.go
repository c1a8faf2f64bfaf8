// Package game holds the state of a two-player light-cycle match and advances
// it one frame at a time.
package game

import (
	"lightcycle/internal/core"
	"lightcycle/internal/raycast"
	"lightcycle/internal/render"
)

// View selects how a match is drawn.
type View uint8

const (
	View2D View = iota
	View3D
)

func (v View) String() string {
	if v == View3D {
		return "3d"
	}
	return "2d"
}

// ParseView maps a flag value to a View.
func ParseView(s string) (View, bool) {
	switch s {
	case "2d", "2D":
		return View2D, true
	case "3d", "3D":
		return View3D, true
	}
	return View2D, false
}

// Input is the set of actions pressed since the previous frame.
type Input uint8

const (
	InputTurnLeft Input = 1 << iota
	InputTurnRight
	InputToggleView
)

// Player is one light cycle. Color is both its trail color and its number.
type Player struct {
	Color    core.Color
	Position core.Position
	Heading  core.Heading
}

// Number returns 1 or 2.
func (p Player) Number() int { return int(p.Color) }

// Camera returns the first-person viewpoint of p.
func (p Player) Camera() core.Camera {
	return core.Camera{Position: p.Position, Heading: p.Heading}
}

// Config controls match pacing and the initial view.
type Config struct {
	View         View
	StepInterval int
}

// DefaultConfig returns the standard configuration: top-down view, one board
// step every nine frames.
func DefaultConfig() Config {
	return Config{View: View2D, StepInterval: 9}
}

// Stats summarises a finished or running match.
type Stats struct {
	Winner int
	Frames int
	Steps  int
}

// Match owns the grid, both cycles and the frame cadence.
type Match struct {
	cfg      Config
	grid     *core.Grid
	players  [2]Player
	safe     [2]core.Position
	winner   int
	cadence  int
	frames   int
	steps    int
	view     View
	renderer *raycast.Renderer
	bus      *EventBus
}

// New creates a match ready to play.
func New(cfg Config) *Match {
	if cfg.StepInterval <= 0 {
		cfg.StepInterval = DefaultConfig().StepInterval
	}
	m := &Match{
		cfg:      cfg,
		grid:     core.NewGrid(),
		renderer: raycast.NewRenderer(),
		bus:      NewEventBus(),
	}
	m.Reset()
	return m
}

// Reset rebuilds the arena and puts both cycles back on their start cells.
// Event subscriptions survive a reset.
func (m *Match) Reset() {
	m.grid.Clear()
	m.grid.BuildArena()
	m.players = [2]Player{
		{Color: core.ColorPlayer1, Position: core.Position{Row: 20, Col: 25}, Heading: core.North},
		{Color: core.ColorPlayer2, Position: core.Position{Row: 38, Col: 16}, Heading: core.East},
	}
	for i, p := range m.players {
		m.safe[i] = p.Position
	}
	m.winner = 0
	m.cadence = 0
	m.frames = 0
	m.steps = 0
	m.view = m.cfg.View
}

// Grid exposes the arena. Callers must not mutate it while a frame is drawn.
func (m *Match) Grid() *core.Grid { return m.grid }

// Players returns both cycles by value.
func (m *Match) Players() [2]Player { return m.players }

// Events returns the bus Update emits on.
func (m *Match) Events() *EventBus { return m.bus }

// View returns the active draw mode.
func (m *Match) View() View { return m.view }

// Finished reports whether a winner has been decided.
func (m *Match) Finished() bool { return m.winner != 0 }

// Winner returns 1 or 2 once finished, 0 before.
func (m *Match) Winner() int { return m.winner }

// Stats returns the current counters.
func (m *Match) Stats() Stats {
	return Stats{Winner: m.winner, Frames: m.frames, Steps: m.steps}
}

// Update advances the match by one frame: apply input, let the AI steer,
// and step the board when the cadence comes round.
func (m *Match) Update(in Input) {
	if m.Finished() {
		return
	}
	m.applyInput(in)
	m.players[1].Heading = m.steer(m.players[1])
	if m.cadence == 0 {
		m.Step()
	}
	m.cadence++
	if m.cadence >= m.cfg.StepInterval {
		m.cadence = 0
	}
	m.frames++
}

func (m *Match) applyInput(in Input) {
	p := &m.players[0]
	switch {
	case in&InputTurnLeft != 0:
		p.Heading = p.Heading.LeftTurn()
		m.bus.Emit(Event{Type: EventTurn, Player: p.Number(), Frame: m.frames})
	case in&InputTurnRight != 0:
		p.Heading = p.Heading.RightTurn()
		m.bus.Emit(Event{Type: EventTurn, Player: p.Number(), Frame: m.frames})
	case in&InputToggleView != 0:
		if m.view == View2D {
			m.view = View3D
		} else {
			m.view = View2D
		}
		m.bus.Emit(Event{Type: EventViewChanged, Frame: m.frames})
	}
}

func (m *Match) steer(p Player) core.Heading {
	h := Steer(m.grid, p)
	if h != p.Heading {
		m.bus.Emit(Event{Type: EventTurn, Player: p.Number(), Frame: m.frames})
	}
	return h
}

// Step moves both cycles one cell. Each cycle leaves its trail on the cell it
// departs, then crashes if it lands on an occupied cell. Cycles meeting head
// on give the win to player 2. The first crash decides the match.
func (m *Match) Step() {
	if m.Finished() {
		return
	}
	m.steps++
	m.bus.Emit(Event{Type: EventStep, Frame: m.frames})
	for i := range m.players {
		p := &m.players[i]
		other := m.players[1-i]
		m.grid.Set(p.Position.Row, p.Position.Col, p.Color)
		p.Position = p.Position.Step(p.Heading)

		switch {
		case p.Position == other.Position:
			m.finish(p.Number(), core.ColorPlayer2)
		case m.grid.Occupied(p.Position.Row, p.Position.Col):
			m.finish(p.Number(), other.Color)
		}
		if m.Finished() {
			return
		}
		m.safe[i] = p.Position
	}
}

func (m *Match) finish(crashed int, winner core.Color) {
	m.winner = int(winner)
	m.bus.Emit(Event{Type: EventCrash, Player: crashed, Frame: m.frames})
	m.bus.Emit(Event{Type: EventFinished, Player: m.winner, Frame: m.frames})
}

// Camera returns player 1's first-person viewpoint. After a crash the camera
// stays on the last free cell the cycle occupied, facing the obstacle.
func (m *Match) Camera() core.Camera {
	return core.Camera{Position: m.safe[0], Heading: m.players[0].Heading}
}

// Draw renders the current view into fb. The first-person view follows
// player 1.
func (m *Match) Draw(fb *core.Framebuffer) {
	if m.view == View3D {
		m.renderer.Draw(fb, m.grid, m.Camera())
		return
	}
	render.DrawBoard(fb, m.grid)
	for _, p := range m.players {
		render.DrawTile(fb, p.Position.Row, p.Position.Col, p.Color)
	}
}
