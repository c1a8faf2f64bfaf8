package game

import (
	"testing"

	"lightcycle/internal/core"
	"lightcycle/internal/raycast"
)

func TestNewMatchStartsOnArena(t *testing.T) {
	m := New(DefaultConfig())
	if !m.Grid().BorderIntact() {
		t.Fatal("arena border missing")
	}
	ps := m.Players()
	if ps[0].Position != (core.Position{Row: 20, Col: 25}) || ps[0].Heading != core.North {
		t.Fatalf("player 1 start %+v", ps[0])
	}
	if ps[1].Position != (core.Position{Row: 38, Col: 16}) || ps[1].Heading != core.East {
		t.Fatalf("player 2 start %+v", ps[1])
	}
	if m.Finished() || m.View() != View2D {
		t.Fatal("fresh match must be running in 2D")
	}
}

func TestInputPriorityAndToggle(t *testing.T) {
	m := New(DefaultConfig())
	m.Update(InputTurnLeft | InputTurnRight | InputToggleView)
	if h := m.Players()[0].Heading; h != core.West {
		t.Fatalf("heading %s, want west: left must win", h)
	}
	if m.View() != View2D {
		t.Fatal("toggle must be ignored when a turn was pressed")
	}
	m.Update(InputToggleView)
	if m.View() != View3D {
		t.Fatal("toggle should switch to 3D")
	}
	m.Update(InputTurnRight)
	if h := m.Players()[0].Heading; h != core.North {
		t.Fatalf("heading %s, want north", h)
	}
}

func TestStepCadence(t *testing.T) {
	m := New(DefaultConfig())
	steps := 0
	m.Events().Subscribe(EventStep, func(Event) { steps++ })
	for i := 0; i < 27; i++ {
		m.Update(0)
	}
	if steps != 3 {
		t.Fatalf("%d steps after 27 frames, want 3", steps)
	}
	if st := m.Stats(); st.Frames != 27 || st.Steps != 3 {
		t.Fatalf("stats %+v", st)
	}
	if p := m.Players()[0].Position; p != (core.Position{Row: 17, Col: 25}) {
		t.Fatalf("player 1 at %+v after 3 steps north", p)
	}
	if c, ok := m.Grid().At(20, 25); !ok || c != core.ColorPlayer1 {
		t.Fatal("departed cell must carry player 1's trail")
	}
}

func TestCrashIntoWallLoses(t *testing.T) {
	m := New(DefaultConfig())
	var finished []Event
	m.Events().Subscribe(EventFinished, func(e Event) { finished = append(finished, e) })

	for i := 0; i < 40 && !m.Finished(); i++ {
		m.Step()
	}
	if m.Winner() != 2 {
		t.Fatalf("winner %d, want 2 after player 1 drives into the wall", m.Winner())
	}
	if len(finished) != 1 || finished[0].Player != 2 {
		t.Fatalf("finished events %+v", finished)
	}
	cam := m.Camera()
	if cam.Position != (core.Position{Row: 1, Col: 25}) {
		t.Fatalf("camera left on %+v, want the last free cell", cam.Position)
	}

	before := m.Stats()
	m.Update(InputTurnLeft)
	if m.Stats() != before {
		t.Fatal("finished match must ignore updates")
	}

	// The first-person view must still render from the last free cell.
	var fb core.Framebuffer
	m.view = View3D
	m.Draw(&fb)
	if got := fb.Pixel(raycast.HalfFOV, raycast.HorizonRow); got != core.ColorWall {
		t.Fatalf("centre pixel %d, want the wall", got)
	}
}

func TestHeadOnGoesToPlayerTwo(t *testing.T) {
	m := New(DefaultConfig())
	m.players[0] = Player{Color: core.ColorPlayer1, Position: core.Position{Row: 10, Col: 10}, Heading: core.East}
	m.players[1] = Player{Color: core.ColorPlayer2, Position: core.Position{Row: 10, Col: 11}, Heading: core.West}
	m.Step()
	if m.Winner() != 2 {
		t.Fatalf("winner %d, want 2", m.Winner())
	}
}

func TestPlayerTwoCrashGivesPlayerOneTheWin(t *testing.T) {
	m := New(DefaultConfig())
	m.players[1] = Player{Color: core.ColorPlayer2, Position: core.Position{Row: 5, Col: 38}, Heading: core.East}
	m.Step()
	if m.Winner() != 1 {
		t.Fatalf("winner %d, want 1", m.Winner())
	}
}

func TestResetClearsTrails(t *testing.T) {
	m := New(DefaultConfig())
	for i := 0; i < 5; i++ {
		m.Step()
	}
	m.Reset()
	if m.Grid().Occupied(20, 25) || m.Grid().Occupied(19, 25) {
		t.Fatal("trails survived reset")
	}
	if m.Stats() != (Stats{}) {
		t.Fatalf("stats not reset: %+v", m.Stats())
	}
}

func TestDraw2DShowsBoardAndHeads(t *testing.T) {
	m := New(DefaultConfig())
	var fb core.Framebuffer
	m.Draw(&fb)
	if got := fb.Pixel(0, 0); got != core.ColorWall {
		t.Fatalf("corner pixel %d, want wall", got)
	}
	if got := fb.Pixel(25*core.CellSize+1, 20*core.CellSize+2); got != core.ColorPlayer1 {
		t.Fatalf("player 1 head pixel %d", got)
	}
	if got := fb.Pixel(10*core.CellSize, 10*core.CellSize); got != core.ColorEmpty {
		t.Fatalf("empty cell pixel %d", got)
	}
}
