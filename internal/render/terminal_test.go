package render

import (
	"testing"

	"lightcycle/internal/core"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func TestTerminalPainterHalfBlocks(t *testing.T) {
	var fb core.Framebuffer
	fb.Fill(core.ColorEmpty)
	// Cell (0,0) carries pixel rows 0 and 1.
	fb.SetPixel(0, 0, core.ColorPlayer1)
	fb.SetPixel(0, 1, core.ColorPlayer2)

	tp := NewTerminalPainter(DefaultPalette, 1)
	w, h := tp.Size()
	if w != 160 || h != 80 {
		t.Fatalf("Size() = %dx%d, want 160x80", w, h)
	}

	s := newSimScreen(t, w, h)
	tp.Draw(s, &fb, 0, 0)
	s.Show()

	r, _, style, _ := s.GetContent(0, 0)
	if r != upperHalf {
		t.Fatalf("rune = %q, want %q", r, upperHalf)
	}
	fg, bg, _ := style.Decompose()
	if fg != tp.colors[core.ColorPlayer1] || bg != tp.colors[core.ColorPlayer2] {
		t.Fatalf("cell (0,0) fg/bg = %v/%v", fg, bg)
	}

	_, _, style, _ = s.GetContent(1, 0)
	fg, bg, _ = style.Decompose()
	if fg != tp.colors[core.ColorEmpty] || bg != tp.colors[core.ColorEmpty] {
		t.Fatalf("cell (1,0) fg/bg = %v/%v, want floor", fg, bg)
	}
}

func TestTerminalPainterOffsetAndStep(t *testing.T) {
	var fb core.Framebuffer
	fb.Fill(core.ColorEmpty)
	fb.SetPixel(2, 4, core.ColorWall)

	tp := NewTerminalPainter(DefaultPalette, 2)
	w, h := tp.Size()
	if w != 80 || h != 40 {
		t.Fatalf("Size() = %dx%d, want 80x40", w, h)
	}
	s := newSimScreen(t, w+3, h+2)
	tp.Draw(s, &fb, 3, 2)
	s.Show()

	// Pixel (2,4) is sampled by terminal cell (1,1) as its top half.
	_, _, style, _ := s.GetContent(3+1, 2+1)
	fg, _, _ := style.Decompose()
	if fg != tp.colors[core.ColorWall] {
		t.Fatalf("sampled fg = %v, want wall", fg)
	}
	if r, _, _, _ := s.GetContent(0, 0); r == upperHalf {
		t.Fatalf("painter wrote outside its offset")
	}
}

func TestStepForScreen(t *testing.T) {
	cases := []struct {
		w, h, want int
	}{
		{200, 100, 1},
		{160, 80, 1},
		{120, 60, 2},
		{80, 40, 2},
		{60, 30, 3},
		{20, 10, 4},
	}
	for _, tc := range cases {
		if got := StepForScreen(tc.w, tc.h); got != tc.want {
			t.Errorf("StepForScreen(%d, %d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}
