package render

import (
	"lightcycle/internal/core"

	"github.com/gdamore/tcell/v2"
)

// upperHalf draws the top pixel in the foreground and the bottom one in the
// background, packing two framebuffer rows into one terminal row.
const upperHalf = '▀'

// TerminalPainter draws the framebuffer onto a tcell screen.
type TerminalPainter struct {
	colors [4]tcell.Color
	step   int
}

// NewTerminalPainter returns a painter sampling every step-th pixel in both
// directions. A step of 1 needs a 160x80 terminal; 2 fits 80x40.
func NewTerminalPainter(palette Palette, step int) *TerminalPainter {
	if step <= 0 {
		step = 1
	}
	tp := &TerminalPainter{step: step}
	for i, c := range palette {
		tp.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tp
}

// Size returns the terminal cells covered by a full frame.
func (tp *TerminalPainter) Size() (int, int) {
	return core.ScreenWidth / tp.step, core.ScreenHeight / (2 * tp.step)
}

// StepForScreen picks the smallest sampling step whose frame fits in w x h
// terminal cells, never coarser than 4.
func StepForScreen(w, h int) int {
	for step := 1; step < 4; step++ {
		if core.ScreenWidth/step <= w && core.ScreenHeight/(2*step) <= h {
			return step
		}
	}
	return 4
}

// Draw paints fb with its top-left corner at terminal cell (ox, oy).
func (tp *TerminalPainter) Draw(s tcell.Screen, fb *core.Framebuffer, ox, oy int) {
	w, h := tp.Size()
	for ty := 0; ty < h; ty++ {
		top := ty * 2 * tp.step
		bottom := top + tp.step
		for tx := 0; tx < w; tx++ {
			x := tx * tp.step
			style := tcell.StyleDefault.
				Foreground(tp.colors[fb.Pixel(x, top)]).
				Background(tp.colors[fb.Pixel(x, bottom)])
			s.SetContent(ox+tx, oy+ty, upperHalf, nil, style)
		}
	}
}
