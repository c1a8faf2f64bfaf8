package render

import "lightcycle/internal/core"

// DrawTile fills the CellSize x CellSize pixel block of cell (row, col) with c.
// A cell is exactly one packed byte wide, so each tile row is a single store.
func DrawTile(fb *core.Framebuffer, row, col int, c core.Color) {
	if !core.InBounds(row, col) {
		return
	}
	v := byte(c) & 0x03
	packed := v<<6 | v<<4 | v<<2 | v
	base := col * core.CellSize / core.PixelsPerByte
	for r := 0; r < core.CellSize; r++ {
		fb[(row*core.CellSize+r)*core.Stride+base] = packed
	}
}

// DrawBoard blits the whole grid top-down: occupied cells in their owner
// color, free cells in core.ColorEmpty.
func DrawBoard(fb *core.Framebuffer, g *core.Grid) {
	for row := 0; row < core.GridSize; row++ {
		for col := 0; col < core.GridSize; col++ {
			c, ok := g.At(row, col)
			if !ok {
				c = core.ColorEmpty
			}
			DrawTile(fb, row, col, c)
		}
	}
}
