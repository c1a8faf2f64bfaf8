package render

import (
	"image/color"

	"lightcycle/internal/core"
)

// Palette maps the four 2-bit framebuffer values to display colors.
type Palette [4]color.RGBA

// DefaultPalette is the arena palette: grey walls, blue player 1, amber
// player 2 and a black floor.
var DefaultPalette = PaletteFromHex([4]uint32{0x686c73, 0x1e88e5, 0xffc107, 0x000000})

// PaletteFromHex builds an opaque palette from 0xRRGGBB values.
func PaletteFromHex(hex [4]uint32) Palette {
	var p Palette
	for i, v := range hex {
		p[i] = color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
	return p
}

// Hex returns the palette as 0xRRGGBB values.
func (p Palette) Hex() [4]uint32 {
	var out [4]uint32
	for i, c := range p {
		out[i] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	}
	return out
}

// At returns the color for a framebuffer value.
func (p Palette) At(c core.Color) color.RGBA {
	return p[c&0x03]
}
