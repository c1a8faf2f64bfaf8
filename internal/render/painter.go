//go:build ebiten

package render

import (
	"lightcycle/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads the packed framebuffer into an ebiten image.
type FramePainter struct {
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewFramePainter allocates a painter for the fixed screen size.
func NewFramePainter(palette Palette) *FramePainter {
	fp := &FramePainter{palette: palette, buf: make([]byte, RGBASize)}
	fp.img = ebiten.NewImage(core.ScreenWidth, core.ScreenHeight)
	return fp
}

// Blit converts fb and draws it scaled onto dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, fb *core.Framebuffer, scale int) {
	fillFramebufferRGBA(fp.buf, fb, fp.palette)
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}
