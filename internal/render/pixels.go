package render

import "lightcycle/internal/core"

// RGBASize is the byte length of an RGBA copy of the framebuffer.
const RGBASize = 4 * core.ScreenWidth * core.ScreenHeight

// fillFramebufferRGBA unpacks the 2-bit framebuffer into RGBA pixels in buf.
func fillFramebufferRGBA(buf []byte, fb *core.Framebuffer, palette Palette) {
	for i, packed := range fb {
		for p := 0; p < core.PixelsPerByte; p++ {
			col := palette[(packed>>(p*core.BitsPerPixel))&0x03]
			base := (i*core.PixelsPerByte + p) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// FramebufferRGBA returns a freshly allocated RGBA copy of fb.
func FramebufferRGBA(fb *core.Framebuffer, palette Palette) []byte {
	buf := make([]byte, RGBASize)
	fillFramebufferRGBA(buf, fb, palette)
	return buf
}
