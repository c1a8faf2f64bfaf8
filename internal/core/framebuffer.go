package core

// Screen geometry of the packed framebuffer: 2 bits per pixel, four pixels per
// byte, first pixel in the least significant bits.
const (
	ScreenWidth     = 160
	ScreenHeight    = 160
	BitsPerPixel    = 2
	PixelsPerByte   = 8 / BitsPerPixel
	Stride          = ScreenWidth / PixelsPerByte
	FramebufferSize = Stride * ScreenHeight

	pixelMask = 1<<BitsPerPixel - 1
)

// Framebuffer is a packed 4-color bitmap, row-major, Stride bytes per row.
type Framebuffer [FramebufferSize]byte

// PixelOffset returns the byte index and bit shift of pixel (x, y).
func PixelOffset(x, y int) (int, uint) {
	return y*Stride + x/PixelsPerByte, uint(x%PixelsPerByte) * BitsPerPixel
}

// Pixel returns the palette index stored at (x, y).
func (fb *Framebuffer) Pixel(x, y int) Color {
	idx, shift := PixelOffset(x, y)
	return Color(fb[idx]>>shift) & pixelMask
}

// SetPixel rewrites the two bits of (x, y) and leaves the other pixels packed
// into the same byte untouched.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	idx, shift := PixelOffset(x, y)
	fb[idx] = fb[idx]&^(pixelMask<<shift) | (byte(c)&pixelMask)<<shift
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c Color) {
	v := byte(c) & pixelMask
	packed := v<<6 | v<<4 | v<<2 | v
	for i := range fb {
		fb[i] = packed
	}
}
