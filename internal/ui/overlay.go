//go:build ebiten

package ui

import (
	"image/color"

	"lightcycle/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the match result and a key hint on top of the frame.
type Overlay struct {
	match    *game.Match
	scale    int
	showHelp bool
	banner   *ebiten.Image
}

// NewOverlay constructs an overlay for m drawn at the given pixel scale.
func NewOverlay(m *game.Match, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{match: m, scale: scale, showHelp: true}
	o.banner = ebiten.NewImage(1, 1)
	o.banner.Fill(color.RGBA{A: 0xc0})
	return o
}

// Update toggles the key hint with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	face := basicfont.Face7x13

	if msg := ResultText(o.match.Winner()); msg != "" {
		bw := len(msg)*7 + 16
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(bw), 25)
		op.GeoM.Translate(float64((w-bw)/2), float64(h/2-17))
		screen.DrawImage(o.banner, op)
		text.Draw(screen, msg, face, (w-len(msg)*7)/2, h/2, color.White)
		text.Draw(screen, "R to restart", face, (w-12*7)/2, h/2+20, color.White)
		return
	}
	if o.showHelp {
		text.Draw(screen, HintText(o.match.View()), face, 4, h-6, color.White)
	}
}
