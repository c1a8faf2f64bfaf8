//go:build ebiten

package app

import (
	"lightcycle/internal/core"
	"lightcycle/internal/game"
	"lightcycle/internal/render"
	"lightcycle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.FramePainter
	overlay *ui.Overlay
	scale   int
}

// New constructs a Game for the provided session.
func New(session *Session, scale int) *Game {
	return &Game{
		session: session,
		painter: render.NewFramePainter(render.DefaultPalette),
		overlay: ui.NewOverlay(session.Match(), scale),
		scale:   scale,
	}
}

// Update gathers this frame's key presses and advances the match.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		return nil
	}

	var in game.Input
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		in |= game.InputTurnLeft
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		in |= game.InputTurnRight
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in |= game.InputToggleView
	}

	g.overlay.Update()
	g.session.Frame(in)
	return nil
}

// Draw renders the last frame and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Framebuffer(), g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ScreenWidth * g.scale, core.ScreenHeight * g.scale
}
