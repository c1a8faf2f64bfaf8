//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"lightcycle/internal/app"
	"lightcycle/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.ApplyEnv(nil)

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	session := app.NewSession(context.Background(), cfg)
	defer session.Close()

	game := app.New(session, cfg.Scale)

	ebiten.SetWindowTitle("lightcycle")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(core.ScreenWidth*cfg.Scale, core.ScreenHeight*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
