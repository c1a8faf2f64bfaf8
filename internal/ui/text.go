package ui

import (
	"fmt"

	"lightcycle/internal/game"
)

// ResultText is the end-of-match banner from player 1's point of view, or ""
// while the match is running.
func ResultText(winner int) string {
	switch winner {
	case 1:
		return "You won!"
	case 2:
		return "You lost!"
	}
	return ""
}

// HintText names the active view and the keys.
func HintText(v game.View) string {
	return fmt.Sprintf("%s  <-/-> turn  V view  H hide", v)
}
