package game

import "lightcycle/internal/core"

// aiReaction is how close an obstacle must be before the AI considers turning.
const aiReaction = 3

// NextAhead returns how many steps along h from pos reach the first occupied
// cell, or 0 when nothing is found within the grid size.
func NextAhead(g *core.Grid, pos core.Position, h core.Heading) int {
	p := pos
	for z := 1; z <= core.GridSize; z++ {
		p = p.Step(h)
		if g.Occupied(p.Row, p.Col) {
			return z
		}
	}
	return 0
}

// NextLeft is NextAhead after a left turn.
func NextLeft(g *core.Grid, pos core.Position, h core.Heading) int {
	return NextAhead(g, pos, h.LeftTurn())
}

// NextRight is NextAhead after a right turn.
func NextRight(g *core.Grid, pos core.Position, h core.Heading) int {
	return NextAhead(g, pos, h.RightTurn())
}

// Steer picks the heading for a computer-controlled cycle. It keeps going
// straight until an obstacle is within aiReaction cells, then turns to the
// side with more room, preferring left when both sides are equally open.
// Equal room used to apply both turns, which cancelled out and drove straight
// into the obstacle.
func Steer(g *core.Grid, p Player) core.Heading {
	ahead := NextAhead(g, p.Position, p.Heading)
	if ahead > aiReaction {
		return p.Heading
	}
	left := NextLeft(g, p.Position, p.Heading)
	right := NextRight(g, p.Position, p.Heading)
	switch {
	case left >= right && left > ahead:
		return p.Heading.LeftTurn()
	case right > left && right > ahead:
		return p.Heading.RightTurn()
	}
	return p.Heading
}
