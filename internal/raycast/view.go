package raycast

import (
	"iter"

	"lightcycle/internal/core"
)

// Centre returns the angle a camera facing h looks along.
func Centre(h core.Heading) Angle {
	switch h {
	case core.North:
		return QuarterTurn
	case core.West:
		return HalfTurn
	case core.South:
		return 3 * QuarterTurn
	default:
		return 0
	}
}

// span is an inclusive, descending run of angles.
type span struct {
	from, to int
}

// sweep splits the field of view for h into runs that never cross the wrap
// point of the angle domain.
func sweep(h core.Heading) []span {
	hi := int(Centre(h)) + HalfFOV
	lo := hi - (core.ScreenWidth - 1)
	if lo < 0 {
		return []span{{from: hi, to: 0}, {from: AngleUnits - 1, to: AngleUnits + lo}}
	}
	return []span{{from: hi, to: lo}}
}

// ColumnAngles yields, for each screen column from left to right, the angle
// of the ray cast through it. The leftmost column looks furthest
// counter-clockwise, so a left turn brings what was at the left edge towards
// the centre.
func ColumnAngles(h core.Heading) iter.Seq2[int, Angle] {
	return func(yield func(int, Angle) bool) {
		col := 0
		for _, s := range sweep(h) {
			for a := s.from; a >= s.to; a-- {
				if !yield(col, Angle(a)) {
					return
				}
				col++
			}
		}
	}
}

// ColumnAngle returns the angle of screen column col for heading h.
func ColumnAngle(h core.Heading, col int) Angle {
	return Normalize(int(Centre(h)) + HalfFOV - col)
}
