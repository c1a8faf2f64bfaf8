package raycast

import (
	"errors"
	"fmt"
	"math"

	"lightcycle/internal/core"
)

// Kind tells which family of grid lines produced an intersection.
type Kind uint8

const (
	HorizontalGrid Kind = iota
	VerticalGrid
)

func (k Kind) String() string {
	if k == HorizontalGrid {
		return "horizontal"
	}
	return "vertical"
}

// Intersection is the nearest occupied cell struck by one ray.
type Intersection struct {
	Kind     Kind
	Distance float64
	Color    core.Color
	Row, Col int
}

// Point is a position in arena pixel space (y grows downward). Ray origins
// always fall on whole pixels.
type Point struct {
	X, Y int
}

// ErrNoIntersection reports a ray that left the grid without striking a cell.
// With an intact border this cannot happen.
var ErrNoIntersection = errors.New("raycast: ray left the grid without a hit")

// InvariantError describes the ray that escaped the arena.
type InvariantError struct {
	Origin Point
	Angle  Angle
	Column int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("raycast: column %d at angle %d (%.3f°) from (%d,%d): %v",
		e.Column, e.Angle, e.Angle.Degrees(), e.Origin.X, e.Origin.Y, ErrNoIntersection)
}

func (e *InvariantError) Unwrap() error { return ErrNoIntersection }

// Origin returns the ray origin for cam: the centre of the camera cell's face
// in the direction of travel. Along the heading axis the origin is therefore
// edge-aligned, across it the origin stays half a cell in.
func Origin(cam core.Camera) Point {
	const half = core.CellSize / 2
	p := Point{
		X: cam.Position.Col*core.CellSize + half,
		Y: cam.Position.Row*core.CellSize + half,
	}
	switch cam.Heading {
	case core.North:
		p.Y -= half
	case core.South:
		p.Y += half
	case core.East:
		p.X += half
	case core.West:
		p.X -= half
	}
	return p
}

// FindIntersection casts a ray from o at angle a and returns the nearest hit of
// the two line marches. The second result is false when neither march hits.
func FindIntersection(g *core.Grid, o Point, a Angle) (Intersection, bool) {
	h, hok := marchHorizontal(g, o, a)
	v, vok := marchVertical(g, o, a)
	return nearest(h, hok, v, vok)
}

// nearest keeps the closer result; equal distances go to the horizontal march.
func nearest(h Intersection, hok bool, v Intersection, vok bool) (Intersection, bool) {
	switch {
	case hok && vok:
		if v.Distance < h.Distance {
			return v, true
		}
		return h, true
	case hok:
		return h, true
	case vok:
		return v, true
	}
	return Intersection{}, false
}

// marchHorizontal walks the horizontal grid lines y = k*CellSize crossed by
// the ray. A ray parallel to those lines never crosses one and abstains.
func marchHorizontal(g *core.Grid, o Point, a Angle) (Intersection, bool) {
	if a == 0 || a == HalfTurn {
		return Intersection{}, false
	}
	cot := Cot(a)

	lineY, stepY, rowOffset := ceilToCell(o.Y), core.CellSize, 0
	if a < HalfTurn {
		// Upward: the cell above each line is the one being entered.
		lineY, stepY, rowOffset = floorToCell(o.Y), -core.CellSize, -1
	}

	for ; lineY >= 0 && lineY <= core.ArenaPixels; lineY += stepY {
		dy := lineY - o.Y
		dx := float64(-dy) * cot
		row := lineY/core.CellSize + rowOffset
		col := cellOf(float64(o.X) + dx)
		if !core.InBounds(row, col) {
			return Intersection{}, false
		}
		if c, ok := g.At(row, col); ok {
			return Intersection{
				Kind:     HorizontalGrid,
				Distance: math.Hypot(dx, float64(dy)),
				Color:    c,
				Row:      row,
				Col:      col,
			}, true
		}
	}
	return Intersection{}, false
}

// marchVertical walks the vertical grid lines x = k*CellSize crossed by the
// ray. A ray parallel to those lines abstains.
func marchVertical(g *core.Grid, o Point, a Angle) (Intersection, bool) {
	if a == QuarterTurn || a == 3*QuarterTurn {
		return Intersection{}, false
	}
	tan := Tan(a)

	lineX, stepX, colOffset := floorToCell(o.X), -core.CellSize, -1
	if a < QuarterTurn || a > 3*QuarterTurn {
		lineX, stepX, colOffset = ceilToCell(o.X), core.CellSize, 0
	}

	for ; lineX >= 0 && lineX <= core.ArenaPixels; lineX += stepX {
		dx := lineX - o.X
		dy := float64(-dx) * tan
		col := lineX/core.CellSize + colOffset
		row := cellOf(float64(o.Y) + dy)
		if !core.InBounds(row, col) {
			return Intersection{}, false
		}
		if c, ok := g.At(row, col); ok {
			return Intersection{
				Kind:     VerticalGrid,
				Distance: math.Hypot(float64(dx), dy),
				Color:    c,
				Row:      row,
				Col:      col,
			}, true
		}
	}
	return Intersection{}, false
}

func floorToCell(v int) int { return v / core.CellSize * core.CellSize }

func ceilToCell(v int) int { return (v + core.CellSize - 1) / core.CellSize * core.CellSize }

func cellOf(v float64) int { return int(math.Floor(v / core.CellSize)) }
