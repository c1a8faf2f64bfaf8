package core

import "testing"

func TestBuildArenaOccupiesBorderOnly(t *testing.T) {
	g := NewGrid()
	g.BuildArena()
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			border := r == 0 || c == 0 || r == GridSize-1 || c == GridSize-1
			color, ok := g.At(r, c)
			if ok != border {
				t.Fatalf("cell (%d,%d) occupied=%v, want %v", r, c, ok, border)
			}
			if ok && color != ColorWall {
				t.Fatalf("border cell (%d,%d) has color %d", r, c, color)
			}
		}
	}
	if !g.BorderIntact() {
		t.Fatal("fresh arena must report an intact border")
	}
}

func TestGridAccessorsAreBoundsChecked(t *testing.T) {
	g := NewGrid()
	g.Set(-1, 3, ColorPlayer1)
	g.Set(3, GridSize, ColorPlayer1)
	if _, ok := g.At(-1, 3); ok {
		t.Fatal("out-of-range read must report empty")
	}
	if !g.Occupied(GridSize, 0) {
		t.Fatal("cells outside the grid count as occupied")
	}

	g.Set(4, 5, ColorPlayer2)
	if c, ok := g.At(4, 5); !ok || c != ColorPlayer2 {
		t.Fatalf("At(4,5) = %d,%v, want player 2", c, ok)
	}
	g.Set(4, 6, ColorWall)
	if c, ok := g.At(4, 6); !ok || c != ColorWall {
		t.Fatal("wall color 0 must still read as occupied")
	}

	g.Clear()
	if g.Occupied(4, 5) || g.BorderIntact() {
		t.Fatal("Clear must empty the grid")
	}
}
