package raycast

import (
	"math"
	"testing"

	"lightcycle/internal/core"
)

func borderGrid() *core.Grid {
	g := core.NewGrid()
	g.BuildArena()
	return g
}

func TestOriginSitsOnLeadingFace(t *testing.T) {
	pos := core.Position{Row: 20, Col: 20}
	cases := map[core.Heading]Point{
		core.North: {X: 82, Y: 80},
		core.South: {X: 82, Y: 84},
		core.East:  {X: 84, Y: 82},
		core.West:  {X: 80, Y: 82},
	}
	for h, want := range cases {
		if got := Origin(core.Camera{Position: pos, Heading: h}); got != want {
			t.Fatalf("%s origin = %+v, want %+v", h, got, want)
		}
	}
}

func TestNorthFacingCameraHitsTopBorder(t *testing.T) {
	g := borderGrid()
	cam := core.Camera{Position: core.Position{Row: 20, Col: 20}, Heading: core.North}
	o := Origin(cam)

	hit, ok := FindIntersection(g, o, Centre(core.North))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Row != 0 || hit.Col != 20 || hit.Color != core.ColorWall {
		t.Fatalf("hit cell (%d,%d) color %d, want top border (0,20)", hit.Row, hit.Col, hit.Color)
	}
	if hit.Kind != HorizontalGrid {
		t.Fatalf("hit kind %s, want horizontal", hit.Kind)
	}
	// The ray meets the border row's lower edge, y = CellSize, straight above
	// the origin.
	want := math.Hypot(float64(82-o.X), float64(core.CellSize-o.Y))
	if hit.Distance != want || want != 76 {
		t.Fatalf("distance %v, want %v", hit.Distance, want)
	}
}

func TestDegenerateAnglesStillHit(t *testing.T) {
	g := borderGrid()
	o := Point{X: 82, Y: 82}
	cases := []struct {
		a    Angle
		kind Kind
		dist float64
		row  int
		col  int
	}{
		{0, VerticalGrid, 74, 20, 39},
		{QuarterTurn, HorizontalGrid, 78, 0, 20},
		{HalfTurn, VerticalGrid, 78, 20, 0},
		{3 * QuarterTurn, HorizontalGrid, 74, 39, 20},
	}
	for _, tc := range cases {
		hit, ok := FindIntersection(g, o, tc.a)
		if !ok {
			t.Fatalf("angle %d: no intersection", tc.a)
		}
		if hit.Kind != tc.kind || hit.Distance != tc.dist || hit.Row != tc.row || hit.Col != tc.col {
			t.Fatalf("angle %d: got %s d=%v (%d,%d), want %s d=%v (%d,%d)",
				tc.a, hit.Kind, hit.Distance, hit.Row, hit.Col, tc.kind, tc.dist, tc.row, tc.col)
		}
	}

	if _, ok := marchHorizontal(g, o, 0); ok {
		t.Fatal("horizontal march must abstain at 0 degrees")
	}
	if _, ok := marchHorizontal(g, o, HalfTurn); ok {
		t.Fatal("horizontal march must abstain at 180 degrees")
	}
	if _, ok := marchVertical(g, o, QuarterTurn); ok {
		t.Fatal("vertical march must abstain at 90 degrees")
	}
	if _, ok := marchVertical(g, o, 3*QuarterTurn); ok {
		t.Fatal("vertical march must abstain at 270 degrees")
	}
}

func TestEqualDistanceFavoursHorizontalMarch(t *testing.T) {
	g := borderGrid()
	// A 45 degree ray from the centre of (10,10) meets the corner shared by
	// (9,11) and (10,11); both marches reach it at the same distance.
	g.Set(9, 11, core.ColorPlayer1)
	g.Set(10, 11, core.ColorPlayer2)
	o := Point{X: 42, Y: 42}

	h, hok := marchHorizontal(g, o, 120)
	v, vok := marchVertical(g, o, 120)
	if !hok || !vok {
		t.Fatalf("both marches should hit: horizontal=%v vertical=%v", hok, vok)
	}
	if h.Distance != v.Distance {
		t.Fatalf("expected a tie, got %v vs %v", h.Distance, v.Distance)
	}

	hit, ok := FindIntersection(g, o, 120)
	if !ok || hit.Kind != HorizontalGrid || hit.Color != core.ColorPlayer1 {
		t.Fatalf("tie resolved to %s color %d, want horizontal color %d", hit.Kind, hit.Color, core.ColorPlayer1)
	}

	for i := 0; i < 10; i++ {
		got, _ := nearest(h, true, v, true)
		if got.Kind != HorizontalGrid {
			t.Fatal("nearest must pick the horizontal result on ties")
		}
	}
}

func TestNearestPicksCloser(t *testing.T) {
	h := Intersection{Kind: HorizontalGrid, Distance: 10}
	v := Intersection{Kind: VerticalGrid, Distance: 9.5}
	if got, _ := nearest(h, true, v, true); got.Kind != VerticalGrid {
		t.Fatalf("picked %s, want vertical", got.Kind)
	}
	if got, ok := nearest(h, false, v, true); !ok || got.Kind != VerticalGrid {
		t.Fatal("lone vertical result should win")
	}
	if got, ok := nearest(h, true, v, false); !ok || got.Kind != HorizontalGrid {
		t.Fatal("lone horizontal result should win")
	}
	if _, ok := nearest(h, false, v, false); ok {
		t.Fatal("no results must report false")
	}
}

func TestFaceAdjacentWallIsAtZeroDistance(t *testing.T) {
	g := borderGrid()
	cam := core.Camera{Position: core.Position{Row: 1, Col: 10}, Heading: core.North}
	hit, err := CastColumn(g, cam, HalfFOV)
	if err != nil {
		t.Fatal(err)
	}
	if hit.Distance != 0 || hit.Row != 0 {
		t.Fatalf("got d=%v row=%d, want the border at distance 0", hit.Distance, hit.Row)
	}
	if SliceHeight(hit.Distance) != core.ScreenHeight {
		t.Fatalf("slice height %d, want full screen", SliceHeight(hit.Distance))
	}
}

func TestOpenGridReportsNoIntersection(t *testing.T) {
	g := core.NewGrid()
	if _, ok := FindIntersection(g, Point{X: 82, Y: 82}, 37); ok {
		t.Fatal("empty grid must not produce a hit")
	}
}
