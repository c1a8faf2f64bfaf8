package core

// Arena geometry. The grid is GridSize x GridSize cells and every cell projects
// to CellSize x CellSize pixel units, so the whole arena spans ArenaPixels.
const (
	GridSize    = 40
	CellSize    = 4
	CellCount   = GridSize * GridSize
	ArenaPixels = GridSize * CellSize
)

// Color identifies the owner of an occupied cell and doubles as its palette
// index.
type Color uint8

const (
	ColorWall    Color = 0
	ColorPlayer1 Color = 1
	ColorPlayer2 Color = 2
	// ColorEmpty is never stored in the grid; renderers use it for free cells.
	ColorEmpty Color = 3
)

// Grid is the fixed-size occupancy grid shared by the game step and the
// renderers. Cells are stored row-major; zero means empty and any other value
// is the owner color plus one.
type Grid struct {
	cells [CellCount]uint8
}

// NewGrid returns an empty grid.
func NewGrid() *Grid { return &Grid{} }

// InBounds reports whether (row, col) addresses a cell of the grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

// Index returns the linear cell index for (row, col).
func Index(row, col int) int { return row*GridSize + col }

// At returns the color stored at (row, col). The second result is false when
// the cell is empty or outside the grid.
func (g *Grid) At(row, col int) (Color, bool) {
	if !InBounds(row, col) {
		return 0, false
	}
	v := g.cells[Index(row, col)]
	if v == 0 {
		return 0, false
	}
	return Color(v - 1), true
}

// Occupied reports whether (row, col) holds a wall or trail. Cells outside the
// grid count as occupied so look-ahead walks stop at the edge.
func (g *Grid) Occupied(row, col int) bool {
	if !InBounds(row, col) {
		return true
	}
	return g.cells[Index(row, col)] != 0
}

// Set marks (row, col) with the provided color. Out-of-range writes are ignored.
func (g *Grid) Set(row, col int, c Color) {
	if !InBounds(row, col) {
		return
	}
	g.cells[Index(row, col)] = uint8(c) + 1
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// BuildArena occupies the outer ring of cells with walls.
func (g *Grid) BuildArena() {
	for r := 0; r < GridSize; r++ {
		g.Set(r, 0, ColorWall)
		g.Set(r, GridSize-1, ColorWall)
	}
	for c := 1; c < GridSize-1; c++ {
		g.Set(0, c, ColorWall)
		g.Set(GridSize-1, c, ColorWall)
	}
}

// BorderIntact reports whether every border cell is still occupied.
func (g *Grid) BorderIntact() bool {
	for i := 0; i < GridSize; i++ {
		if !g.Occupied(0, i) || !g.Occupied(GridSize-1, i) || !g.Occupied(i, 0) || !g.Occupied(i, GridSize-1) {
			return false
		}
	}
	return true
}
