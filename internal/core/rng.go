package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Scatter marks up to n random interior cells with c, leaving keep free. It
// returns how many cells it newly occupied.
func (r *RNG) Scatter(g *Grid, n int, c Color, keep Position) int {
	placed := 0
	for range n {
		row := 1 + r.r.IntN(GridSize-2)
		col := 1 + r.r.IntN(GridSize-2)
		if (Position{Row: row, Col: col}) == keep || g.Occupied(row, col) {
			continue
		}
		g.Set(row, col, c)
		placed++
	}
	return placed
}
