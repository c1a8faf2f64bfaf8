// Package raycast renders the arena from a cycle's point of view by casting
// one ray per screen column against the occupancy grid.
package raycast

import "lightcycle/internal/core"

// Renderer projects the grid into a packed framebuffer. The zero value draws
// floor and ceiling in the empty-cell colour.
type Renderer struct {
	// bg is stored relative to ColorEmpty so the zero value stays distinct
	// from every wall colour.
	bg core.Color

	hits [core.ScreenWidth]Intersection
}

// NewRenderer returns a Renderer using the empty-cell colour as background.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Background returns the colour drawn above and below each wall slice.
func (r *Renderer) Background() core.Color {
	return (r.bg ^ core.ColorEmpty) & 0x03
}

// SetBackground changes the floor and ceiling colour.
func (r *Renderer) SetBackground(c core.Color) {
	r.bg = (c ^ core.ColorEmpty) & 0x03
}

// Draw renders the view from cam into fb. Every column is solved before any
// pixel is written; a ray that escapes the arena panics with *InvariantError
// and leaves fb untouched.
func (r *Renderer) Draw(fb *core.Framebuffer, g *core.Grid, cam core.Camera) {
	o := Origin(cam)
	for col, a := range ColumnAngles(cam.Heading) {
		hit, ok := FindIntersection(g, o, a)
		if !ok {
			panic(&InvariantError{Origin: o, Angle: a, Column: col})
		}
		r.hits[col] = hit
	}
	for x := range r.hits {
		projectColumn(fb, x, r.hits[x], r.Background())
	}
}

// Draw3D renders the first-person view from cam with the default renderer
// settings.
func Draw3D(fb *core.Framebuffer, g *core.Grid, cam core.Camera) {
	var r Renderer
	r.Draw(fb, g, cam)
}

// CastColumn solves the single ray behind screen column col.
func CastColumn(g *core.Grid, cam core.Camera, col int) (Intersection, error) {
	o := Origin(cam)
	a := ColumnAngle(cam.Heading, col)
	hit, ok := FindIntersection(g, o, a)
	if !ok {
		return Intersection{}, &InvariantError{Origin: o, Angle: a, Column: col}
	}
	return hit, nil
}
