package raycast

import (
	"math"

	"lightcycle/internal/core"
)

// Projection constants. Walls stand WallHeight units tall and the projection
// plane sits 1<<ProjectionShift units from the eye, which approximates the
// plane distance of a 160 pixel wide view at a 60 degree field of view.
const (
	WallHeight         = 16
	ProjectionShift    = 7
	ProjectionConstant = WallHeight << ProjectionShift
	HorizonRow         = core.ScreenHeight / 2
)

// SliceHeight converts a hit distance into the on-screen height of the wall
// slice, capped at the screen height.
func SliceHeight(distance float64) int {
	if distance <= 0 {
		return core.ScreenHeight
	}
	h := math.Floor(ProjectionConstant / distance)
	if h >= core.ScreenHeight {
		return core.ScreenHeight
	}
	return int(h)
}

// SliceBounds returns the half-open row range [top, bottom) covered by a wall
// slice of height h centred on the horizon.
func SliceBounds(h int) (top, bottom int) {
	top = HorizonRow - h/2
	return top, top + h
}

// projectColumn writes every row of screen column x: the wall slice for hit,
// bg above and below it.
func projectColumn(fb *core.Framebuffer, x int, hit Intersection, bg core.Color) {
	top, bottom := SliceBounds(SliceHeight(hit.Distance))
	for y := 0; y < core.ScreenHeight; y++ {
		c := bg
		if y >= top && y < bottom {
			c = hit.Color
		}
		fb.SetPixel(x, y, c)
	}
}
