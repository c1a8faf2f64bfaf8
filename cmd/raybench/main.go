// Command raybench renders the first-person view from every interior cell and
// heading of an arena and reports per-frame cost.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"lightcycle/internal/core"
	"lightcycle/internal/raycast"
)

type job struct {
	cam core.Camera
}

type frameResult struct {
	cam       core.Camera
	elapsed   time.Duration
	minHeight int
	maxHeight int
	err       error
}

type summary struct {
	frames  int
	failed  int
	total   time.Duration
	slowest []frameResult
}

func main() {
	seed := flag.Int64("seed", 1, "seed for scattered obstacles")
	obstacles := flag.Int("obstacles", 0, "random trail cells to scatter inside the arena")
	passes := flag.Int("passes", 1, "times to render each camera")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "slowest frames to list")
	flag.Parse()

	g := core.NewGrid()
	g.BuildArena()
	placed := core.NewRNG(*seed).Scatter(g, *obstacles, core.ColorPlayer2, core.Position{Row: -1, Col: -1})

	cams := cameras(g)
	fmt.Printf("Rendering %d cameras x %d passes (%d workers, %d obstacles)\n", len(cams), *passes, *workers, placed)

	start := time.Now()
	s := run(g, cams, *passes, *workers, *top)
	elapsed := time.Since(start)

	if s.frames == 0 {
		log.Fatal("no free cells to render from")
	}
	fmt.Printf("\n%d frames in %s (mean %s/frame, %d failed)\n",
		s.frames, elapsed.Round(time.Millisecond), s.mean().Round(time.Microsecond), s.failed)
	fmt.Printf("\nSlowest %d frames:\n", len(s.slowest))
	for i, res := range s.slowest {
		fmt.Printf("%2d) %s %s slices[%d,%d]\n",
			i+1, describe(res.cam), res.elapsed, res.minHeight, res.maxHeight)
	}
}

// mean is the average time of the frames that rendered.
func (s summary) mean() time.Duration {
	ok := s.frames - s.failed
	if ok <= 0 {
		return 0
	}
	return s.total / time.Duration(ok)
}

func describe(cam core.Camera) string {
	return fmt.Sprintf("row=%d col=%d heading=%s", cam.Position.Row, cam.Position.Col, cam.Heading)
}

// cameras lists every free cell with every heading.
func cameras(g *core.Grid) []core.Camera {
	var cams []core.Camera
	for row := 1; row < core.GridSize-1; row++ {
		for col := 1; col < core.GridSize-1; col++ {
			if g.Occupied(row, col) {
				continue
			}
			for _, h := range core.Headings {
				cams = append(cams, core.Camera{Position: core.Position{Row: row, Col: col}, Heading: h})
			}
		}
	}
	return cams
}

func run(g *core.Grid, cams []core.Camera, passes, workers, top int) summary {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan job)
	results := make(chan frameResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := raycast.NewRenderer()
			var fb core.Framebuffer
			for j := range jobs {
				results <- renderOne(r, &fb, g, j.cam)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for p := 0; p < passes; p++ {
			for _, cam := range cams {
				jobs <- job{cam: cam}
			}
		}
		close(jobs)
	}()

	var s summary
	var all []frameResult
	for res := range results {
		s.frames++
		if res.err != nil {
			s.failed++
			log.Printf("%s: %v", describe(res.cam), res.err)
			continue
		}
		s.total += res.elapsed
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].elapsed > all[j].elapsed })
	if top > len(all) {
		top = len(all)
	}
	s.slowest = all[:top]
	return s
}

func renderOne(r *raycast.Renderer, fb *core.Framebuffer, g *core.Grid, cam core.Camera) (res frameResult) {
	res.cam = cam
	defer func() {
		if p := recover(); p != nil {
			var inv *raycast.InvariantError
			if err, ok := p.(error); ok && errors.As(err, &inv) {
				res.err = inv
				return
			}
			panic(p)
		}
	}()

	start := time.Now()
	r.Draw(fb, g, cam)
	res.elapsed = time.Since(start)

	bg := r.Background()
	res.minHeight = core.ScreenHeight
	for col := 0; col < core.ScreenWidth; col++ {
		h := 0
		for y := 0; y < core.ScreenHeight; y++ {
			if fb.Pixel(col, y) != bg {
				h++
			}
		}
		res.minHeight = min(res.minHeight, h)
		res.maxHeight = max(res.maxHeight, h)
	}
	return res
}
