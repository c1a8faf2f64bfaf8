package core

import "testing"

func TestTurnsRoundTrip(t *testing.T) {
	for _, h := range Headings {
		if got := h.LeftTurn().RightTurn(); got != h {
			t.Fatalf("%s: left then right gave %s", h, got)
		}
		if got := h.RightTurn().LeftTurn(); got != h {
			t.Fatalf("%s: right then left gave %s", h, got)
		}
		l := h
		r := h
		for i := 0; i < 4; i++ {
			l = l.LeftTurn()
			r = r.RightTurn()
			if i < 3 && (l == h || r == h) {
				t.Fatalf("%s: returned after only %d turns", h, i+1)
			}
		}
		if l != h || r != h {
			t.Fatalf("%s: four turns gave %s/%s", h, l, r)
		}
	}
}

func TestStepFollowsHeading(t *testing.T) {
	p := Position{Row: 10, Col: 10}
	want := map[Heading]Position{
		North: {Row: 9, Col: 10},
		South: {Row: 11, Col: 10},
		East:  {Row: 10, Col: 11},
		West:  {Row: 10, Col: 9},
	}
	for h, w := range want {
		if got := p.Step(h); got != w {
			t.Fatalf("%s step = %+v, want %+v", h, got, w)
		}
	}
}
