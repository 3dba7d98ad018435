// seehuhn.de/go/grid - pan and zoom for infinite 2D grids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package grid

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

const epsilon = 1e-6

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
}

func newTestState(t *testing.T, opt *Options, w, h float64) *State {
	t.Helper()
	s, err := New(opt)
	if err != nil {
		t.Fatal(err)
	}
	if !s.SetViewport(w, h) {
		t.Fatalf("viewport %gx%g rejected", w, h)
	}
	return s
}

func TestPan(t *testing.T) {
	s := newTestState(t, nil, 400, 400)
	if !s.Zoom(2, vec.Vec2{}) {
		t.Fatal("zoom rejected")
	}

	deltas := []vec.Vec2{
		{X: 10, Y: -4},
		{X: 0, Y: 0},
		{X: -123.5, Y: 77.25},
		{X: 1e6, Y: -1e6},
	}
	for _, d := range deltas {
		before := s.Translation()
		if !s.Pan(d) {
			t.Fatalf("Pan(%v) rejected", d)
		}
		want := vec.Vec2{X: before.X + d.X/2, Y: before.Y + d.Y/2}
		if got := s.Translation(); !near(got, want) {
			t.Errorf("Pan(%v): translation = %v, want %v", d, got, want)
		}
	}
}

func TestPanRejectsNonFinite(t *testing.T) {
	s := newTestState(t, nil, 400, 400)
	s.Pan(vec.Vec2{X: 5, Y: 5})
	before := s.Translation()

	bad := []vec.Vec2{
		{X: math.NaN(), Y: 0},
		{X: 0, Y: math.NaN()},
		{X: math.Inf(1), Y: 1},
		{X: 1, Y: math.Inf(-1)},
	}
	for _, d := range bad {
		if s.Pan(d) {
			t.Errorf("Pan(%v) accepted", d)
		}
		if s.Translation() != before {
			t.Errorf("Pan(%v) changed translation to %v", d, s.Translation())
		}
	}
}

func TestPanRejectsOverflow(t *testing.T) {
	opt := &Options{MinGap: 10, MaxGap: 1000}
	s := newTestState(t, opt, 400, 400)
	s.Zoom(0.01, vec.Vec2{X: 200, Y: 200}) // clamped to scale 0.25
	before := s.Translation()
	version := s.Version()

	if s.Pan(vec.Vec2{X: math.MaxFloat64, Y: 0}) {
		t.Error("overflowing pan accepted")
	}
	if s.Translation() != before || s.Version() != version {
		t.Errorf("overflowing pan changed the state: %v", s.Translation())
	}
	if !s.Zoom(2, vec.Vec2{X: 10, Y: 10}) {
		t.Error("zoom rejected after overflowing pan")
	}
}

func TestPanMovesScreenPosition(t *testing.T) {
	s := newTestState(t, nil, 640, 480)
	s.Zoom(3, vec.Vec2{X: 100, Y: 50})

	p := vec.Vec2{X: 7, Y: -3}
	before := s.ToScreen(p)
	s.Pan(vec.Vec2{X: 25, Y: -10})
	after := s.ToScreen(p)
	if !near(after.Sub(before), vec.Vec2{X: 25, Y: -10}) {
		t.Errorf("grid point moved by %v on screen, want (25, -10)", after.Sub(before))
	}
}

func TestZoomClamp(t *testing.T) {
	const minGap, maxGap = 20.0, 100.0
	multipliers := []float64{1e-9, 0.01, 0.5, 0.9, 1, 1.1, 2, 10, 1e9, -3, 0}

	for _, m := range multipliers {
		s := newTestState(t, &Options{MinGap: minGap, MaxGap: maxGap}, 800, 600)
		for range 5 {
			s.Zoom(m, vec.Vec2{X: 123, Y: 456})
			gap := s.Scale() * s.LineSpacing()
			if gap < minGap*(1-1e-12) || gap > maxGap*(1+1e-12) {
				t.Fatalf("multiplier %g: gap %g outside [%g, %g]", m, gap, minGap, maxGap)
			}
			if s.Scale() <= 0 {
				t.Fatalf("multiplier %g: scale %g", m, s.Scale())
			}
		}
	}
}

func TestZoomFocalPoint(t *testing.T) {
	s := newTestState(t, nil, 400, 400)
	focal := vec.Vec2{X: 300, Y: 200}
	g := s.ToGrid(focal)

	if !s.Zoom(2, focal) {
		t.Fatal("zoom rejected")
	}
	if s.Scale() != 2 {
		t.Fatalf("scale = %g, want 2", s.Scale())
	}
	if got := s.ToScreen(g); !near(got, focal) {
		t.Errorf("focal point moved to %v, want %v", got, focal)
	}
	if got := s.Translation(); !near(got, vec.Vec2{X: -150, Y: -100}) {
		t.Errorf("translation = %v, want (-150, -100)", got)
	}
	if s.InteractionPoint() != focal {
		t.Errorf("interaction point = %v, want %v", s.InteractionPoint(), focal)
	}
}

func TestZoomFocalPointSequence(t *testing.T) {
	s := newTestState(t, nil, 1024, 768)
	steps := []struct {
		m     float64
		focal vec.Vec2
	}{
		{1.5, vec.Vec2{X: 10, Y: 700}},
		{0.8, vec.Vec2{X: 1000, Y: 3}},
		{3, vec.Vec2{X: 512, Y: 384}},
		{0.25, vec.Vec2{X: 0, Y: 0}},
	}
	for _, st := range steps {
		s.Pan(vec.Vec2{X: 13, Y: -29})
		g := s.ToGrid(st.focal)
		if !s.Zoom(st.m, st.focal) {
			t.Fatalf("Zoom(%g, %v) rejected", st.m, st.focal)
		}
		if got := s.ToScreen(g); !near(got, st.focal) {
			t.Errorf("Zoom(%g, %v): focal point moved to %v", st.m, st.focal, got)
		}
	}
}

// TestZoomClampedAtCenter follows the end-to-end scenario with the
// construction options (1, 20, 100) and an 800x600 viewport.
func TestZoomClampedAtCenter(t *testing.T) {
	s := newTestState(t, &Options{BaseScale: 1, MinGap: 20, MaxGap: 100}, 800, 600)
	focal := vec.Vec2{X: 400, Y: 300}
	g := s.ToGrid(focal)

	if !s.Zoom(10, focal) {
		t.Fatal("zoom rejected")
	}
	if math.Abs(s.Scale()-2.5) > 1e-12 {
		t.Errorf("scale = %g, want 2.5", s.Scale())
	}

	// extent 800x600 shrinks to 320x240; half the change goes to each side
	if got := s.Translation(); !near(got, vec.Vec2{X: -240, Y: -180}) {
		t.Errorf("translation = %v, want (-240, -180)", got)
	}
	if got := s.ToScreen(g); !near(got, focal) {
		t.Errorf("focal point moved to %v", got)
	}
	if got := s.SpacingMultiplier(); got != 2 {
		t.Errorf("spacing multiplier = %g, want 2", got)
	}
}

func TestZoomWithoutViewport(t *testing.T) {
	s, _ := New(nil)
	before := s.Snapshot()
	if s.Zoom(2, vec.Vec2{X: 10, Y: 10}) {
		t.Error("zoom without viewport accepted")
	}
	if s.Snapshot() != before {
		t.Error("rejected zoom changed the state")
	}
}

func TestZoomRejectsNonFinite(t *testing.T) {
	s := newTestState(t, nil, 400, 300)
	s.Zoom(1.5, vec.Vec2{X: 20, Y: 30})
	before := s.Snapshot()

	cases := []struct {
		m     float64
		focal vec.Vec2
	}{
		{math.NaN(), vec.Vec2{X: 1, Y: 1}},
		{math.Inf(1), vec.Vec2{X: 1, Y: 1}},
		{2, vec.Vec2{X: math.NaN(), Y: 1}},
		{2, vec.Vec2{X: 1, Y: math.Inf(-1)}},
	}
	for _, c := range cases {
		if s.Zoom(c.m, c.focal) {
			t.Errorf("Zoom(%g, %v) accepted", c.m, c.focal)
		}
		if s.Snapshot() != before {
			t.Errorf("Zoom(%g, %v) changed the state", c.m, c.focal)
		}
	}
}

func TestMatrix(t *testing.T) {
	s := newTestState(t, nil, 500, 500)
	s.Zoom(1.75, vec.Vec2{X: 40, Y: 410})
	s.Pan(vec.Vec2{X: -17, Y: 8})

	snap := s.Snapshot()
	M := snap.Matrix()
	for _, p := range []vec.Vec2{{X: 0, Y: 0}, {X: 3, Y: -8}, {X: 250.5, Y: 12}} {
		got := vec.Vec2{
			X: M[0]*p.X + M[2]*p.Y + M[4],
			Y: M[1]*p.X + M[3]*p.Y + M[5],
		}
		if want := snap.ToScreen(p); !near(got, want) {
			t.Errorf("matrix maps %v to %v, want %v", p, got, want)
		}
		if back := snap.ToGrid(got); !near(back, p) {
			t.Errorf("ToGrid(ToScreen(%v)) = %v", p, back)
		}
	}
}
