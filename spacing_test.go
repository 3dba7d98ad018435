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

func TestStepSpacingMultiplier(t *testing.T) {
	cases := []struct {
		scale, current float64
		want           float64
	}{
		{1, 1, 256.0 / 40},       // gap 40: doubled to the top of the band
		{1, 3.2, 256.0 / 40},     // gap 128 counts as too small
		{1, 5, 5},                // gap 200 is kept
		{1, 6.4, 128.0 / 40},     // gap 256 counts as too large
		{4, 10, 128.0 / 160},     // gap 1600
		{0.5, 0.25, 256.0 / 20},  // gap 5
		{2, 2.5, 2.5},            // gap 200
		{0.01, 300, 256.0 / 0.4}, // gap 120
	}
	for _, c := range cases {
		got := StepSpacingMultiplier(c.scale, 40, c.current)
		if math.Abs(got-c.want) > 1e-12*c.want {
			t.Errorf("StepSpacingMultiplier(%g, 40, %g) = %g, want %g",
				c.scale, c.current, got, c.want)
		}
	}
}

// TestStepSpacingAlternates documents that repeated application of the
// single-step rule never settles: the band edges map onto each other.
func TestStepSpacingAlternates(t *testing.T) {
	const lineSpacing = 32 // makes all products exact
	m := StepSpacingMultiplier(1, lineSpacing, 16) // gap 512
	wantGaps := []float64{128, 256, 128, 256}
	for i, want := range wantGaps {
		if gap := lineSpacing * m; gap != want {
			t.Fatalf("step %d: gap %g, want %g", i, gap, want)
		}
		m = StepSpacingMultiplier(1, lineSpacing, m)
	}
}

func TestSpacingMultiplierBand(t *testing.T) {
	const lineSpacing = 40
	for _, current := range []float64{1, 0.001, 3, 1e5} {
		for e := -40; e <= 40; e++ {
			scale := math.Pow(10, float64(e)/10)
			m := SpacingMultiplier(scale, lineSpacing, current)
			gap := lineSpacing * scale * m
			if gap < MinRenderedGap || gap >= MaxRenderedGap {
				t.Errorf("scale %g, current %g: gap %g outside [%g, %g)",
					scale, current, gap, MinRenderedGap, MaxRenderedGap)
			}

			// stable: a second call keeps the multiplier
			if m2 := SpacingMultiplier(scale, lineSpacing, m); m2 != m {
				t.Errorf("scale %g: multiplier not stable, %g -> %g", scale, m, m2)
			}

			// the result differs from current by a power of two
			if frac, _ := math.Frexp(m / current); frac != 0.5 {
				t.Errorf("scale %g: ratio %g is not a power of two", scale, m/current)
			}
		}
	}
}

func TestSpacingMultiplierKeepsInBand(t *testing.T) {
	// gap 200 is already inside the band
	if got := SpacingMultiplier(1, 40, 5); got != 5 {
		t.Errorf("got %g, want 5", got)
	}
	// the lower edge belongs to the band, the upper edge does not
	if got := SpacingMultiplier(1, 32, 4); got != 4 {
		t.Errorf("gap 128: got %g, want 4", got)
	}
	if got := SpacingMultiplier(1, 32, 8); got != 4 {
		t.Errorf("gap 256: got %g, want 4", got)
	}
}

func TestSpacingMultiplierDegenerate(t *testing.T) {
	cases := [][3]float64{
		{0, 40, 1},
		{-1, 40, 1},
		{math.NaN(), 40, 1},
		{1, 40, math.Inf(1)},
		{1, 40, 0},
	}
	for _, c := range cases {
		got := SpacingMultiplier(c[0], c[1], c[2])
		if got != c[2] && !(math.IsNaN(got) && math.IsNaN(c[2])) {
			t.Errorf("SpacingMultiplier(%g, %g, %g) = %g, want unchanged", c[0], c[1], c[2], got)
		}
	}
}

func TestSpacingModes(t *testing.T) {
	for _, mode := range []SpacingMode{SpacingStabilized, SpacingSingleStep} {
		t.Run(mode.String(), func(t *testing.T) {
			s := newTestState(t, &Options{MinGap: 20, MaxGap: 100, Spacing: mode}, 800, 600)
			s.Zoom(10, vec.Vec2{X: 400, Y: 300})

			gap := s.LineSpacing() * s.Scale() * s.SpacingMultiplier()
			switch mode {
			case SpacingStabilized:
				if gap != 200 {
					t.Errorf("gap = %g, want 200", gap)
				}
			case SpacingSingleStep:
				// 256/40 after construction, then one halving step to 128
				if math.Abs(gap-128) > 1e-9 {
					t.Errorf("gap = %g, want 128", gap)
				}
			}
		})
	}
}

func TestResizeKeepsSpacing(t *testing.T) {
	for _, mode := range []SpacingMode{SpacingStabilized, SpacingSingleStep} {
		t.Run(mode.String(), func(t *testing.T) {
			s := newTestState(t, &Options{Spacing: mode}, 800, 600)
			m := s.SpacingMultiplier()
			for _, size := range [][2]float64{{1024, 768}, {800, 600}, {320, 200}, {800, 600}} {
				s.SetViewport(size[0], size[1])
				if got := s.SpacingMultiplier(); got != m {
					t.Errorf("resize to %gx%g: multiplier %g, want %g", size[0], size[1], got, m)
				}
			}
		})
	}
}

func TestSpacingModeString(t *testing.T) {
	if SpacingStabilized.String() != "stabilized" {
		t.Error(SpacingStabilized.String())
	}
	if SpacingSingleStep.String() != "single-step" {
		t.Error(SpacingSingleStep.String())
	}
	if SpacingMode(9).String() != "unknown" {
		t.Error(SpacingMode(9).String())
	}
}
