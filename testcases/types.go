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

// Package testcases contains named pan and zoom scenarios, used for
// tests and for generating reference output.
package testcases

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/grid"
)

// TestCase defines a single grid scenario: a view of the given size,
// constructed with Options, receives the Inputs in order.
type TestCase struct {
	Name    string       // lowercase a-z, 0-9 and _ only
	Width   int          // viewport width in pixels
	Height  int          // viewport height in pixels
	Options grid.Options // construction options
	Inputs  []grid.Input // gesture input, applied after the initial resize
}

// Run constructs the grid state and applies all inputs.
// Rejected inputs are skipped, as they would be in an interactive view.
func (tc *TestCase) Run() (*grid.State, error) {
	s, err := grid.New(&tc.Options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}
	if !s.SetViewport(float64(tc.Width), float64(tc.Height)) {
		return nil, fmt.Errorf("%s: invalid viewport %dx%d", tc.Name, tc.Width, tc.Height)
	}
	s.ApplyAll(tc.Inputs)
	return s, nil
}

// Frame runs the scenario and returns the final grid geometry.
func (tc *TestCase) Frame() (grid.Frame, error) {
	s, err := tc.Run()
	if err != nil {
		return grid.Frame{}, err
	}
	return grid.Generate(s.Snapshot()), nil
}

// pan is a helper to create a pan input.
func pan(dx, dy float64) grid.Input {
	return grid.PanInput{DX: dx, DY: dy}
}

// zoom is a helper to create a zoom input.
func zoom(m, x, y float64) grid.Input {
	return grid.ZoomInput{Multiplier: m, Focal: vec.Vec2{X: x, Y: y}}
}

// resize is a helper to create a viewport resize input.
func resize(w, h float64) grid.Input {
	return grid.ViewportResize{Width: w, Height: h}
}
