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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Input is an event produced by a gesture recogniser.
type Input interface {
	apply(s *State) bool
	fmt.Stringer
}

// PanInput is a drag by (DX, DY) screen pixels.
type PanInput struct {
	DX, DY float64
}

func (in PanInput) apply(s *State) bool {
	return s.Pan(vec.Vec2{X: in.DX, Y: in.DY})
}

func (in PanInput) String() string {
	return fmt.Sprintf("pan(%g, %g)", in.DX, in.DY)
}

// ZoomInput is a pinch or scroll zoom about a focal point given in
// screen coordinates.
type ZoomInput struct {
	Multiplier float64
	Focal      vec.Vec2
}

func (in ZoomInput) apply(s *State) bool {
	return s.Zoom(in.Multiplier, in.Focal)
}

func (in ZoomInput) String() string {
	return fmt.Sprintf("zoom(%g @ %g, %g)", in.Multiplier, in.Focal.X, in.Focal.Y)
}

// ViewportResize reports a new viewport size in screen pixels.
type ViewportResize struct {
	Width, Height float64
}

func (in ViewportResize) apply(s *State) bool {
	return s.SetViewport(in.Width, in.Height)
}

func (in ViewportResize) String() string {
	return fmt.Sprintf("resize(%g, %g)", in.Width, in.Height)
}

// Apply applies a single input event and reports whether it was accepted.
func (s *State) Apply(in Input) bool {
	if in == nil {
		return false
	}
	return in.apply(s)
}

// ApplyAll applies a sequence of input events in order and returns the
// number of accepted events.
func (s *State) ApplyAll(inputs []Input) int {
	n := 0
	for _, in := range inputs {
		if s.Apply(in) {
			n++
		}
	}
	return n
}
