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

package testcases

import "seehuhn.de/go/grid"

// narrowGaps restricts scale*40 to [20, 100].
var narrowGaps = grid.Options{BaseScale: 1, MinGap: 20, MaxGap: 100}

var zoomCases = []TestCase{
	{
		Name:    "center_clamped",
		Width:   800,
		Height:  600,
		Options: narrowGaps,
		Inputs:  []grid.Input{zoom(10, 400, 300)},
	},
	{
		Name:    "out_clamped",
		Width:   800,
		Height:  600,
		Options: narrowGaps,
		Inputs:  []grid.Input{zoom(0.01, 200, 100)},
	},
	{
		Name:   "corner",
		Width:  800,
		Height: 600,
		Inputs: []grid.Input{zoom(1.5, 0, 0)},
	},
	{
		Name:   "focal_point",
		Width:  400,
		Height: 400,
		Inputs: []grid.Input{zoom(2, 300, 200)},
	},
	{
		Name:   "pinch_sequence",
		Width:  1024,
		Height: 768,
		Inputs: []grid.Input{
			zoom(1.1, 500, 400),
			zoom(1.1, 510, 395),
			zoom(1.1, 520, 390),
			pan(-30, 12),
			zoom(0.9, 200, 700),
		},
	},
	{
		Name:   "in_and_out",
		Width:  800,
		Height: 600,
		Inputs: []grid.Input{zoom(4, 123, 456), zoom(0.25, 123, 456)},
	},
}
