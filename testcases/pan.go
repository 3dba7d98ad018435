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

var panCases = []TestCase{
	{
		Name:   "initial",
		Width:  800,
		Height: 600,
	},
	{
		Name:   "right",
		Width:  800,
		Height: 600,
		Inputs: []grid.Input{pan(120, 0)},
	},
	{
		Name:   "drag_sequence",
		Width:  800,
		Height: 600,
		Inputs: []grid.Input{pan(10, 5), pan(10, 5), pan(10, 5), pan(-3, 40)},
	},
	{
		Name:   "zoomed",
		Width:  800,
		Height: 600,
		Inputs: []grid.Input{zoom(2, 0, 0), pan(-50, 30)},
	},
	{
		Name:   "far_away",
		Width:  640,
		Height: 480,
		Inputs: []grid.Input{pan(1e5, -1e5)},
	},
}
