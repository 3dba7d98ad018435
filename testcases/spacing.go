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

var spacingCases = []TestCase{
	{
		Name:    "single_step",
		Width:   800,
		Height:  600,
		Options: grid.Options{MinGap: 20, MaxGap: 100, Spacing: grid.SpacingSingleStep},
		Inputs:  []grid.Input{zoom(10, 400, 300)},
	},
	{
		Name:    "single_step_large_jump",
		Width:   800,
		Height:  600,
		Options: grid.Options{MinGap: 1, MaxGap: 1e4, Spacing: grid.SpacingSingleStep},
		Inputs:  []grid.Input{zoom(100, 400, 300)},
	},
	{
		Name:    "stabilized_large_jump",
		Width:   800,
		Height:  600,
		Options: grid.Options{MinGap: 1, MaxGap: 1e4},
		Inputs:  []grid.Input{zoom(100, 400, 300)},
	},
	{
		Name:    "base_scale_two",
		Width:   800,
		Height:  600,
		Options: grid.Options{BaseScale: 2},
		Inputs:  []grid.Input{zoom(0.3, 400, 300)},
	},
}
