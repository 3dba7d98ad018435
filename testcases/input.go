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

import (
	"math"

	"seehuhn.de/go/grid"
)

var inputCases = []TestCase{
	{
		Name:   "rejected",
		Width:  800,
		Height: 600,
		Inputs: []grid.Input{
			pan(math.NaN(), 3),
			pan(1, math.Inf(1)),
			zoom(math.Inf(1), 10, 10),
			zoom(2, math.NaN(), 10),
			resize(0, 600),
			resize(math.NaN(), 600),
		},
	},
	{
		Name:   "resize",
		Width:  800,
		Height: 600,
		Inputs: []grid.Input{zoom(1.25, 100, 100), resize(320, 200)},
	},
	{
		Name:   "portrait",
		Width:  360,
		Height: 640,
		Inputs: []grid.Input{pan(7, -11), zoom(0.7, 180, 320)},
	},
}
