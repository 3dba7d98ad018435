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

// Package render draws grid frames, either into raster images or into
// single-page PDF files.
package render

import (
	"image/color"
)

// Style describes how a [grid.Frame] is painted.
// A nil colour disables the corresponding layer.
type Style struct {
	Background color.Color
	Minor      color.Color
	Major      color.Color
	Marker     color.Color

	// Line widths in pixels.
	MinorWidth  float64
	MajorWidth  float64
	MarkerWidth float64
}

// DefaultStyle is light grey lines on a white background.
var DefaultStyle = &Style{
	Background:  color.White,
	Minor:       color.Gray{Y: 0xE4},
	Major:       color.Gray{Y: 0xB4},
	Marker:      color.Gray{Y: 0x40},
	MinorWidth:  0.5,
	MajorWidth:  1,
	MarkerWidth: 1.5,
}
