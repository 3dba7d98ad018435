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

package render

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/grid"
)

// WritePDF writes the frame as a single-page PDF file.  One PDF unit
// corresponds to one screen pixel.  Colours are converted to grey levels.
func WritePDF(fname string, f *grid.Frame, width, height float64, style *Style) error {
	if style == nil {
		style = DefaultStyle
	}
	if !(width > 0 && height > 0) {
		return fmt.Errorf("render: invalid page size %gx%g", width, height)
	}

	paper := &pdf.Rectangle{
		URx: width,
		URy: height,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if style.Background != nil {
		page.SetFillColor(pdfcolor.DeviceGray(grayLevel(style.Background)))
		page.Rectangle(0, 0, width, height)
		page.Fill()
	}

	// PDF origin is bottom-left; screen coordinates start at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)

	layers := []struct {
		geom  grid.Geometry
		width float64
		col   color.Color
	}{
		{grid.Geometry{Vertical: f.Minor.Vertical, Horizontal: f.Minor.Horizontal}, style.MinorWidth, style.Minor},
		{grid.Geometry{Vertical: f.Major.Vertical, Horizontal: f.Major.Horizontal}, style.MajorWidth, style.Major},
		{grid.Geometry{Marker: f.Major.Marker}, style.MarkerWidth, style.Marker},
	}
	for _, l := range layers {
		if l.col == nil || l.width <= 0 || l.geom.IsEmpty() {
			continue
		}
		page.SetStrokeColor(pdfcolor.DeviceGray(grayLevel(l.col)))
		page.SetLineWidth(l.width)
		for cmd, pts := range l.geom.Path().Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}

// grayLevel converts a colour to a grey level between 0 (black) and 1.
func grayLevel(c color.Color) float64 {
	g := color.Gray16Model.Convert(c).(color.Gray16)
	return float64(g.Y) / 0xFFFF
}
