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
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/grid"
)

// Rasteriser paints grid frames into images.  Create one instance and
// reuse it for every frame; the coverage buffer is only reallocated when
// the image size changes.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	Style *Style

	z    *vector.Rasterizer
	w, h int
}

// NewRasteriser returns a Rasteriser using the given style.
// A nil style means DefaultStyle.
func NewRasteriser(style *Style) *Rasteriser {
	if style == nil {
		style = DefaultStyle
	}
	return &Rasteriser{Style: style}
}

// Draw paints the frame into dst.  Frame coordinates are relative to
// dst.Bounds().Min.  The background is painted first, followed by the
// minor lines, the major lines and the origin marker.
func (r *Rasteriser) Draw(dst draw.Image, f *grid.Frame) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	st := r.Style
	if st == nil {
		st = DefaultStyle
	}

	if st.Background != nil {
		draw.Draw(dst, b, image.NewUniform(st.Background), image.Point{}, draw.Src)
	}
	r.drawLines(dst, f.Minor.Lines(), st.MinorWidth, st.Minor)
	r.drawLines(dst, f.Major.Lines(), st.MajorWidth, st.Major)
	if m := f.Major.Marker; m != nil && st.Marker != nil && st.MarkerWidth > 0 {
		r.reset(b)
		addRing(r.z, m.Center, m.Radius, st.MarkerWidth)
		r.z.Draw(dst, b, image.NewUniform(st.Marker), image.Point{})
	}
}

// Draw paints the frame into a new RGBA image of the given size.
func Draw(f *grid.Frame, width, height int, style *Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	NewRasteriser(style).Draw(img, f)
	return img
}

func (r *Rasteriser) reset(b image.Rectangle) {
	w, h := b.Dx(), b.Dy()
	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	} else {
		r.z.Reset(w, h)
	}
	r.w, r.h = w, h
}

func (r *Rasteriser) drawLines(dst draw.Image, lines []grid.Segment, width float64, col color.Color) {
	if col == nil || width <= 0 || len(lines) == 0 {
		return
	}
	b := dst.Bounds()
	r.reset(b)
	n := 0
	for _, seg := range lines {
		if r.addSegment(seg, width) {
			n++
		}
	}
	if n > 0 {
		r.z.Draw(dst, b, image.NewUniform(col), image.Point{})
	}
}

// addSegment adds the outline of a stroked line segment with butt caps.
// All outlines are added with the same orientation, so that crossing
// lines do not cancel each other.
func (r *Rasteriser) addSegment(seg grid.Segment, width float64) bool {
	d := seg.To.Sub(seg.From)
	length := d.Length()
	if length < zeroLengthThreshold {
		return false
	}
	hw := width / 2
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / length)

	corners := [4]vec.Vec2{
		seg.From.Add(n),
		seg.To.Add(n),
		seg.To.Sub(n),
		seg.From.Sub(n),
	}
	if !r.intersects(corners[:]) {
		return false
	}
	r.z.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		r.z.LineTo(float32(c.X), float32(c.Y))
	}
	r.z.ClosePath()
	return true
}

// intersects reports whether the bounding box of pts meets the canvas.
func (r *Rasteriser) intersects(pts []vec.Vec2) bool {
	xMin, xMax := pts[0].X, pts[0].X
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return xMax > 0 && yMax > 0 && xMin < float64(r.w) && yMin < float64(r.h)
}

// addRing adds an annulus of the given stroke width around a circle.
// The outer circle runs counter-clockwise, the inner circle clockwise.
func addRing(z *vector.Rasterizer, center vec.Vec2, radius, width float64) {
	cx, cy := float32(center.X), float32(center.Y)
	outer := float32(radius + width/2)
	addCircle(z, cx, cy, outer, false)
	if inner := float32(radius - width/2); inner > 0 {
		addCircle(z, cx, cy, inner, true)
	}
}

// addCircle adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircle(z *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	z.MoveTo(cx, cy-radius)
	if clockwise {
		z.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		z.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		z.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		z.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		z.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		z.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		z.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		z.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	z.ClosePath()
}

// zeroLengthThreshold is the minimum length of a segment to be drawn.
const zeroLengthThreshold = 1e-10
