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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	// MarkerRadius is the radius of the origin marker in screen pixels.
	MarkerRadius = 5.0

	// MinorDivisions is the number of minor cells per major cell.
	MinorDivisions = 5

	// MaxLinesPerAxis bounds the number of visible lines emitted per
	// direction.
	MaxLinesPerAxis = 4096
)

// Segment is a straight line segment in screen coordinates.
type Segment struct {
	From, To vec.Vec2
}

// Circle is a circle in screen coordinates.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// Geometry is the line geometry of one grid layer.
//
// Within each direction, lines are ordered from the grid center outwards,
// first towards the top-left and then towards the bottom-right.  Only
// lines inside the viewport are included.
// The order carries no further meaning.
type Geometry struct {
	Vertical   []Segment
	Horizontal []Segment

	// Marker indicates the grid origin.  It is nil for the minor grid.
	Marker *Circle
}

// IsEmpty reports whether g contains no lines and no marker.
func (g *Geometry) IsEmpty() bool {
	return len(g.Vertical) == 0 && len(g.Horizontal) == 0 && g.Marker == nil
}

// Lines returns all segments, vertical lines first.
func (g *Geometry) Lines() []Segment {
	res := make([]Segment, 0, len(g.Vertical)+len(g.Horizontal))
	res = append(res, g.Vertical...)
	res = append(res, g.Horizontal...)
	return res
}

// Frame holds the geometry of both grid layers.
type Frame struct {
	Major Geometry
	Minor Geometry
}

// Generate computes the major and minor grid for a snapshot.
func Generate(snap Snapshot) Frame {
	return Frame{
		Major: Major(snap),
		Minor: Minor(snap),
	}
}

// MajorSpacing returns the distance between major lines in screen pixels.
func (snap Snapshot) MajorSpacing() float64 {
	return snap.LineSpacing * snap.Scale * snap.SpacingMultiplier
}

// Major returns the major grid lines and the origin marker.
// If the snapshot has no positive scale, the result is empty.
func Major(snap Snapshot) Geometry {
	if !(snap.Scale > 0) {
		return Geometry{}
	}
	g := layer(snap, snap.MajorSpacing())
	g.Marker = &Circle{
		Center: center(snap),
		Radius: MarkerRadius,
	}
	return g
}

// Minor returns the subdivision lines, spaced at one fifth of the major
// spacing.  If the snapshot has no positive scale, the result is empty.
func Minor(snap Snapshot) Geometry {
	if !(snap.Scale > 0) {
		return Geometry{}
	}
	return layer(snap, snap.MajorSpacing()/MinorDivisions)
}

// center returns the screen position the grid lines are aligned to.
func center(snap Snapshot) vec.Vec2 {
	return vec.Vec2{
		X: snap.Viewport.X/2 + snap.Translation.X,
		Y: snap.Viewport.Y/2 + snap.Translation.Y,
	}
}

func layer(snap Snapshot, step float64) Geometry {
	if !isFinite(step) || step <= 0 {
		return Geometry{}
	}
	w, h := snap.Viewport.X, snap.Viewport.Y
	c := center(snap)

	var g Geometry
	for _, x := range positions(c.X, step, w) {
		g.Vertical = append(g.Vertical, Segment{
			From: vec.Vec2{X: x, Y: 0},
			To:   vec.Vec2{X: x, Y: h},
		})
	}
	for _, y := range positions(c.Y, step, h) {
		g.Horizontal = append(g.Horizontal, Segment{
			From: vec.Vec2{X: 0, Y: y},
			To:   vec.Vec2{X: w, Y: y},
		})
	}
	return g
}

// positions returns the line coordinates c-k*step for k = 0, 1, ...
// followed by c+k*step for k = 1, 2, ..., restricted to [0, limit).
// Each sequence starts at the first index inside the range, so that
// MaxLinesPerAxis only counts visible lines.
func positions(c, step, limit float64) []float64 {
	if !isFinite(c) {
		return nil
	}

	var res []float64
	k := max(0, math.Ceil((c-limit)/step))
	for i := 0; i < 4 && c-k*step >= limit; i++ {
		k++ // rounding
	}
	for ; len(res) < MaxLinesPerAxis; k++ {
		pos := c - k*step
		if pos < 0 || pos >= limit {
			break
		}
		res = append(res, pos)
	}

	k = max(1, math.Ceil(-c/step))
	for i := 0; i < 4 && c+k*step < 0; i++ {
		k++
	}
	for ; len(res) < MaxLinesPerAxis; k++ {
		pos := c + k*step
		if pos < 0 || pos >= limit {
			break
		}
		res = append(res, pos)
	}
	return res
}

// Path returns the geometry as path data.  Every segment becomes a
// separate subpath; the marker is approximated by four cubic Bézier arcs.
func (g *Geometry) Path() *path.Data {
	p := &path.Data{}
	for _, seg := range g.Vertical {
		p = p.MoveTo(seg.From).LineTo(seg.To)
	}
	for _, seg := range g.Horizontal {
		p = p.MoveTo(seg.From).LineTo(seg.To)
	}
	if g.Marker != nil {
		p = g.Marker.appendPath(p)
	}
	return p
}

// appendPath adds the circle to p, starting at the top and running
// clockwise on screen.
func (c *Circle) appendPath(p *path.Data) *path.Data {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	cx, cy, r := c.Center.X, c.Center.Y, c.Radius
	kr := k * r

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return p.MoveTo(pt(cx, cy-r)).
		CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r)).
		Close()
}

// Bounds returns the smallest rectangle containing all lines and the
// marker.  The zero rectangle is returned for empty geometry.
func (g *Geometry) Bounds() rect.Rect {
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	add := func(p vec.Vec2) {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	for _, seg := range g.Lines() {
		add(seg.From)
		add(seg.To)
	}
	if m := g.Marker; m != nil {
		add(vec.Vec2{X: m.Center.X - m.Radius, Y: m.Center.Y - m.Radius})
		add(vec.Vec2{X: m.Center.X + m.Radius, Y: m.Center.Y + m.Radius})
	}
	if xMin > xMax {
		return rect.Rect{}
	}
	return rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
}
