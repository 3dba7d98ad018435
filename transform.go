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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Pan moves the grid by a displacement given in screen pixels.
// The translation changes by delta/scale, so that a drag moves the grid
// by the same screen distance at every zoom level.  Non-finite deltas, and
// deltas which would move the translation out of the float64 range, are
// rejected.
func (s *State) Pan(delta vec.Vec2) bool {
	if !isFiniteVec(delta) {
		Logger().Debug("grid: pan rejected", "dx", delta.X, "dy", delta.Y)
		return false
	}
	translation := s.translation.Add(delta.Mul(1 / s.scale))
	if !isFiniteVec(translation) {
		Logger().Debug("grid: pan overflow", "dx", delta.X, "dy", delta.Y)
		return false
	}
	s.translation = translation
	s.version++
	return true
}

// Zoom multiplies the scale by multiplier, keeping the screen position of
// focal fixed.
//
// The multiplier is first clamped so that scale*LineSpacing stays within
// [GapRange].  Zoom requires a viewport: if no viewport has been set, or
// if any argument is not finite, the state is left unchanged and false is
// returned.
func (s *State) Zoom(multiplier float64, focal vec.Vec2) bool {
	if !isFinite(multiplier) || !isFiniteVec(focal) {
		Logger().Debug("grid: zoom rejected", "multiplier", multiplier,
			"x", focal.X, "y", focal.Y)
		return false
	}

	unit := s.scale * s.lineSpacing
	requested := multiplier
	if unit*multiplier < s.minGap {
		multiplier = s.minGap / unit
	} else if unit*multiplier > s.maxGap {
		multiplier = s.maxGap / unit
	}
	if multiplier != requested {
		Logger().Debug("grid: zoom clamped", "requested", requested, "multiplier", multiplier)
	}

	proportion := vec.Vec2{X: focal.X / s.viewport.X, Y: focal.Y / s.viewport.Y}
	if !isFiniteVec(proportion) {
		Logger().Debug("grid: zoom without viewport", "width", s.viewport.X, "height", s.viewport.Y)
		return false
	}

	// The visible grid extent shrinks from viewport/scale to
	// viewport/(scale*multiplier).  Distributing the change according to
	// the position of the focal point keeps that point stationary.
	newScale := s.scale * multiplier
	oldExtent := s.viewport.Mul(1 / s.scale)
	newExtent := s.viewport.Mul(1 / newScale)
	delta := newExtent.Sub(oldExtent)
	displacement := vec.Vec2{X: delta.X * proportion.X, Y: delta.Y * proportion.Y}
	translation := s.translation.Add(displacement)
	if !isFinite(newScale) || newScale <= 0 || !isFiniteVec(translation) {
		Logger().Debug("grid: zoom overflow", "scale", newScale)
		return false
	}

	s.translation = translation
	s.scale = newScale
	s.interaction = focal
	s.refreshSpacing()
	s.version++
	return true
}

// ToScreen maps a point in grid coordinates to screen pixels.
func (s *State) ToScreen(p vec.Vec2) vec.Vec2 {
	return s.Snapshot().ToScreen(p)
}

// ToGrid maps a point in screen pixels to grid coordinates.
func (s *State) ToGrid(p vec.Vec2) vec.Vec2 {
	return s.Snapshot().ToGrid(p)
}

// ToScreen maps a point in grid coordinates to screen pixels.
func (snap Snapshot) ToScreen(p vec.Vec2) vec.Vec2 {
	return p.Add(snap.Translation).Mul(snap.Scale)
}

// ToGrid maps a point in screen pixels to grid coordinates.
func (snap Snapshot) ToGrid(p vec.Vec2) vec.Vec2 {
	return p.Mul(1 / snap.Scale).Sub(snap.Translation)
}

// Matrix returns the transformation from grid coordinates to screen
// pixels, in the form used by seehuhn.de/go/geom/matrix.
func (snap Snapshot) Matrix() matrix.Matrix {
	s := snap.Scale
	return matrix.Matrix{s, 0, 0, s, s * snap.Translation.X, s * snap.Translation.Y}
}
