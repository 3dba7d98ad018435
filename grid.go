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

// Package grid implements the view model of an infinite, pannable and
// zoomable 2D coordinate grid.
//
// A [State] holds the scale and translation of the view, together with
// a level-of-detail spacing multiplier which keeps the distance between
// major grid lines inside a fixed pixel band at every zoom level.
// Gesture input is applied using [State.Pan] and [State.Zoom].
// The line geometry for a frame is computed from a [Snapshot] of the
// state using [Major], [Minor] or [Generate].
//
// Malformed input (non-finite numbers, empty viewports) is silently
// dropped: the state is left unchanged and the call reports false.
package grid

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Options configures a new [State].
type Options struct {
	// BaseScale scales the unzoomed line spacing, which is 40*BaseScale.
	// Zero means 1.
	BaseScale float64

	// MinGap and MaxGap bound the product of the zoom factor and the base
	// line spacing.  Zoom requests leading outside this range are clamped.
	// Zero values are replaced by DefaultMinGap and DefaultMaxGap.
	MinGap float64
	MaxGap float64

	// Spacing selects how the spacing multiplier is refreshed after a
	// change of scale.
	Spacing SpacingMode
}

// Default values for [Options].
const (
	DefaultMinGap = 10.0
	DefaultMaxGap = 1000.0

	// baseLineSpacing is the unscaled distance between major grid lines.
	baseLineSpacing = 40.0
)

// Validate reports whether the options can be used to construct a State.
// Zero values are interpreted as documented on the fields.
func (opt *Options) Validate() error {
	o := opt.withDefaults()
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"BaseScale", o.BaseScale},
		{"MinGap", o.MinGap},
		{"MaxGap", o.MaxGap},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("grid: %s is not finite: %g", f.name, f.val)
		}
		if f.val <= 0 {
			return fmt.Errorf("grid: %s must be positive, got %g", f.name, f.val)
		}
	}
	if o.MinGap > o.MaxGap {
		return fmt.Errorf("grid: MinGap %g exceeds MaxGap %g", o.MinGap, o.MaxGap)
	}
	switch o.Spacing {
	case SpacingStabilized, SpacingSingleStep:
	default:
		return fmt.Errorf("grid: unknown spacing mode %d", o.Spacing)
	}
	return nil
}

func (opt *Options) withDefaults() Options {
	var o Options
	if opt != nil {
		o = *opt
	}
	if o.BaseScale == 0 {
		o.BaseScale = 1
	}
	if o.MinGap == 0 {
		o.MinGap = DefaultMinGap
	}
	if o.MaxGap == 0 {
		o.MaxGap = DefaultMaxGap
	}
	return o
}

// State is the mutable transform state of one grid view.
//
// Screen coordinates are measured in pixels from the top-left corner of
// the viewport.  Pan and Zoom maintain the relation
//
//	screen = scale * (grid + translation)
//
// which is exposed by [State.ToScreen] and [State.ToGrid].
//
// A State is not safe for concurrent use.  Callers which need to read
// geometry on a different goroutine should pass a [Snapshot].
type State struct {
	scale             float64
	translation       vec.Vec2
	viewport          vec.Vec2
	spacingMultiplier float64
	interaction       vec.Vec2

	lineSpacing float64
	minGap      float64
	maxGap      float64
	spacing     SpacingMode

	version uint64
}

// New returns a State at scale 1 with zero translation and no viewport.
// A nil opt is equivalent to a zero Options value.
func New(opt *Options) (*State, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	o := opt.withDefaults()

	s := &State{
		scale:             1,
		spacingMultiplier: 1,
		lineSpacing:       baseLineSpacing * o.BaseScale,
		minGap:            o.MinGap,
		maxGap:            o.MaxGap,
		spacing:           o.Spacing,
	}
	s.refreshSpacing()
	return s, nil
}

// SetViewport records the size of the viewport in screen pixels.
// Sizes which are not finite or which have an area below one square
// pixel are ignored.  The spacing multiplier only depends on the scale
// and is not changed.
func (s *State) SetViewport(width, height float64) bool {
	if !isFinite(width) || !isFinite(height) || width*height < 1 {
		Logger().Debug("grid: viewport rejected", "width", width, "height", height)
		return false
	}
	s.viewport = vec.Vec2{X: width, Y: height}
	s.version++
	return true
}

// Scale returns the current zoom factor.
func (s *State) Scale() float64 { return s.scale }

// Translation returns the grid-space offset of the grid origin.
func (s *State) Translation() vec.Vec2 { return s.translation }

// Viewport returns the last accepted viewport size, or the zero vector.
func (s *State) Viewport() vec.Vec2 { return s.viewport }

// SpacingMultiplier returns the current level-of-detail factor.
func (s *State) SpacingMultiplier() float64 { return s.spacingMultiplier }

// LineSpacing returns the base line spacing, 40 times the base scale.
func (s *State) LineSpacing() float64 { return s.lineSpacing }

// GapRange returns the clamp bounds for scale times base line spacing.
func (s *State) GapRange() (lo, hi float64) { return s.minGap, s.maxGap }

// InteractionPoint returns the focal point of the last accepted zoom.
func (s *State) InteractionPoint() vec.Vec2 { return s.interaction }

// Version is incremented every time the state changes.  Renderers can
// compare versions to find out whether a new frame is needed.
func (s *State) Version() uint64 { return s.version }

// Snapshot is a consistent copy of a [State].  It is the input of the
// geometry generator.
type Snapshot struct {
	Scale             float64
	Translation       vec.Vec2
	Viewport          vec.Vec2
	SpacingMultiplier float64
	LineSpacing       float64
	Interaction       vec.Vec2
	Version           uint64
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Scale:             s.scale,
		Translation:       s.translation,
		Viewport:          s.viewport,
		SpacingMultiplier: s.spacingMultiplier,
		LineSpacing:       s.lineSpacing,
		Interaction:       s.interaction,
		Version:           s.version,
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func isFiniteVec(v vec.Vec2) bool {
	return isFinite(v.X) && isFinite(v.Y)
}
