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

// The rendered distance between major grid lines is kept in the
// half-open pixel band [MinRenderedGap, MaxRenderedGap).
const (
	MinRenderedGap = 128.0
	MaxRenderedGap = 256.0
)

// SpacingMode selects the rule used to refresh the spacing multiplier.
type SpacingMode int

const (
	// SpacingStabilized rescales the multiplier by powers of two until the
	// rendered gap lies inside the band.  See [SpacingMultiplier].
	SpacingStabilized SpacingMode = iota

	// SpacingSingleStep applies [StepSpacingMultiplier] once per change of
	// scale.  After a large jump in scale the rendered gap may stay
	// outside the band until the next zoom.
	SpacingSingleStep
)

func (m SpacingMode) String() string {
	switch m {
	case SpacingStabilized:
		return "stabilized"
	case SpacingSingleStep:
		return "single-step"
	default:
		return "unknown"
	}
}

// StepSpacingMultiplier applies one step of the level-of-detail rule.
//
// If the rendered gap lineSpacing*scale*current is at least
// MaxRenderedGap, the returned multiplier moves the gap to MinRenderedGap.
// If the gap is at most MinRenderedGap, the returned multiplier moves it to
// MaxRenderedGap.  Otherwise current is returned unchanged.
func StepSpacingMultiplier(scale, lineSpacing, current float64) float64 {
	unit := lineSpacing * scale
	gap := unit * current
	if gap >= MaxRenderedGap {
		return MinRenderedGap / unit
	} else if gap <= MinRenderedGap {
		return MaxRenderedGap / unit
	}
	return current
}

// SpacingMultiplier returns a multiplier m such that lineSpacing*scale*m
// lies in [MinRenderedGap, MaxRenderedGap).  The result differs from
// current by a power of two, so that zooming only ever merges or splits
// grid cells.  If the gap already lies in the band, current is returned.
//
// Non-finite or non-positive arguments leave current unchanged.
func SpacingMultiplier(scale, lineSpacing, current float64) float64 {
	unit := lineSpacing * scale
	gap := unit * current
	if !isFinite(gap) || gap <= 0 {
		return current
	}

	// Multiplying by a power of two is exact, so the comparisons below
	// see exactly the gap a renderer will compute from the result.
	m := current
	for gap >= MaxRenderedGap {
		m /= 2
		gap /= 2
	}
	for gap < MinRenderedGap {
		m *= 2
		gap *= 2
	}
	return m
}

// refreshSpacing updates the spacing multiplier for the current scale.
func (s *State) refreshSpacing() {
	switch s.spacing {
	case SpacingSingleStep:
		s.spacingMultiplier = StepSpacingMultiplier(s.scale, s.lineSpacing, s.spacingMultiplier)
	default:
		s.spacingMultiplier = SpacingMultiplier(s.scale, s.lineSpacing, s.spacingMultiplier)
	}
}
