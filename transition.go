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
	"time"

	"seehuhn.de/go/geom/vec"
)

// DefaultTransitionDuration is the duration used by a zero [Animator].
const DefaultTransitionDuration = 800 * time.Millisecond

// View is the part of a [Snapshot] which is smoothed by a [Transition].
type View struct {
	Scale             float64
	Translation       vec.Vec2
	SpacingMultiplier float64
}

// View returns the animatable part of the snapshot.
func (snap Snapshot) View() View {
	return View{
		Scale:             snap.Scale,
		Translation:       snap.Translation,
		SpacingMultiplier: snap.SpacingMultiplier,
	}
}

// WithView returns a copy of snap with scale, translation and spacing
// multiplier taken from v.
func (snap Snapshot) WithView(v View) Snapshot {
	snap.Scale = v.Scale
	snap.Translation = v.Translation
	snap.SpacingMultiplier = v.SpacingMultiplier
	return snap
}

// Lerp interpolates between v (t=0) and w (t=1).
func (v View) Lerp(w View, t float64) View {
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	return View{
		Scale: lerp(v.Scale, w.Scale),
		Translation: vec.Vec2{
			X: lerp(v.Translation.X, w.Translation.X),
			Y: lerp(v.Translation.Y, w.Translation.Y),
		},
		SpacingMultiplier: lerp(v.SpacingMultiplier, w.SpacingMultiplier),
	}
}

// Transition interpolates from one view to another over a fixed duration.
// A Transition is purely presentational: it never modifies a [State].
type Transition struct {
	From, To View
	Start    time.Time
	Duration time.Duration

	// Ease maps the elapsed fraction of the duration to the interpolation
	// parameter.  Nil means [EaseIn].
	Ease func(float64) float64
}

// Progress returns the elapsed fraction of the transition, in [0, 1].
func (tr *Transition) Progress(now time.Time) float64 {
	if tr.Duration <= 0 {
		return 1
	}
	t := float64(now.Sub(tr.Start)) / float64(tr.Duration)
	return min(max(t, 0), 1)
}

// Done reports whether the transition has reached its end.
func (tr *Transition) Done(now time.Time) bool {
	return tr.Progress(now) >= 1
}

// Sample returns the interpolated view at time now.  Once the duration
// has elapsed, the target view is returned exactly.
func (tr *Transition) Sample(now time.Time) View {
	t := tr.Progress(now)
	if t >= 1 {
		return tr.To
	}
	ease := tr.Ease
	if ease == nil {
		ease = EaseIn
	}
	return tr.From.Lerp(tr.To, ease(t))
}

// Animator smooths the changes of a [State] for display.
//
// Once per rendered frame, the caller passes the current snapshot to
// [Animator.Update] and draws the snapshot returned.  A change arriving
// while a transition is running restarts interpolation from the value
// currently on screen.
type Animator struct {
	// Duration of each transition.  Zero means DefaultTransitionDuration;
	// a negative value disables smoothing.
	Duration time.Duration

	// Ease is the easing curve.  Nil means EaseIn.
	Ease func(float64) float64

	tr      Transition
	version uint64
	started bool
}

// Update returns snap with scale, translation and spacing multiplier
// replaced by the values to be shown at time now.
func (a *Animator) Update(now time.Time, snap Snapshot) Snapshot {
	switch {
	case !a.started:
		target := snap.View()
		a.tr = Transition{From: target, To: target, Start: now}
		a.started = true
	case snap.Version != a.version:
		a.Retarget(now, snap.View())
	}
	a.version = snap.Version
	return snap.WithView(a.tr.Sample(now))
}

// Retarget starts a new transition from the currently shown view to
// target.
func (a *Animator) Retarget(now time.Time, target View) {
	from := target
	if a.started {
		from = a.tr.Sample(now)
	}
	d := a.Duration
	if d == 0 {
		d = DefaultTransitionDuration
	}
	a.tr = Transition{
		From:     from,
		To:       target,
		Start:    now,
		Duration: max(d, 0),
		Ease:     a.Ease,
	}
	a.started = true
}

// Animating reports whether a transition is still in progress at time now.
func (a *Animator) Animating(now time.Time) bool {
	return a.started && !a.tr.Done(now)
}

// Linear is the identity easing curve.
func Linear(t float64) float64 { return t }

// EaseIn is the CSS "ease-in" timing function, cubic-bezier(0.42, 0, 1, 1).
func EaseIn(t float64) float64 {
	return cubicBezierEase(0.42, 0, 1, 1, t)
}

// cubicBezierEase evaluates the timing function defined by the Bézier curve
// through (0,0), (x1,y1), (x2,y2), (1,1) at horizontal position x.
func cubicBezierEase(x1, y1, x2, y2, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	bez := func(p1, p2, s float64) float64 {
		u := 1 - s
		return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
	}

	// The x coordinate is monotone in s for x1, x2 in [0, 1], so bisection
	// always converges.
	lo, hi := 0.0, 1.0
	s := x
	for range 64 {
		d := bez(x1, x2, s) - x
		if math.Abs(d) < 1e-9 {
			break
		}
		if d > 0 {
			hi = s
		} else {
			lo = s
		}
		s = (lo + hi) / 2
	}
	return bez(y1, y2, s)
}
