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
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/grid"
)

// A script describes a test case in YAML:
//
//	name: demo
//	width: 800
//	height: 600
//	options:
//	  base_scale: 1
//	  min_gap: 20
//	  max_gap: 100
//	  spacing: single-step
//	events:
//	  - pan: [10, -5]
//	  - zoom: {multiplier: 2, at: [400, 300]}
//	  - resize: [1024, 768]
type script struct {
	Name    string        `yaml:"name"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Options scriptOptions `yaml:"options"`
	Events  []scriptEvent `yaml:"events"`
}

type scriptOptions struct {
	BaseScale float64 `yaml:"base_scale"`
	MinGap    float64 `yaml:"min_gap"`
	MaxGap    float64 `yaml:"max_gap"`
	Spacing   string  `yaml:"spacing"`
}

type scriptEvent struct {
	Pan    []float64   `yaml:"pan"`
	Zoom   *scriptZoom `yaml:"zoom"`
	Resize []float64   `yaml:"resize"`
}

type scriptZoom struct {
	Multiplier float64   `yaml:"multiplier"`
	At         []float64 `yaml:"at"`
}

// ErrEmptyScript is returned by ParseScript for an empty document.
var ErrEmptyScript = errors.New("empty script")

// ParseScript reads a test case from its YAML description.
// Unknown keys are rejected.
func ParseScript(r io.Reader) (*TestCase, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s script
	if err := dec.Decode(&s); err == io.EOF {
		return nil, ErrEmptyScript
	} else if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	if s.Name == "" {
		s.Name = "script"
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("script %s: invalid size %dx%d", s.Name, s.Width, s.Height)
	}

	mode, err := parseSpacingMode(s.Options.Spacing)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", s.Name, err)
	}
	tc := &TestCase{
		Name:   s.Name,
		Width:  s.Width,
		Height: s.Height,
		Options: grid.Options{
			BaseScale: s.Options.BaseScale,
			MinGap:    s.Options.MinGap,
			MaxGap:    s.Options.MaxGap,
			Spacing:   mode,
		},
	}
	if err := tc.Options.Validate(); err != nil {
		return nil, fmt.Errorf("script %s: %w", s.Name, err)
	}

	for i, ev := range s.Events {
		in, err := ev.input()
		if err != nil {
			return nil, fmt.Errorf("script %s: event %d: %w", s.Name, i, err)
		}
		tc.Inputs = append(tc.Inputs, in)
	}
	return tc, nil
}

// LoadScript reads a test case from a YAML file.
func LoadScript(fname string) (tc *TestCase, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return ParseScript(f)
}

func (ev *scriptEvent) input() (grid.Input, error) {
	var res []grid.Input
	if ev.Pan != nil {
		if len(ev.Pan) != 2 {
			return nil, fmt.Errorf("pan needs 2 values, got %d", len(ev.Pan))
		}
		res = append(res, grid.PanInput{DX: ev.Pan[0], DY: ev.Pan[1]})
	}
	if ev.Zoom != nil {
		if len(ev.Zoom.At) != 2 {
			return nil, fmt.Errorf("zoom focal point needs 2 values, got %d", len(ev.Zoom.At))
		}
		res = append(res, grid.ZoomInput{
			Multiplier: ev.Zoom.Multiplier,
			Focal:      vec.Vec2{X: ev.Zoom.At[0], Y: ev.Zoom.At[1]},
		})
	}
	if ev.Resize != nil {
		if len(ev.Resize) != 2 {
			return nil, fmt.Errorf("resize needs 2 values, got %d", len(ev.Resize))
		}
		res = append(res, grid.ViewportResize{Width: ev.Resize[0], Height: ev.Resize[1]})
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("expected exactly one of pan, zoom, resize, got %d", len(res))
	}
	return res[0], nil
}

func parseSpacingMode(s string) (grid.SpacingMode, error) {
	for _, m := range []grid.SpacingMode{grid.SpacingStabilized, grid.SpacingSingleStep} {
		if s == m.String() {
			return m, nil
		}
	}
	if s == "" {
		return grid.SpacingStabilized, nil
	}
	return 0, fmt.Errorf("unknown spacing mode %q", s)
}
