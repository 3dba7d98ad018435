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

// Command replay applies a YAML input script to a grid and renders the
// result.
//
// Usage:
//
//	replay -script demo.yaml -png out.png -pdf out.pdf
//
// With -frames, the eased transition after every input is rendered into
// numbered PNG files in the given directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"seehuhn.de/go/grid"
	"seehuhn.de/go/grid/render"
	"seehuhn.de/go/grid/testcases"
)

func main() {
	script := flag.String("script", "", "YAML input script")
	pngOut := flag.String("png", "", "write the final frame as PNG")
	pdfOut := flag.String("pdf", "", "write the final frame as PDF")
	frames := flag.String("frames", "", "directory for animation frames")
	fps := flag.Int("fps", 30, "animation frames per second")
	verbose := flag.Bool("v", false, "log rejected and clamped input")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		grid.SetLogger(slog.New(h))
	}

	if *script == "" {
		fmt.Fprintln(os.Stderr, "replay: missing -script")
		flag.Usage()
		os.Exit(2)
	}

	err := run(*script, *pngOut, *pdfOut, *frames, *fps)
	if err != nil {
		fmt.Fprintln(os.Stderr, "replay:", err)
		os.Exit(1)
	}
}

func run(script, pngOut, pdfOut, frames string, fps int) error {
	tc, err := testcases.LoadScript(script)
	if err != nil {
		return err
	}

	s, err := grid.New(&tc.Options)
	if err != nil {
		return err
	}
	if !s.SetViewport(float64(tc.Width), float64(tc.Height)) {
		return fmt.Errorf("invalid viewport %dx%d", tc.Width, tc.Height)
	}

	var anim *animation
	if frames != "" {
		if fps <= 0 {
			return fmt.Errorf("invalid frame rate %d", fps)
		}
		if err := os.MkdirAll(frames, 0755); err != nil {
			return err
		}
		anim = &animation{
			dir:   frames,
			step:  time.Second / time.Duration(fps),
			r:     render.NewRasteriser(nil),
			frame: image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height)),
		}
		anim.a.Update(anim.now, s.Snapshot())
	}

	for i, in := range tc.Inputs {
		ok := s.Apply(in)
		grid.Logger().Info("input", "index", i, "event", in.String(), "accepted", ok)
		if anim != nil {
			if err := anim.play(s.Snapshot()); err != nil {
				return err
			}
		}
	}

	snap := s.Snapshot()
	f := grid.Generate(snap)
	fmt.Printf("scale %g, translation (%g, %g), spacing multiplier %g\n",
		snap.Scale, snap.Translation.X, snap.Translation.Y, snap.SpacingMultiplier)

	if pdfOut != "" {
		err := render.WritePDF(pdfOut, &f, float64(tc.Width), float64(tc.Height), nil)
		if err != nil {
			return fmt.Errorf("%s: %w", pdfOut, err)
		}
	}
	if pngOut != "" {
		if err := writePNG(pngOut, render.Draw(&f, tc.Width, tc.Height, nil)); err != nil {
			return fmt.Errorf("%s: %w", pngOut, err)
		}
	}
	return nil
}

// animation renders the eased transitions between states, using a
// simulated clock.
type animation struct {
	dir   string
	step  time.Duration
	now   time.Time
	a     grid.Animator
	r     *render.Rasteriser
	frame *image.RGBA
	count int
}

func (an *animation) play(snap grid.Snapshot) error {
	cur := an.a.Update(an.now, snap)
	for {
		f := grid.Generate(cur)
		an.r.Draw(an.frame, &f)
		fname := filepath.Join(an.dir, fmt.Sprintf("frame_%04d.png", an.count))
		if err := writePNG(fname, an.frame); err != nil {
			return err
		}
		an.count++

		if !an.a.Animating(an.now) {
			return nil
		}
		an.now = an.now.Add(an.step)
		cur = an.a.Update(an.now, snap)
	}
}

func writePNG(fname string, img image.Image) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
