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
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/grid"
)

func TestWritePDF(t *testing.T) {
	f := unitFrame()
	fname := filepath.Join(t.TempDir(), "grid.pdf")

	if err := WritePDF(fname, &f, 800, 600, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
		t.Errorf("missing PDF header: %q", data[:min(len(data), 16)])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("missing end-of-file marker")
	}
}

func TestWritePDFEmptyFrame(t *testing.T) {
	var f grid.Frame
	fname := filepath.Join(t.TempDir(), "empty.pdf")
	if err := WritePDF(fname, &f, 100, 100, coverageStyle); err != nil {
		t.Fatal(err)
	}
}

func TestWritePDFInvalidSize(t *testing.T) {
	f := unitFrame()
	fname := filepath.Join(t.TempDir(), "bad.pdf")
	if err := WritePDF(fname, &f, 0, 600, nil); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := os.Stat(fname); !os.IsNotExist(err) {
		t.Error("file created for invalid page size")
	}
}

func TestGrayLevel(t *testing.T) {
	cases := []struct {
		c    color.Color
		want float64
	}{
		{color.Black, 0},
		{color.White, 1},
		{color.Gray16{Y: 0x8000}, float64(0x8000) / 0xFFFF},
	}
	for _, c := range cases {
		if got := grayLevel(c.c); got != c.want {
			t.Errorf("grayLevel(%v) = %g, want %g", c.c, got, c.want)
		}
	}
}
