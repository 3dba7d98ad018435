// Command export writes the geometry of every test case to JSON, for
// comparison with independent implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/grid"
	"seehuhn.de/go/grid/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name              string       `json:"name"`
	Width             int          `json:"width"`
	Height            int          `json:"height"`
	Inputs            []string     `json:"inputs,omitempty"`
	Scale             float64      `json:"scale"`
	Translation       []float64    `json:"translation"`
	SpacingMultiplier float64      `json:"spacing_multiplier"`
	Major             jsonGeometry `json:"major"`
	Minor             jsonGeometry `json:"minor"`
}

type jsonGeometry struct {
	Vertical   [][]float64 `json:"vertical"`
	Horizontal [][]float64 `json:"horizontal"`
	Marker     []float64   `json:"marker,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	s, err := tc.Run()
	if err != nil {
		return jsonTestCase{}, err
	}
	snap := s.Snapshot()
	f := grid.Generate(snap)

	jtc := jsonTestCase{
		Name:              category + "_" + tc.Name,
		Width:             tc.Width,
		Height:            tc.Height,
		Scale:             snap.Scale,
		Translation:       point(snap.Translation),
		SpacingMultiplier: snap.SpacingMultiplier,
		Major:             geometryToJSON(f.Major),
		Minor:             geometryToJSON(f.Minor),
	}
	for _, in := range tc.Inputs {
		jtc.Inputs = append(jtc.Inputs, in.String())
	}
	return jtc, nil
}

// geometryToJSON stores every segment as [x0, y0, x1, y1] and the marker
// as [cx, cy, r].
func geometryToJSON(g grid.Geometry) jsonGeometry {
	seg := func(lines []grid.Segment) [][]float64 {
		res := make([][]float64, len(lines))
		for i, l := range lines {
			res[i] = []float64{l.From.X, l.From.Y, l.To.X, l.To.Y}
		}
		return res
	}
	jg := jsonGeometry{
		Vertical:   seg(g.Vertical),
		Horizontal: seg(g.Horizontal),
	}
	if m := g.Marker; m != nil {
		jg.Marker = []float64{m.Center.X, m.Center.Y, m.Radius}
	}
	return jg
}

func point(p vec.Vec2) []float64 {
	return []float64{p.X, p.Y}
}
