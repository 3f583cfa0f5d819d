// seehuhn.de/go/aastrip - antialiased triangle strips for vector paths
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

// Command export writes all test cases, together with the triangle strips
// generated for them, to testdata/testcases.json.  The file can be used to
// compare the output against other implementations.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/aastrip"
	"seehuhn.de/go/aastrip/testcases"
	"seehuhn.de/go/geom/path"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
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
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Path       []jsonSegment `json:"path"`
	CTM        []float64     `json:"ctm"`
	FillRule   string        `json:"fill_rule"`
	Outside    []int         `json:"outside,omitempty"`
	NeedInside bool          `json:"need_inside,omitempty"`

	// Strip holds the generated vertices as x, y, coverage triples.
	Strip [][3]float32 `json:"strip"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	m := tc.Transform()
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Path:     pathToJSON(tc.Path),
		CTM:      m[:],
		FillRule: tc.Rule.String(),
	}

	b := aastrip.NewPathBuilder()
	if tc.Rule == testcases.NonZero {
		b.SetFillMode(aastrip.Winding)
	}
	if r := tc.Outside; r != nil {
		jtc.Outside = []int{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
		jtc.NeedInside = tc.NeedInside
		b.SetOutsideBounds(*r, tc.NeedInside)
	}
	b.AppendPath(tc.Path, m)

	jtc.Strip = [][3]float32{}
	for _, v := range b.RasterizeToTriStrip(image.Rect(0, 0, tc.Width, tc.Height)) {
		jtc.Strip = append(jtc.Strip, [3]float32{v.X, v.Y, v.Coverage})
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
