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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Path:   shape{}.moveTo(10, 50).lineTo(20, 30).quadTo(32, 10, 44, 30).lineTo(54, 50).cubeTo(48, 60, 16, 60, 10, 50).close().path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "glyph_o",
		Path:   concat(ellipse(32, 34, 20, 24), reversed(ellipse(33, 34, 11, 17))),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "glyph_d",
		Path:   glyphD(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "spiral_polygon",
		Path:   spiral(64, 64, 4, 56, 4, 200),
		Width:  128,
		Height: 128,
		Rule:   EvenOdd,
	},
	{
		Name:   "horn",
		Path:   shape{}.moveTo(77.7, 84.285).cubeTo(77.7, 84.285, 77.8, 86.179, 76.97, 86.16).cubeTo(76.15, 86.141, 59.7, 38.066, 39.17, 40.309).cubeTo(39.17, 40.309, 56.95, 32.956, 77.7, 84.285).close().path(),
		Width:  100,
		Height: 100,
		Rule:   EvenOdd,
	},
	{
		Name:   "gear",
		Path:   gear(64, 64, 40, 52, 12),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
}

// glyphD builds a letter D with a stem and a curved bowl around a
// counter.
func glyphD() path.Path {
	outer := shape{}.
		moveTo(12, 6).
		lineTo(28, 6).
		cubeTo(48, 6, 56, 18, 56, 32).
		cubeTo(56, 46, 48, 58, 28, 58).
		lineTo(12, 58).
		close()
	inner := shape{}.
		moveTo(20, 13).
		lineTo(20, 51).
		lineTo(28, 51).
		cubeTo(42, 51, 47.5, 43, 47.5, 32).
		cubeTo(47.5, 21, 42, 13, 28, 13).
		close()
	return concat(outer.path(), inner.path())
}

// spiral builds a closed polygon which winds around (cx, cy) several
// times, with radius growing from r0 to r1, and returns along the outside.
func spiral(cx, cy, r0, r1, turns float64, n int) path.Path {
	var s shape
	for i := range n + 1 {
		t := float64(i) / float64(n)
		a := 2 * math.Pi * turns * t
		r := r0 + (r1-r0)*t
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			s = s.moveTo(x, y)
		} else {
			s = s.lineTo(x, y)
		}
	}
	return s.close().path()
}

// gear builds a polygon with n teeth, alternating between the inner and
// outer radius.
func gear(cx, cy, rIn, rOut float64, n int) path.Path {
	var s shape
	for i := range 4 * n {
		a := 2 * math.Pi * float64(i) / float64(4*n)
		r := rIn
		if i%4 >= 2 {
			r = rOut
		}
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			s = s.moveTo(x, y)
		} else {
			s = s.lineTo(x, y)
		}
	}
	return s.close().path()
}
