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

var fillCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 30, 30),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "rectangle_fractional",
		Path:   rectangle(10.3, 9.7, 41.6, 38.2),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "open_partial_last_row",
		Path:   shape{}.moveTo(10, 10).lineTo(40, 10).lineTo(40, 39.6).lineTo(10, 39.6).path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "star_nonzero",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "bowtie_evenodd",
		Path:   shape{}.moveTo(10, 10).lineTo(40, 10).lineTo(10, 40).lineTo(40, 40).close().path(),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "diamond",
		Path:   shape{}.moveTo(32, 4).lineTo(60, 32).lineTo(32, 60).lineTo(4, 32).close().path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "sliver",
		Path:   triangle(2, 30, 62, 31, 2, 30.4),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return shape{}.moveTo(x1, y1).lineTo(x2, y2).lineTo(x3, y3).close().path()
}

// star builds a self-intersecting five-pointed star, visiting every
// second corner.
func star(cx, cy, r float64) path.Path {
	var s shape
	for i := range 5 {
		angle := float64(2*i%5)*2*math.Pi/5 - math.Pi/2
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			s = s.moveTo(x, y)
		} else {
			s = s.lineTo(x, y)
		}
	}
	return s.close().path()
}
