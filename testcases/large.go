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
	"seehuhn.de/go/geom/path"
)

// largeCases have many rows or many runs per row, so that merged
// rectangles, skipped empty rows and the merge buffer limit are exercised.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50.5, 50.25, 462.75, 461.5),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_concentric_nonzero",
		Path:   concat(rectangle(56, 56, 456, 456), rectangle(156, 156, 356, 356)),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_concentric_evenodd",
		Path:   concat(rectangle(56, 56, 456, 456), rectangle(156, 156, 356, 356)),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
	{
		Name:   "large_diamond",
		Path:   shape{}.moveTo(256, 76).lineTo(436, 256).lineTo(256, 436).lineTo(76, 256).close().path(),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 40, 512, 512, 2.3),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "thin_bars",
		Path:   thinBars(200, 1.3, 0.5, -8, 40),
		Width:  100,
		Height: 100,
		Rule:   NonZero,
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "sparse_rows",
		Path:   concat(rectangle(10, 5, 20, 15), rectangle(30.5, 300, 40, 310.5), rectangle(5, 500, 500, 501)),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
}

// rectangleGrid builds a grid of rectangles, separated by the given gap.
func rectangleGrid(rows, cols, width, height int, gap float64) path.Path {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var paths []path.Path
	for row := range rows {
		for col := range cols {
			paths = append(paths, rectangle(
				float64(col)*cellW+gap, float64(row)*cellH+gap,
				float64(col+1)*cellW-gap, float64(row+1)*cellH-gap))
		}
	}
	return concat(paths...)
}

// thinBars builds n vertical bars of the given width, spaced step pixels
// apart, reaching from y0 to y1.
func thinBars(n int, step, width, y0, y1 float64) path.Path {
	var paths []path.Path
	for i := range n {
		x := float64(i) * step
		paths = append(paths, rectangle(x, y0, x+width, y1))
	}
	return concat(paths...)
}
