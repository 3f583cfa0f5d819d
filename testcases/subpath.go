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

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   concat(triangle(4, 40, 18, 10, 30, 40), triangle(34, 24, 46, 54, 60, 24)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "nested_squares_evenodd",
		Path:   concat(rectangle(10, 10, 40, 40), rectangle(15, 15, 35, 35)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "nested_squares_nonzero",
		Path:   concat(rectangle(10, 10, 40, 40), rectangle(15, 15, 35, 35)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   concat(rectangle(8, 8, 40, 40), rectangle(24.5, 24.5, 56.5, 56.5)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "ring",
		Path:   concat(circle(32, 32, 26), reversed(circle(32, 32, 14))),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "ring_evenodd",
		Path:   concat(circle(32, 32, 26), circle(32, 32, 14)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "window",
		Path:   window(4, 4, 60, 60, 3),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "many_small_shapes",
		Path:   smallShapes(8, 8),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "implicit_close",
		Path:   shape{}.moveTo(6, 6).lineTo(30, 6).lineTo(18, 28).moveTo(34, 36).lineTo(58, 36).lineTo(46, 58).path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "empty_subpaths",
		Path:   shape{}.moveTo(5, 5).moveTo(9, 9).close().moveTo(10, 10).lineTo(50, 50).close().path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// reversed returns p with the direction of all subpaths reversed.  Only
// paths made of MoveTo, LineTo, CubeTo and Close commands, where every
// subpath is closed, are supported.
func reversed(p path.Path) path.Path {
	var subpaths []shape
	var cur shape
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			cur = shape{}.moveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo, path.CmdCubeTo:
			cur = append(cur, segment{cmd, append(pts[:0:0], pts...)})
		case path.CmdClose:
			subpaths = append(subpaths, cur)
			cur = nil
		}
	}

	var out shape
	for _, sp := range subpaths {
		last := sp[len(sp)-1].pts
		end := last[len(last)-1]
		out = out.moveTo(end.X, end.Y)
		for i := len(sp) - 1; i > 0; i-- {
			seg := sp[i]
			prev := sp[i-1].pts[len(sp[i-1].pts)-1]
			switch seg.cmd {
			case path.CmdLineTo:
				out = out.lineTo(prev.X, prev.Y)
			case path.CmdCubeTo:
				c1, c2 := seg.pts[0], seg.pts[1]
				out = out.cubeTo(c2.X, c2.Y, c1.X, c1.Y, prev.X, prev.Y)
			}
		}
		out = out.close()
	}
	return out.path()
}

// window builds a square frame with n×n square openings.
func window(x0, y0, x1, y1 float64, n int) path.Path {
	paths := []path.Path{rectangle(x0, y0, x1, y1)}
	bar := (x1 - x0) / float64(4*n+1)
	cell := (x1 - x0 - bar) / float64(n)
	for i := range n {
		for j := range n {
			ax := x0 + bar + float64(i)*cell
			ay := y0 + bar + float64(j)*cell
			paths = append(paths, rectangleRev(ax, ay, ax+cell-bar, ay+cell-bar))
		}
	}
	return concat(paths...)
}

// smallShapes builds a grid of small triangles and squares with
// fractional coordinates.
func smallShapes(rows, cols int) path.Path {
	var paths []path.Path
	for i := range rows {
		for j := range cols {
			x := 1.3 + float64(j)*7.7
			y := 1.6 + float64(i)*7.7
			if (i+j)%2 == 0 {
				paths = append(paths, rectangle(x, y, x+4.5, y+4.5))
			} else {
				paths = append(paths, triangle(x, y+5, x+2.6, y, x+5.2, y+5))
			}
		}
	}
	return concat(paths...)
}
