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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   shape{}.moveTo(8, 54).quadTo(32, -10, 56, 54).close().path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quadratic_s_shape",
		Path:   shape{}.moveTo(6, 32).quadTo(19, 2, 32, 32).quadTo(45, 62, 58, 32).lineTo(58, 58).lineTo(6, 58).close().path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic",
		Path:   shape{}.moveTo(8, 56).cubeTo(8, 4, 56, 4, 56, 56).close().path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_loop",
		Path:   shape{}.moveTo(10, 50).cubeTo(70, 0, -6, 0, 54, 50).close().path(),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "cubic_cusp",
		Path:   shape{}.moveTo(8, 56).cubeTo(56, 8, 8, 8, 56, 56).close().path(),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "cubic_degenerate",
		Path:   shape{}.moveTo(10, 10).cubeTo(10, 10, 54, 54, 54, 54).lineTo(10, 54).close().path(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "circle_small",
		Path:   circle(8.3, 8.6, 2.2),
		Width:  16,
		Height: 16,
		Rule:   NonZero,
	},
	{
		Name:   "circle_large",
		Path:   circle(128, 128, 120),
		Width:  256,
		Height: 256,
		Rule:   NonZero,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 12),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "pie",
		Path:   pie(32, 32, 26, 0.1, 0.85),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// circle builds a counter-clockwise (in device space) circle from four
// cubic Bezier curves.
func circle(cx, cy, r float64) path.Path {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an axis-aligned ellipse from four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) path.Path {
	kx, ky := rx*kappa, ry*kappa
	return shape{}.
		moveTo(cx+rx, cy).
		cubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry).
		cubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy).
		cubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry).
		cubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy).
		close().path()
}

// pie builds a circular sector between the angles 2π·from and 2π·to,
// using one cubic Bezier curve per step of at most a quarter circle.
func pie(cx, cy, r, from, to float64) path.Path {
	a0 := 2 * math.Pi * from
	a1 := 2 * math.Pi * to
	n := int(math.Ceil((a1 - a0) / (math.Pi / 2)))

	s := shape{}.moveTo(cx, cy).lineTo(cx+r*math.Cos(a0), cy+r*math.Sin(a0))
	da := (a1 - a0) / float64(n)
	k := 4.0 / 3 * math.Tan(da/4) * r
	for i := range n {
		b0 := a0 + float64(i)*da
		b1 := b0 + da
		s = s.cubeTo(
			cx+r*math.Cos(b0)-k*math.Sin(b0), cy+r*math.Sin(b0)+k*math.Cos(b0),
			cx+r*math.Cos(b1)+k*math.Sin(b1), cy+r*math.Sin(b1)-k*math.Cos(b1),
			cx+r*math.Cos(b1), cy+r*math.Sin(b1))
	}
	return s.close().path()
}
