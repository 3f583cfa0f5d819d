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

package aastrip

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/aastrip/testcases"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkTriStripO converts an "O" shape into a triangle strip.
func BenchmarkTriStripO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := image.Rect(0, 0, size, size)
			c := float64(size) / 2
			o := makeOPath(c, c, float64(size)*0.45, float64(size)*0.30)

			pb := NewPathBuilder()
			pb.AppendPath(o, matrix.Identity)
			p := pb.Path()

			b.ReportAllocs()
			for b.Loop() {
				p.RasterizeToTriStrip(clip, true, false)
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with x/image/vector, for
// comparison.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float64(size) / 2
			o := makeOPath(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for cmd, pts := range o {
					switch cmd {
					case path.CmdMoveTo:
						r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
					case path.CmdCubeTo:
						r.CubeTo(float32(pts[0].X), float32(pts[0].Y),
							float32(pts[1].X), float32(pts[1].Y),
							float32(pts[2].X), float32(pts[2].Y))
					case path.CmdClose:
						r.ClosePath()
					}
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkTestCases converts every test case, including the path
// construction.
func BenchmarkTestCases(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, tc := range cases {
			rasterizeCase(tc, image.Rect(0, 0, tc.Width, tc.Height))
		}
	}
}

// makeOPath returns two concentric circles, the outer one
// counter-clockwise and the inner one clockwise.
func makeOPath(cx, cy, outerR, innerR float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = circle(yield, cx, cy, outerR, false) &&
			circle(yield, cx, cy, innerR, true)
	}
}

// circle adds a circle made of four cubic Bézier arcs, starting at the
// top.  It returns false if the consumer stopped the iteration.
func circle(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, clockwise bool) bool {
	const k = 0.5522847498

	dir := 1.0
	if clockwise {
		dir = -1
	}

	var buf [3]vec.Vec2
	buf[0] = vec.Vec2{X: cx, Y: cy - r}
	if !yield(path.CmdMoveTo, buf[:1]) {
		return false
	}
	for i := range 4 {
		// quadrant i goes from angle a0 to a1, in the chosen direction
		a0 := dir * float64(i) * math.Pi / 2
		a1 := dir * float64(i+1) * math.Pi / 2
		p0 := vec.Vec2{X: cx + r*math.Sin(a0), Y: cy - r*math.Cos(a0)}
		p1 := vec.Vec2{X: cx + r*math.Sin(a1), Y: cy - r*math.Cos(a1)}
		t0 := vec.Vec2{X: math.Cos(a0), Y: math.Sin(a0)}.Mul(dir * k * r)
		t1 := vec.Vec2{X: math.Cos(a1), Y: math.Sin(a1)}.Mul(dir * k * r)
		buf[0], buf[1], buf[2] = p0.Add(t0), p1.Sub(t1), p1
		if !yield(path.CmdCubeTo, buf[:3]) {
			return false
		}
	}
	return yield(path.CmdClose, nil)
}
