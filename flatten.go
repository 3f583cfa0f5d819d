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
	"math"

	"seehuhn.de/go/geom/vec"
)

// CurveTolerance is the maximal distance, in device pixels, between a
// Bézier curve and the polyline used to approximate it.
const CurveTolerance = 0.25

// maxFlattenDepth bounds the recursion depth of the curve subdivision.
// After this many halvings a curve spans at most a few sample positions
// even at the limits of the coordinate range.
const maxFlattenDepth = 16

// flattenBezier approximates the cubic Bézier curve with start point p0,
// control points p1 and p2, and end point p3 by line segments.  The end
// point of each segment is passed to emit, in order; the last call
// receives p3 unchanged.  Intermediate points are rounded to the 28.4
// grid.
func flattenBezier(p0, p1, p2, p3 Point, emit func(Point)) {
	tol := CurveTolerance * fixedOne
	var rec func(a, b, c, d vec.Vec2, depth int)
	rec = func(a, b, c, d vec.Vec2, depth int) {
		if depth >= maxFlattenDepth ||
			segmentDist(b, a, d) <= tol && segmentDist(c, a, d) <= tol {
			emit(roundPoint(d))
			return
		}

		// de Casteljau split at t = 1/2
		ab := a.Add(b).Mul(0.5)
		bc := b.Add(c).Mul(0.5)
		cd := c.Add(d).Mul(0.5)
		abc := ab.Add(bc).Mul(0.5)
		bcd := bc.Add(cd).Mul(0.5)
		m := abc.Add(bcd).Mul(0.5)

		rec(a, ab, abc, m, depth+1)
		rec(m, bcd, cd, d, depth+1)
	}

	// The corner points are integers, so the last point emitted is p3
	// exactly.
	rec(p0.vec(), p1.vec(), p2.vec(), p3.vec(), 0)
}

// segmentDist returns the distance of p from the line segment [a, b].
func segmentDist(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return ap.Length()
	}
	t := min(max(ap.Dot(ab)/l2, 0), 1)
	return ap.Sub(ab.Mul(t)).Length()
}

func (p Point) vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// roundPoint converts a point in 28.4 units to the nearest grid point.
func roundPoint(v vec.Vec2) Point {
	return Point{
		X: Fixed(math.Floor(v.X + 0.5)),
		Y: Fixed(math.Floor(v.Y + 0.5)),
	}
}
