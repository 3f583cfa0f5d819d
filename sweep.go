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
	"cmp"
	"image"
	"slices"
)

// sweeper scans the edges of a path from top to bottom and passes the
// coverage of each pixel row to a vertex builder.
type sweeper struct {
	fill FillMode
	clip image.Rectangle

	edges  []edge
	active []*edge
	cross  []crossing
	cov    coverageRow

	out *vertexBuilder
}

// run sweeps all pixel rows of the clip rectangle.  Every row is passed to
// the vertex builder exactly once, in order; runs of rows without edges
// are passed in a single call.
func (s *sweeper) run() {
	top := int64(s.clip.Min.Y) * SubpixelRows
	bottom := int64(s.clip.Max.Y) * SubpixelRows

	s.edges = slices.DeleteFunc(s.edges, func(e edge) bool {
		return e.yb <= top || e.ya >= bottom
	})
	slices.SortStableFunc(s.edges, func(a, b edge) int {
		return cmp.Compare(a.ya, b.ya)
	})

	next := 0
	py := s.clip.Min.Y
	for py < s.clip.Max.Y {
		rowTop := int64(py) * SubpixelRows
		s.active = slices.DeleteFunc(s.active, func(e *edge) bool {
			return e.yb <= rowTop
		})

		if len(s.active) == 0 {
			if next == len(s.edges) {
				s.out.addRows(py, s.clip.Max.Y, nil)
				break
			}
			ny := int(floorDiv(s.edges[next].ya, SubpixelRows))
			if ny > py {
				s.out.addRows(py, ny, nil)
				py = ny
				rowTop = int64(py) * SubpixelRows
			}
		}

		s.cov.reset()
		for sy := rowTop; sy < rowTop+SubpixelRows; sy++ {
			next = s.sampleRow(sy, next)
		}
		s.out.addRows(py, py+1, s.cov.collect())
		py++
	}
}

// sampleRow adds the coverage of sample row sy, activating edges starting
// at s.edges[next:].  It returns the index of the first edge which is not
// yet active.
func (s *sweeper) sampleRow(sy int64, next int) int {
	s.active = slices.DeleteFunc(s.active, func(e *edge) bool {
		return e.yb <= sy
	})
	for next < len(s.edges) && s.edges[next].ya <= sy {
		e := &s.edges[next]
		next++
		if e.yb <= sy {
			continue
		}
		e.start(sy)
		s.active = append(s.active, e)
	}
	if len(s.active) == 0 {
		return next
	}

	// The order changes only where edges cross, so insertion sort is
	// close to linear here.
	for i := 1; i < len(s.active); i++ {
		e := s.active[i]
		j := i
		for j > 0 && s.active[j-1].x > e.x {
			s.active[j] = s.active[j-1]
			j--
		}
		s.active[j] = e
	}

	x0 := int64(s.clip.Min.X) * fixedOne
	x1 := int64(s.clip.Max.X) * fixedOne
	s.cross = s.cross[:0]
	for _, e := range s.active {
		x := min(max(e.x, x0), x1)
		if n := len(s.cross); n > 0 && s.cross[n-1].x == x {
			s.cross[n-1].winding += e.winding
			s.cross[n-1].count++
		} else {
			s.cross = append(s.cross, crossing{x: x, winding: e.winding, count: 1})
		}
		e.step()
	}
	s.cov.addSampleRow(s.fill, s.cross)

	return next
}
