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

// OutputVertex is one vertex of the generated triangle strip.  X and Y are
// device coordinates with pixel corners at integer values.  Coverage is
// the fraction of the adjacent pixels covered by the path, in [0, 1].
type OutputVertex struct {
	X, Y     float32
	Coverage float32
}

// MergeBufferSize is the maximal number of runs per pixel row which are
// kept back for merging with identical runs in the following rows.  Runs
// beyond this number are emitted immediately.  Changing this value changes
// the number of vertices generated for complex paths, but not the area
// painted by them.
const MergeBufferSize = 32

// pendingRun is a run which may still be extended downwards.
type pendingRun struct {
	run
	y0, y1 int
}

// vertexBuilder turns coverage runs into a triangle strip.  Each run
// becomes one axis-aligned rectangle, made of two triangles.  Runs with the
// same extent and coverage in consecutive rows are combined into a single
// rectangle.
type vertexBuilder struct {
	x0, x1      int // horizontal extent of the region for outside geometry
	needInside  bool
	needOutside bool

	pending []pendingRun // sorted by x0
	next    []pendingRun
	visible []run

	out []OutputVertex
}

func newVertexBuilder(x0, x1 int, needInside, needOutside bool) *vertexBuilder {
	return &vertexBuilder{
		x0:          x0,
		x1:          x1,
		needInside:  needInside,
		needOutside: needOutside,
		pending:     make([]pendingRun, 0, MergeBufferSize),
		next:        make([]pendingRun, 0, MergeBufferSize),
	}
}

// addRows adds the pixel rows y0, ..., y1-1, which all have the coverage
// runs given by runs.  Rows must be added in order, without gaps.
func (b *vertexBuilder) addRows(y0, y1 int, runs []run) {
	vis := b.filter(runs)

	b.next = b.next[:0]
	i, j := 0, 0
	for i < len(b.pending) || j < len(vis) {
		if j == len(vis) || i < len(b.pending) && b.pending[i].x0 < vis[j].x0 {
			b.emit(b.pending[i])
			i++
			continue
		}

		r := vis[j]
		j++
		if i < len(b.pending) && b.pending[i].run == r {
			p := b.pending[i]
			i++
			p.y1 = y1
			if len(b.next) < MergeBufferSize {
				b.next = append(b.next, p)
			} else {
				b.emit(p)
			}
			continue
		}

		p := pendingRun{run: r, y0: y0, y1: y1}
		if len(b.next) < MergeBufferSize {
			b.next = append(b.next, p)
		} else {
			b.emit(p)
		}
	}
	b.pending, b.next = b.next, b.pending
}

// filter selects the runs which need geometry.  Partially covered runs are
// always kept, fully covered runs only if inside geometry is requested.
// For outside geometry, zero-coverage runs fill the gaps between the path
// runs.
func (b *vertexBuilder) filter(runs []run) []run {
	b.visible = b.visible[:0]
	pos := b.x0
	for _, r := range runs {
		if b.needOutside && r.x0 > pos {
			b.visible = append(b.visible, run{x0: pos, x1: r.x0})
		}
		if r.cover != fullCoverage || b.needInside {
			b.visible = append(b.visible, r)
		}
		pos = r.x1
	}
	if b.needOutside && pos < b.x1 {
		b.visible = append(b.visible, run{x0: pos, x1: b.x1})
	}
	return b.visible
}

// emit appends the rectangle for p to the strip.  Consecutive rectangles
// are joined by two degenerate triangles.
func (b *vertexBuilder) emit(p pendingRun) {
	x0, x1 := float32(p.x0), float32(p.x1)
	y0, y1 := float32(p.y0), float32(p.y1)
	c := float32(p.cover) / fullCoverage

	first := OutputVertex{X: x0, Y: y0, Coverage: c}
	if n := len(b.out); n > 0 {
		b.out = append(b.out, b.out[n-1], first)
	}
	b.out = append(b.out,
		first,
		OutputVertex{X: x0, Y: y1, Coverage: c},
		OutputVertex{X: x1, Y: y0, Coverage: c},
		OutputVertex{X: x1, Y: y1, Coverage: c},
	)
}

// finish emits all remaining rectangles and returns the strip.
func (b *vertexBuilder) finish() []OutputVertex {
	for _, p := range b.pending {
		b.emit(p)
	}
	b.pending = b.pending[:0]
	return b.out
}
