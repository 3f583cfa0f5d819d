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
	"slices"
)

// run is a horizontal stretch of pixels [x0, x1) in one pixel row, which
// all have the same coverage.  Cover counts the samples inside the fill
// region, from 0 to fullCoverage.
type run struct {
	x0, x1 int
	cover  int
}

// cellDelta is a change of the running coverage at pixel column x.
type cellDelta struct {
	x int
	d int
}

// crossing is the position where one or more edges cross a sample row.
// Edges crossing at the same sample column are merged into one crossing.
type crossing struct {
	x       int64 // first sample column right of the crossing
	winding int   // sum of the edge windings
	count   int   // number of edges
}

// coverageRow accumulates the coverage of one pixel row, one sample row at
// a time.
//
// A span of samples [c0, c1) in a sample row adds one to the coverage of
// every sample it contains.  This is recorded as a difference array over
// pixel columns: the running sum from the left gives the number of covered
// samples in each pixel.
type coverageRow struct {
	deltas []cellDelta
	runs   []run
}

func (c *coverageRow) reset() {
	c.deltas = c.deltas[:0]
}

// addSampleRow adds the spans of one sample row, given the crossings of
// the row sorted by x, to the coverage.
func (c *coverageRow) addSampleRow(fill FillMode, cross []crossing) {
	var winding, count int
	inside := false
	var spanStart int64
	for _, cr := range cross {
		winding += cr.winding
		count += cr.count

		var in bool
		switch fill {
		case Winding:
			in = winding != 0
		default:
			in = count%2 != 0
		}

		if in && !inside {
			spanStart = cr.x
		} else if !in && inside {
			c.addSpan(spanStart, cr.x)
		}
		inside = in
	}
}

// addSpan marks the samples [c0, c1) of one sample row as covered.
func (c *coverageRow) addSpan(c0, c1 int64) {
	if c1 <= c0 {
		return
	}
	c.ramp(c0, 1)
	c.ramp(c1, -1)
}

// ramp adds sign to the coverage of all samples at or right of column x.
// The pixel containing x gets only the samples from x to the pixel's
// right edge.
func (c *coverageRow) ramp(x int64, sign int) {
	px := int(x >> fixedShift)
	f := int(x & fixedMask)
	c.deltas = append(c.deltas, cellDelta{x: px, d: sign * (fixedOne - f)})
	if f != 0 {
		c.deltas = append(c.deltas, cellDelta{x: px + 1, d: sign * f})
	}
}

// collect returns the coverage runs of the row, sorted by x.  Pixels
// without coverage are not included.  The returned slice is valid until
// the next call to collect.
func (c *coverageRow) collect() []run {
	c.runs = c.runs[:0]
	if len(c.deltas) == 0 {
		return nil
	}

	slices.SortFunc(c.deltas, func(a, b cellDelta) int {
		return cmp.Compare(a.x, b.x)
	})

	cover := 0
	for i := 0; i < len(c.deltas); {
		x := c.deltas[i].x
		for i < len(c.deltas) && c.deltas[i].x == x {
			cover += c.deltas[i].d
			i++
		}
		if cover == 0 || i == len(c.deltas) {
			continue
		}
		next := c.deltas[i].x

		if n := len(c.runs); n > 0 && c.runs[n-1].x1 == x && c.runs[n-1].cover == cover {
			c.runs[n-1].x1 = next
			continue
		}
		c.runs = append(c.runs, run{x0: x, x1: next, cover: cover})
	}
	return c.runs
}
