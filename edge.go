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
	"errors"
	"fmt"
)

// PointType describes how the points of a path are used.  The low three
// bits select the segment kind, the remaining bits carry flags.
type PointType uint8

// Segment kinds and flags for [PointType].
const (
	PointTypeStart  PointType = 0 // begin a new subpath at one point
	PointTypeLine   PointType = 1 // line to one point
	PointTypeBezier PointType = 3 // cubic curve: two control points, end point
	PointTypeMask   PointType = 0x07

	// PointTypeCloseSubpath closes the current subpath after the segment.
	PointTypeCloseSubpath PointType = 0x80
)

var (
	errTruncated = errors.New("truncated point array")
	errPointType = errors.New("unknown point type")
)

// edge is a line segment in sample space, oriented top to bottom.
// Sample space is 28.4 space shifted by half a pixel, so that pixel k
// covers sample columns and rows 16k to 16k+15.  The edge intersects the
// sample rows ya, ..., yb-1, sampled at their vertical centres.
type edge struct {
	xa, ya  int64 // top end point
	yb      int64 // first sample row below the edge
	dx, dy  int64 // dy > 0
	winding int   // +1 for edges pointing down, -1 for edges pointing up

	// DDA state: the edge crosses the current sample row between the
	// centres of sample columns x-1 and x, with x = xa + ⌈n/den⌉ for the
	// numerator n of the current row and rem = (x-xa)*den - n.
	x, rem       int64
	stepQ, stepR int64
	den          int64
}

// newEdge returns the edge from p to q in sample space.  The second
// return value is false for horizontal edges, which never cross a sample
// row centre.
func newEdge(p, q Point) (edge, bool) {
	x0 := int64(p.X) + halfPixel
	y0 := int64(p.Y) + halfPixel
	x1 := int64(q.X) + halfPixel
	y1 := int64(q.Y) + halfPixel

	winding := 1
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		winding = -1
	}
	if y0 == y1 {
		return edge{}, false
	}

	e := edge{
		xa:      x0,
		ya:      y0,
		yb:      y1,
		dx:      x1 - x0,
		dy:      y1 - y0,
		winding: winding,
	}
	e.den = 2 * e.dy
	e.stepQ = floorDiv(2*e.dx, e.den)
	e.stepR = 2*e.dx - e.stepQ*e.den
	return e, true
}

// start positions the edge on sample row s, where ya <= s < yb.
//
// The edge crosses row s at x = xa + (s+1/2-ya)*dx/dy.  The first sample
// column whose centre lies at or right of this position is
// xa + ⌈((2(s-ya)+1)*dx - dy) / (2*dy)⌉.
func (e *edge) start(s int64) {
	n := addSat(mulSat(2*(s-e.ya)+1, e.dx), -e.dy)
	q := ceilDiv(n, e.den)
	e.x = e.xa + q
	e.rem = addSat(mulSat(q, e.den), -n)
}

// step advances the edge to the next sample row.
func (e *edge) step() {
	e.x += e.stepQ
	e.rem -= e.stepR
	if e.rem < 0 {
		e.rem += e.den
		e.x++
	}
}

// edgeBuilder converts a path into edges.
type edgeBuilder struct {
	edges []edge

	cur      Point
	start    Point
	hasStart bool
}

func (b *edgeBuilder) lineTo(p Point) {
	if e, ok := newEdge(b.cur, p); ok {
		b.edges = append(b.edges, e)
	}
	b.cur = p
}

// closeSubpath adds the closing edge of the current subpath, if any.
func (b *edgeBuilder) closeSubpath() {
	if b.hasStart && b.cur != b.start {
		b.lineTo(b.start)
	}
	b.cur = b.start
}

// buildEdges walks a path given as parallel type and point arrays and
// returns its edges.  Every subpath is closed, explicitly or implicitly.
// A segment that appears before any start point begins a subpath at its
// first point.
func buildEdges(types []PointType, points []Point) ([]edge, error) {
	b := &edgeBuilder{}
	pos := 0
	for i, t := range types {
		var need int
		switch t & PointTypeMask {
		case PointTypeStart, PointTypeLine:
			need = 1
		case PointTypeBezier:
			need = 3
		default:
			return nil, fmt.Errorf("type %d: %w %#02x", i, errPointType, uint8(t))
		}
		if pos+need > len(points) {
			return nil, fmt.Errorf("type %d: %w", i, errTruncated)
		}
		pts := points[pos : pos+need]
		pos += need

		switch t & PointTypeMask {
		case PointTypeStart:
			b.closeSubpath()
			b.cur = pts[0]
			b.start = pts[0]
			b.hasStart = true
		case PointTypeLine:
			if !b.hasStart {
				b.cur = pts[0]
				b.start = pts[0]
				b.hasStart = true
				break
			}
			b.lineTo(pts[0])
		case PointTypeBezier:
			if !b.hasStart {
				b.cur = pts[0]
				b.start = pts[0]
				b.hasStart = true
			}
			flattenBezier(b.cur, pts[0], pts[1], pts[2], b.lineTo)
		}

		if t&PointTypeCloseSubpath != 0 {
			b.closeSubpath()
		}
	}
	b.closeSubpath()
	return b.edges, nil
}
