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

// Package testcases holds a corpus of fill paths for testing the
// rasterizer.  The cases are grouped by category in [All].
package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase describes a path to fill, and the canvas it is drawn on.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   path.Path     // the geometry to fill
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Rule   FillRule      // fill rule
	CTM    matrix.Matrix // path to device transformation (zero-value means identity)

	// Outside, if set, requests geometry with zero coverage for the
	// pixels of this rectangle which are not covered by the path.
	// NeedInside then selects whether fully covered pixels are included.
	Outside    *image.Rectangle
	NeedInside bool
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Transform returns the path to device transformation of the test case.
func (tc *TestCase) Transform() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// shape is a path under construction.
type shape []segment

type segment struct {
	cmd path.Command
	pts []vec.Vec2
}

func (s shape) moveTo(x, y float64) shape {
	return append(s, segment{path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}}})
}

func (s shape) lineTo(x, y float64) shape {
	return append(s, segment{path.CmdLineTo, []vec.Vec2{{X: x, Y: y}}})
}

func (s shape) quadTo(cx, cy, x, y float64) shape {
	return append(s, segment{path.CmdQuadTo, []vec.Vec2{{X: cx, Y: cy}, {X: x, Y: y}}})
}

func (s shape) cubeTo(c1x, c1y, c2x, c2y, x, y float64) shape {
	return append(s, segment{path.CmdCubeTo, []vec.Vec2{
		{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y},
	}})
}

func (s shape) close() shape {
	return append(s, segment{cmd: path.CmdClose})
}

// path returns an iterator over the segments of s.
func (s shape) path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, seg := range s {
			if !yield(seg.cmd, seg.pts) {
				return
			}
		}
	}
}

// concat joins the subpaths of several paths into one path.
func concat(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// rectangle builds a clockwise (in device space) rectangle.
func rectangle(x0, y0, x1, y1 float64) path.Path {
	return shape{}.
		moveTo(x0, y0).lineTo(x1, y0).lineTo(x1, y1).lineTo(x0, y1).
		close().path()
}

// rectangleRev builds a rectangle with the opposite orientation of
// [rectangle].
func rectangleRev(x0, y0, x1, y1 float64) path.Path {
	return shape{}.
		moveTo(x0, y0).lineTo(x0, y1).lineTo(x1, y1).lineTo(x1, y0).
		close().path()
}

func rectPtr(x0, y0, x1, y1 int) *image.Rectangle {
	r := image.Rect(x0, y0, x1, y1)
	return &r
}
