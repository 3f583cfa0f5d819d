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
	"context"
	"image"
	"log/slog"
)

// FillMode selects the rule which decides whether a point is inside a path.
type FillMode int

const (
	// EvenOdd fills points where a ray to infinity crosses the path an odd
	// number of times.
	EvenOdd FillMode = iota

	// Winding fills points where the winding number of the path is
	// non-zero.
	Winding
)

func (f FillMode) String() string {
	switch f {
	case EvenOdd:
		return "even-odd"
	case Winding:
		return "winding"
	default:
		return "FillMode(?)"
	}
}

// RasterizeToTriStrip converts a path into a triangle strip which, drawn
// with per-vertex alpha, paints the antialiased interior of the path
// inside the clip rectangle.
//
// The path is given as a sequence of point types and the points they use,
// see [PointType].  Every subpath is closed implicitly.
//
// If needOutside is set, the strip additionally covers all pixels of the
// clip rectangle outside the path, with coverage 0.  If needInside is
// false, pixels fully inside the path are left out.
//
// The result is empty if the path is malformed, if any point lies outside
// the range of [ToFixed], or if nothing needs to be drawn.  Use
// [CheckRange] to tell these cases apart.
func RasterizeToTriStrip(fill FillMode, types []PointType, points []Point, clip image.Rectangle, needInside, needOutside bool) []OutputVertex {
	log := Logger()

	if err := CheckRange(points); err != nil {
		log.Debug("path rejected", "error", err)
		return nil
	}

	clip = clampRect(clip)
	if clip.Empty() {
		return nil
	}

	edges, err := buildEdges(types, points)
	if err != nil {
		log.Debug("path rejected", "error", err)
		return nil
	}
	if len(edges) == 0 && !needOutside {
		return nil
	}

	out := newVertexBuilder(clip.Min.X, clip.Max.X, needInside, needOutside)
	s := &sweeper{
		fill:  fill,
		clip:  clip,
		edges: edges,
		out:   out,
	}
	s.run()
	res := out.finish()

	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("rasterized",
			"fill", fill,
			"edges", len(edges),
			"vertices", len(res))
	}
	return res
}
