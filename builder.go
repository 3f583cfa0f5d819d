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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// PathBuilder collects a path in device coordinates and converts it to a
// triangle strip.  Coordinates use integer values for pixel corners.
//
// A PathBuilder must not be used concurrently from different goroutines.
type PathBuilder struct {
	types  []PointType
	points []Point

	// initial is the start point of a subpath which has not been drawn
	// yet.  It is valid if hasInitial is set.
	initial    vec.Vec2
	hasInitial bool
	inShape    bool
	current    vec.Vec2

	fill       FillMode
	outside    image.Rectangle
	hasOutside bool
	needInside bool

	err error
}

// NewPathBuilder returns an empty path builder using the even-odd fill
// rule.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{
		fill:       EvenOdd,
		needInside: true,
	}
}

// MoveTo starts a new subpath at (x, y).
func (b *PathBuilder) MoveTo(x, y float64) {
	b.inShape = false
	b.initial = vec.Vec2{X: x, Y: y}
	b.hasInitial = true
	b.current = b.initial
}

// LineTo adds a straight line to (x, y).  If there is no current point,
// the point becomes the start of a new subpath instead.
func (b *PathBuilder) LineTo(x, y float64) {
	if !b.hasInitial {
		b.MoveTo(x, y)
		return
	}
	b.beginShape()
	b.types = append(b.types, PointTypeLine)
	b.addPoint(vec.Vec2{X: x, Y: y})
}

// CurveTo adds a cubic Bézier curve with control points (c1x, c1y) and
// (c2x, c2y), ending at (x, y).  If there is no current point, the curve
// starts at the first control point.
func (b *PathBuilder) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !b.hasInitial {
		b.MoveTo(c1x, c1y)
	}
	b.beginShape()
	b.types = append(b.types, PointTypeBezier)
	b.addPoint(vec.Vec2{X: c1x, Y: c1y})
	b.addPoint(vec.Vec2{X: c2x, Y: c2y})
	b.addPoint(vec.Vec2{X: x, Y: y})
}

// QuadTo adds a quadratic Bézier curve with control point (cx, cy),
// ending at (x, y).  If there is no current point, the curve starts at the
// control point.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) {
	c := vec.Vec2{X: cx, Y: cy}
	p0 := c
	if b.hasInitial {
		p0 = b.current
	}
	p3 := vec.Vec2{X: x, Y: y}

	// degree elevation
	c1 := p0.Add(c.Sub(p0).Mul(2.0 / 3))
	c2 := p3.Add(c.Sub(p3).Mul(2.0 / 3))
	b.CurveTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
}

// Close closes the current subpath.  A following LineTo starts a new
// subpath.
func (b *PathBuilder) Close() {
	if n := len(b.types); n > 0 {
		b.types[n-1] |= PointTypeCloseSubpath
	}
	b.inShape = false
	b.hasInitial = false
}

// SetFillMode sets the fill rule.
func (b *PathBuilder) SetFillMode(fill FillMode) {
	b.fill = fill
}

// SetOutsideBounds makes the triangle strip cover all pixels of r outside
// the path, with coverage 0.  If needInside is false, pixels which are
// fully inside the path are omitted.  This gives the geometry needed for
// operations like masking a destination with the path.
//
// Geometry generated for the path itself is not clipped to r.
func (b *PathBuilder) SetOutsideBounds(r image.Rectangle, needInside bool) {
	b.outside = r
	b.hasOutside = true
	b.needInside = needInside
}

// ClearOutsideBounds undoes the effect of [PathBuilder.SetOutsideBounds].
func (b *PathBuilder) ClearOutsideBounds() {
	b.outside = image.Rectangle{}
	b.hasOutside = false
	b.needInside = true
}

// Err returns an error if a point of the path was out of range.  In this
// case the path produces no geometry.
func (b *PathBuilder) Err() error {
	return b.err
}

// Bounds returns the bounding box of all points of the path, including
// Bézier control points, in device coordinates.  The result is the zero
// rectangle if no segment has been added yet.
func (b *PathBuilder) Bounds() rect.Rect {
	if len(b.points) == 0 {
		return rect.Rect{}
	}
	p := b.points[0]
	r := rect.Rect{
		LLx: p.X.Float(), LLy: p.Y.Float(),
		URx: p.X.Float(), URy: p.Y.Float(),
	}
	for _, p := range b.points[1:] {
		x, y := p.X.Float(), p.Y.Float()
		r.LLx = min(r.LLx, x)
		r.LLy = min(r.LLy, y)
		r.URx = max(r.URx, x)
		r.URy = max(r.URy, y)
	}
	return r
}

// AppendPath adds all subpaths of p, transformed by m, to the builder.
// After a close command the current point returns to the start of the
// closed subpath, as in PDF and PostScript.
func (b *PathBuilder) AppendPath(p path.Path, m matrix.Matrix) {
	var start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			start = apply(m, pts[0])
			b.MoveTo(start.X, start.Y)
		case path.CmdLineTo:
			q := apply(m, pts[0])
			b.LineTo(q.X, q.Y)
		case path.CmdQuadTo:
			c := apply(m, pts[0])
			q := apply(m, pts[1])
			b.QuadTo(c.X, c.Y, q.X, q.Y)
		case path.CmdCubeTo:
			c1 := apply(m, pts[0])
			c2 := apply(m, pts[1])
			q := apply(m, pts[2])
			b.CurveTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
		case path.CmdClose:
			b.Close()
			b.MoveTo(start.X, start.Y)
		}
	}
}

// RasterizeToTriStrip converts the path into a triangle strip, clipped to
// clip.  If outside bounds are set, they are intersected with the clip
// rectangle and the result is empty when the two do not overlap.
func (b *PathBuilder) RasterizeToTriStrip(clip image.Rectangle) []OutputVertex {
	if b.err != nil {
		return nil
	}
	if !b.hasOutside {
		return RasterizeToTriStrip(b.fill, b.types, b.points, clip, b.needInside, false)
	}
	r := clip.Intersect(b.outside)
	if r.Empty() {
		return nil
	}
	return RasterizeToTriStrip(b.fill, b.types, b.points, r, b.needInside, true)
}

// Path returns the path collected so far and resets the builder to an
// empty path.  The builder keeps its current point and fill settings.
// The result is nil if the path is empty or a point was out of range.
func (b *PathBuilder) Path() *OutputPath {
	if b.err != nil || len(b.types) == 0 || len(b.points) == 0 {
		return nil
	}
	p := &OutputPath{
		Fill:   b.fill,
		Types:  b.types,
		Points: b.points,
	}
	b.types = nil
	b.points = nil
	if b.hasInitial {
		// continue from the current point in a new subpath
		b.initial = b.current
		b.inShape = false
	}
	return p
}

func (b *PathBuilder) beginShape() {
	if b.inShape {
		return
	}
	b.types = append(b.types, PointTypeStart)
	b.addPoint(b.initial)
	b.inShape = true
}

func (b *PathBuilder) addPoint(p vec.Vec2) {
	x, okX := ToFixed(p.X)
	y, okY := ToFixed(p.Y)
	if (!okX || !okY) && b.err == nil {
		b.err = fmt.Errorf("point (%g, %g): %w", p.X, p.Y, ErrRange)
	}
	b.points = append(b.points, Point{X: x, Y: y})
	b.current = p
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// OutputPath is a path in the form accepted by [RasterizeToTriStrip].
type OutputPath struct {
	Fill   FillMode
	Types  []PointType
	Points []Point
}

// RasterizeToTriStrip converts the path into a triangle strip, see
// [RasterizeToTriStrip].
func (p *OutputPath) RasterizeToTriStrip(clip image.Rectangle, needInside, needOutside bool) []OutputVertex {
	return RasterizeToTriStrip(p.Fill, p.Types, p.Points, clip, needInside, needOutside)
}
