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
	"image"
	"math"
)

// Fixed is a signed 28.4 fixed-point coordinate: the value v stands for
// v/16 device pixels.
type Fixed int32

const (
	fixedShift = 4
	fixedOne   = 1 << fixedShift
	fixedMask  = fixedOne - 1

	// halfPixel moves 28.4 coordinates, which use the pixel-centre
	// convention, back to pixel corners.
	halfPixel = fixedOne / 2
)

// MaxFixed bounds the magnitude of valid coordinates.  A path is only
// rasterized if every coordinate v satisfies -MaxFixed < v < MaxFixed.
const MaxFixed = 1 << 27

// SubpixelRows is the number of sample rows per pixel row.  Each pixel is
// sampled on a SubpixelRows×SubpixelRows grid, so that every sample lies
// on the 28.4 grid.
const SubpixelRows = fixedOne

// fullCoverage is the number of samples in one pixel.
const fullCoverage = SubpixelRows * fixedOne

// maxClipCoord limits clip rectangles, in pixels.  Valid path coordinates
// stay far inside this range, and all pixel coordinates up to this
// magnitude are exact as float32.
const maxClipCoord = 1 << 24

// ErrRange is returned when a coordinate cannot be represented as a
// 28.4 fixed-point number inside the rasterizer's range.
var ErrRange = errors.New("coordinate out of range")

// Point is a device-space point in 28.4 fixed-point format.  The
// coordinates use the pixel-centre convention, see [ToFixed].
type Point struct {
	X, Y Fixed
}

// ToFixed converts a device-space coordinate, with pixel corners at
// integer values, into a 28.4 coordinate relative to pixel centres.
// The second return value is false if the result would lie outside the
// valid range.
func ToFixed(v float64) (Fixed, bool) {
	s := (v - 0.5) * fixedOne
	if !(s > -MaxFixed && s < MaxFixed) { // also catches NaN
		return 0, false
	}
	return Fixed(math.Floor(s + 0.5)), true
}

// Float returns the device-space coordinate represented by f, with pixel
// corners at integer values.
func (f Fixed) Float() float64 {
	return float64(f)/fixedOne + 0.5
}

func (f Fixed) valid() bool {
	return f > -MaxFixed && f < MaxFixed
}

// CheckRange verifies that all points lie inside the range accepted by
// the rasterizer.  Rasterizing a path for which CheckRange fails yields an
// empty vertex list, so callers can use this function to tell an invalid
// path apart from a path without visible area.
func CheckRange(points []Point) error {
	for i, p := range points {
		if !p.X.valid() || !p.Y.valid() {
			return fmt.Errorf("point %d (%d, %d): %w", i, p.X, p.Y, ErrRange)
		}
	}
	return nil
}

// clampRect limits the coordinates of r to ±maxClipCoord.
func clampRect(r image.Rectangle) image.Rectangle {
	c := func(v int) int {
		return min(max(v, -maxClipCoord), maxClipCoord)
	}
	return image.Rectangle{
		Min: image.Point{X: c(r.Min.X), Y: c(r.Min.Y)},
		Max: image.Point{X: c(r.Max.X), Y: c(r.Max.Y)},
	}
}

// floorDiv returns ⌊a/b⌋.  The divisor must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv returns ⌈a/b⌉.  The divisor must be positive.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// mulSat returns a*b, saturated to the int64 range.
func mulSat(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	neg := (a < 0) != (b < 0)
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 || b == 1 {
			return a * b
		}
		return satLimit(neg)
	}
	p := a * b
	if p/b != a {
		return satLimit(neg)
	}
	return p
}

// addSat returns a+b, saturated to the int64 range.
func addSat(a, b int64) int64 {
	s := a + b
	if a > 0 && b > 0 && s < 0 {
		return math.MaxInt64
	}
	if a < 0 && b < 0 && s >= 0 {
		return math.MinInt64
	}
	return s
}

func satLimit(neg bool) int64 {
	if neg {
		return math.MinInt64
	}
	return math.MaxInt64
}
