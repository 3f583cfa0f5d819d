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
	"image"
	"math"
	"testing"
)

func TestToFixed(t *testing.T) {
	cases := []struct {
		in   float64
		want Fixed
	}{
		{0.5, 0},
		{0, -8},
		{1, 8},
		{10, 152},
		{39.6, 626},
		{0.5 + 1.0/32, 1}, // ties round up
		{0.5 - 1.0/32, 0},
		{-3.25, -60},
	}
	for _, c := range cases {
		got, ok := ToFixed(c.in)
		if !ok {
			t.Errorf("ToFixed(%g) reported out of range", c.in)
			continue
		}
		if got != c.want {
			t.Errorf("ToFixed(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestToFixedRange(t *testing.T) {
	limit := float64(MaxFixed)/16 + 0.5
	bad := []float64{
		math.NaN(),
		math.Inf(1),
		math.Inf(-1),
		8.872974e16,
		limit,
		-limit + 1,
		-limit,
	}
	for _, v := range bad {
		if _, ok := ToFixed(v); ok {
			t.Errorf("ToFixed(%g) accepted", v)
		}
	}

	good := []float64{limit - 1, -limit + 2, 1e6, -1e6}
	for _, v := range good {
		if _, ok := ToFixed(v); !ok {
			t.Errorf("ToFixed(%g) rejected", v)
		}
	}
}

func TestFixedFloat(t *testing.T) {
	for _, v := range []float64{0, 0.5, 10, -7.25, 1000.0625} {
		f, _ := ToFixed(v)
		if got := f.Float(); got != v {
			t.Errorf("%g -> %d -> %g", v, f, got)
		}
	}
}

func TestCheckRange(t *testing.T) {
	ok := []Point{{0, 0}, {MaxFixed - 1, -(MaxFixed - 1)}}
	if err := CheckRange(ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := []Point{{0, 0}, {1, MaxFixed}}
	err := CheckRange(bad)
	if !errors.Is(err, ErrRange) {
		t.Errorf("got %v, want ErrRange", err)
	}
}

func TestFloorCeilDiv(t *testing.T) {
	cases := []struct {
		a, b        int64
		floor, ceil int64
	}{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{6, 3, 2, 2},
		{-6, 3, -2, -2},
		{0, 5, 0, 0},
		{-1, 32, -1, 0},
		{1, 32, 0, 1},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.floor {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.floor)
		}
		if got := ceilDiv(c.a, c.b); got != c.ceil {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.ceil)
		}
	}
}

func TestSaturation(t *testing.T) {
	const maxI, minI = math.MaxInt64, math.MinInt64
	mul := []struct{ a, b, want int64 }{
		{3, 4, 12},
		{-3, 4, -12},
		{1 << 40, 1 << 40, maxI},
		{-(1 << 40), 1 << 40, minI},
		{-(1 << 40), -(1 << 40), maxI},
		{minI, -1, maxI},
		{-1, minI, maxI},
		{minI, 1, minI},
		{minI, 0, 0},
		{maxI, 2, maxI},
	}
	for _, c := range mul {
		if got := mulSat(c.a, c.b); got != c.want {
			t.Errorf("mulSat(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}

	add := []struct{ a, b, want int64 }{
		{1, 2, 3},
		{maxI, 1, maxI},
		{minI, -1, minI},
		{maxI, minI, -1},
	}
	for _, c := range add {
		if got := addSat(c.a, c.b); got != c.want {
			t.Errorf("addSat(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestClampRect(t *testing.T) {
	r := clampRect(image.Rect(-1<<30, 5, 1<<30, 1<<25))
	want := image.Rect(-maxClipCoord, 5, maxClipCoord, maxClipCoord)
	if r != want {
		t.Errorf("got %v, want %v", r, want)
	}
}
