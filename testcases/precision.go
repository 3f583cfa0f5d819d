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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
)

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   rectangle(10, 10, 30, 30),
		Width:  40,
		Height: 40,
		Rule:   NonZero,
	},
	{
		Name:   "subpixel_offset_25",
		Path:   rectangle(10.25, 10.25, 30.25, 30.25),
		Width:  40,
		Height: 40,
		Rule:   NonZero,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   rectangle(10.5, 10.5, 30.5, 30.5),
		Width:  40,
		Height: 40,
		Rule:   NonZero,
	},
	{
		Name:   "subpixel_offset_75",
		Path:   rectangle(10.75, 10.75, 30.75, 30.75),
		Width:  40,
		Height: 40,
		Rule:   NonZero,
	},
	{
		Name:   "between_samples",
		Path:   rectangle(10.03, 10.97, 30.47, 30.53),
		Width:  40,
		Height: 40,
		Rule:   NonZero,
	},
	{
		Name:   "thin_horizontal",
		Path:   rectangle(4, 20.2, 60, 20.7),
		Width:  64,
		Height: 40,
		Rule:   NonZero,
	},
	{
		Name:   "thin_vertical",
		Path:   rectangle(20.6, 4, 21.1, 36),
		Width:  40,
		Height: 40,
		Rule:   NonZero,
	},
	{
		Name:   "shallow_slope",
		Path:   triangle(2, 10, 62, 13, 2, 30),
		Width:  64,
		Height: 40,
		Rule:   NonZero,
	},
	{
		Name:   "steep_slope",
		Path:   triangle(10, 2, 13, 62, 30, 2),
		Width:  40,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "large_offset",
		Path:   rectangle(1e6+10.4, 1e6+10.4, 1e6+29.6, 1e6+29.6),
		Width:  40,
		Height: 40,
		Rule:   NonZero,
		CTM:    matrix.Matrix{1, 0, 0, 1, -1e6, -1e6},
	},
	{
		Name:   "partly_off_canvas",
		Path:   triangle(-30, -10, 50, 20, -10, 70),
		Width:  40,
		Height: 40,
		Rule:   NonZero,
	},
}
