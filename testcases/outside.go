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

// outsideCases request geometry for the area around the path, as used for
// masking operations.
var outsideCases = []TestCase{
	{
		Name:    "mask",
		Path:    rectangle(10, 10, 30, 30),
		Width:   64,
		Height:  64,
		Rule:    NonZero,
		Outside: rectPtr(0, 0, 50, 50),
	},
	{
		Name:       "mask_alpha",
		Path:       rectangle(10, 10, 30, 30),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Outside:    rectPtr(0, 0, 50, 50),
		NeedInside: true,
	},
	{
		Name:    "bowtie",
		Path:    shape{}.moveTo(10, 10).lineTo(40, 10).lineTo(10, 40).lineTo(40, 40).close().path(),
		Width:   64,
		Height:  64,
		Rule:    EvenOdd,
		Outside: rectPtr(5, 5, 50, 50),
	},
	{
		Name:    "clipped",
		Path:    shape{}.moveTo(10, 10).lineTo(10, 40).lineTo(90, 40).lineTo(40, 10).close().path(),
		Width:   50,
		Height:  50,
		Rule:    EvenOdd,
		Outside: rectPtr(0, 0, 50, 50),
	},
	{
		Name:       "circle",
		Path:       circle(32, 32, 20.5),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Outside:    rectPtr(0, 0, 64, 64),
		NeedInside: true,
	},
	{
		Name:    "empty_path",
		Path:    shape{}.path(),
		Width:   32,
		Height:  32,
		Rule:    NonZero,
		Outside: rectPtr(4, 4, 28, 28),
	},
}
