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
	"slices"
	"testing"
)

func TestCoverageSpan(t *testing.T) {
	cases := []struct {
		name  string
		spans [][2]int64
		rows  int
		want  []run
	}{
		{"inside_one_pixel", [][2]int64{{3, 5}}, 1, []run{{0, 1, 2}}},
		{"full_pixels", [][2]int64{{0, 48}}, 16, []run{{0, 3, 256}}},
		{"straddling", [][2]int64{{8, 40}}, 1, []run{{0, 1, 8}, {1, 2, 16}, {2, 3, 8}}},
		{"adjacent_merged", [][2]int64{{0, 16}, {16, 32}}, 1, []run{{0, 2, 16}}},
		{"negative", [][2]int64{{-20, -4}}, 1, []run{{-2, -1, 4}, {-1, 0, 12}}},
		{"empty", [][2]int64{{7, 7}}, 1, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var cov coverageRow
			for range c.rows {
				for _, s := range c.spans {
					cov.addSpan(s[0], s[1])
				}
			}
			got := cov.collect()
			if !slices.Equal(got, c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestCoverageFillRules(t *testing.T) {
	cases := []struct {
		name    string
		cross   []crossing
		evenOdd []run
		nonZero []run
	}{
		{
			name: "nested",
			cross: []crossing{
				{x: 0, winding: 1, count: 1},
				{x: 32, winding: 1, count: 1},
				{x: 64, winding: -1, count: 1},
				{x: 96, winding: -1, count: 1},
			},
			evenOdd: []run{{0, 2, 16}, {4, 6, 16}},
			nonZero: []run{{0, 6, 16}},
		},
		{
			name:    "cancelling",
			cross:   []crossing{{x: 16, winding: 0, count: 2}},
			evenOdd: nil,
			nonZero: nil,
		},
		{
			name: "coincident_pairs",
			cross: []crossing{
				{x: 16, winding: 2, count: 2},
				{x: 48, winding: -2, count: 2},
			},
			evenOdd: nil,
			nonZero: []run{{1, 3, 16}},
		},
		{
			name: "opposite_loops",
			cross: []crossing{
				{x: 0, winding: 1, count: 1},
				{x: 16, winding: -1, count: 1},
				{x: 32, winding: -1, count: 1},
				{x: 48, winding: 1, count: 1},
			},
			evenOdd: []run{{0, 1, 16}, {2, 3, 16}},
			nonZero: []run{{0, 1, 16}, {2, 3, 16}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var cov coverageRow
			cov.addSampleRow(EvenOdd, c.cross)
			if got := cov.collect(); !slices.Equal(got, c.evenOdd) {
				t.Errorf("even-odd: got %v, want %v", got, c.evenOdd)
			}

			cov.reset()
			cov.addSampleRow(Winding, c.cross)
			if got := cov.collect(); !slices.Equal(got, c.nonZero) {
				t.Errorf("winding: got %v, want %v", got, c.nonZero)
			}
		})
	}
}
