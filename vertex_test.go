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

// quad is an axis-aligned rectangle of constant coverage.
type quad struct {
	x0, y0, x1, y1 float32
	c              float32
}

// stripQuads checks the layout of a triangle strip and returns the
// rectangles it consists of.
func stripQuads(t testing.TB, strip []OutputVertex) []quad {
	t.Helper()
	if len(strip) == 0 {
		return nil
	}
	if (len(strip)+2)%6 != 0 {
		t.Fatalf("strip has %d vertices, want 6n-2", len(strip))
	}

	var res []quad
	for k := 0; 6*k < len(strip); k++ {
		v := strip[6*k : 6*k+4]
		q := quad{x0: v[0].X, y0: v[0].Y, x1: v[3].X, y1: v[3].Y, c: v[0].Coverage}
		want := []OutputVertex{
			{q.x0, q.y0, q.c},
			{q.x0, q.y1, q.c},
			{q.x1, q.y0, q.c},
			{q.x1, q.y1, q.c},
		}
		if !slices.Equal(v, want) {
			t.Fatalf("quad %d: vertices %v are not a rectangle", k, v)
		}
		if q.x0 >= q.x1 || q.y0 >= q.y1 {
			t.Fatalf("quad %d: empty rectangle %v", k, q)
		}
		if q.c < 0 || q.c > 1 {
			t.Fatalf("quad %d: coverage %g out of range", k, q.c)
		}
		if j := 6*k + 4; j < len(strip) {
			if strip[j] != strip[j-1] || strip[j+1] != strip[j+2] {
				t.Fatalf("quads %d and %d are not joined by degenerate triangles", k, k+1)
			}
		}
		res = append(res, q)
	}
	return res
}

func TestVertexMerge(t *testing.T) {
	b := newVertexBuilder(0, 100, true, false)
	row := []run{{2, 5, 256}, {7, 9, 100}}
	b.addRows(0, 1, row)
	b.addRows(1, 4, row)
	b.addRows(4, 5, []run{{2, 5, 256}, {7, 9, 101}})
	b.addRows(5, 10, nil)
	strip := b.finish()

	got := stripQuads(t, strip)
	want := []quad{
		{7, 0, 9, 4, 100.0 / 256},
		{2, 0, 5, 5, 1},
		{7, 4, 9, 5, 101.0 / 256},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if len(strip) != 6*3-2 {
		t.Errorf("got %d vertices", len(strip))
	}
}

func TestVertexInsideOutside(t *testing.T) {
	row := []run{{2, 5, 256}, {5, 6, 128}}

	cases := []struct {
		name                    string
		needInside, needOutside bool
		want                    []quad
	}{
		{"inside", true, false, []quad{{2, 0, 5, 1, 1}, {5, 0, 6, 1, 0.5}}},
		{"edges_only", false, false, []quad{{5, 0, 6, 1, 0.5}}},
		{"mask", false, true, []quad{{0, 0, 2, 1, 0}, {5, 0, 6, 1, 0.5}, {6, 0, 10, 1, 0}}},
		{"mask_alpha", true, true, []quad{{0, 0, 2, 1, 0}, {2, 0, 5, 1, 1}, {5, 0, 6, 1, 0.5}, {6, 0, 10, 1, 0}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newVertexBuilder(0, 10, c.needInside, c.needOutside)
			b.addRows(0, 1, row)
			got := stripQuads(t, b.finish())
			if !slices.Equal(got, c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestVertexEmptyRowsOutside(t *testing.T) {
	b := newVertexBuilder(3, 8, true, true)
	b.addRows(0, 50, nil)
	got := stripQuads(t, b.finish())
	want := []quad{{3, 0, 8, 50, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestVertexMergeLimit checks that runs beyond the merge buffer are
// emitted one row at a time.
func TestVertexMergeLimit(t *testing.T) {
	const n = MergeBufferSize + 8
	var row []run
	for i := range n {
		row = append(row, run{2 * i, 2*i + 1, 77})
	}

	b := newVertexBuilder(0, 2*n, true, false)
	b.addRows(0, 1, row)
	b.addRows(1, 2, row)
	quads := stripQuads(t, b.finish())

	if len(quads) != MergeBufferSize+16 {
		t.Fatalf("got %d quads, want %d", len(quads), MergeBufferSize+16)
	}
	var merged, single int
	area := make(map[[2]int]int)
	for _, q := range quads {
		switch q.y1 - q.y0 {
		case 2:
			merged++
		case 1:
			single++
		}
		for y := int(q.y0); y < int(q.y1); y++ {
			for x := int(q.x0); x < int(q.x1); x++ {
				area[[2]int{x, y}]++
			}
		}
	}
	if merged != MergeBufferSize || single != 16 {
		t.Errorf("got %d merged and %d single-row quads", merged, single)
	}
	if len(area) != 2*n {
		t.Errorf("%d pixels painted, want %d", len(area), 2*n)
	}
	for p, cnt := range area {
		if cnt != 1 {
			t.Errorf("pixel %v painted %d times", p, cnt)
		}
	}
}
