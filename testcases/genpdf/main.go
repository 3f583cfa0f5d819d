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

// Command genpdf draws the triangle strips generated for all test cases
// into PDF files, for visual inspection.  Each triangle is filled with a
// gray level equal to its coverage, on a black background, and the
// triangle outlines are drawn in mid-gray.  If Ghostscript is available,
// the PDF files are also rendered to PNG images.
package main

import (
	"flag"
	"fmt"
	"image"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/aastrip"
	"seehuhn.de/go/aastrip/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

var (
	outDir  = flag.String("o", "testdata/mesh", "output directory")
	withPNG = flag.Bool("png", false, "render PNG images using Ghostscript")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			strip := rasterize(tc)
			if err := generatePDF(tc, strip, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *withPNG {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

// rasterize converts a test case into a triangle strip.
func rasterize(tc testcases.TestCase) []aastrip.OutputVertex {
	b := aastrip.NewPathBuilder()
	if tc.Rule == testcases.NonZero {
		b.SetFillMode(aastrip.Winding)
	}
	if tc.Outside != nil {
		b.SetOutsideBounds(*tc.Outside, tc.NeedInside)
	}
	b.AppendPath(tc.Path, tc.Transform())
	return b.RasterizeToTriStrip(image.Rect(0, 0, tc.Width, tc.Height))
}

func generatePDF(tc testcases.TestCase, strip []aastrip.OutputVertex, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; device coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	var tris [][3]aastrip.OutputVertex
	for i := 2; i < len(strip); i++ {
		a, b, c := strip[i-2], strip[i-1], strip[i]
		area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
		if area != 0 {
			tris = append(tris, [3]aastrip.OutputVertex{a, b, c})
		}
	}

	for _, t := range tris {
		page.SetFillColor(color.DeviceGray(float64(t[2].Coverage)))
		triangle(page, t)
		page.Fill()
	}

	page.SetLineWidth(0.05)
	page.SetStrokeColor(color.DeviceGray(0.5))
	for _, t := range tris {
		triangle(page, t)
		page.Stroke()
	}

	return page.Close()
}

// pathBuilder is the part of the PDF content stream writer used to
// construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func triangle(page pathBuilder, t [3]aastrip.OutputVertex) {
	page.MoveTo(float64(t[0].X), float64(t[0].Y))
	page.LineTo(float64(t[1].X), float64(t[1].Y))
	page.LineTo(float64(t[2].X), float64(t[2].Y))
	page.ClosePath()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
