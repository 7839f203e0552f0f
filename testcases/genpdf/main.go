// seehuhn.de/go/aperture - pixel overlap fractions for aperture photometry
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

// Command genpdf renders every aperture test case to a PDF preview, one
// point per pixel, for visual inspection of the test geometries.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/aperture"
	"seehuhn.de/go/aperture/testcases"
)

const previewDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(previewDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	ap, err := build(tc.Op)
	if err != nil {
		return err
	}
	b := ap.Bounds()

	// Page size in points (1 point = 1 pixel at 72 DPI).
	paper := &pdf.Rectangle{
		URx: float64(b.Width()),
		URy: float64(b.Height()),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, so that the white fill reads as coverage.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(b.Width()), float64(b.Height()))
	page.Fill()

	// Map grid coordinates onto the page: the lower-left pixel edge of the
	// bounding box lands on the page origin.
	page.Transform(matrix.Matrix{1, 0, 0, 1, 0.5 - float64(b.XMin), 0.5 - float64(b.YMin)})

	page.SetFillColor(color.DeviceGray(1))
	for cmd, pts := range ap.Outline() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	// Even-odd handles the annulus hole regardless of ring orientation.
	page.FillEvenOdd()

	return page.Close()
}

func build(op testcases.Operation) (aperture.Aperture, error) {
	switch op := op.(type) {
	case testcases.Rect:
		return aperture.NewRectangle(op.X, op.Y, op.W, op.H, op.Theta)
	case testcases.Annulus:
		return aperture.NewRectangularAnnulus(op.X, op.Y, op.WIn, op.WOut, op.HOut, op.Theta)
	default:
		return nil, fmt.Errorf("unknown operation %T", op)
	}
}
