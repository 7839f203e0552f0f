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

// Package testcases defines aperture geometries with analytically known
// covered areas. The cases are shared by the unit tests, the genpdf preview
// tool, and the JSON export for the external reference checker.
package testcases

// TestCase defines a single aperture with its analytic covered area.
type TestCase struct {
	Name string    // lowercase a-z, digits and _ only
	Op   Operation // the aperture geometry
	Area float64   // total covered area in pixel units
}

// Operation describes the aperture geometry of a test case.
type Operation interface {
	isOperation()
}

// Rect specifies a rotated rectangle aperture.
type Rect struct {
	X, Y  float64 // centre in grid coordinates
	W, H  float64 // side lengths
	Theta float64 // rotation in degrees
}

func (Rect) isOperation() {}

// Annulus specifies a rectangular annulus aperture. The inner height is
// derived from the outer aspect ratio, hIn = WIn/WOut * HOut.
type Annulus struct {
	X, Y      float64 // centre in grid coordinates
	WIn, WOut float64 // inner and outer width
	HOut      float64 // outer height
	Theta     float64 // rotation in degrees
}

func (Annulus) isOperation() {}
