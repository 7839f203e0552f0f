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

// Package aperture computes the fractional overlap area between 2D aperture
// shapes and the pixels of a regular grid. This is the geometric core of
// aperture photometry: summing pixel values weighted by the fraction of each
// pixel's area the aperture covers.
//
// Pixel i spans the half-open interval [i-0.5, i+0.5) along each axis, so
// integer coordinates name pixel centres. All apertures are immutable after
// construction and safe for concurrent use.
package aperture

//go:generate go run ./testcases/export

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Overlap classifies how a single pixel relates to an aperture.
type Overlap int

const (
	// OverlapNone means no part of the pixel is covered.
	OverlapNone Overlap = iota

	// OverlapPartial means the pixel straddles the aperture boundary.
	OverlapPartial

	// OverlapFull means the pixel is entirely covered.
	OverlapFull
)

func (o Overlap) String() string {
	switch o {
	case OverlapNone:
		return "none"
	case OverlapPartial:
		return "partial"
	case OverlapFull:
		return "full"
	default:
		return "invalid"
	}
}

// Aperture is a 2D shape overlaid on the pixel grid. Implementations are
// immutable; all methods are pure functions of the constructed geometry.
type Aperture interface {
	// Center returns the centre of the aperture in grid coordinates.
	Center() vec.Vec2

	// Extent returns the float-precision bounding box of the aperture.
	Extent() rect.Rect

	// Bounds returns the integer pixel box guaranteed to contain every
	// pixel with nonzero overlap.
	Bounds() Bounds

	// Contains reports whether the point p lies within the aperture,
	// boundary included.
	Contains(p vec.Vec2) bool

	// Overlap classifies pixel (x, y) as fully covered, uncovered, or
	// boundary-straddling. The classification tests only the four pixel
	// corners; callers must treat OverlapPartial as "compute the exact
	// fraction", which NewMask and Coverage do.
	Overlap(x, y int) Overlap

	// PixelFraction returns the fraction of pixel (x, y)'s area covered
	// by the aperture, in [0, 1] up to rounding.
	PixelFraction(x, y int) float64

	// Outline returns the aperture boundary as closed polygon subpaths.
	Outline() path.Path
}

// Bounds is an inclusive integer pixel-index box.
type Bounds struct {
	XMin, XMax int
	YMin, YMax int
}

// Width returns the number of pixel columns in the box.
func (b Bounds) Width() int { return b.XMax - b.XMin + 1 }

// Height returns the number of pixel rows in the box.
func (b Bounds) Height() int { return b.YMax - b.YMin + 1 }

// Contains reports whether pixel (x, y) lies within the box.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// boundsFromExtent converts a float bounding box to pixel indices. The -0.5
// offset accounts for the pixel-centre convention: pixel i is the leftmost
// pixel whose span [i-0.5, i+0.5) can still intersect the extent.
func boundsFromExtent(e rect.Rect) Bounds {
	return Bounds{
		XMin: int(math.Ceil(e.LLx - 0.5)),
		XMax: int(math.Ceil(e.URx - 0.5)),
		YMin: int(math.Ceil(e.LLy - 0.5)),
		YMax: int(math.Ceil(e.URy - 0.5)),
	}
}

// pixelCorners are the offsets of a unit pixel's corners from its centre,
// in counter-clockwise order.
var pixelCorners = [4]vec.Vec2{
	{X: -0.5, Y: -0.5},
	{X: 0.5, Y: -0.5},
	{X: 0.5, Y: 0.5},
	{X: -0.5, Y: 0.5},
}
