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

package aperture

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// RectangularAnnulus is a ring-shaped aperture: an outer rotated rectangle
// minus a geometrically similar inner rectangle with the same centre and
// rotation. The inner height is derived from the aspect ratio of the outer
// rectangle, hIn = wIn/wOut * hOut, so the inner rectangle is always
// strictly nested in the outer one.
type RectangularAnnulus struct {
	outer, inner Rectangle
}

// NewRectangularAnnulus returns an annulus centred at (x, y) with inner
// width wIn, outer width wOut, outer height hOut, rotated theta degrees.
// The widths must satisfy 0 < wIn <= wOut, and hOut must be positive.
func NewRectangularAnnulus(x, y, wIn, wOut, hOut, theta float64) (*RectangularAnnulus, error) {
	if wIn <= 0 || wIn > wOut {
		return nil, fmt.Errorf("invalid annulus widths wIn=%g wOut=%g: need 0 < wIn <= wOut", wIn, wOut)
	}
	if hOut <= 0 {
		return nil, fmt.Errorf("invalid annulus height %g: must be positive", hOut)
	}
	hIn := wIn / wOut * hOut
	outer, err := NewRectangle(x, y, wOut, hOut, theta)
	if err != nil {
		return nil, err
	}
	inner, err := NewRectangle(x, y, wIn, hIn, theta)
	if err != nil {
		return nil, err
	}
	return &RectangularAnnulus{outer: *outer, inner: *inner}, nil
}

// Center returns the common centre of both rings in grid coordinates.
func (a *RectangularAnnulus) Center() vec.Vec2 { return a.outer.center }

// InnerWidth returns the width of the inner rectangle.
func (a *RectangularAnnulus) InnerWidth() float64 { return a.inner.w }

// InnerHeight returns the derived height of the inner rectangle.
func (a *RectangularAnnulus) InnerHeight() float64 { return a.inner.h }

// OuterWidth returns the width of the outer rectangle.
func (a *RectangularAnnulus) OuterWidth() float64 { return a.outer.w }

// OuterHeight returns the height of the outer rectangle.
func (a *RectangularAnnulus) OuterHeight() float64 { return a.outer.h }

// Angle returns the rotation in degrees, normalized to [0, 360).
func (a *RectangularAnnulus) Angle() float64 { return a.outer.theta }

// Contains reports whether p lies within the ring: inside the outer
// rectangle but not inside the inner one.
func (a *RectangularAnnulus) Contains(p vec.Vec2) bool {
	return a.outer.Contains(p) && !a.inner.Contains(p)
}

// Extent returns the bounding box of the outer rectangle; the hole cannot
// extend the shape.
func (a *RectangularAnnulus) Extent() rect.Rect { return a.outer.Extent() }

// Bounds returns the integer pixel box of the outer rectangle.
func (a *RectangularAnnulus) Bounds() Bounds { return a.outer.Bounds() }

// Overlap classifies pixel (x, y) against both rings. A pixel is fully
// covered when all four corners are inside the outer rectangle and outside
// the inner one; it is uncovered when all corners miss the outer rectangle
// or when the hole swallows it whole. Everything else is partial.
func (a *RectangularAnnulus) Overlap(x, y int) Overlap {
	no := a.outer.cornersInside(x, y)
	ni := a.inner.cornersInside(x, y)
	switch {
	case no == 0 || ni == 4:
		return OverlapNone
	case no == 4 && ni == 0:
		return OverlapFull
	default:
		return OverlapPartial
	}
}

// PixelFraction returns the exact overlap of pixel (x, y) with the ring,
// outer overlap minus inner overlap. The nesting invariant makes the
// difference non-negative; the guard only absorbs rounding.
func (a *RectangularAnnulus) PixelFraction(x, y int) float64 {
	f := a.outer.PixelFraction(x, y) - a.inner.PixelFraction(x, y)
	if f < 0 {
		f = 0
	}
	return f
}

// Outline returns the ring boundary as two closed subpaths: the outer
// rectangle counter-clockwise and the inner rectangle clockwise, so that
// both the nonzero and the even-odd fill rule paint the ring.
func (a *RectangularAnnulus) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2

		co := a.outer.corners()
		buf[0] = co[0]
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for _, p := range co[1:] {
			buf[0] = p
			if !yield(path.CmdLineTo, buf[:1]) {
				return
			}
		}
		if !yield(path.CmdClose, nil) {
			return
		}

		// inner ring in reverse order
		ci := a.inner.corners()
		buf[0] = ci[3]
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for i := 2; i >= 0; i-- {
			buf[0] = ci[i]
			if !yield(path.CmdLineTo, buf[:1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
