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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rectangle is a rotated rectangular aperture.
type Rectangle struct {
	center vec.Vec2
	w, h   float64
	theta  float64 // rotation in degrees, normalized to [0, 360)

	m        matrix.Matrix // local (centred, unrotated) to grid coordinates
	sin, cos float64
}

// NewRectangle returns a rectangle of width w and height h, centred at
// (x, y) and rotated theta degrees counter-clockwise about its centre.
// Both sides must be non-negative.
func NewRectangle(x, y, w, h, theta float64) (*Rectangle, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("invalid rectangle size %gx%g: sides must be non-negative", w, h)
	}
	theta = math.Mod(theta, 360)
	if theta < 0 {
		theta += 360
	}
	sin, cos := math.Sincos(theta * math.Pi / 180)
	return &Rectangle{
		center: vec.Vec2{X: x, Y: y},
		w:      w,
		h:      h,
		theta:  theta,
		m:      matrix.RotateDeg(theta).Translate(x, y),
		sin:    sin,
		cos:    cos,
	}, nil
}

// Center returns the centre of the rectangle in grid coordinates.
func (r *Rectangle) Center() vec.Vec2 { return r.center }

// Width returns the side length along the rectangle's local x axis.
func (r *Rectangle) Width() float64 { return r.w }

// Height returns the side length along the rectangle's local y axis.
func (r *Rectangle) Height() float64 { return r.h }

// Angle returns the rotation in degrees, normalized to [0, 360).
func (r *Rectangle) Angle() float64 { return r.theta }

// Contains reports whether p lies within the rectangle, boundary included.
// The point is rotated into the rectangle's local frame and tested against
// the axis-aligned half-extents.
func (r *Rectangle) Contains(p vec.Vec2) bool {
	dx := p.X - r.center.X
	dy := p.Y - r.center.Y
	xl := r.cos*dx + r.sin*dy
	yl := -r.sin*dx + r.cos*dy
	return math.Abs(xl) <= r.w/2 && math.Abs(yl) <= r.h/2
}

// Extent returns the float-precision bounding box of the rotated rectangle.
func (r *Rectangle) Extent() rect.Rect {
	dx, dy := rotatedHalfExtent(r.w/2, r.h/2, r.sin, r.cos)
	return rect.Rect{
		LLx: r.center.X - dx,
		LLy: r.center.Y - dy,
		URx: r.center.X + dx,
		URy: r.center.Y + dy,
	}
}

// Bounds returns the integer pixel box containing every pixel with nonzero
// overlap.
func (r *Rectangle) Bounds() Bounds {
	return boundsFromExtent(r.Extent())
}

// Overlap classifies pixel (x, y) by testing its four corners.
func (r *Rectangle) Overlap(x, y int) Overlap {
	switch r.cornersInside(x, y) {
	case 4:
		return OverlapFull
	case 0:
		return OverlapNone
	default:
		return OverlapPartial
	}
}

// cornersInside counts how many corners of pixel (x, y) lie within the
// rectangle.
func (r *Rectangle) cornersInside(x, y int) int {
	n := 0
	for _, d := range pixelCorners {
		if r.Contains(vec.Vec2{X: float64(x) + d.X, Y: float64(y) + d.Y}) {
			n++
		}
	}
	return n
}

// PixelFraction returns the exact area of intersection between pixel (x, y)
// and the rectangle, computed by polygon clipping.
func (r *Rectangle) PixelFraction(x, y int) float64 {
	return clipFraction(float64(x)-r.center.X, float64(y)-r.center.Y, r.w, r.h, r.sin, r.cos)
}

// corners returns the grid coordinates of the four corners in
// counter-clockwise order.
func (r *Rectangle) corners() [4]vec.Vec2 {
	w2, h2 := r.w/2, r.h/2
	local := [4]vec.Vec2{
		{X: -w2, Y: -h2},
		{X: w2, Y: -h2},
		{X: w2, Y: h2},
		{X: -w2, Y: h2},
	}
	var out [4]vec.Vec2
	for i, p := range local {
		out[i] = vec.Vec2{
			X: r.m[0]*p.X + r.m[2]*p.Y + r.m[4],
			Y: r.m[1]*p.X + r.m[3]*p.Y + r.m[5],
		}
	}
	return out
}

// Outline returns the rectangle boundary as a single closed subpath,
// counter-clockwise.
func (r *Rectangle) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		c := r.corners()
		buf[0] = c[0]
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for _, p := range c[1:] {
			buf[0] = p
			if !yield(path.CmdLineTo, buf[:1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// rotatedHalfExtent returns the horizontal and vertical half-extents of a
// rectangle with half-sides w2 and h2 rotated by the angle with the given
// sine and cosine. The extreme displacement is attained at one of the four
// corner projections.
func rotatedHalfExtent(w2, h2, sin, cos float64) (dx, dy float64) {
	dx = max(math.Abs(w2*cos-h2*sin), math.Abs(w2*cos+h2*sin))
	dy = max(math.Abs(w2*sin-h2*cos), math.Abs(w2*sin+h2*cos))
	return dx, dy
}
