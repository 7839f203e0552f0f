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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Exact overlap model:
//
// The unit pixel square is rotated into the rectangle's local frame, where
// the rectangle is the axis-aligned box [-w/2, w/2] x [-h/2, h/2]. The pixel
// polygon is then clipped against the four half-planes bounding the box
// (Sutherland-Hodgman), and the area of the resulting convex polygon follows
// from the shoelace formula. Rotation preserves area, so the result equals
// the overlap in grid coordinates.

// halfPlane is the set of points with a*x + b*y + c >= 0.
type halfPlane struct {
	a, b, c float64
}

func (h halfPlane) dist(p vec.Vec2) float64 {
	return h.a*p.X + h.b*p.Y + h.c
}

// clipHalfPlane clips the convex polygon src against h, appending the result
// to dst[:0]. Vertices on the boundary are kept. Each clip adds at most one
// vertex to the polygon.
func clipHalfPlane(dst, src []vec.Vec2, h halfPlane) []vec.Vec2 {
	dst = dst[:0]
	n := len(src)
	for i, cur := range src {
		next := src[(i+1)%n]
		dc := h.dist(cur)
		dn := h.dist(next)
		if dc >= 0 {
			dst = append(dst, cur)
		}
		if (dc > 0 && dn < 0) || (dc < 0 && dn > 0) {
			t := dc / (dc - dn)
			dst = append(dst, vec.Vec2{
				X: cur.X + t*(next.X-cur.X),
				Y: cur.Y + t*(next.Y-cur.Y),
			})
		}
	}
	return dst
}

// polygonArea returns the unsigned area of a polygon via the shoelace
// formula. Degenerate polygons with fewer than 3 vertices have area 0.
func polygonArea(ps []vec.Vec2) float64 {
	if len(ps) < 3 {
		return 0
	}
	var sum float64
	for i, cur := range ps {
		next := ps[(i+1)%len(ps)]
		sum += cur.X*next.Y - next.X*cur.Y
	}
	return math.Abs(sum) / 2
}

// clipFraction returns the area of intersection between the unit pixel
// square centred at (cx, cy) and a w x h rectangle centred at the origin,
// rotated by the angle with the given sine and cosine. The coordinates of
// the pixel centre are relative to the rectangle centre.
//
// The polygon never exceeds 8 vertices (4 corners plus one per clip), so the
// two fixed buffers alternate without spilling to the heap.
func clipFraction(cx, cy, w, h, sin, cos float64) float64 {
	var bufA, bufB [8]vec.Vec2

	// rotate the pixel corners into the rectangle's local frame
	poly := bufA[:0]
	for _, d := range pixelCorners {
		x := cx + d.X
		y := cy + d.Y
		poly = append(poly, vec.Vec2{X: cos*x + sin*y, Y: -sin*x + cos*y})
	}

	// clip against x >= -w/2, x <= w/2, y >= -h/2, y <= h/2 in turn
	w2, h2 := w/2, h/2
	poly2 := clipHalfPlane(bufB[:0], poly, halfPlane{a: 1, c: w2})
	poly = clipHalfPlane(bufA[:0], poly2, halfPlane{a: -1, c: w2})
	poly2 = clipHalfPlane(bufB[:0], poly, halfPlane{b: 1, c: h2})
	poly = clipHalfPlane(bufA[:0], poly2, halfPlane{b: -1, c: h2})

	return polygonArea(poly)
}
