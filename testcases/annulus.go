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

package testcases

// Annulus areas are wOut*hOut - wIn*hIn with hIn = wIn/wOut*hOut.
var annulusCases = []TestCase{
	{
		Name: "rot45",
		Op:   Annulus{X: 0, Y: 0, WIn: 5, WOut: 10, HOut: 8, Theta: 45},
		Area: 60, // 80 - 5*4
	},
	{
		Name: "axis_aligned",
		Op:   Annulus{X: 2, Y: -3, WIn: 2, WOut: 6, HOut: 3, Theta: 0},
		Area: 16, // 18 - 2*1
	},
	{
		Name: "thin_ring",
		Op:   Annulus{X: 0, Y: 0, WIn: 9.5, WOut: 10, HOut: 10, Theta: 30},
		Area: 9.75, // 100 - 9.5*9.5
	},
	{
		Name: "rot120_offcentre",
		Op:   Annulus{X: 12.25, Y: 5.5, WIn: 3, WOut: 7, HOut: 4, Theta: 120},
		Area: 160.0 / 7, // 28 - 3*(12/7)
	},
	{
		Name: "degenerate_full",
		Op:   Annulus{X: -1.5, Y: 2, WIn: 4, WOut: 4, HOut: 6, Theta: 15},
		Area: 0, // wIn == wOut leaves an empty ring
	},
}
