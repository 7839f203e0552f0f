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

var rectCases = []TestCase{
	{
		Name: "axis_aligned",
		Op:   Rect{X: 0, Y: 0, W: 10, H: 4, Theta: 0},
		Area: 40,
	},
	{
		Name: "rot30_offcentre",
		Op:   Rect{X: 3.3, Y: -1.7, W: 5, H: 3, Theta: 30},
		Area: 15,
	},
	{
		Name: "rot45_square",
		Op:   Rect{X: 10.5, Y: 7.25, W: 8, H: 8, Theta: 45},
		Area: 64,
	},
	{
		Name: "rot90",
		Op:   Rect{X: -2, Y: 6, W: 7, H: 2.5, Theta: 90},
		Area: 17.5,
	},
	{
		Name: "long_bar",
		Op:   Rect{X: 0.25, Y: 0.5, W: 12, H: 2, Theta: 10},
		Area: 24,
	},
	{
		Name: "small_offgrid",
		Op:   Rect{X: 0.3, Y: 0.2, W: 2.5, H: 1.6, Theta: 75},
		Area: 4,
	},
	{
		Name: "theta_wrapped",
		Op:   Rect{X: -4.5, Y: -3.5, W: 6, H: 5, Theta: 405},
		Area: 30,
	},
	{
		Name: "zero_width",
		Op:   Rect{X: 1, Y: 1, W: 0, H: 5, Theta: 20},
		Area: 0,
	},
}
