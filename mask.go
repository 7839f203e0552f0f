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
	"image"
)

// Mask holds the overlap fractions of one aperture over its integer
// bounding box, in row-major order.
type Mask struct {
	Bounds Bounds
	Frac   []float64
}

// NewMask classifies every pixel in the aperture's bounding box and fills
// in overlap fractions. Fully covered pixels get weight 1 and uncovered
// pixels weight 0 without invoking the overlap engine; only boundary pixels
// pay for the exact (or sampled) computation.
func NewMask(ap Aperture) *Mask {
	b := ap.Bounds()
	m := &Mask{
		Bounds: b,
		Frac:   make([]float64, b.Width()*b.Height()),
	}
	i := 0
	for y := b.YMin; y <= b.YMax; y++ {
		for x := b.XMin; x <= b.XMax; x++ {
			m.Frac[i] = pixelWeight(ap, x, y)
			i++
		}
	}
	return m
}

// pixelWeight maps the three-way pixel classification to a weight.
func pixelWeight(ap Aperture, x, y int) float64 {
	switch ap.Overlap(x, y) {
	case OverlapFull:
		return 1
	case OverlapPartial:
		return min(max(ap.PixelFraction(x, y), 0), 1)
	default:
		return 0
	}
}

// At returns the overlap fraction of pixel (x, y). Pixels outside the
// bounding box have fraction 0.
func (m *Mask) At(x, y int) float64 {
	if !m.Bounds.Contains(x, y) {
		return 0
	}
	return m.Frac[(y-m.Bounds.YMin)*m.Bounds.Width()+(x-m.Bounds.XMin)]
}

// Total returns the covered area in pixel units.
func (m *Mask) Total() float64 {
	var sum float64
	for _, f := range m.Frac {
		sum += f
	}
	return sum
}

// Sum returns the weighted sum of data values under the mask. The data is
// row-major with the given dimensions, pixel (0, 0) first. Mask pixels
// outside the data array are ignored.
func (m *Mask) Sum(data []float64, width, height, stride int) float64 {
	var sum float64
	for y := max(m.Bounds.YMin, 0); y <= min(m.Bounds.YMax, height-1); y++ {
		for x := max(m.Bounds.XMin, 0); x <= min(m.Bounds.XMax, width-1); x++ {
			if f := m.At(x, y); f != 0 {
				sum += f * data[y*stride+x]
			}
		}
	}
	return sum
}

// Image converts the mask to an 8-bit alpha image with the bounding box as
// its rectangle, mapping fraction 1 to alpha 255. Intended for visual
// inspection.
func (m *Mask) Image() *image.Alpha {
	img := image.NewAlpha(image.Rect(m.Bounds.XMin, m.Bounds.YMin, m.Bounds.XMax+1, m.Bounds.YMax+1))
	i := 0
	for row := 0; row < m.Bounds.Height(); row++ {
		pix := img.Pix[row*img.Stride:]
		for col := 0; col < m.Bounds.Width(); col++ {
			pix[col] = byte(max(0, min(255, int(m.Frac[i]*256))))
			i++
		}
	}
	return img
}

// Coverage computes overlap fractions row by row and delivers them through
// emit. Rows without covered pixels are skipped and leading and trailing
// zeros are trimmed; the slice passed to emit is only valid for the
// duration of the callback.
func Coverage(ap Aperture, emit func(y, xMin int, frac []float64)) {
	b := ap.Bounds()
	row := make([]float64, b.Width())
	for y := b.YMin; y <= b.YMax; y++ {
		for i := range row {
			row[i] = pixelWeight(ap, b.XMin+i, y)
		}
		if trimmed, offset := trimZeros(row); trimmed != nil {
			emit(y, b.XMin+offset, trimmed)
		}
	}
}

// trimZeros returns the non-zero portion of a row and its starting offset.
// Returns nil, 0 if the row is entirely zero.
func trimZeros(frac []float64) (trimmed []float64, offset int) {
	n := len(frac)
	lo := 0
	for lo < n && frac[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && frac[hi] == 0 {
		hi--
	}
	return frac[lo : hi+1], lo
}
