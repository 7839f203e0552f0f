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
	"testing"
)

func TestNewSubpixelErrors(t *testing.T) {
	r, err := NewRectangle(0, 0, 4, 3, 30)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewSubpixel(r, 0); err == nil {
		t.Error("NewSubpixel(r, 0) succeeded, want error")
	}
	if _, err := NewSubpixel(r, -5); err == nil {
		t.Error("NewSubpixel(r, -5) succeeded, want error")
	}
	if _, err := NewSubpixel(r, 1); err != nil {
		t.Errorf("NewSubpixel(r, 1) failed: %v", err)
	}
}

// TestSubpixelDelegates checks that the wrapper changes only the
// partial-pixel computation.
func TestSubpixelDelegates(t *testing.T) {
	r, err := NewRectangle(1.5, -0.5, 6, 2.5, 18)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSubpixel(r, 7)
	if err != nil {
		t.Fatal(err)
	}

	if s.Bounds() != r.Bounds() {
		t.Errorf("Bounds()=%+v, want %+v", s.Bounds(), r.Bounds())
	}
	if s.Center() != r.Center() {
		t.Errorf("Center()=%v, want %v", s.Center(), r.Center())
	}
	b := r.Bounds()
	for y := b.YMin; y <= b.YMax; y++ {
		for x := b.XMin; x <= b.XMax; x++ {
			if s.Overlap(x, y) != r.Overlap(x, y) {
				t.Fatalf("Overlap(%d, %d) differs between wrapper and base", x, y)
			}
		}
	}
}

// TestSubpixelConvergence checks that sampled overlaps approach the exact
// values as the resolution grows.
func TestSubpixelConvergence(t *testing.T) {
	r, err := NewRectangle(0, 0, 4, 3, 30)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSubpixel(r, 1000)
	if err != nil {
		t.Fatal(err)
	}

	b := r.Bounds()
	checked := 0
	for y := b.YMin; y <= b.YMax; y++ {
		for x := b.XMin; x <= b.XMax; x++ {
			if r.Overlap(x, y) != OverlapPartial {
				continue
			}
			exact := r.PixelFraction(x, y)
			sampled := s.PixelFraction(x, y)
			if math.Abs(sampled-exact) > 1e-3 {
				t.Errorf("pixel (%d, %d): sampled=%g, exact=%g", x, y, sampled, exact)
			}
			checked++
		}
	}
	if checked == 0 {
		t.Fatal("no partial pixels found")
	}
}

// TestSubpixelAnnulus checks that inner and outer rectangle share one
// sample grid: the sampled ring fraction stays within [0, 1] and tracks
// the exact value.
func TestSubpixelAnnulus(t *testing.T) {
	a, err := NewRectangularAnnulus(0.5, 0.5, 3, 7, 5, 30)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSubpixel(a, 128)
	if err != nil {
		t.Fatal(err)
	}

	b := a.Bounds()
	for y := b.YMin; y <= b.YMax; y++ {
		for x := b.XMin; x <= b.XMax; x++ {
			f := s.PixelFraction(x, y)
			if f < 0 || f > 1 {
				t.Fatalf("PixelFraction(%d, %d)=%g out of range", x, y, f)
			}
			if a.Overlap(x, y) == OverlapPartial {
				if exact := a.PixelFraction(x, y); math.Abs(f-exact) > 1e-2 {
					t.Errorf("pixel (%d, %d): sampled=%g, exact=%g", x, y, f, exact)
				}
			}
		}
	}
}

// TestSubpixelMaskTotal runs the sampled engine through the classification
// driver and compares against the analytic area.
func TestSubpixelMaskTotal(t *testing.T) {
	r, err := NewRectangle(0, 0, 4, 3, 30)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSubpixel(r, 500)
	if err != nil {
		t.Fatal(err)
	}
	if got := NewMask(s).Total(); math.Abs(got-12) > 0.05 {
		t.Errorf("mask total=%g, want 12 within 0.05", got)
	}
}
