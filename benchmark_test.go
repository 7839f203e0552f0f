package aperture

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
)

// BenchmarkMask benchmarks the exact overlap engine on rotated rectangles
// of increasing size.
func BenchmarkMask(b *testing.B) {
	sizes := []int{16, 128, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := float64(size) / 2
			ap, err := NewRectangle(c, c, float64(size)*0.7, float64(size)*0.4, 30)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			for b.Loop() {
				NewMask(ap)
			}
		})
	}
}

// BenchmarkSubpixelMask benchmarks the sampled engine at a moderate
// resolution.
func BenchmarkSubpixelMask(b *testing.B) {
	ap, err := NewRectangle(64, 64, 90, 50, 30)
	if err != nil {
		b.Fatal(err)
	}
	s, err := NewSubpixel(ap, 5)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		NewMask(s)
	}
}

// BenchmarkVectorRect benchmarks x/image/vector rasterising the same
// rotated rectangles, for comparison with BenchmarkMask.
func BenchmarkVectorRect(b *testing.B) {
	sizes := []int{16, 128, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float64(size) / 2
			corners := rotatedCorners(c, c, float64(size)*0.7, float64(size)*0.4, 30)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(corners[0][0], corners[0][1])
				for _, p := range corners[1:] {
					r.LineTo(p[0], p[1])
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// rotatedCorners returns the corners of a rotated rectangle as float32
// pairs for the vector rasterizer.
func rotatedCorners(cx, cy, w, h, theta float64) [4][2]float32 {
	sin, cos := math.Sincos(theta * math.Pi / 180)
	local := [4][2]float64{
		{-w / 2, -h / 2},
		{w / 2, -h / 2},
		{w / 2, h / 2},
		{-w / 2, h / 2},
	}
	var out [4][2]float32
	for i, p := range local {
		out[i] = [2]float32{
			float32(cx + cos*p[0] - sin*p[1]),
			float32(cy + sin*p[0] + cos*p[1]),
		}
	}
	return out
}
