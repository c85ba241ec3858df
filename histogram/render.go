package histogram

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Render draws bins as a bar chart of width×height pixels into the top-left
// corner of dst, painting bars in c over the existing content. Bar heights
// are proportional to the counts, or to log(1+count) when logarithmic is
// set. The chart is clipped to dst. Nothing is drawn for a non-positive
// size or all-zero bins.
func Render(dst draw.Image, bins [256]int, c color.Color, width, height int, logarithmic bool) {
	if dst == nil || width <= 0 || height <= 0 {
		return
	}
	origin := dst.Bounds().Min
	r := image.Rect(0, 0, width, height).Add(origin).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	scale := func(n int) float64 {
		if logarithmic {
			return math.Log1p(float64(n))
		}
		return float64(n)
	}
	peak := 0.0
	for _, n := range bins {
		peak = max(peak, scale(n))
	}
	if peak == 0 {
		return
	}

	z := vector.NewRasterizer(width, height)
	barWidth := float32(width) / 256
	h := float32(height)
	for i, n := range bins {
		if n <= 0 {
			continue
		}
		top := h - float32(float64(height)*scale(n)/peak)
		x0 := float32(i) * barWidth
		x1 := x0 + barWidth
		z.MoveTo(x0, h)
		z.LineTo(x0, top)
		z.LineTo(x1, top)
		z.LineTo(x1, h)
		z.ClosePath()
	}

	// dst may be smaller than the chart: rasterize into a chart-sized mask
	// and clip while compositing.
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, mask, r.Min.Sub(origin), draw.Over)
}
