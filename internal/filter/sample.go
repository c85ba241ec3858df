package filter

import (
	"image/color"
	"math"

	"github.com/gogpu/fx"
)

// BilinearSample returns the color at fractional coordinates (x, y),
// interpolated from the four surrounding pixels. Each neighbor index is
// clamped to the buffer, so samples just outside an edge replicate it.
// Integer coordinates return that pixel exactly.
func BilinearSample(src *fx.PixelBuffer, x, y float64) color.NRGBA {
	width, height := src.Width(), src.Height()

	fx0 := math.Floor(x)
	fy0 := math.Floor(y)
	tx := x - fx0
	ty := y - fy0

	x0 := clampInt(int(fx0), 0, width-1)
	x1 := clampInt(int(fx0)+1, 0, width-1)
	y0 := clampInt(int(fy0), 0, height-1)
	y1 := clampInt(int(fy0)+1, 0, height-1)

	d := src.Data()
	i00 := (y0*width + x0) * 4
	i10 := (y0*width + x1) * 4
	i01 := (y1*width + x0) * 4
	i11 := (y1*width + x1) * 4

	var out [4]uint8
	for c := 0; c < 4; c++ {
		top := float64(d[i00+c])*(1-tx) + float64(d[i10+c])*tx
		bottom := float64(d[i01+c])*(1-tx) + float64(d[i11+c])*tx
		out[c] = fx.ClampRound(top*(1-ty) + bottom*ty)
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}
}
