// Package edge estimates distances to the alpha boundary of a shape.
//
// Layer styles use it to find how far a pixel lies from the nearest
// transparent (or fully covered) pixel within a bounded search radius.
package edge

import (
	"math"

	"github.com/gogpu/fx"
)

// Distance returns the Euclidean distance from (x, y) to the nearest pixel
// satisfying the terminal condition, searching a square window of
// -maxRadius..maxRadius in both axes.
//
// With fromTransparent the terminal condition is alpha == 0, otherwise it
// is alpha == 255. If the center pixel already satisfies the condition, or
// no pixel in the window lies closer than maxRadius, maxRadius is returned.
// Neighbors outside the buffer are skipped. The scan costs O(maxRadius²)
// per call.
func Distance(buf *fx.PixelBuffer, x, y, maxRadius int, fromTransparent bool) float64 {
	limit := float64(maxRadius)

	var target uint8
	if !fromTransparent {
		target = 255
	}
	if buf.Alpha(x, y) == target || maxRadius <= 0 {
		return limit
	}

	width, height := buf.Width(), buf.Height()
	data := buf.Data()
	best := limit * limit

	for dy := -maxRadius; dy <= maxRadius; dy++ {
		ny := y + dy
		if ny < 0 || ny >= height {
			continue
		}
		row := ny * width
		for dx := -maxRadius; dx <= maxRadius; dx++ {
			nx := x + dx
			if nx < 0 || nx >= width {
				continue
			}
			if data[(row+nx)*4+3] != target {
				continue
			}
			if d := float64(dx*dx + dy*dy); d < best {
				best = d
			}
		}
	}

	return math.Sqrt(best)
}
