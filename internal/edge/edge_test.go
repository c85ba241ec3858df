package edge

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/fx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square returns a w x h transparent buffer with an opaque square
// covering [x0, x1) x [y0, y1).
func square(t *testing.T, w, h, x0, y0, x1, y1 int) *fx.PixelBuffer {
	t.Helper()
	buf, err := fx.NewPixelBuffer(w, h)
	require.NoError(t, err)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			buf.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return buf
}

func TestDistanceFromTransparent(t *testing.T) {
	buf := square(t, 20, 20, 5, 5, 15, 15)

	tests := []struct {
		name string
		x, y int
		want float64
	}{
		{"transparent center returns max", 0, 0, 6},
		{"left edge pixel", 5, 10, 1},
		{"two in from left", 7, 10, 3},
		{"corner pixel", 5, 5, 1},
		{"one in diagonally", 6, 6, 2},
		{"deep inside", 10, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(buf, tt.x, tt.y, 6, true), 1e-9)
		})
	}
}

func TestDistanceNothingFound(t *testing.T) {
	buf := square(t, 20, 20, 0, 0, 20, 20)
	// No transparent pixels exist anywhere; out-of-bounds neighbors are
	// skipped rather than treated as transparent.
	assert.Equal(t, 4.0, Distance(buf, 0, 0, 4, true))
	assert.Equal(t, 4.0, Distance(buf, 10, 10, 4, true))
}

func TestDistanceDiagonal(t *testing.T) {
	buf := square(t, 10, 10, 0, 0, 10, 10)
	buf.SetNRGBA(2, 2, color.NRGBA{})
	assert.InDelta(t, math.Sqrt(8), Distance(buf, 4, 4, 5, true), 1e-9)
}

func TestDistanceFromCoverage(t *testing.T) {
	buf := square(t, 10, 1, 5, 0, 10, 1)

	// Opaque pixels are already terminal.
	assert.Equal(t, 3.0, Distance(buf, 7, 0, 3, false))
	// Transparent pixel two to the left of coverage.
	assert.Equal(t, 2.0, Distance(buf, 3, 0, 3, false))
	assert.Equal(t, 3.0, Distance(buf, 0, 0, 3, false))
}

func TestDistanceZeroRadius(t *testing.T) {
	buf := square(t, 4, 4, 0, 0, 2, 2)
	assert.Equal(t, 0.0, Distance(buf, 1, 1, 0, true))
}
