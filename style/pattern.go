package style

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/fx"
)

// Pattern is a named tile repeated across a shape.
type Pattern struct {
	Name  string
	Tile  *fx.PixelBuffer
	Scale float64 // factor, 1 is the tile's native size
}

// NewPattern builds a pattern from any image.
func NewPattern(name string, img image.Image, scale float64) (Pattern, error) {
	if img == nil {
		return Pattern{}, fx.InvalidParameter("style.NewPattern", "image", nil)
	}
	tile, err := fx.FromImage(img)
	if err != nil {
		return Pattern{}, fmt.Errorf("style: pattern %q: %w", name, err)
	}
	return Pattern{Name: name, Tile: tile, Scale: scale}, nil
}

// tileIndex maps a coordinate to a tile coordinate with wraparound.
func tileIndex(v int, scale float64, size int) int {
	i := int(math.Floor(float64(v)/scale)) % size
	if i < 0 {
		i += size
	}
	return i
}
