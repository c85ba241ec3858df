package fx

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// PixelBuffer represents a rectangular straight-alpha RGBA8 pixel buffer.
//
// Pixels are stored row-major, four bytes per pixel in R, G, B, A order.
// The byte length always equals Width()*Height()*4.
type PixelBuffer struct {
	width  int
	height int
	data   []uint8
}

// NewPixelBuffer creates a zeroed (transparent black) buffer.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// FromBytes wraps pix as a buffer without copying it.
func FromBytes(width, height int, pix []uint8) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrInvalidDimensions, width, height, width*height*4, len(pix))
	}
	return &PixelBuffer{width: width, height: height, data: pix}, nil
}

// FromImage converts any image to a new buffer. Premultiplied sources are
// converted to straight alpha.
func FromImage(img image.Image) (*PixelBuffer, error) {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidDimensions)
	}
	return &PixelBuffer{width: b.Dx(), height: b.Dy(), data: nrgba.Pix}, nil
}

// newLike allocates a buffer with the same dimensions as p.
func (p *PixelBuffer) newLike() *PixelBuffer {
	return &PixelBuffer{
		width:  p.width,
		height: p.height,
		data:   make([]uint8, len(p.data)),
	}
}

// NewLike returns a transparent buffer with the same dimensions as p.
func (p *PixelBuffer) NewLike() *PixelBuffer {
	return p.newLike()
}

// Width returns the width of the buffer.
func (p *PixelBuffer) Width() int {
	return p.width
}

// Height returns the height of the buffer.
func (p *PixelBuffer) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format, straight alpha).
func (p *PixelBuffer) Data() []uint8 {
	return p.data
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (p *PixelBuffer) PixOffset(x, y int) int {
	return (y*p.width + x) * 4
}

// InBounds reports whether (x, y) addresses a pixel of p.
func (p *PixelBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// SameSize reports whether p and o have identical dimensions.
func (p *PixelBuffer) SameSize(o *PixelBuffer) bool {
	return p.width == o.width && p.height == o.height
}

// NRGBAAt returns the pixel at (x, y). Coordinates must be in bounds.
func (p *PixelBuffer) NRGBAAt(x, y int) color.NRGBA {
	i := p.PixOffset(x, y)
	s := p.data[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// SetNRGBA sets the pixel at (x, y). Coordinates must be in bounds.
func (p *PixelBuffer) SetNRGBA(x, y int, c color.NRGBA) {
	i := p.PixOffset(x, y)
	s := p.data[i : i+4 : i+4]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
	s[3] = c.A
}

// Alpha returns the alpha of pixel (x, y). Coordinates must be in bounds.
func (p *PixelBuffer) Alpha(x, y int) uint8 {
	return p.data[p.PixOffset(x, y)+3]
}

// Clone returns a deep copy of p.
func (p *PixelBuffer) Clone() *PixelBuffer {
	c := p.newLike()
	copy(c.data, p.data)
	return c
}

// Fill sets every pixel to c.
func (p *PixelBuffer) Fill(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Region returns a copy of the part of p covered by r, clipped to the
// buffer bounds. It returns nil when the clipped rectangle is empty.
func (p *PixelBuffer) Region(r image.Rectangle) *PixelBuffer {
	r = r.Intersect(p.Bounds())
	if r.Empty() {
		return nil
	}
	out := &PixelBuffer{
		width:  r.Dx(),
		height: r.Dy(),
		data:   make([]uint8, r.Dx()*r.Dy()*4),
	}
	rowLen := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		src := p.PixOffset(r.Min.X, r.Min.Y+y)
		copy(out.data[y*rowLen:(y+1)*rowLen], p.data[src:src+rowLen])
	}
	return out
}

// CopyFrom writes src into p with its top-left corner at at. Pixels that
// fall outside p are dropped.
func (p *PixelBuffer) CopyFrom(src *PixelBuffer, at image.Point) {
	r := image.Rectangle{Min: at, Max: at.Add(image.Pt(src.width, src.height))}.Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	rowLen := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		d := p.PixOffset(r.Min.X, y)
		s := src.PixOffset(r.Min.X-at.X, y-at.Y)
		copy(p.data[d:d+rowLen], src.data[s:s+rowLen])
	}
}

// ToImage converts the buffer to a new image.NRGBA.
func (p *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *PixelBuffer) At(x, y int) color.Color {
	if !p.InBounds(x, y) {
		return color.NRGBA{}
	}
	return p.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements the draw.Image interface. Out-of-bounds writes are ignored.
func (p *PixelBuffer) Set(x, y int, c color.Color) {
	if !p.InBounds(x, y) {
		return
	}
	p.SetNRGBA(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}
