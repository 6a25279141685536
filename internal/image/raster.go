// Package image moves pixels between Go images and the raw buffers that
// pixconv converts.
//
// A Raster holds byte pixels in any pixconv.ByteFormat with an arbitrary
// row stride. An ARGBImage holds the packed uint32 result of a conversion.
package image

import (
	"errors"

	"github.com/gogpu/pixconv"
	"github.com/gogpu/pixconv/internal/pixel"
)

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside the raster.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Raster is a byte pixel buffer in a pixconv.ByteFormat.
//
// Rows start stride bytes apart; bytes between the end of a row's pixels
// and the next row are padding and are never read by conversions.
type Raster struct {
	data   []byte
	width  int
	height int
	stride int
	format pixconv.ByteFormat
}

// NewRaster creates a zeroed raster with pad bytes of padding per row.
func NewRaster(width, height int, format pixconv.ByteFormat, pad int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if pad < 0 {
		return nil, ErrInvalidStride
	}

	stride := format.RowBytes(width) + pad
	return &Raster{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw creates a Raster over existing data without copying.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format pixconv.ByteFormat, stride int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	if len(data) < (height-1)*stride+format.RowBytes(width) {
		return nil, ErrDataTooSmall
	}

	return &Raster{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// Stride returns the number of bytes between row starts.
func (r *Raster) Stride() int { return r.stride }

// Format returns the pixel format.
func (r *Raster) Format() pixconv.ByteFormat { return r.format }

// Data returns the raw pixel bytes, padding included.
func (r *Raster) Data() []byte { return r.data }

// PixelOffset returns the byte offset of pixel (x, y), or -1 if the
// coordinates are out of bounds.
func (r *Raster) PixelOffset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return -1
	}
	return y*r.stride + x*r.format.BytesPerPixel()
}

// SetNRGBA stores a non-premultiplied color at (x, y) in the raster's
// format. Gray uses integer Rec. 601 luma weights.
func (r *Raster) SetNRGBA(x, y int, cr, cg, cb, ca uint8) error {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	encode(r.format, r.data[off:], cr, cg, cb, ca)
	return nil
}

// encode writes one non-premultiplied pixel into p in format f.
func encode(f pixconv.ByteFormat, p []byte, cr, cg, cb, ca uint8) {
	switch f {
	case pixconv.ByteRGB:
		p[0], p[1], p[2] = cr, cg, cb
	case pixconv.ByteBGR:
		p[0], p[1], p[2] = cb, cg, cr
	case pixconv.ByteGray:
		p[0] = uint8((int(cr)*299 + int(cg)*587 + int(cb)*114) / 1000)
	case pixconv.ByteRGBA:
		p[0], p[1], p[2], p[3] = cr, cg, cb, ca
	case pixconv.ByteBGRA:
		p[0], p[1], p[2], p[3] = cb, cg, cr, ca
	case pixconv.ByteBGRAPre:
		p[0], p[1], p[2], p[3] = pixel.Premul(cb, ca), pixel.Premul(cg, ca), pixel.Premul(cr, ca), ca
	case pixconv.ByteARGB:
		p[0], p[1], p[2], p[3] = ca, cr, cg, cb
	}
}

// ARGBImage is the packed uint32 destination of a conversion.
type ARGBImage struct {
	// Pix holds one 0xAARRGGBB element per pixel. The pixel at (x, y) is
	// Pix[y*Stride + x].
	Pix []uint32

	Width  int
	Height int

	// Stride is the number of elements between row starts.
	Stride int

	Format pixconv.IntFormat
}

// NewARGBImage creates a zeroed ARGBImage with pad elements of padding
// per row.
func NewARGBImage(width, height int, format pixconv.IntFormat, pad int) (*ARGBImage, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if pad < 0 {
		return nil, ErrInvalidStride
	}

	stride := format.RowInts(width) + pad
	return &ARGBImage{
		Pix:    make([]uint32, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}, nil
}

// At returns the packed pixel at (x, y), or 0 when out of bounds.
func (m *ARGBImage) At(x, y int) uint32 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Stride+x]
}
