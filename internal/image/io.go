package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/pixconv"
	"github.com/gogpu/pixconv/internal/pixel"
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("image: empty image")

// Decode decodes a PNG, JPEG, BMP, TIFF or WebP image from r.
// It returns the decoded image and the codec name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, name, ErrEmptyImage
	}
	return img, name, nil
}

// Load decodes the image file at path.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Resize scales img to width x height with Catmull-Rom resampling.
func Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// FromImage packs img into a new Raster of the given format with pad bytes
// of padding per row.
func FromImage(img image.Image, format pixconv.ByteFormat, pad int) (*Raster, error) {
	b := img.Bounds()
	r, err := NewRaster(b.Dx(), b.Dy(), format, pad)
	if err != nil {
		return nil, err
	}

	src := toNRGBA(img)
	for y := range r.height {
		in := src.Pix[y*src.Stride:]
		for x := range r.width {
			s := in[x*4 : x*4+4 : x*4+4]
			if err := r.SetNRGBA(x, y, s[0], s[1], s[2], s[3]); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// toNRGBA returns img as a zero-origin *image.NRGBA, converting if needed.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}

// ToImage converts m to a Go image. IntARGB yields *image.NRGBA and
// IntARGBPre yields *image.RGBA, so no alpha conversion happens here.
func (m *ARGBImage) ToImage() image.Image {
	rect := image.Rect(0, 0, m.Width, m.Height)

	var pix []uint8
	var stride int
	var out image.Image
	if m.Format.IsPremultiplied() {
		rgba := image.NewRGBA(rect)
		pix, stride, out = rgba.Pix, rgba.Stride, rgba
	} else {
		nrgba := image.NewNRGBA(rect)
		pix, stride, out = nrgba.Pix, nrgba.Stride, nrgba
	}

	for y := range m.Height {
		row := m.Pix[y*m.Stride : y*m.Stride+m.Width]
		dst := pix[y*stride:]
		for x, p := range row {
			a, r, g, b := pixel.Unpack(p)
			dst[x*4], dst[x*4+1], dst[x*4+2], dst[x*4+3] = r, g, b, a
		}
	}
	return out
}

// EncodePNG encodes m as PNG to w.
func (m *ARGBImage) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, m.ToImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes m as a PNG file at path.
func (m *ARGBImage) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := m.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
