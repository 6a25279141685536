package pixconv

import (
	"errors"
	"fmt"
)

// ErrUnsupportedConversion is returned by Lookup when no converter exists
// for a format pair.
var ErrUnsupportedConversion = errors.New("pixconv: unsupported conversion")

// ByteToIntConverter copies a rectangular region of pixels from byte
// storage to uint32 storage, converting each pixel on the way.
//
// For every 0 <= x < w, 0 <= y < h the converter reads the source pixel at
//
//	srcOff + y*srcScanBytes + x*srcBytesPerPixel
//
// and writes the converted pixel at
//
//	dstOff + y*dstScanInts + x*dstIntsPerPixel
//
// The per-pixel widths are fixed by the converter's formats. A region with
// w <= 0 or h <= 0 is a no-op. No bounds are validated: a region that does
// not fit its storage panics part way through, leaving the destination
// partially written. Use Checked for validated calls.
//
// The three methods differ only in how each side is stored and produce
// identical results for equivalent data. Implementations keep no
// reference to either buffer after returning.
type ByteToIntConverter interface {
	// SrcFormat returns the source pixel format.
	SrcFormat() ByteFormat

	// DstFormat returns the destination pixel format.
	DstFormat() IntFormat

	// ConvertSlices converts from a byte slice to a uint32 slice.
	ConvertSlices(src []byte, srcOff, srcScanBytes int,
		dst []uint32, dstOff, dstScanInts int,
		w, h int)

	// ConvertFromBuffer converts from a ByteBuffer to a uint32 slice.
	ConvertFromBuffer(src ByteBuffer, srcOff, srcScanBytes int,
		dst []uint32, dstOff, dstScanInts int,
		w, h int)

	// ConvertToBuffer converts from a byte slice to an IntBuffer.
	ConvertToBuffer(src []byte, srcOff, srcScanBytes int,
		dst IntBuffer, dstOff, dstScanInts int,
		w, h int)
}

// RowFunc converts len(dst) consecutive pixels. src holds exactly
// len(dst)*bytesPerPixel bytes.
type RowFunc func(dst []uint32, src []byte)

// Converter is the ByteToIntConverter for one format pair.
// It is immutable and safe for concurrent use.
type Converter struct {
	src ByteFormat
	dst IntFormat
	bpp int
	ipp int
	row RowFunc
}

var _ ByteToIntConverter = (*Converter)(nil)

// Lookup returns the converter from src to dst.
func Lookup(src ByteFormat, dst IntFormat) (*Converter, error) {
	if !src.IsValid() || !dst.IsValid() || rowFuncs[src][dst] == nil {
		Logger().Debug("pixconv: no converter", "src", src, "dst", dst)
		return nil, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, src, dst)
	}
	return &Converter{
		src: src,
		dst: dst,
		bpp: src.BytesPerPixel(),
		ipp: dst.IntsPerPixel(),
		row: rowFuncs[src][dst],
	}, nil
}

// MustLookup is like Lookup but panics if the pair is unsupported.
func MustLookup(src ByteFormat, dst IntFormat) *Converter {
	c, err := Lookup(src, dst)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCustom returns a converter for a pixel format not covered by
// ByteFormat. Each pixel spans bytesPerPixel source bytes and one
// destination element. The formats it reports are invalid.
func NewCustom(bytesPerPixel int, row RowFunc) *Converter {
	if bytesPerPixel <= 0 || bytesPerPixel > maxBytesPerPixel {
		panic(fmt.Sprintf("pixconv: bytes per pixel %d out of range [1,%d]", bytesPerPixel, maxBytesPerPixel))
	}
	if row == nil {
		panic("pixconv: nil RowFunc")
	}
	return &Converter{
		src: byteFormatCount,
		dst: intFormatCount,
		bpp: bytesPerPixel,
		ipp: 1,
		row: row,
	}
}

// maxBytesPerPixel bounds the per-pixel scratch used by buffer variants.
const maxBytesPerPixel = 16

// SrcFormat returns the source pixel format.
func (c *Converter) SrcFormat() ByteFormat { return c.src }

// DstFormat returns the destination pixel format.
func (c *Converter) DstFormat() IntFormat { return c.dst }

// SrcBytesPerPixel returns the source pixel width in bytes.
func (c *Converter) SrcBytesPerPixel() int { return c.bpp }

// DstIntsPerPixel returns the destination pixel width in elements.
func (c *Converter) DstIntsPerPixel() int { return c.ipp }

// ConvertSlices converts from a byte slice to a uint32 slice.
func (c *Converter) ConvertSlices(src []byte, srcOff, srcScanBytes int,
	dst []uint32, dstOff, dstScanInts int,
	w, h int) {
	if w <= 0 || h <= 0 {
		return
	}

	srcRow := w * c.bpp
	dstRow := w * c.ipp
	for y := range h {
		sp := srcOff + y*srcScanBytes
		dp := dstOff + y*dstScanInts
		c.row(dst[dp:dp+dstRow:dp+dstRow], src[sp:sp+srcRow:sp+srcRow])
	}
}

// ConvertFromBuffer converts from a ByteBuffer to a uint32 slice.
func (c *Converter) ConvertFromBuffer(src ByteBuffer, srcOff, srcScanBytes int,
	dst []uint32, dstOff, dstScanInts int,
	w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if bs, ok := src.(ByteSlice); ok {
		c.ConvertSlices(bs, srcOff, srcScanBytes, dst, dstOff, dstScanInts, w, h)
		return
	}
	convertRect(c, src, srcOff, srcScanBytes, IntSlice(dst), dstOff, dstScanInts, w, h)
}

// ConvertToBuffer converts from a byte slice to an IntBuffer.
func (c *Converter) ConvertToBuffer(src []byte, srcOff, srcScanBytes int,
	dst IntBuffer, dstOff, dstScanInts int,
	w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if is, ok := dst.(IntSlice); ok {
		c.ConvertSlices(src, srcOff, srcScanBytes, is, dstOff, dstScanInts, w, h)
		return
	}
	convertRect(c, ByteSlice(src), srcOff, srcScanBytes, dst, dstOff, dstScanInts, w, h)
}

// byteGetter and intPutter are the storage capabilities convertRect needs.
type byteGetter interface {
	Get(i int) byte
}

type intPutter interface {
	Put(i int, v uint32)
}

// convertRect is the storage-independent conversion loop. It gathers one
// pixel at a time into a stack scratch and converts it with the row
// function, so indexed storage never needs to expose a slice.
func convertRect[S byteGetter, D intPutter](c *Converter, src S, srcOff, srcScan int,
	dst D, dstOff, dstScan int, w, h int) {
	var scratch [maxBytesPerPixel]byte
	var out [1]uint32
	px := scratch[:c.bpp]

	for y := range h {
		sp := srcOff + y*srcScan
		dp := dstOff + y*dstScan
		for range w {
			for j := range px {
				px[j] = src.Get(sp + j)
			}
			c.row(out[:], px)
			dst.Put(dp, out[0])
			sp += c.bpp
			dp += c.ipp
		}
	}
}
