package pixconv

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors reported by CheckedConverter.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("pixconv: invalid dimensions")

	// ErrInvalidOffset is returned when a base offset is negative.
	ErrInvalidOffset = errors.New("pixconv: invalid offset")

	// ErrInvalidStride is returned when destination rows would overlap.
	ErrInvalidStride = errors.New("pixconv: stride too small for width")

	// ErrSourceTooSmall is returned when the region reaches past the source.
	ErrSourceTooSmall = errors.New("pixconv: source buffer too small")

	// ErrDestTooSmall is returned when the region reaches past the destination.
	ErrDestTooSmall = errors.New("pixconv: destination buffer too small")
)

// pixelWidths is implemented by converters that know their per-pixel
// widths without a registered format, such as NewCustom converters.
type pixelWidths interface {
	SrcBytesPerPixel() int
	DstIntsPerPixel() int
}

// CheckedConverter validates every region against its storage before
// delegating to an unchecked ByteToIntConverter. When validation fails the
// destination is left untouched.
type CheckedConverter struct {
	c   ByteToIntConverter
	bpp int
	ipp int
}

// Checked wraps c with bounds validation.
func Checked(c ByteToIntConverter) *CheckedConverter {
	cc := &CheckedConverter{c: c}
	if pw, ok := c.(pixelWidths); ok {
		cc.bpp, cc.ipp = pw.SrcBytesPerPixel(), pw.DstIntsPerPixel()
	} else {
		cc.bpp, cc.ipp = c.SrcFormat().BytesPerPixel(), c.DstFormat().IntsPerPixel()
	}
	return cc
}

// Unchecked returns the wrapped converter.
func (cc *CheckedConverter) Unchecked() ByteToIntConverter { return cc.c }

// ConvertSlices validates the region and converts from a byte slice to a
// uint32 slice.
func (cc *CheckedConverter) ConvertSlices(src []byte, srcOff, srcScanBytes int,
	dst []uint32, dstOff, dstScanInts int,
	w, h int) error {
	if err := cc.validate(len(src), srcOff, srcScanBytes, len(dst), dstOff, dstScanInts, w, h); err != nil {
		return err
	}
	cc.c.ConvertSlices(src, srcOff, srcScanBytes, dst, dstOff, dstScanInts, w, h)
	return nil
}

// ConvertFromBuffer validates the region and converts from a ByteBuffer to
// a uint32 slice.
func (cc *CheckedConverter) ConvertFromBuffer(src ByteBuffer, srcOff, srcScanBytes int,
	dst []uint32, dstOff, dstScanInts int,
	w, h int) error {
	if src == nil {
		return fmt.Errorf("%w: nil source", ErrSourceTooSmall)
	}
	if err := cc.validate(src.Len(), srcOff, srcScanBytes, len(dst), dstOff, dstScanInts, w, h); err != nil {
		return err
	}
	cc.c.ConvertFromBuffer(src, srcOff, srcScanBytes, dst, dstOff, dstScanInts, w, h)
	return nil
}

// ConvertToBuffer validates the region and converts from a byte slice to an
// IntBuffer.
func (cc *CheckedConverter) ConvertToBuffer(src []byte, srcOff, srcScanBytes int,
	dst IntBuffer, dstOff, dstScanInts int,
	w, h int) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination", ErrDestTooSmall)
	}
	if err := cc.validate(len(src), srcOff, srcScanBytes, dst.Len(), dstOff, dstScanInts, w, h); err != nil {
		return err
	}
	cc.c.ConvertToBuffer(src, srcOff, srcScanBytes, dst, dstOff, dstScanInts, w, h)
	return nil
}

func (cc *CheckedConverter) validate(srcLen, srcOff, srcScan, dstLen, dstOff, dstScan, w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if w == 0 || h == 0 {
		return nil
	}
	if cc.bpp <= 0 || cc.ipp <= 0 {
		return fmt.Errorf("%w: unknown pixel widths", ErrUnsupportedConversion)
	}
	if srcOff < 0 || dstOff < 0 {
		return fmt.Errorf("%w: src %d, dst %d", ErrInvalidOffset, srcOff, dstOff)
	}

	if w > srcLen/cc.bpp {
		return fmt.Errorf("%w: %d pixels per row, have %d bytes", ErrSourceTooSmall, w, srcLen)
	}
	if w > dstLen/cc.ipp {
		return fmt.Errorf("%w: %d pixels per row, have %d elements", ErrDestTooSmall, w, dstLen)
	}

	dstRow := w * cc.ipp
	if h > 1 && abs(dstScan) < dstRow {
		return fmt.Errorf("%w: dst scan %d < row %d", ErrInvalidStride, dstScan, dstRow)
	}

	if !fits(srcOff, srcScan, w*cc.bpp, h, srcLen) {
		return fmt.Errorf("%w: %d rows from %d by %d, have %d", ErrSourceTooSmall, h, srcOff, srcScan, srcLen)
	}
	if !fits(dstOff, dstScan, dstRow, h, dstLen) {
		return fmt.Errorf("%w: %d rows from %d by %d, have %d", ErrDestTooSmall, h, dstOff, dstScan, dstLen)
	}
	return nil
}

// fits reports whether h rows of rowLen elements, starting at off and scan
// apart, lie within [0, n). scan may be negative for bottom-up layouts.
// off must be non-negative and rowLen at most n. No intermediate value
// overflows, whatever the stride.
func fits(off, scan, rowLen, h, n int) bool {
	if off > n-rowLen {
		return false
	}
	if h == 1 || scan == 0 {
		return true
	}
	if scan == math.MinInt {
		return false
	}

	// The last row starts (h-1)*|scan| past off in the scan direction.
	room := n - rowLen - off
	if scan < 0 {
		room = off
	}
	return abs(scan) <= room/(h-1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
