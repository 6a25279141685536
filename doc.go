// Package pixconv copies rectangular pixel regions from byte storage to
// packed 32-bit storage, converting the pixel format on the way.
//
// # Overview
//
// A converter is looked up per format pair:
//
//	c := pixconv.MustLookup(pixconv.ByteRGB, pixconv.IntARGB)
//	c.ConvertSlices(src, 0, w*3, dst, 0, w, w, h)
//
// Every ByteToIntConverter offers three entry points that differ only in
// storage: slice to slice, ByteBuffer to slice, and slice to IntBuffer.
// Given the same data they produce the same result.
//
// # Addressing
//
// The source pixel (x, y) starts at srcOff + y*srcScanBytes + x*bpp and the
// destination pixel at dstOff + y*dstScanInts + x. Scans may exceed the
// row width (padding) and may be negative (bottom-up rows).
//
// # Safety
//
// Converters do no bounds validation. Wrap one with Checked to validate a
// region before any memory is touched.
//
// # Parallelism
//
// Destination pixels never overlap, so rows can be converted concurrently.
// Parallel wraps a converter and splits each region into row bands run on a
// worker pool.
//
// # Formats
//
// Source formats: ByteRGB, ByteBGR, ByteGray, ByteRGBA, ByteBGRA,
// ByteBGRAPre, ByteARGB. Destination formats: IntARGB, IntARGBPre
// (0xAARRGGBB, straight or premultiplied alpha). NewCustom builds a
// converter for any other fixed-width byte format.
package pixconv
