package pixconv

import "github.com/gogpu/pixconv/internal/parallel"

// defaultMinPixels is the region size below which ParallelConverter runs
// inline on the caller.
const defaultMinPixels = 64 * 64

// ParallelConverter runs another converter over disjoint row bands on a
// worker pool. Results are identical to the wrapped converter's.
//
// The buffers passed to ConvertFromBuffer and ConvertToBuffer must allow
// concurrent reads and concurrent writes to disjoint indices. All buffers
// in this package do.
//
// Call Close to stop the workers.
type ParallelConverter struct {
	c         ByteToIntConverter
	pool      *parallel.WorkerPool
	bandRows  int
	minPixels int
}

var _ ByteToIntConverter = (*ParallelConverter)(nil)

// Parallel wraps c with row-parallel execution.
//
// Example:
//
//	pc := pixconv.Parallel(pixconv.MustLookup(pixconv.ByteRGB, pixconv.IntARGB),
//	    pixconv.WithWorkers(4))
//	defer pc.Close()
//	pc.ConvertSlices(src, 0, w*3, dst, 0, w, w, h)
func Parallel(c ByteToIntConverter, opts ...ParallelOption) *ParallelConverter {
	o := defaultParallelOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pc := &ParallelConverter{
		c:         c,
		pool:      parallel.NewWorkerPool(o.workers),
		bandRows:  o.bandRows,
		minPixels: o.minPixels,
	}
	Logger().Debug("pixconv: parallel converter",
		"workers", pc.pool.Workers(), "bandRows", pc.bandRows, "minPixels", pc.minPixels)
	return pc
}

// SrcFormat returns the source pixel format.
func (pc *ParallelConverter) SrcFormat() ByteFormat { return pc.c.SrcFormat() }

// DstFormat returns the destination pixel format.
func (pc *ParallelConverter) DstFormat() IntFormat { return pc.c.DstFormat() }

// SrcBytesPerPixel returns the wrapped converter's source pixel width.
func (pc *ParallelConverter) SrcBytesPerPixel() int {
	if pw, ok := pc.c.(pixelWidths); ok {
		return pw.SrcBytesPerPixel()
	}
	return pc.c.SrcFormat().BytesPerPixel()
}

// DstIntsPerPixel returns the wrapped converter's destination pixel width.
func (pc *ParallelConverter) DstIntsPerPixel() int {
	if pw, ok := pc.c.(pixelWidths); ok {
		return pw.DstIntsPerPixel()
	}
	return pc.c.DstFormat().IntsPerPixel()
}

// Workers returns the number of pool workers.
func (pc *ParallelConverter) Workers() int { return pc.pool.Workers() }

// Close stops the worker pool. Conversions after Close run on the caller.
func (pc *ParallelConverter) Close() { pc.pool.Close() }

// ConvertSlices converts from a byte slice to a uint32 slice.
func (pc *ParallelConverter) ConvertSlices(src []byte, srcOff, srcScanBytes int,
	dst []uint32, dstOff, dstScanInts int,
	w, h int) {
	pc.run(srcOff, srcScanBytes, dstOff, dstScanInts, w, h, func(so, do, rows int) {
		pc.c.ConvertSlices(src, so, srcScanBytes, dst, do, dstScanInts, w, rows)
	})
}

// ConvertFromBuffer converts from a ByteBuffer to a uint32 slice.
func (pc *ParallelConverter) ConvertFromBuffer(src ByteBuffer, srcOff, srcScanBytes int,
	dst []uint32, dstOff, dstScanInts int,
	w, h int) {
	pc.run(srcOff, srcScanBytes, dstOff, dstScanInts, w, h, func(so, do, rows int) {
		pc.c.ConvertFromBuffer(src, so, srcScanBytes, dst, do, dstScanInts, w, rows)
	})
}

// ConvertToBuffer converts from a byte slice to an IntBuffer.
func (pc *ParallelConverter) ConvertToBuffer(src []byte, srcOff, srcScanBytes int,
	dst IntBuffer, dstOff, dstScanInts int,
	w, h int) {
	pc.run(srcOff, srcScanBytes, dstOff, dstScanInts, w, h, func(so, do, rows int) {
		pc.c.ConvertToBuffer(src, so, srcScanBytes, dst, do, dstScanInts, w, rows)
	})
}

// run calls band once per row band with the band's base offsets.
func (pc *ParallelConverter) run(srcOff, srcScan, dstOff, dstScan, w, h int, band func(so, do, rows int)) {
	if w <= 0 || h <= 0 {
		return
	}
	if w*h < pc.minPixels || h == 1 || !pc.pool.IsRunning() {
		band(srcOff, dstOff, h)
		return
	}

	bands := parallel.Bands(h, pc.bandRows, pc.pool.Workers())
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			band(srcOff+b.Y*srcScan, dstOff+b.Y*dstScan, b.Rows)
		}
	}
	pc.pool.ExecuteAll(work)
}
