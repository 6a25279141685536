// Command pixconv converts images or raw pixel files from a byte pixel
// format to packed 32-bit ARGB and writes the result as PNG.
//
// Usage:
//
//	pixconv -src ByteBGR -dst IntARGBPre -out converted photo.bmp scan.tiff
//	pixconv -raw 640x480 -src ByteRGB frame.rgb
package main

import (
	"context"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/gogpu/pixconv"
	"github.com/gogpu/pixconv/internal/image"
	"github.com/gogpu/pixconv/internal/l10n"
)

// Conversion variants selectable with -variant.
const (
	variantSlices     = "slices"
	variantFromBuffer = "from-buffer"
	variantToBuffer   = "to-buffer"
)

var variants = []string{variantSlices, variantFromBuffer, variantToBuffer}

type config struct {
	src      pixconv.ByteFormat
	dst      pixconv.IntFormat
	variant  string
	pad      int
	parallel bool
	workers  int
	jobs     int
	outDir   string
	resizeW  int
	resizeH  int
	rawW     int
	rawH     int
	lang     language.Tag
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pixconv", flag.ContinueOnError)
	var (
		srcName  = fs.String("src", pixconv.ByteRGB.String(), "source byte format")
		dstName  = fs.String("dst", pixconv.IntARGB.String(), "destination int format")
		variant  = fs.String("variant", variantSlices, "storage variant: "+strings.Join(variants, ", "))
		pad      = fs.Int("pad", 0, "bytes of padding per source row")
		par      = fs.Bool("parallel", false, "convert row bands in parallel")
		workers  = fs.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
		jobs     = fs.Int("jobs", 4, "files converted concurrently")
		outDir   = fs.String("out", ".", "output directory")
		resize   = fs.String("resize", "", "resize decoded images to WIDTHxHEIGHT")
		raw      = fs.String("raw", "", "treat inputs as raw pixels of size WIDTHxHEIGHT")
		langName = fs.String("lang", "en", "message language")
		verbose  = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	pixconv.SetLogger(logger)

	tag, err := language.Parse(*langName)
	if err != nil {
		tag = l10n.Default.Fallback()
	}

	cfg, err := parseConfig(tag, *srcName, *dstName, *variant, *resize, *raw)
	if err != nil {
		return err
	}
	cfg.pad = max(*pad, 0)
	cfg.parallel = *par
	cfg.workers = *workers
	cfg.jobs = max(*jobs, 1)
	cfg.outDir = *outDir

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, l10n.Usage(tag, "pixconv"))
		return errors.New(l10n.NoInput(tag))
	}

	return convertAll(context.Background(), cfg, fs.Args())
}

func parseConfig(tag language.Tag, srcName, dstName, variant, resize, raw string) (*config, error) {
	cfg := &config{variant: variant, lang: tag}

	var ok bool
	if cfg.src, ok = pixconv.ParseByteFormat(srcName); !ok {
		return nil, errors.New(l10n.UnknownSrcFormat(tag, srcName, byteFormatNames()))
	}
	if cfg.dst, ok = pixconv.ParseIntFormat(dstName); !ok {
		return nil, errors.New(l10n.UnknownDstFormat(tag, dstName, intFormatNames()))
	}
	if !validVariant(variant) {
		return nil, errors.New(l10n.UnknownVariant(tag, variant, strings.Join(variants, ", ")))
	}

	var err error
	if resize != "" {
		if cfg.resizeW, cfg.resizeH, err = parseSize(resize); err != nil {
			return nil, errors.New(l10n.InvalidResize(tag, resize))
		}
	}
	if raw != "" {
		if cfg.rawW, cfg.rawH, err = parseSize(raw); err != nil {
			return nil, errors.New(l10n.InvalidResize(tag, raw))
		}
	}
	return cfg, nil
}

// convertAll converts every input, jobs at a time. A failing input is
// reported and does not stop the others.
func convertAll(ctx context.Context, cfg *config, inputs []string) error {
	base, err := pixconv.Lookup(cfg.src, cfg.dst)
	if err != nil {
		return errors.New(l10n.UnsupportedPair(cfg.lang, cfg.src, cfg.dst))
	}

	var conv pixconv.ByteToIntConverter = base
	if cfg.parallel {
		pc := pixconv.Parallel(base, pixconv.WithWorkers(cfg.workers))
		defer pc.Close()
		conv = pc
	}
	checked := pixconv.Checked(conv)

	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		return err
	}

	var done atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for _, in := range inputs {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			out, err := convertFile(cfg, checked, in)
			if err != nil {
				slog.Error(l10n.ConvertFailed(cfg.lang, in, err))
				return nil
			}
			done.Add(1)
			slog.Info(l10n.Converted(cfg.lang, in, out.Width, out.Height, outputPath(cfg, in)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	summary := l10n.Summary(cfg.lang, done.Load(), len(inputs))
	if int(done.Load()) != len(inputs) {
		return errors.New(summary)
	}
	slog.Info(summary)
	return nil
}

func convertFile(cfg *config, c *pixconv.CheckedConverter, path string) (*image.ARGBImage, error) {
	var (
		raster *image.Raster
		buf    pixconv.ByteBuffer
	)
	if cfg.rawW > 0 {
		m, err := pixconv.MapFile(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = m.Close() }()

		stride := cfg.src.RowBytes(cfg.rawW) + cfg.pad
		if raster, err = image.FromRaw(m.Bytes(), cfg.rawW, cfg.rawH, cfg.src, stride); err != nil {
			return nil, err
		}
		buf = m
	} else {
		img, codec, err := image.Load(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("decoded", "path", path, "codec", codec, "bounds", img.Bounds())
		if cfg.resizeW > 0 {
			if img, err = image.Resize(img, cfg.resizeW, cfg.resizeH); err != nil {
				return nil, err
			}
		}
		if raster, err = image.FromImage(img, cfg.src, cfg.pad); err != nil {
			return nil, err
		}
		buf = pixconv.ByteSlice(raster.Data())
	}

	out, err := image.NewARGBImage(raster.Width(), raster.Height(), cfg.dst, 0)
	if err != nil {
		return nil, err
	}
	if err := convert(cfg.variant, c, raster, buf, out); err != nil {
		return nil, err
	}
	if err := out.SavePNG(outputPath(cfg, path)); err != nil {
		return nil, err
	}
	return out, nil
}

// convert runs the conversion through the requested storage variant.
// buf holds the same bytes as r.Data().
func convert(variant string, c *pixconv.CheckedConverter, r *image.Raster, buf pixconv.ByteBuffer, out *image.ARGBImage) error {
	w, h := r.Width(), r.Height()
	switch variant {
	case variantFromBuffer:
		return c.ConvertFromBuffer(buf, 0, r.Stride(), out.Pix, 0, out.Stride, w, h)
	case variantToBuffer:
		view := pixconv.NewIntView(make([]byte, len(out.Pix)*4), binary.NativeEndian)
		if err := c.ConvertToBuffer(r.Data(), 0, r.Stride(), view, 0, out.Stride, w, h); err != nil {
			return err
		}
		for i := range out.Pix {
			out.Pix[i] = view.Get(i)
		}
		return nil
	default:
		return c.ConvertSlices(r.Data(), 0, r.Stride(), out.Pix, 0, out.Stride, w, h)
	}
}

func outputPath(cfg *config, in string) string {
	name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(cfg.outDir, name+".png")
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: missing 'x'", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: non-positive dimension", s)
	}
	return w, h, nil
}

func validVariant(v string) bool {
	for _, name := range variants {
		if v == name {
			return true
		}
	}
	return false
}

func byteFormatNames() string {
	var names []string
	for f := pixconv.ByteRGB; f.IsValid(); f++ {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func intFormatNames() string {
	var names []string
	for f := pixconv.IntARGB; f.IsValid(); f++ {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
