package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/pixconv"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 128})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRun_Variants(t *testing.T) {
	for _, variant := range variants {
		for _, par := range []string{"-parallel=false", "-parallel=true"} {
			t.Run(variant+par, func(t *testing.T) {
				dir := t.TempDir()
				in := filepath.Join(dir, "in.png")
				writePNG(t, in)
				outDir := filepath.Join(dir, "out")

				err := run([]string{"-src", "ByteBGRA", "-dst", "IntARGB", "-variant", variant,
					"-pad", "5", par, "-out", outDir, in})
				if err != nil {
					t.Fatalf("run() error = %v", err)
				}

				got := readPNG(t, filepath.Join(outDir, "in.png"))
				want := []color.NRGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}, {255, 255, 255, 128}}
				for i, w := range want {
					c := color.NRGBAModel.Convert(got.At(i%2, i/2)).(color.NRGBA)
					if c != w {
						t.Errorf("pixel %d = %v, want %v", i, c, w)
					}
				}
			})
		}
	}
}

func TestRun_Raw(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "frame.rgb")
	// 2x2 RGB with one byte of padding per row.
	data := []byte{255, 0, 0, 0, 255, 0, 9, 0, 0, 255, 255, 255, 255, 9}
	if err := os.WriteFile(in, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := run([]string{"-raw", "2x2", "-pad", "1", "-variant", "from-buffer", "-out", dir, in}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := readPNG(t, filepath.Join(dir, "frame.png"))
	r, g, b, _ := got.At(0, 1).RGBA()
	if r != 0 || g != 0 || b != 0xFFFF {
		t.Errorf("pixel (0,1) = %d,%d,%d, want blue", r, g, b)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"noInput", []string{"-out", dir}},
		{"badSrc", []string{"-src", "YUV", filepath.Join(dir, "x.png")}},
		{"badDst", []string{"-dst", "Int565", filepath.Join(dir, "x.png")}},
		{"badVariant", []string{"-variant", "stream", filepath.Join(dir, "x.png")}},
		{"badResize", []string{"-resize", "big", filepath.Join(dir, "x.png")}},
		{"missingFile", []string{"-out", dir, filepath.Join(dir, "missing.png")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args); err == nil {
				t.Error("run() returned nil error")
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"640x480", 640, 480, false},
		{"10X20", 10, 20, false},
		{"640", 0, 0, true},
		{"0x5", 0, 0, true},
		{"ax5", 0, 0, true},
		{"5x-1", 0, 0, true},
	}

	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if w != tt.w || h != tt.h {
			t.Errorf("parseSize(%q) = %d, %d, want %d, %d", tt.in, w, h, tt.w, tt.h)
		}
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig(language.German, "ByteGray", "IntARGBPre", variantToBuffer, "4x3", "")
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.src != pixconv.ByteGray || cfg.dst != pixconv.IntARGBPre {
		t.Errorf("formats = %v, %v", cfg.src, cfg.dst)
	}
	if cfg.resizeW != 4 || cfg.resizeH != 3 {
		t.Errorf("resize = %dx%d, want 4x3", cfg.resizeW, cfg.resizeH)
	}

	_, err = parseConfig(language.German, "Nope", "IntARGB", variantSlices, "", "")
	if err == nil || err.Error() == "" {
		t.Fatal("parseConfig(bad src) returned nil error")
	}
}

func TestFormatNames(t *testing.T) {
	if got := byteFormatNames(); got != "ByteRGB, ByteBGR, ByteGray, ByteRGBA, ByteBGRA, ByteBGRAPre, ByteARGB" {
		t.Errorf("byteFormatNames() = %q", got)
	}
	if got := intFormatNames(); got != "IntARGB, IntARGBPre" {
		t.Errorf("intFormatNames() = %q", got)
	}
}
