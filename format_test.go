package pixconv

import "testing"

func TestByteFormat_Info(t *testing.T) {
	tests := []struct {
		format  ByteFormat
		bpp     int
		alpha   bool
		premul  bool
		rowBy10 int
	}{
		{ByteRGB, 3, false, false, 30},
		{ByteBGR, 3, false, false, 30},
		{ByteGray, 1, false, false, 10},
		{ByteRGBA, 4, true, false, 40},
		{ByteBGRA, 4, true, false, 40},
		{ByteBGRAPre, 4, true, true, 40},
		{ByteARGB, 4, true, false, 40},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.alpha)
			}
			if got := tt.format.IsPremultiplied(); got != tt.premul {
				t.Errorf("IsPremultiplied() = %v, want %v", got, tt.premul)
			}
			if got := tt.format.RowBytes(10); got != tt.rowBy10 {
				t.Errorf("RowBytes(10) = %d, want %d", got, tt.rowBy10)
			}
			if !tt.format.IsValid() {
				t.Error("IsValid() = false")
			}
		})
	}
}

func TestByteFormat_Invalid(t *testing.T) {
	f := ByteFormat(200)
	if f.IsValid() {
		t.Error("IsValid() = true for unknown format")
	}
	if f.BytesPerPixel() != 0 {
		t.Errorf("BytesPerPixel() = %d, want 0", f.BytesPerPixel())
	}
	if f.String() != "Unknown" {
		t.Errorf("String() = %q, want Unknown", f.String())
	}
}

func TestIntFormat_Info(t *testing.T) {
	if IntARGB.IntsPerPixel() != 1 || IntARGBPre.IntsPerPixel() != 1 {
		t.Error("IntsPerPixel() != 1")
	}
	if IntARGB.IsPremultiplied() {
		t.Error("IntARGB.IsPremultiplied() = true")
	}
	if !IntARGBPre.IsPremultiplied() {
		t.Error("IntARGBPre.IsPremultiplied() = false")
	}
	if got := IntARGB.RowInts(7); got != 7 {
		t.Errorf("RowInts(7) = %d, want 7", got)
	}
	if IntFormat(9).IsValid() || IntFormat(9).String() != "Unknown" {
		t.Error("IntFormat(9) should be invalid")
	}
}

func TestParseFormats(t *testing.T) {
	for f := range byteFormatCount {
		got, ok := ParseByteFormat(f.String())
		if !ok || got != f {
			t.Errorf("ParseByteFormat(%q) = %v, %v", f.String(), got, ok)
		}
	}
	for f := range intFormatCount {
		got, ok := ParseIntFormat(f.String())
		if !ok || got != f {
			t.Errorf("ParseIntFormat(%q) = %v, %v", f.String(), got, ok)
		}
	}
	if _, ok := ParseByteFormat("YUV420"); ok {
		t.Error("ParseByteFormat(YUV420) ok = true")
	}
	if _, ok := ParseIntFormat(""); ok {
		t.Error("ParseIntFormat(\"\") ok = true")
	}
}
