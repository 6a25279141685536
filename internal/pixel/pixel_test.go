package pixel

import "testing"

func TestPack(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b uint8
		want       uint32
	}{
		{"red", 0xFF, 0xFF, 0, 0, 0xFFFF0000},
		{"green", 0xFF, 0, 0xFF, 0, 0xFF00FF00},
		{"blue", 0xFF, 0, 0, 0xFF, 0xFF0000FF},
		{"transparent", 0, 0, 0, 0, 0},
		{"mixed", 0x80, 0x12, 0x34, 0x56, 0x80123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.a, tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Pack() = %#08x, want %#08x", got, tt.want)
			}
			a, r, g, b := Unpack(tt.want)
			if a != tt.a || r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Unpack(%#08x) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.want, a, r, g, b, tt.a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestOpaqueAndGray(t *testing.T) {
	if got := Opaque(0x12, 0x34, 0x56); got != 0xFF123456 {
		t.Errorf("Opaque() = %#08x, want 0xff123456", got)
	}
	if got := Gray(0x7F); got != 0xFF7F7F7F {
		t.Errorf("Gray(0x7f) = %#08x, want 0xff7f7f7f", got)
	}
	if got := Gray(0); got != 0xFF000000 {
		t.Errorf("Gray(0) = %#08x, want 0xff000000", got)
	}
}

func TestPremul(t *testing.T) {
	tests := []struct {
		c, a, want uint8
	}{
		{255, 255, 255},
		{255, 0, 0},
		{255, 128, 128},
		{128, 128, 64},
		{200, 51, 40},
		{0, 200, 0},
	}

	for _, tt := range tests {
		if got := Premul(tt.c, tt.a); got != tt.want {
			t.Errorf("Premul(%d, %d) = %d, want %d", tt.c, tt.a, got, tt.want)
		}
	}
}

func TestUnpremul(t *testing.T) {
	tests := []struct {
		c, a, want uint8
	}{
		{0, 0, 0},
		{100, 0, 0},
		{77, 255, 77},
		{128, 128, 255},
		{64, 128, 128},
		{200, 100, 255}, // clamped
	}

	for _, tt := range tests {
		if got := Unpremul(tt.c, tt.a); got != tt.want {
			t.Errorf("Unpremul(%d, %d) = %d, want %d", tt.c, tt.a, got, tt.want)
		}
	}
}

func TestPremulRoundTrip(t *testing.T) {
	// Round trip is exact for opaque pixels and within one step otherwise
	// for alpha large enough to keep precision.
	for a := 64; a <= 255; a++ {
		for c := 0; c <= 255; c++ {
			p := Premul(uint8(c), uint8(a))
			back := int(Unpremul(p, uint8(a)))
			diff := back - c
			if diff < 0 {
				diff = -diff
			}
			if diff > 2 {
				t.Fatalf("Unpremul(Premul(%d, %d)) = %d, off by %d", c, a, back, diff)
			}
		}
	}
}

func TestPackPremul(t *testing.T) {
	if got := PackPremul(0xFF, 1, 2, 3); got != 0xFF010203 {
		t.Errorf("PackPremul(opaque) = %#08x, want 0xff010203", got)
	}
	if got := PackPremul(0, 10, 20, 30); got != 0 {
		t.Errorf("PackPremul(transparent) = %#08x, want 0", got)
	}
	if got := PackPremul(0x80, 0xFF, 0x80, 0); got != 0x80804000 {
		t.Errorf("PackPremul(half) = %#08x, want 0x80804000", got)
	}
}

func TestPackUnpremul(t *testing.T) {
	if got := PackUnpremul(0xFF, 1, 2, 3); got != 0xFF010203 {
		t.Errorf("PackUnpremul(opaque) = %#08x, want 0xff010203", got)
	}
	if got := PackUnpremul(0, 10, 20, 30); got != 0 {
		t.Errorf("PackUnpremul(transparent) = %#08x, want 0", got)
	}
	if got := PackUnpremul(0x80, 0x80, 0x40, 0); got != 0x80FF8000 {
		t.Errorf("PackUnpremul(half) = %#08x, want 0x80ff8000", got)
	}
}
