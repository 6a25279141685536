package pixconv

import (
	"encoding/binary"
	"testing"
)

func TestByteSlice(t *testing.T) {
	b := ByteSlice{1, 2, 3}
	if b.Len() != 3 || b.Get(2) != 3 {
		t.Errorf("ByteSlice Len/Get = %d/%d, want 3/3", b.Len(), b.Get(2))
	}
}

func TestIntSlice(t *testing.T) {
	s := make(IntSlice, 2)
	s.Put(1, 0xCAFEBABE)
	if s.Len() != 2 || s.Get(1) != 0xCAFEBABE || s[1] != 0xCAFEBABE {
		t.Errorf("IntSlice after Put = %v", s)
	}
}

func TestIntView(t *testing.T) {
	tests := []struct {
		name  string
		order binary.ByteOrder
		want  []byte
	}{
		{"little", binary.LittleEndian, []byte{0x44, 0x33, 0x22, 0x11}},
		{"big", binary.BigEndian, []byte{0x11, 0x22, 0x33, 0x44}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]byte, 9)
			v := NewIntView(raw, tt.order)
			if v.Len() != 2 {
				t.Fatalf("Len() = %d, want 2", v.Len())
			}
			v.Put(1, 0x11223344)
			for i, b := range tt.want {
				if raw[4+i] != b {
					t.Errorf("raw[%d] = %#02x, want %#02x", 4+i, raw[4+i], b)
				}
			}
			if got := v.Get(1); got != 0x11223344 {
				t.Errorf("Get(1) = %#08x, want 0x11223344", got)
			}
		})
	}
}

func TestNewIntView_DefaultOrder(t *testing.T) {
	v := NewIntView(make([]byte, 4), nil)
	if v.Order != binary.LittleEndian {
		t.Error("nil order should default to little endian")
	}
}

func TestIntView_BGRAMemoryMatchesARGB(t *testing.T) {
	// An ARGB word stored little endian is B, G, R, A in memory.
	raw := make([]byte, 4)
	c := MustLookup(ByteRGBA, IntARGB)
	c.ConvertToBuffer([]byte{0x10, 0x20, 0x30, 0x40}, 0, 4, NewIntView(raw, binary.LittleEndian), 0, 1, 1, 1)

	want := []byte{0x30, 0x20, 0x10, 0x40}
	for i := range want {
		if raw[i] != want[i] {
			t.Errorf("raw = % x, want % x", raw, want)
			break
		}
	}
}
