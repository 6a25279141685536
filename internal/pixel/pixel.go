// Package pixel holds the per-pixel packing rules shared by pixconv
// converters.
//
// Every function here operates on a single pixel. Channel values are 8-bit,
// packed integers use the 0xAARRGGBB layout.
package pixel

// Pack assembles a 0xAARRGGBB value from its channels.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Opaque assembles a fully opaque 0xFFRRGGBB value.
func Opaque(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Gray expands a gray level into an opaque 0xFFYYYYYY value.
func Gray(y uint8) uint32 {
	return 0xFF000000 | uint32(y)*0x010101
}

// Unpack splits a 0xAARRGGBB value into its channels.
func Unpack(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Premul scales a channel by alpha with rounding: (c*a + 127) / 255.
func Premul(c, a uint8) uint8 {
	return uint8((uint16(c)*uint16(a) + 127) / 255)
}

// Unpremul reverses Premul. A zero alpha yields zero; results are clamped
// to 255 for inputs where c > a.
func Unpremul(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	if a == 255 {
		return c
	}
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// PackPremul assembles a premultiplied 0xAARRGGBB value from
// non-premultiplied channels.
func PackPremul(a, r, g, b uint8) uint32 {
	switch a {
	case 0xFF:
		return Pack(a, r, g, b)
	case 0:
		return 0
	}
	return Pack(a, Premul(r, a), Premul(g, a), Premul(b, a))
}

// PackUnpremul assembles a non-premultiplied 0xAARRGGBB value from
// premultiplied channels.
func PackUnpremul(a, r, g, b uint8) uint32 {
	switch a {
	case 0xFF:
		return Pack(a, r, g, b)
	case 0:
		return 0
	}
	return Pack(a, Unpremul(r, a), Unpremul(g, a), Unpremul(b, a))
}
