package pixconv

import (
	"encoding/binary"

	"github.com/gogpu/pixconv/internal/pixel"
)

// rowFuncs holds the conversion rule for every supported format pair.
var rowFuncs = [byteFormatCount][intFormatCount]RowFunc{
	ByteRGB:     {IntARGB: rgbToOpaque, IntARGBPre: rgbToOpaque},
	ByteBGR:     {IntARGB: bgrToOpaque, IntARGBPre: bgrToOpaque},
	ByteGray:    {IntARGB: grayToOpaque, IntARGBPre: grayToOpaque},
	ByteRGBA:    {IntARGB: rgbaToARGB, IntARGBPre: rgbaToARGBPre},
	ByteBGRA:    {IntARGB: bgraCopy, IntARGBPre: bgraToARGBPre},
	ByteBGRAPre: {IntARGB: bgraPreToARGB, IntARGBPre: bgraCopy},
	ByteARGB:    {IntARGB: argbCopy, IntARGBPre: argbToARGBPre},
}

// Opaque sources produce identical values for both alpha modes.

func rgbToOpaque(dst []uint32, src []byte) {
	for i := range dst {
		s := src[i*3 : i*3+3 : i*3+3]
		dst[i] = pixel.Opaque(s[0], s[1], s[2])
	}
}

func bgrToOpaque(dst []uint32, src []byte) {
	for i := range dst {
		s := src[i*3 : i*3+3 : i*3+3]
		dst[i] = pixel.Opaque(s[2], s[1], s[0])
	}
}

func grayToOpaque(dst []uint32, src []byte) {
	for i := range dst {
		dst[i] = pixel.Gray(src[i])
	}
}

func rgbaToARGB(dst []uint32, src []byte) {
	for i := range dst {
		s := src[i*4 : i*4+4 : i*4+4]
		dst[i] = pixel.Pack(s[3], s[0], s[1], s[2])
	}
}

func rgbaToARGBPre(dst []uint32, src []byte) {
	for i := range dst {
		s := src[i*4 : i*4+4 : i*4+4]
		dst[i] = pixel.PackPremul(s[3], s[0], s[1], s[2])
	}
}

// bgraCopy covers B,G,R,A bytes whose alpha mode already matches the
// destination: the bytes are a little-endian 0xAARRGGBB word.
func bgraCopy(dst []uint32, src []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(src[i*4:])
	}
}

func bgraToARGBPre(dst []uint32, src []byte) {
	for i := range dst {
		s := src[i*4 : i*4+4 : i*4+4]
		dst[i] = pixel.PackPremul(s[3], s[2], s[1], s[0])
	}
}

func bgraPreToARGB(dst []uint32, src []byte) {
	for i := range dst {
		s := src[i*4 : i*4+4 : i*4+4]
		dst[i] = pixel.PackUnpremul(s[3], s[2], s[1], s[0])
	}
}

// argbCopy reads A,R,G,B bytes as a big-endian 0xAARRGGBB word.
func argbCopy(dst []uint32, src []byte) {
	for i := range dst {
		dst[i] = binary.BigEndian.Uint32(src[i*4:])
	}
}

func argbToARGBPre(dst []uint32, src []byte) {
	for i := range dst {
		s := src[i*4 : i*4+4 : i*4+4]
		dst[i] = pixel.PackPremul(s[0], s[1], s[2], s[3])
	}
}
