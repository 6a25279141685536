package pixconv

// ByteFormat is a byte-addressed pixel encoding used on the source side
// of a conversion.
type ByteFormat uint8

const (
	// ByteRGB is 24-bit RGB stored as R, G, B (3 bytes per pixel).
	ByteRGB ByteFormat = iota

	// ByteBGR is 24-bit RGB stored as B, G, R (3 bytes per pixel).
	// Common for Windows DIBs and many capture devices.
	ByteBGR

	// ByteGray is 8-bit grayscale (1 byte per pixel).
	ByteGray

	// ByteRGBA is 32-bit non-premultiplied RGBA stored as R, G, B, A.
	// This is the layout of image.NRGBA.
	ByteRGBA

	// ByteBGRA is 32-bit non-premultiplied RGBA stored as B, G, R, A.
	ByteBGRA

	// ByteBGRAPre is 32-bit premultiplied RGBA stored as B, G, R, A.
	ByteBGRAPre

	// ByteARGB is 32-bit non-premultiplied RGBA stored as A, R, G, B.
	ByteARGB

	byteFormatCount
)

// ByteFormatInfo contains metadata about a byte pixel format.
type ByteFormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsPremultiplied indicates if color channels are premultiplied by alpha.
	IsPremultiplied bool

	// Name is the display name.
	Name string
}

var byteFormatTable = [byteFormatCount]ByteFormatInfo{
	ByteRGB:     {BytesPerPixel: 3, Name: "ByteRGB"},
	ByteBGR:     {BytesPerPixel: 3, Name: "ByteBGR"},
	ByteGray:    {BytesPerPixel: 1, Name: "ByteGray"},
	ByteRGBA:    {BytesPerPixel: 4, HasAlpha: true, Name: "ByteRGBA"},
	ByteBGRA:    {BytesPerPixel: 4, HasAlpha: true, Name: "ByteBGRA"},
	ByteBGRAPre: {BytesPerPixel: 4, HasAlpha: true, IsPremultiplied: true, Name: "ByteBGRAPre"},
	ByteARGB:    {BytesPerPixel: 4, HasAlpha: true, Name: "ByteARGB"},
}

// Info returns the ByteFormatInfo for this format.
func (f ByteFormat) Info() ByteFormatInfo {
	if f >= byteFormatCount {
		return ByteFormatInfo{}
	}
	return byteFormatTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f ByteFormat) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f ByteFormat) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsPremultiplied returns true if alpha is premultiplied.
func (f ByteFormat) IsPremultiplied() bool {
	return f.Info().IsPremultiplied
}

// IsValid returns true if the format is a valid known format.
func (f ByteFormat) IsValid() bool {
	return f < byteFormatCount
}

// RowBytes returns the minimal number of bytes for a row of the given width.
func (f ByteFormat) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f ByteFormat) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return byteFormatTable[f].Name
}

// IntFormat is a 32-bit-integer-addressed pixel encoding used on the
// destination side of a conversion.
type IntFormat uint8

const (
	// IntARGB is a non-premultiplied pixel packed as 0xAARRGGBB.
	IntARGB IntFormat = iota

	// IntARGBPre is a premultiplied pixel packed as 0xAARRGGBB.
	IntARGBPre

	intFormatCount
)

// IntFormatInfo contains metadata about an integer pixel format.
type IntFormatInfo struct {
	// IntsPerPixel is the number of uint32 elements per pixel.
	IntsPerPixel int

	// IsPremultiplied indicates if color channels are premultiplied by alpha.
	IsPremultiplied bool

	// Name is the display name.
	Name string
}

var intFormatTable = [intFormatCount]IntFormatInfo{
	IntARGB:    {IntsPerPixel: 1, Name: "IntARGB"},
	IntARGBPre: {IntsPerPixel: 1, IsPremultiplied: true, Name: "IntARGBPre"},
}

// Info returns the IntFormatInfo for this format.
func (f IntFormat) Info() IntFormatInfo {
	if f >= intFormatCount {
		return IntFormatInfo{}
	}
	return intFormatTable[f]
}

// IntsPerPixel returns the number of uint32 elements per pixel.
func (f IntFormat) IntsPerPixel() int {
	return f.Info().IntsPerPixel
}

// IsPremultiplied returns true if alpha is premultiplied.
func (f IntFormat) IsPremultiplied() bool {
	return f.Info().IsPremultiplied
}

// IsValid returns true if the format is a valid known format.
func (f IntFormat) IsValid() bool {
	return f < intFormatCount
}

// RowInts returns the minimal number of elements for a row of the given width.
func (f IntFormat) RowInts(width int) int {
	return width * f.IntsPerPixel()
}

// String returns a string representation of the format.
func (f IntFormat) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return intFormatTable[f].Name
}

// ParseByteFormat returns the ByteFormat whose String matches name.
func ParseByteFormat(name string) (ByteFormat, bool) {
	for f := range byteFormatCount {
		if byteFormatTable[f].Name == name {
			return f, true
		}
	}
	return 0, false
}

// ParseIntFormat returns the IntFormat whose String matches name.
func ParseIntFormat(name string) (IntFormat, bool) {
	for f := range intFormatCount {
		if intFormatTable[f].Name == name {
			return f, true
		}
	}
	return 0, false
}
