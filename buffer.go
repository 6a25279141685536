package pixconv

import "encoding/binary"

// ByteBuffer is a random-access byte store read by absolute index.
//
// Reads never move a cursor, so a ByteBuffer may be shared by several
// concurrent conversions as long as nothing writes to it.
type ByteBuffer interface {
	// Get returns the byte at absolute index i.
	Get(i int) byte

	// Len returns the number of addressable bytes.
	Len() int
}

// IntBuffer is a random-access uint32 store written by absolute index.
//
// Implementations must allow concurrent Put calls on disjoint indices.
type IntBuffer interface {
	// Get returns the element at absolute index i.
	Get(i int) uint32

	// Put stores v at absolute index i.
	Put(i int, v uint32)

	// Len returns the number of addressable elements.
	Len() int
}

// ByteSlice is a ByteBuffer backed by a byte slice.
type ByteSlice []byte

func (s ByteSlice) Get(i int) byte { return s[i] }
func (s ByteSlice) Len() int       { return len(s) }

// IntSlice is an IntBuffer backed by a uint32 slice.
type IntSlice []uint32

func (s IntSlice) Get(i int) uint32    { return s[i] }
func (s IntSlice) Put(i int, v uint32) { s[i] = v }
func (s IntSlice) Len() int            { return len(s) }

// IntView exposes a byte slice as an IntBuffer of 4-byte elements encoded
// with Order. Element i occupies bytes [4*i, 4*i+4).
//
// This is the shape of pixel memory handed out by GPU readbacks and
// framebuffer devices, where the backing store is bytes but the pixel
// layout is native-endian words.
type IntView struct {
	Bytes []byte
	Order binary.ByteOrder
}

// NewIntView returns an IntView over b. A nil order selects little endian.
func NewIntView(b []byte, order binary.ByteOrder) IntView {
	if order == nil {
		order = binary.LittleEndian
	}
	return IntView{Bytes: b, Order: order}
}

func (v IntView) Get(i int) uint32 {
	return v.Order.Uint32(v.Bytes[i*4 : i*4+4])
}

func (v IntView) Put(i int, p uint32) {
	v.Order.PutUint32(v.Bytes[i*4:i*4+4], p)
}

func (v IntView) Len() int { return len(v.Bytes) / 4 }
