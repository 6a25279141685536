package pixconv

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

var (
	// ErrBufferClosed is returned when a closed MappedBuffer is closed again.
	ErrBufferClosed = errors.New("pixconv: buffer closed")

	// ErrFileTooLarge is returned when a file does not fit the address space.
	ErrFileTooLarge = errors.New("pixconv: file too large to map")
)

// MappedBuffer is a read-only ByteBuffer over the contents of a file.
//
// On unix systems the file is memory-mapped; elsewhere it is read into
// memory. Either way the bytes are addressed absolutely and are safe for
// concurrent reads until Close.
type MappedBuffer struct {
	data  []byte
	unmap func([]byte) error
	f     *os.File
}

// MapFile opens path and exposes its contents as a MappedBuffer.
// The caller must Close the buffer when done.
func MapFile(path string) (*MappedBuffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pixconv: open %s: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("pixconv: stat %s: %w", path, err)
	}

	size, err := mapSize(fi.Size(), math.MaxInt)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("pixconv: map %s: %w", path, err)
	}
	if size == 0 {
		return &MappedBuffer{f: f}, nil
	}

	data, unmap, err := mapFile(f, size)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("pixconv: map %s: %w", path, err)
	}

	Logger().Debug("pixconv: mapped file", "path", path, "bytes", size)
	return &MappedBuffer{data: data, unmap: unmap, f: f}, nil
}

// mapSize converts a file size to a mapping length no larger than limit.
func mapSize(size, limit int64) (int, error) {
	if size < 0 || size > limit {
		return 0, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, size)
	}
	return int(size), nil
}

// Get returns the byte at absolute index i.
func (m *MappedBuffer) Get(i int) byte { return m.data[i] }

// Len returns the mapped size in bytes.
func (m *MappedBuffer) Len() int { return len(m.data) }

// Bytes returns the mapped bytes. The slice is invalid after Close.
func (m *MappedBuffer) Bytes() []byte { return m.data }

// Close releases the mapping and the underlying file.
func (m *MappedBuffer) Close() error {
	if m == nil || m.f == nil {
		return ErrBufferClosed
	}

	var err error
	if m.unmap != nil && m.data != nil {
		err = m.unmap(m.data)
	}
	m.data = nil
	m.unmap = nil

	if closeErr := m.f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	m.f = nil
	return err
}
