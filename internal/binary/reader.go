// Package binary provides bounds-checked views and integer decoding over in-memory tag data.
package binary

import (
	"encoding/binary"

	"github.com/simonhull/id3tags/internal/types"
)

// SafeReader wraps a byte buffer with bounds checking and helpful error messages.
//
// The buffer is borrowed, never modified. Slice returns views into it; callers
// that keep data beyond the parse call must copy.
type SafeReader struct {
	data []byte
	base int64
}

// NewSafeReader creates a new SafeReader over data.
func NewSafeReader(data []byte) *SafeReader {
	return &SafeReader{data: data}
}

// Size returns the number of bytes visible through the reader.
func (sr *SafeReader) Size() int64 {
	return int64(len(sr.data))
}

// Slice returns a view of n bytes starting at off.
func (sr *SafeReader) Slice(off int64, n int, what string) ([]byte, error) {
	if err := sr.check(off, n, what); err != nil {
		return nil, err
	}
	return sr.data[off : off+int64(n) : off+int64(n)], nil
}

// ReadAt copies len(b) bytes at the given offset into b.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if err := sr.check(off, len(b), what); err != nil {
		return err
	}
	copy(b, sr.data[off:])
	return nil
}

// Sub returns a reader restricted to [off, off+n). Offsets reported by the
// returned reader's errors stay absolute.
func (sr *SafeReader) Sub(off int64, n int, what string) (*SafeReader, error) {
	view, err := sr.Slice(off, n, what)
	if err != nil {
		return nil, err
	}
	return &SafeReader{data: view, base: sr.base + off}, nil
}

func (sr *SafeReader) check(off int64, n int, what string) error {
	size := int64(len(sr.data))
	if n < 0 || off < 0 || off+int64(n) > size {
		return &types.OutOfBoundsError{
			What:   what,
			Offset: sr.base + off,
			Length: n,
			Size:   sr.base + size,
		}
	}
	return nil
}

// Read reads a big-endian value of type T from the given offset.
// T must be uint8, uint16, uint32, or uint64.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	var zero T
	buf, err := sr.Slice(off, sizeOf[T](), what)
	if err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	case uint64:
		val = T(binary.BigEndian.Uint64(buf))
	}

	return val, nil
}

func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadValue reads a numeric value and advances the offset.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	val, err := Read[T](r.SafeReader, r.offset, what)
	if err != nil {
		var zero T
		return zero, err
	}
	r.offset += int64(sizeOf[T]())
	return val, nil
}

// Next returns a view of the next n bytes and advances the offset.
func (r *Reader) Next(n int, what string) ([]byte, error) {
	b, err := r.Slice(r.offset, n, what)
	if err != nil {
		return nil, err
	}
	r.offset += int64(n)
	return b, nil
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ChainReader allows chaining multiple reads with deferred error checking.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadValue[T](cr.Reader, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// Bytes reads n bytes as a view, accumulating any error.
func (cr *ChainReader) Bytes(n int, what string) []byte {
	if cr.err != nil {
		return nil
	}

	b, err := cr.Reader.Next(n, what)
	if err != nil {
		cr.err = err
		return nil
	}

	return b
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
