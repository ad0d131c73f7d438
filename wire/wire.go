package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Common errors for wire-format decoding
var (
	// ErrTruncatedInput indicates the buffer ended before a required field
	ErrTruncatedInput = errors.New("truncated input")

	// ErrMalformedOffset indicates a declared offset/length does not fit the buffer
	ErrMalformedOffset = errors.New("malformed offset")
)

// Reader is a cursor over an immutable byte slice. All reads are
// bounds-checked; a failed read leaves the cursor unchanged.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncatedInput, n, r.off, r.Remaining())
	}
	return nil
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

// ReadU16 reads a little-endian 16-bit integer.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

// ReadU32 reads a little-endian 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

// ReadBytes returns a view of the next n bytes. The returned slice aliases
// the reader's buffer; callers that retain it must copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.buf[r.off : r.off+n]
	r.off += n
	return v, nil
}

// Skip advances the cursor over n reserved bytes.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.off += n
	return nil
}

// Writer accumulates wire-format output. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteU16 appends a little-endian 16-bit integer.
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteU32 appends a little-endian 32-bit integer.
func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteBytes appends b verbatim.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteZeros appends n filler bytes.
func (w *Writer) WriteZeros(n int) {
	w.buf = append(w.buf, make([]byte, n)...)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// PadLength returns the number of filler bytes needed so that
// offset+PadLength is a multiple of alignment. The result is always in
// [0, alignment).
func PadLength(offset, alignment int) int {
	rem := offset % alignment
	if rem == 0 {
		return 0
	}
	return alignment - rem
}

// Slice returns buf[off:off+n] after validating that the range lies fully
// within buf. The check happens before any access, so a hostile offset can
// never cause an out-of-bounds read.
func Slice(buf []byte, off, n uint32) ([]byte, error) {
	end := uint64(off) + uint64(n)
	if end > uint64(len(buf)) {
		return nil, fmt.Errorf("%w: range [%d, %d) exceeds buffer length %d",
			ErrMalformedOffset, off, end, len(buf))
	}
	return buf[off:end], nil
}
