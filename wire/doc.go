// Package wire implements the low-level byte primitives for the SMB wire
// format: a bounds-checked little-endian cursor reader, a growable writer,
// 4-byte alignment padding and validated buffer slicing.
//
// All multi-byte integers on the wire are little-endian. Readers never read
// past the end of their input; a short buffer yields ErrTruncatedInput and a
// declared offset outside the buffer yields ErrMalformedOffset, in both cases
// before any memory is touched.
package wire
