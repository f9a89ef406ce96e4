package io

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// MaxCompactLen is the biggest value that can be stored in the compact
// length format (it's a 16-bit quantity on the wire).
const MaxCompactLen = 0xFFFF

// maxCompactLenSize is the maximum number of bytes a compact length occupies.
const maxCompactLenSize = 3

// ErrEncodingRange is returned when some value doesn't fit into the field
// that is to hold it.
var ErrEncodingRange = errors.New("value is out of encoding range")

// BinWriter is a convenient wrapper around an io.Writer and err object.
// Used to simplify error handling when writing into an io.Writer
// from a struct with many fields.
type BinWriter struct {
	w   io.Writer
	Err error
	uv  [maxCompactLenSize]byte
}

// NewBinWriterFromIO makes a BinWriter from io.Writer.
func NewBinWriterFromIO(iow io.Writer) *BinWriter {
	return &BinWriter{w: iow}
}

// WriteB writes a byte into the underlying io.Writer.
func (w *BinWriter) WriteB(u8 byte) {
	w.uv[0] = u8
	w.WriteBytes(w.uv[:1])
}

// WriteArray writes a slice arr into w prefixed with its compact length.
func WriteArray[E any, P interface {
	*E
	Encodable
}](w *BinWriter, arr []E) {
	w.WriteCompactLen(len(arr))
	for i := range arr {
		if w.Err != nil {
			return
		}
		P(&arr[i]).EncodeBinary(w)
	}
}

// WriteCompactLen writes a length into the underlying writer using the
// compact (base-128, continuation bit) encoding. Values outside of
// [0, MaxCompactLen] set ErrEncodingRange and nothing is written.
func (w *BinWriter) WriteCompactLen(n int) {
	if w.Err != nil {
		return
	}
	if n < 0 || n > MaxCompactLen {
		w.Err = fmt.Errorf("%w: compact length %d", ErrEncodingRange, n)
		return
	}
	l := PutCompactLen(w.uv[:], n)
	w.WriteBytes(w.uv[:l])
}

// PutCompactLen puts n in the compact length form into the pre-allocated
// buffer and returns the number of bytes used. n must be in
// [0, MaxCompactLen] and data must be at least 3 bytes long.
func PutCompactLen(data []byte, n int) int {
	_ = data[maxCompactLenSize-1]
	var (
		rem = uint(n)
		i   int
	)
	for rem >= 0x80 {
		data[i] = byte(rem&0x7f) | 0x80
		rem >>= 7
		i++
	}
	data[i] = byte(rem)
	return i + 1
}

// EncodeCompactLen returns the compact length encoding of n.
func EncodeCompactLen(n int) ([]byte, error) {
	if n < 0 || n > MaxCompactLen {
		return nil, fmt.Errorf("%w: compact length %d", ErrEncodingRange, n)
	}
	var buf [maxCompactLenSize]byte
	l := PutCompactLen(buf[:], n)
	return buf[:l:l], nil
}

// WriteBytes writes a variable byte into the underlying io.Writer without prefix.
func (w *BinWriter) WriteBytes(b []byte) {
	if w.Err != nil {
		return
	}
	_, w.Err = w.w.Write(b)
}

// WriteVarBytes writes a variable length byte array into the underlying
// io.Writer prefixed with its compact length.
func (w *BinWriter) WriteVarBytes(b []byte) {
	w.WriteCompactLen(len(b))
	w.WriteBytes(b)
}

// SetError sets the writer error unless it's already set.
func (w *BinWriter) SetError(err error) {
	if w.Err == nil {
		w.Err = err
	}
}

// Grow tries to increase the underlying buffer capacity so that at least n bytes
// can be written without reallocation. If the writer is not a buffer, this is a no-op.
func (w *BinWriter) Grow(n int) {
	if b, ok := w.w.(*bytes.Buffer); ok {
		b.Grow(n)
	}
}
