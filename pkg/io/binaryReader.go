package io

import (
	"errors"
	"fmt"
)

var (
	// ErrNonCanonical is returned for compact lengths that use more bytes
	// than needed.
	ErrNonCanonical = errors.New("non-canonical compact length")
	// ErrTrailingData is returned when something is left in the buffer after
	// the decoding.
	ErrTrailingData = errors.New("trailing data")
)

// BinReader is a convenient wrapper around a byte buffer and err object.
// Used to simplify error handling when reading into a struct with many fields.
type BinReader struct {
	buf []byte
	pos int
	Err error
}

// NewBinReaderFromBuf makes a BinReader from byte buffer.
func NewBinReaderFromBuf(b []byte) *BinReader {
	return &BinReader{buf: b}
}

// Len returns the number of unread bytes.
func (r *BinReader) Len() int {
	return len(r.buf) - r.pos
}

// ReadB reads a byte from the underlying buffer.
func (r *BinReader) ReadB() byte {
	if r.Err != nil {
		return 0
	}
	if r.pos >= len(r.buf) {
		r.Err = fmt.Errorf("reading byte at %d: %w", r.pos, ErrUnexpectedEOF)
		return 0
	}
	b := r.buf[r.pos]
	r.pos++
	return b
}

// ReadBytes copies len(buf) bytes from the underlying buffer into buf.
func (r *BinReader) ReadBytes(buf []byte) {
	if r.Err != nil {
		return
	}
	if r.Len() < len(buf) {
		r.Err = fmt.Errorf("reading %d bytes at %d: %w", len(buf), r.pos, ErrUnexpectedEOF)
		return
	}
	r.pos += copy(buf, r.buf[r.pos:])
}

// ReadCompactLen reads a compact-encoded length. Encodings longer than
// three bytes, non-minimal ones and values above MaxCompactLen are
// rejected.
func (r *BinReader) ReadCompactLen() int {
	var n uint
	for i := 0; i < maxCompactLenSize; i++ {
		b := r.ReadB()
		if r.Err != nil {
			return 0
		}
		n |= uint(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			if b == 0 && i > 0 {
				r.Err = ErrNonCanonical
				return 0
			}
			if n > MaxCompactLen {
				r.Err = fmt.Errorf("%w: compact length %d", ErrEncodingRange, n)
				return 0
			}
			return int(n)
		}
	}
	r.Err = fmt.Errorf("%w: compact length is longer than %d bytes", ErrEncodingRange, maxCompactLenSize)
	return 0
}

// ReadVarBytes reads a compact length prefixed byte slice. maxSize limits
// the length allowed (MaxCompactLen if omitted). Empty slices are returned
// as nil.
func (r *BinReader) ReadVarBytes(maxSize ...int) []byte {
	n := r.ReadCompactLen()
	if r.Err != nil {
		return nil
	}
	ms := MaxCompactLen
	if len(maxSize) != 0 {
		ms = maxSize[0]
	}
	if n > ms {
		r.Err = fmt.Errorf("byte-slice is too big (%d)", n)
		return nil
	}
	if n == 0 {
		return nil
	}
	b := make([]byte, n)
	r.ReadBytes(b)
	if r.Err != nil {
		return nil
	}
	return b
}

// ReadArray reads a compact length prefixed array into arr. maxSize limits
// the number of elements allowed (MaxCompactLen if omitted).
func ReadArray[E any, P interface {
	*E
	Decodable
}](r *BinReader, arr *[]E, maxSize ...int) {
	n := r.ReadCompactLen()
	if r.Err != nil {
		return
	}
	ms := MaxCompactLen
	if len(maxSize) != 0 {
		ms = maxSize[0]
	}
	if n > ms {
		r.Err = fmt.Errorf("array is too big (%d)", n)
		return
	}
	res := make([]E, n)
	for i := range res {
		P(&res[i]).DecodeBinary(r)
		if r.Err != nil {
			return
		}
	}
	*arr = res
}

// Finish sets ErrTrailingData if something is left unread.
func (r *BinReader) Finish() {
	if r.Err == nil && r.Len() != 0 {
		r.Err = fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}
}
