package io

import "io"

// ErrUnexpectedEOF is returned when the data ends prematurely.
var ErrUnexpectedEOF = io.ErrUnexpectedEOF

// Encodable is anything that can be encoded into the binary form.
type Encodable interface {
	EncodeBinary(*BinWriter)
}

// Decodable is anything that can be decoded from the binary form.
type Decodable interface {
	DecodeBinary(*BinReader)
}

// Serializable defines the binary encoding/decoding interface. Errors are
// returned via BinReader/BinWriter Err field. These functions must have safe
// behavior when the passed BinReader/BinWriter with Err is already set. Invocations
// to these functions tend to be nested, with this mechanism only the top-level
// caller should handle an error once and all the other code should just not
// panic while there is an error.
type Serializable interface {
	Encodable
	Decodable
}
