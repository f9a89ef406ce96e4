/*
Package base58 implements the Base58 text encoding (Bitcoin alphabet) used for
account keys and blockhashes.
*/
package base58

import (
	"errors"

	"github.com/mr-tron/base58"
)

// ErrEmpty is returned on an attempt to decode an empty string.
var ErrEmpty = errors.New("empty base58 string")

// Encode encodes the given byte slice into a Base58 string.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode decodes the given Base58 string into a byte slice.
func Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	return base58.Decode(s)
}
