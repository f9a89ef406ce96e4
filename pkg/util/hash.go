package util

import (
	"encoding/json"
	"fmt"

	"github.com/solwire/solwire/pkg/encoding/base58"
)

// HashSize is the size of Hash in bytes.
const HashSize = 32

// Hash is a 32 byte long block hash.
type Hash [HashSize]byte

// HashDecodeStringBase58 attempts to decode the given Base58 string into a
// Hash. Anything not decoding to exactly HashSize bytes is an error.
func HashDecodeStringBase58(s string) (Hash, error) {
	var u Hash
	b, err := base58.Decode(s)
	if err != nil {
		return u, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	return HashDecodeBytes(b)
}

// HashDecodeBytes attempts to decode the given bytes into a Hash.
func HashDecodeBytes(b []byte) (u Hash, err error) {
	if len(b) != HashSize {
		return u, fmt.Errorf("expected byte size of %d got %d", HashSize, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// BytesBE returns a byte slice representation of u.
func (u Hash) BytesBE() []byte {
	return u[:]
}

// Equals returns true if both Hash values are the same.
func (u Hash) Equals(other Hash) bool {
	return u == other
}

// String implements the Stringer interface, it returns Base58 form of u.
func (u Hash) String() string {
	return base58.Encode(u[:])
}

// UnmarshalJSON implements the json unmarshaller interface.
func (u *Hash) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	*u, err = HashDecodeStringBase58(js)
	return err
}

// MarshalJSON implements the json marshaller interface.
func (u Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// MarshalYAML implements the YAML Marshaler interface.
func (u Hash) MarshalYAML() (any, error) {
	return u.String(), nil
}

// UnmarshalYAML implements the YAML Unmarshaler interface.
func (u *Hash) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	err := unmarshal(&s)
	if err != nil {
		return err
	}
	*u, err = HashDecodeStringBase58(s)
	return err
}
