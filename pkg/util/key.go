package util

import (
	"encoding/json"
	"fmt"

	"github.com/solwire/solwire/pkg/encoding/base58"
)

// KeySize is the size of Key in bytes.
const KeySize = 32

// Key is an account identifier (ed25519 public key or program address).
type Key [KeySize]byte

// KeyDecodeStringBase58 attempts to decode the given Base58 string into a Key.
func KeyDecodeStringBase58(s string) (Key, error) {
	var u Key
	b, err := base58.Decode(s)
	if err != nil {
		return u, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return KeyDecodeBytes(b)
}

// KeyDecodeBytes attempts to decode the given bytes into a Key.
func KeyDecodeBytes(b []byte) (u Key, err error) {
	if len(b) != KeySize {
		return u, fmt.Errorf("expected byte size of %d got %d", KeySize, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// BytesBE returns a byte slice representation of u.
func (u Key) BytesBE() []byte {
	return u[:]
}

// Equals returns true if both Key values are the same.
func (u Key) Equals(other Key) bool {
	return u == other
}

// String implements the Stringer interface, it returns Base58 form of u.
func (u Key) String() string {
	return base58.Encode(u[:])
}

// UnmarshalJSON implements the json unmarshaller interface.
func (u *Key) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	*u, err = KeyDecodeStringBase58(js)
	return err
}

// MarshalJSON implements the json marshaller interface.
func (u Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// MarshalYAML implements the YAML Marshaler interface.
func (u Key) MarshalYAML() (any, error) {
	return u.String(), nil
}

// UnmarshalYAML implements the YAML Unmarshaler interface.
func (u *Key) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	err := unmarshal(&s)
	if err != nil {
		return err
	}
	*u, err = KeyDecodeStringBase58(s)
	return err
}
