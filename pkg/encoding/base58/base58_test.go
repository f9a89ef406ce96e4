package base58

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	testCases := []struct {
		raw []byte
		enc string
	}{
		{[]byte{0}, "1"},
		{[]byte{0, 0, 1}, "112"},
		{[]byte("hello world"), "StV1DL6CwTryKyV"},
		{make([]byte, 32), "11111111111111111111111111111111"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.enc, Encode(tc.raw))
		b, err := Decode(tc.enc)
		require.NoError(t, err)
		require.Equal(t, tc.raw, b)
	}
}

func TestDecodeBad(t *testing.T) {
	_, err := Decode("")
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Decode("0OIl")
	require.Error(t, err)
}
