package util

import (
	"testing"

	"github.com/solwire/solwire/pkg/internal/testserdes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	systemProgram = "11111111111111111111111111111111"
	tokenProgram  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
)

func TestKeyDecodeString(t *testing.T) {
	u, err := KeyDecodeStringBase58(systemProgram)
	require.NoError(t, err)
	assert.Equal(t, Key{}, u)
	assert.Equal(t, systemProgram, u.String())

	u, err = KeyDecodeStringBase58(tokenProgram)
	require.NoError(t, err)
	assert.Equal(t, tokenProgram, u.String())
	assert.False(t, u.Equals(Key{}))

	_, err = KeyDecodeStringBase58("1111")
	require.Error(t, err)
	_, err = KeyDecodeStringBase58("0OIl")
	require.Error(t, err)
	_, err = KeyDecodeStringBase58("")
	require.Error(t, err)
}

func TestKeyDecodeBytes(t *testing.T) {
	b := make([]byte, KeySize)
	for i := range b {
		b[i] = byte(i)
	}
	u, err := KeyDecodeBytes(b)
	require.NoError(t, err)
	assert.Equal(t, b, u.BytesBE())

	_, err = KeyDecodeBytes(b[1:])
	require.Error(t, err)
	_, err = KeyDecodeBytes(append(b, 0))
	require.Error(t, err)
}

func TestKeyMarshal(t *testing.T) {
	u, err := KeyDecodeStringBase58(tokenProgram)
	require.NoError(t, err)

	testserdes.MarshalUnmarshalJSON(t, &u, new(Key))
	testserdes.MarshalUnmarshalYAML(t, &u, new(Key))

	var v Key
	require.Error(t, v.UnmarshalJSON([]byte(`"abc"`)))
	require.Error(t, v.UnmarshalJSON([]byte(`123`)))
}
