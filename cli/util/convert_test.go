package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	res, err := Convert("11111111111111111111111111111111")
	require.NoError(t, err)
	require.Contains(t, res, "Base58 to hex\t"+strings.Repeat("00", 32)+"\n")
	require.Contains(t, res, "Base58 to account key\t11111111111111111111111111111111\n")
	// It's also a valid hex string.
	require.Contains(t, res, "Hex to Base58\t")

	res, err = Convert("0x0102")
	require.NoError(t, err)
	require.Equal(t, "Hex to Base58\t5T\nHex to base64\tAQI=\n", res)

	res, err = Convert("AQI=")
	require.NoError(t, err)
	require.Equal(t, "Base64 to hex\t0102\nBase64 to Base58\t5T\n", res)

	_, err = Convert("0O=!")
	require.Error(t, err)
}
