package io

// GetCompactLenSize returns the number of bytes n occupies in the compact
// length encoding. It doesn't check n for the encoding range.
func GetCompactLenSize(n int) int {
	switch {
	case n < 0x80:
		return 1
	case n < 0x4000:
		return 2
	default:
		return 3
	}
}

// GetVarBytesSize returns the size of a compact length prefixed byte slice.
func GetVarBytesSize(b []byte) int {
	return GetCompactLenSize(len(b)) + len(b)
}
