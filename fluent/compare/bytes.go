package compare

import "bytes"

// BytesEqual reports whether actual and expected hold the same content.
// A nil slice and an empty slice are equal.
func BytesEqual(actual, expected []byte) bool {
	return bytes.Equal(actual, expected)
}

// BytesContain reports whether expected occurs as a contiguous run inside
// actual. The empty sequence is contained in every sequence.
func BytesContain(actual, expected []byte) bool {
	return bytes.Contains(actual, expected)
}
