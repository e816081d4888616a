//go:build unit

package hexadecimals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteToHexString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       byte
		expected string
	}{
		{0x00, "00"},
		{0x0A, "0A"},
		{0x74, "74"},
		{0x7F, "7F"},
		{0x80, "80"},
		{0xAB, "AB"},
		{0xFF, "FF"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ByteToHexString(tt.in))
	}
}

func TestByteArrayToHexString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        []byte
		separator string
		expected  string
	}{
		{name: "ascii with space", in: []byte("test"), separator: " ", expected: "74 65 73 74"},
		{name: "single byte has no separator", in: []byte{0xFF}, separator: " ", expected: "FF"},
		{name: "empty separator", in: []byte{0x01, 0xFE}, separator: "", expected: "01FE"},
		{name: "multi-character separator", in: []byte{0x01, 0x02, 0x03}, separator: ", ", expected: "01, 02, 03"},
		{name: "empty input", in: []byte{}, separator: " ", expected: ""},
		{name: "nil input", in: nil, separator: ":", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ByteArrayToHexString(tt.in, tt.separator))
		})
	}
}

func TestHexStringToByteArray(t *testing.T) {
	t.Parallel()

	out, err := HexStringToByteArray("74 65 73 74", " ")
	require.NoError(t, err)
	assert.Equal(t, []byte("test"), out)

	out, err = HexStringToByteArray("01fe", "")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0xFE}, out)

	out, err = HexStringToByteArray("", " ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestHexStringToByteArray_Malformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"7 65", "ZZ", "746", "74  65"} {
		_, err := HexStringToByteArray(in, " ")
		require.ErrorIs(t, err, ErrMalformedHex, in)
	}
}

func TestHexStringToByteArray_RejectsHexDigitSeparator(t *testing.T) {
	t.Parallel()

	// Splitting "0AAA0" on "A" cannot recover 0A and A0.
	encoded := ByteArrayToHexString([]byte{0x0A, 0xA0}, "A")
	require.Equal(t, "0AAA0", encoded)

	for _, sep := range []string{"A", "f", "-1-", "0x"} {
		_, err := HexStringToByteArray(encoded, sep)
		require.ErrorIs(t, err, ErrAmbiguousSeparator, sep)
	}

	out, err := HexStringToByteArray("0A-A0", "-")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0xA0}, out)
}
