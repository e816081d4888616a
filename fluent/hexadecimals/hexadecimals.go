// Package hexadecimals renders byte sequences as uppercase hexadecimal text for
// diagnostics, and parses that text back.
package hexadecimals

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

var (
	// ErrMalformedHex is returned when text cannot be parsed back into bytes.
	ErrMalformedHex = errors.New("malformed hexadecimal string")
	// ErrAmbiguousSeparator is returned by HexStringToByteArray for a separator
	// containing hex digits, which cannot be told apart from the bytes.
	ErrAmbiguousSeparator = errors.New("separator contains hexadecimal digits")
)

// ByteToHexString returns the two-character uppercase hex form of b.
func ByteToHexString(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0F]})
}

// ByteArrayToHexString returns the hex form of every byte joined by separator,
// with no trailing separator. An empty or nil slice yields "".
// Output produced with a separator containing hex digits cannot be parsed back.
func ByteArrayToHexString(array []byte, separator string) string {
	if len(array) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.Grow(len(array)*2 + (len(array)-1)*len(separator))

	for i, b := range array {
		if i > 0 {
			sb.WriteString(separator)
		}

		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0F])
	}

	return sb.String()
}

// HexStringToByteArray parses the output of ByteArrayToHexString.
// Digits are accepted in either case; "" yields an empty, non-nil slice.
// A separator containing a hex digit in either case is rejected with
// ErrAmbiguousSeparator.
func HexStringToByteArray(s, separator string) ([]byte, error) {
	if strings.ContainsAny(separator, "0123456789ABCDEFabcdef") {
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousSeparator, separator)
	}

	if s == "" {
		return []byte{}, nil
	}

	joined := s
	if separator != "" {
		parts := strings.Split(s, separator)
		for i, part := range parts {
			if len(part) != 2 {
				return nil, fmt.Errorf("%w: element %d is %q", ErrMalformedHex, i, part)
			}
		}

		joined = strings.Join(parts, "")
	}

	out, err := hex.DecodeString(joined)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHex, err)
	}

	return out, nil
}
