package bytebuffer

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/LerianStudio/lib-fluent/fluent/compare"
	"github.com/LerianStudio/lib-fluent/fluent/hexadecimals"
)

// ByteBuffer is an immutable byte sequence compared by content.
type ByteBuffer struct {
	data []byte
}

// Wrap copies b into a new ByteBuffer. A nil slice wraps an empty sequence.
func Wrap(b []byte) *ByteBuffer {
	data := make([]byte, len(b))
	copy(data, b)

	return &ByteBuffer{data: data}
}

// WrapString encodes s with enc (UTF-8 when omitted) and wraps the result.
func WrapString(s string, enc ...encoding.Encoding) (*ByteBuffer, error) {
	data, err := Encode(s, enc...)
	if err != nil {
		return nil, err
	}

	return &ByteBuffer{data: data}, nil
}

// MustWrapString is WrapString that panics on an unencodable string.
func MustWrapString(s string, enc ...encoding.Encoding) *ByteBuffer {
	buf, err := WrapString(s, enc...)
	if err != nil {
		panic(err)
	}

	return buf
}

// Encode converts s to bytes with the first non-nil encoding in enc,
// defaulting to UTF-8.
func Encode(s string, enc ...encoding.Encoding) ([]byte, error) {
	selected := encoding.Encoding(unicode.UTF8)

	for _, e := range enc {
		if e != nil {
			selected = e
			break
		}
	}

	out, err := selected.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %q: %w", s, err)
	}

	return out, nil
}

// Bytes returns a copy of the content.
func (b *ByteBuffer) Bytes() []byte {
	if b == nil {
		return nil
	}

	out := make([]byte, len(b.data))
	copy(out, b.data)

	return out
}

// Len returns the number of bytes.
func (b *ByteBuffer) Len() int {
	if b == nil {
		return 0
	}

	return len(b.data)
}

// Equal reports whether b and other hold the same bytes.
func (b *ByteBuffer) Equal(other *ByteBuffer) bool {
	if b == nil || other == nil {
		return b == other
	}

	return compare.BytesEqual(b.data, other.data)
}

// String renders the content as space-separated uppercase hex.
func (b *ByteBuffer) String() string {
	if b == nil {
		return "nil"
	}

	return hexadecimals.ByteArrayToHexString(b.data, " ")
}
