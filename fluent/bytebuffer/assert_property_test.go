//go:build property

package bytebuffer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestByteBufferAssertionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4321)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	byteSlices := gen.SliceOf(gen.UInt8())

	properties.Property("a buffer equals and contains its own content", prop.ForAll(
		func(s []byte) bool {
			buf := Wrap(s)

			return AssertThat(buf).Equals(buf.Bytes()) == nil &&
				AssertThat(buf).ContainsBuffer(buf) == nil
		},
		byteSlices,
	))

	properties.Property("differing content fails Equals", prop.ForAll(
		func(a, b []byte) bool {
			if bytes.Equal(a, b) {
				return true
			}

			return AssertThat(Wrap(a)).Equals(b) != nil
		},
		byteSlices,
		byteSlices,
	))

	properties.Property("a failed Contains renders the actual content", prop.ForAll(
		func(s string) bool {
			buf := MustWrapString(s)

			err := AssertThat(buf).ContainsString(s + "\x00missing")
			if err == nil {
				return false
			}

			return strings.Contains(err.Error(), buf.String())
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
