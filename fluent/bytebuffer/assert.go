package bytebuffer

import (
	"golang.org/x/text/encoding"

	"github.com/LerianStudio/lib-fluent/fluent"
	"github.com/LerianStudio/lib-fluent/fluent/assert"
	"github.com/LerianStudio/lib-fluent/fluent/compare"
	"github.com/LerianStudio/lib-fluent/fluent/diag"
)

const typeName = "ByteBuffer"

// Assert holds a ByteBuffer under test. Methods return nil when the
// assertion holds, an *assert.AssertionError when it does not, and a
// *fluent.InvalidArgumentError for a missing argument.
type Assert struct {
	actual      *ByteBuffer
	asserter    *assert.Asserter
	description string
}

// AssertThat starts an assertion on actual.
func AssertThat(actual *ByteBuffer) *Assert {
	return &Assert{actual: actual}
}

// Using returns a copy that reports failures through asserter.
func (a *Assert) Using(asserter *assert.Asserter) *Assert {
	clone := *a
	clone.asserter = asserter

	return &clone
}

// As returns a copy whose failure messages are prefixed with "[description] ".
func (a *Assert) As(description string) *Assert {
	clone := *a
	clone.description = description

	return &clone
}

// Equals verifies the content equals expected.
func (a *Assert) Equals(expected []byte) error {
	if expected == nil {
		return a.reject("Equals", fluent.NilArgument("expected", "byte slice"))
	}

	return a.verify("Equals", func(actual []byte) bool {
		return compare.BytesEqual(actual, expected)
	}, func() diag.Diagnostic {
		return diag.NewContentsShouldBeEqualTo(a.actual, expected)
	})
}

// EqualsString verifies the content equals expected encoded with enc (UTF-8 by default).
func (a *Assert) EqualsString(expected string, enc ...encoding.Encoding) error {
	encoded, err := Encode(expected, enc...)
	if err != nil {
		return a.reject("Equals", fluent.NewInvalidArgument("expected", "The String to compare actual with cannot be encoded").WithCause(err))
	}

	return a.verify("Equals", func(actual []byte) bool {
		return compare.BytesEqual(actual, encoded)
	}, func() diag.Diagnostic {
		return diag.NewContentsShouldBeEqualTo(a.actual, expected)
	})
}

// EqualsBuffer verifies the content equals that of expected.
func (a *Assert) EqualsBuffer(expected *ByteBuffer) error {
	if expected == nil {
		return a.reject("Equals", fluent.NilArgument("expected", typeName))
	}

	return a.verify("Equals", func(actual []byte) bool {
		return compare.BytesEqual(actual, expected.data)
	}, func() diag.Diagnostic {
		return diag.NewContentsShouldBeEqualTo(a.actual, expected)
	})
}

// Contains verifies expected occurs contiguously in the content.
func (a *Assert) Contains(expected []byte) error {
	if expected == nil {
		return a.reject("Contains", fluent.NilArgument("expected", "byte slice"))
	}

	return a.verify("Contains", func(actual []byte) bool {
		return compare.BytesContain(actual, expected)
	}, func() diag.Diagnostic {
		return diag.NewContentsShouldContain(a.actual, expected)
	})
}

// ContainsString verifies expected, encoded with enc (UTF-8 by default),
// occurs contiguously in the content.
func (a *Assert) ContainsString(expected string, enc ...encoding.Encoding) error {
	encoded, err := Encode(expected, enc...)
	if err != nil {
		return a.reject("Contains", fluent.NewInvalidArgument("expected", "The String to compare actual with cannot be encoded").WithCause(err))
	}

	return a.verify("Contains", func(actual []byte) bool {
		return compare.BytesContain(actual, encoded)
	}, func() diag.Diagnostic {
		return diag.NewContentsShouldContain(a.actual, expected)
	})
}

// ContainsBuffer verifies the content of expected occurs contiguously in the content.
func (a *Assert) ContainsBuffer(expected *ByteBuffer) error {
	if expected == nil {
		return a.reject("Contains", fluent.NilArgument("expected", typeName))
	}

	return a.verify("Contains", func(actual []byte) bool {
		return compare.BytesContain(actual, expected.data)
	}, func() diag.Diagnostic {
		return diag.NewContentsShouldContain(a.actual, expected)
	})
}

// HasLength verifies the buffer holds exactly expected bytes.
func (a *Assert) HasLength(expected int) error {
	if expected < 0 {
		return a.reject("HasLength", fluent.NewInvalidArgument("expected", "The expected length should not be negative"))
	}

	return a.verify("HasLength", func(actual []byte) bool {
		return len(actual) == expected
	}, func() diag.Diagnostic {
		return diag.NewShouldHaveLength(a.actual, expected, a.actual.Len())
	})
}

func (a *Assert) verify(assertion string, predicate func(actual []byte) bool, build func() diag.Diagnostic) error {
	ctx := a.asserter.Context()

	if a.actual == nil {
		return a.asserter.Fail(ctx, assertion, diag.NewActualIsNil().Describe(a.description))
	}

	return a.asserter.Check(ctx, predicate(a.actual.data), assertion, func() diag.Diagnostic {
		return build().Describe(a.description)
	})
}

func (a *Assert) reject(assertion string, err *fluent.InvalidArgumentError) error {
	return a.asserter.Reject(a.asserter.Context(), assertion, err)
}
