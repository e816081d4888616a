// Package instant provides ordering assertions for time.Time values.
//
// Values are compared as absolute instants, so the same moment expressed in
// different locations is equal. Diagnostics render values in RFC 3339 form.
package instant

import (
	"time"

	"github.com/LerianStudio/lib-fluent/fluent"
	"github.com/LerianStudio/lib-fluent/fluent/assert"
	"github.com/LerianStudio/lib-fluent/fluent/diag"
	"github.com/LerianStudio/lib-fluent/fluent/temporal"
)

const typeName = "Instant"

// Assert holds a time.Time under test.
type Assert struct {
	inner *temporal.Assert[time.Time]
}

// AssertThat starts an assertion on actual. The zero time is a valid value.
func AssertThat(actual time.Time) *Assert {
	return &Assert{inner: temporal.New(actual, typeName, render)}
}

// Using returns a copy that reports failures through asserter.
func (a *Assert) Using(asserter *assert.Asserter) *Assert {
	return &Assert{inner: a.inner.Using(asserter)}
}

// As returns a copy whose failure messages are prefixed with "[description] ".
func (a *Assert) As(description string) *Assert {
	return &Assert{inner: a.inner.As(description)}
}

// IsAfter verifies actual is strictly after other.
func (a *Assert) IsAfter(other time.Time) error {
	return a.inner.IsAfter(other)
}

// IsAfterString is IsAfter with other in RFC 3339 form.
func (a *Assert) IsAfterString(other string) error {
	return a.parsed(temporal.AssertionIsAfter, other, a.inner.IsAfter)
}

// IsAfterOrEqualTo verifies actual is after or at the same instant as other.
func (a *Assert) IsAfterOrEqualTo(other time.Time) error {
	return a.inner.IsAfterOrEqualTo(other)
}

// IsAfterOrEqualToString is IsAfterOrEqualTo with other in RFC 3339 form.
func (a *Assert) IsAfterOrEqualToString(other string) error {
	return a.parsed(temporal.AssertionIsAfterOrEqualTo, other, a.inner.IsAfterOrEqualTo)
}

// IsBefore verifies actual is strictly before other.
func (a *Assert) IsBefore(other time.Time) error {
	return a.inner.IsBefore(other)
}

// IsBeforeString is IsBefore with other in RFC 3339 form.
func (a *Assert) IsBeforeString(other string) error {
	return a.parsed(temporal.AssertionIsBefore, other, a.inner.IsBefore)
}

// IsBeforeOrEqualTo verifies actual is before or at the same instant as other.
func (a *Assert) IsBeforeOrEqualTo(other time.Time) error {
	return a.inner.IsBeforeOrEqualTo(other)
}

// IsBeforeOrEqualToString is IsBeforeOrEqualTo with other in RFC 3339 form.
func (a *Assert) IsBeforeOrEqualToString(other string) error {
	return a.parsed(temporal.AssertionIsBeforeOrEqualTo, other, a.inner.IsBeforeOrEqualTo)
}

// IsEqualTo verifies actual and other are the same instant.
func (a *Assert) IsEqualTo(other time.Time) error {
	return a.inner.IsEqualTo(other)
}

// IsEqualToString is IsEqualTo with other in RFC 3339 form.
func (a *Assert) IsEqualToString(other string) error {
	return a.parsed(temporal.AssertionIsEqualTo, other, a.inner.IsEqualTo)
}

func (a *Assert) parsed(assertion, text string, check func(time.Time) error) error {
	if text == "" {
		return a.inner.Reject(assertion, fluent.EmptyStringArgument("other", typeName))
	}

	other, err := time.Parse(time.RFC3339Nano, text)
	if err != nil {
		return a.inner.Reject(assertion,
			fluent.NewInvalidArgument("other", "The String representing the Instant to compare actual with could not be parsed").WithCause(err))
	}

	return check(other)
}

func render(t time.Time) any {
	return diag.Raw(t.Format(time.RFC3339Nano))
}
