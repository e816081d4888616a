// Package decimals provides numeric ordering assertions for
// github.com/shopspring/decimal values.
//
// Comparison is numeric, so 1.50 and 1.5 are equal. Diagnostics render
// values with decimal.Decimal.String.
package decimals

import (
	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-fluent/fluent"
	"github.com/LerianStudio/lib-fluent/fluent/assert"
	"github.com/LerianStudio/lib-fluent/fluent/compare"
	"github.com/LerianStudio/lib-fluent/fluent/diag"
)

const typeName = "Decimal"

// number adapts decimal.Decimal to compare.Comparable.
type number struct {
	d decimal.Decimal
}

func (n number) Compare(other number) int {
	return n.d.Cmp(other.d)
}

// Assert holds a decimal under test.
type Assert struct {
	actual      number
	asserter    *assert.Asserter
	description string
}

// AssertThat starts an assertion on actual.
func AssertThat(actual decimal.Decimal) *Assert {
	return &Assert{actual: number{d: actual}}
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

// IsGreaterThan verifies actual > other.
func (a *Assert) IsGreaterThan(other decimal.Decimal) error {
	return a.verify("IsGreaterThan", number{d: other}, compare.IsAfter[number], diag.NewShouldBeGreater)
}

// IsGreaterThanString is IsGreaterThan with other in decimal notation.
func (a *Assert) IsGreaterThanString(other string) error {
	return a.parsed("IsGreaterThan", other, a.IsGreaterThan)
}

// IsGreaterThanOrEqualTo verifies actual >= other.
func (a *Assert) IsGreaterThanOrEqualTo(other decimal.Decimal) error {
	return a.verify("IsGreaterThanOrEqualTo", number{d: other}, compare.IsAfterOrEqualTo[number], diag.NewShouldBeGreaterOrEqual)
}

// IsGreaterThanOrEqualToString is IsGreaterThanOrEqualTo with other in decimal notation.
func (a *Assert) IsGreaterThanOrEqualToString(other string) error {
	return a.parsed("IsGreaterThanOrEqualTo", other, a.IsGreaterThanOrEqualTo)
}

// IsLessThan verifies actual < other.
func (a *Assert) IsLessThan(other decimal.Decimal) error {
	return a.verify("IsLessThan", number{d: other}, compare.IsBefore[number], diag.NewShouldBeLess)
}

// IsLessThanString is IsLessThan with other in decimal notation.
func (a *Assert) IsLessThanString(other string) error {
	return a.parsed("IsLessThan", other, a.IsLessThan)
}

// IsLessThanOrEqualTo verifies actual <= other.
func (a *Assert) IsLessThanOrEqualTo(other decimal.Decimal) error {
	return a.verify("IsLessThanOrEqualTo", number{d: other}, compare.IsBeforeOrEqualTo[number], diag.NewShouldBeLessOrEqual)
}

// IsLessThanOrEqualToString is IsLessThanOrEqualTo with other in decimal notation.
func (a *Assert) IsLessThanOrEqualToString(other string) error {
	return a.parsed("IsLessThanOrEqualTo", other, a.IsLessThanOrEqualTo)
}

// IsEqualTo verifies actual and other are numerically equal.
func (a *Assert) IsEqualTo(other decimal.Decimal) error {
	return a.verify("IsEqualTo", number{d: other}, compare.IsEqualTo[number], diag.NewShouldBeEqual)
}

// IsEqualToString is IsEqualTo with other in decimal notation.
func (a *Assert) IsEqualToString(other string) error {
	return a.parsed("IsEqualTo", other, a.IsEqualTo)
}

func (a *Assert) verify(
	assertion string,
	other number,
	predicate func(actual, other number) bool,
	build func(actual, other any) diag.Diagnostic,
) error {
	return a.asserter.Check(a.asserter.Context(), predicate(a.actual, other), assertion, func() diag.Diagnostic {
		return build(diag.Raw(a.actual.d.String()), diag.Raw(other.d.String())).Describe(a.description)
	})
}

func (a *Assert) parsed(assertion, text string, check func(decimal.Decimal) error) error {
	if text == "" {
		return a.asserter.Reject(a.asserter.Context(), assertion, fluent.EmptyStringArgument("other", typeName))
	}

	other, err := decimal.NewFromString(text)
	if err != nil {
		return a.asserter.Reject(a.asserter.Context(), assertion,
			fluent.NewInvalidArgument("other", "The String representing the Decimal to compare actual with could not be parsed").WithCause(err))
	}

	return check(other)
}
