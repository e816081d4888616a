package temporal

import (
	"github.com/LerianStudio/lib-fluent/fluent"
	"github.com/LerianStudio/lib-fluent/fluent/assert"
	"github.com/LerianStudio/lib-fluent/fluent/compare"
	"github.com/LerianStudio/lib-fluent/fluent/diag"
	"github.com/LerianStudio/lib-fluent/fluent/internal/nilcheck"
)

// Assertion names reported in logs, span events and metric labels.
const (
	AssertionIsAfter           = "IsAfter"
	AssertionIsAfterOrEqualTo  = "IsAfterOrEqualTo"
	AssertionIsBefore          = "IsBefore"
	AssertionIsBeforeOrEqualTo = "IsBeforeOrEqualTo"
	AssertionIsEqualTo         = "IsEqualTo"
)

// Assert holds an ordered value under test.
type Assert[T compare.Comparable[T]] struct {
	actual      T
	typeName    string
	render      func(T) any
	asserter    *assert.Asserter
	description string
}

// New starts an assertion on actual. typeName appears in argument errors
// ("The <typeName> to compare actual with should not be nil"); render converts
// a value to a diagnostic argument and defaults to the value itself.
func New[T compare.Comparable[T]](actual T, typeName string, render func(T) any) *Assert[T] {
	if render == nil {
		render = func(v T) any { return v }
	}

	return &Assert[T]{actual: actual, typeName: typeName, render: render}
}

// Using returns a copy that reports failures through asserter.
func (a *Assert[T]) Using(asserter *assert.Asserter) *Assert[T] {
	clone := *a
	clone.asserter = asserter

	return &clone
}

// As returns a copy whose failure messages are prefixed with "[description] ".
func (a *Assert[T]) As(description string) *Assert[T] {
	clone := *a
	clone.description = description

	return &clone
}

// Actual returns the value under test.
func (a *Assert[T]) Actual() T {
	return a.actual
}

// IsAfter verifies actual is strictly after other.
func (a *Assert[T]) IsAfter(other T) error {
	return a.verify(AssertionIsAfter, other, compare.IsAfter[T], diag.NewShouldBeAfter)
}

// IsAfterOrEqualTo verifies actual is after or equal to other.
func (a *Assert[T]) IsAfterOrEqualTo(other T) error {
	return a.verify(AssertionIsAfterOrEqualTo, other, compare.IsAfterOrEqualTo[T], diag.NewShouldBeAfterOrEqualTo)
}

// IsBefore verifies actual is strictly before other.
func (a *Assert[T]) IsBefore(other T) error {
	return a.verify(AssertionIsBefore, other, compare.IsBefore[T], diag.NewShouldBeBefore)
}

// IsBeforeOrEqualTo verifies actual is before or equal to other.
func (a *Assert[T]) IsBeforeOrEqualTo(other T) error {
	return a.verify(AssertionIsBeforeOrEqualTo, other, compare.IsBeforeOrEqualTo[T], diag.NewShouldBeBeforeOrEqualTo)
}

// IsEqualTo verifies actual and other compare as equal.
func (a *Assert[T]) IsEqualTo(other T) error {
	return a.verify(AssertionIsEqualTo, other, compare.IsEqualTo[T], diag.NewShouldBeEqual)
}

// Reject reports an argument that could not be turned into a T, such as an
// unparsable string, under the given assertion name.
func (a *Assert[T]) Reject(assertion string, err *fluent.InvalidArgumentError) error {
	return a.asserter.Reject(a.asserter.Context(), assertion, err)
}

func (a *Assert[T]) verify(
	assertion string,
	other T,
	predicate func(actual, other T) bool,
	build func(actual, other any) diag.Diagnostic,
) error {
	// Argument first, then actual; see the package doc.
	if nilcheck.IsNil(other) {
		return a.Reject(assertion, fluent.NilArgument("other", a.typeName))
	}

	ctx := a.asserter.Context()

	if nilcheck.IsNil(a.actual) {
		return a.asserter.Fail(ctx, assertion, diag.NewActualIsNil().Describe(a.description))
	}

	return a.asserter.Check(ctx, predicate(a.actual, other), assertion, func() diag.Diagnostic {
		return build(a.render(a.actual), a.render(other)).Describe(a.description)
	})
}
