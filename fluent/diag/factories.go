package diag

import "strconv"

// NewActualIsNil reports that the value under test is nil.
func NewActualIsNil() Diagnostic {
	return newDiagnostic(ActualIsNil)
}

// NewShouldHaveLength reports that subject has length actual instead of expected.
func NewShouldHaveLength(subject any, expected, actual int) Diagnostic {
	return newDiagnostic(ShouldHaveLength, subject, Raw(strconv.Itoa(expected)), Raw(strconv.Itoa(actual)))
}

// NewContentsShouldBeEqualTo reports that the contents of actual differ from expected.
func NewContentsShouldBeEqualTo(actual, expected any) Diagnostic {
	return newDiagnostic(ContentsShouldBeEqualTo, actual, expected)
}

// NewContentsShouldContain reports that the contents of actual do not contain expected.
func NewContentsShouldContain(actual, expected any) Diagnostic {
	return newDiagnostic(ContentsShouldContain, actual, expected)
}

// NewShouldBeAfter reports that actual is not strictly after other.
func NewShouldBeAfter(actual, other any) Diagnostic {
	return newDiagnostic(ShouldBeAfter, actual, other)
}

// NewShouldBeAfterOrEqualTo reports that actual is before other.
func NewShouldBeAfterOrEqualTo(actual, other any) Diagnostic {
	return newDiagnostic(ShouldBeAfterOrEqualTo, actual, other)
}

// NewShouldBeBefore reports that actual is not strictly before other.
func NewShouldBeBefore(actual, other any) Diagnostic {
	return newDiagnostic(ShouldBeBefore, actual, other)
}

// NewShouldBeBeforeOrEqualTo reports that actual is after other.
func NewShouldBeBeforeOrEqualTo(actual, other any) Diagnostic {
	return newDiagnostic(ShouldBeBeforeOrEqualTo, actual, other)
}

// NewShouldBeEqual reports that actual and other are not equal.
func NewShouldBeEqual(actual, other any) Diagnostic {
	return newDiagnostic(ShouldBeEqual, actual, other)
}

// NewShouldBeGreater reports that actual is not greater than other.
func NewShouldBeGreater(actual, other any) Diagnostic {
	return newDiagnostic(ShouldBeGreater, actual, other)
}

// NewShouldBeGreaterOrEqual reports that actual is less than other.
func NewShouldBeGreaterOrEqual(actual, other any) Diagnostic {
	return newDiagnostic(ShouldBeGreaterOrEqual, actual, other)
}

// NewShouldBeLess reports that actual is not less than other.
func NewShouldBeLess(actual, other any) Diagnostic {
	return newDiagnostic(ShouldBeLess, actual, other)
}

// NewShouldBeLessOrEqual reports that actual is greater than other.
func NewShouldBeLessOrEqual(actual, other any) Diagnostic {
	return newDiagnostic(ShouldBeLessOrEqual, actual, other)
}
