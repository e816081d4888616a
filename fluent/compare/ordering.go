package compare

import "cmp"

// Comparable is satisfied by types that order themselves, returning a negative
// number, zero or a positive number as the receiver is before, equal to or
// after other.
type Comparable[T any] interface {
	Compare(other T) int
}

// IsAfter reports whether actual is strictly after other.
func IsAfter[T Comparable[T]](actual, other T) bool {
	return actual.Compare(other) > 0
}

// IsAfterOrEqualTo reports whether actual is after or equal to other.
func IsAfterOrEqualTo[T Comparable[T]](actual, other T) bool {
	return actual.Compare(other) >= 0
}

// IsBefore reports whether actual is strictly before other.
func IsBefore[T Comparable[T]](actual, other T) bool {
	return actual.Compare(other) < 0
}

// IsBeforeOrEqualTo reports whether actual is before or equal to other.
func IsBeforeOrEqualTo[T Comparable[T]](actual, other T) bool {
	return actual.Compare(other) <= 0
}

// IsEqualTo reports whether actual and other compare as equal.
func IsEqualTo[T Comparable[T]](actual, other T) bool {
	return actual.Compare(other) == 0
}

// OrderedIsAfterOrEqualTo is IsAfterOrEqualTo for built-in ordered types.
func OrderedIsAfterOrEqualTo[T cmp.Ordered](actual, other T) bool {
	return cmp.Compare(actual, other) >= 0
}

// OrderedIsAfter is IsAfter for built-in ordered types.
func OrderedIsAfter[T cmp.Ordered](actual, other T) bool {
	return cmp.Compare(actual, other) > 0
}

// OrderedIsBeforeOrEqualTo is IsBeforeOrEqualTo for built-in ordered types.
func OrderedIsBeforeOrEqualTo[T cmp.Ordered](actual, other T) bool {
	return cmp.Compare(actual, other) <= 0
}

// OrderedIsBefore is IsBefore for built-in ordered types.
func OrderedIsBefore[T cmp.Ordered](actual, other T) bool {
	return cmp.Compare(actual, other) < 0
}
