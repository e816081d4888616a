// Package temporal provides ordering assertions shared by every entry point
// whose values order themselves through a Compare method.
//
// Typed packages (offsettime, instant, decimals) wrap Assert with their own
// type name and rendering so failures read naturally for the value under test:
//
//	a := temporal.New(actual, "OffsetTime", func(v *offsettime.OffsetTime) any { return v })
//	if err := a.IsAfterOrEqualTo(reference); err != nil {
//		return err
//	}
//
// # Check Order
//
// A nil argument is rejected with *fluent.InvalidArgumentError before the
// value under test is looked at, so a nil actual compared with a nil argument
// reports the argument. A nil actual with a usable argument fails with the
// ActualIsNil diagnostic. Only then is the predicate evaluated.
package temporal
