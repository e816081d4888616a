// Package offsettime provides a time-of-day value with a fixed UTC offset and
// the ordering assertions for it.
//
// Ordering is by absolute instant: 10:15+01:00 and 09:15Z are equal, and
// 03:00:05Z is before 03:03:03Z.
//
//	err := offsettime.AssertThat(offsettime.MustOf(3, 0, 5, 0, offsettime.UTC)).
//		IsAfterOrEqualToString("03:03:03Z")
//	// err.Error():
//	//
//	// Expecting:
//	//   <03:00:05Z>
//	// to be after or equals to:
//	//   <03:03:03Z>
package offsettime
