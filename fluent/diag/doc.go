// Package diag builds the human-readable diagnostics returned when an assertion
// predicate is false.
//
// A Diagnostic is a tagged variant: a Code naming a fixed template plus the
// ordered, already-rendered argument strings. Nothing is formatted until Create
// is called. Templates use %n for a line break and %s for the next argument;
// argument text is substituted verbatim, so values containing '%' are safe.
//
//	d := diag.NewShouldBeAfterOrEqualTo(actual, other)
//	msg := d.Create()
//	// "\nExpecting:\n  <03:00:05Z>\nto be after or equals to:\n  <03:03:03Z>"
package diag
