// Package compare holds the pure predicates behind every assertion: content
// equality and containment for byte sequences, and ordering for any type with
// a Compare method (time.Time, *offsettime.OffsetTime) or a cmp.Ordered type.
//
// Predicates never panic and never return errors; argument validation is the
// job of the assertion entry points.
package compare
