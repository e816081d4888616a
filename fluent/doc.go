// Package fluent is the root of a fluent assertion library.
//
// Typed entry points live in subpackages (bytebuffer, offsettime, instant,
// decimals). Each evaluates a pure predicate from the compare package and, when
// it is false, returns an *assert.AssertionError whose message is rendered by
// the diag package:
//
//	err := bytebuffer.AssertThat(bytebuffer.MustWrapString("test")).ContainsString("xy")
//	// err.Error():
//	//
//	// Expecting contents of:
//	//   <74 65 73 74>
//	// to contain:
//	//   <"xy">
//	// but did not.
//
// Missing required arguments are reported before any comparison with an
// *InvalidArgumentError, which matches ErrInvalidArgument under errors.Is.
package fluent
