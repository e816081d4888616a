// Package assert is the failure-reporting core shared by every typed
// assertion entry point.
//
// An Asserter carries the context, logger and telemetry labels used when an
// assertion fails. Typed packages evaluate a predicate and hand a lazily built
// diag.Diagnostic to Check; on failure the Asserter logs once, records an
// assertion.failed span event, increments assertion_failed_total and returns
// an *AssertionError whose Error() is exactly the rendered diagnostic.
//
//	a := assert.New(ctx, logger, "ledger", "reconcile")
//	err := bytebuffer.AssertThat(buf).Using(a).ContainsString("es")
//
// A nil *Asserter is valid: failures are still returned as errors but nothing
// is logged.
//
// # Stack Traces
//
// Stack traces are attached to logs and span events only outside production
// (see runtime.ShouldIncludeStack).
package assert
