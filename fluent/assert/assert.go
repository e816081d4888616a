package assert

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/LerianStudio/lib-fluent/fluent"
	"github.com/LerianStudio/lib-fluent/fluent/diag"
	"github.com/LerianStudio/lib-fluent/fluent/log"
	"github.com/LerianStudio/lib-fluent/fluent/runtime"
)

// Logger defines the minimal logging interface required by assertions.
// This interface is satisfied by fluent/log.Logger.
type Logger interface {
	Log(ctx context.Context, level log.Level, msg string, fields ...log.Field)
}

// Asserter reports assertion failures with a context, a logger and telemetry labels.
type Asserter struct {
	ctx       context.Context
	logger    Logger
	component string
	operation string
}

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError is a failed assertion. Its message is the rendered diagnostic.
type AssertionError struct {
	Assertion  string
	Component  string
	Operation  string
	Diagnostic diag.Diagnostic
}

// Error returns the rendered diagnostic.
func (entry *AssertionError) Error() string {
	if entry == nil {
		return ErrAssertionFailed.Error()
	}

	return entry.Diagnostic.Create()
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (entry *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// New creates an Asserter with context, logging, and labels.
// component and operation are used for telemetry labeling.
//
//nolint:contextcheck // Intentionally creates a fallback context when nil is passed
func New(ctx context.Context, logger Logger, component, operation string) *Asserter {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Asserter{
		ctx:       ctx,
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// Context returns the context the Asserter was created with, or
// context.Background for a nil Asserter.
func (asserter *Asserter) Context() context.Context {
	if asserter == nil || asserter.ctx == nil {
		return context.Background()
	}

	return asserter.ctx
}

// Check returns nil when ok is true. Otherwise it builds the diagnostic and
// reports the failure. build is never called for a passing check.
func (asserter *Asserter) Check(ctx context.Context, ok bool, assertion string, build func() diag.Diagnostic) error {
	if ok {
		return nil
	}

	return asserter.Fail(ctx, assertion, build())
}

// Fail reports d as a failure of assertion and returns the resulting error.
func (asserter *Asserter) Fail(ctx context.Context, assertion string, d diag.Diagnostic) error {
	ctx, logger, component, operation := asserter.values(ctx)

	var stack []byte
	if runtime.ShouldIncludeStack() {
		stack = debug.Stack()
	}

	message := d.Create()

	logAssertion(ctx, logger, assertion, d.Code(), component, operation, message, stack)
	recordAssertionObservability(ctx, assertion, d.Code(), message, stack, component, operation)

	return &AssertionError{
		Assertion:  assertion,
		Component:  component,
		Operation:  operation,
		Diagnostic: d,
	}
}

// Reject reports an unusable argument and returns err unchanged.
// Nothing is compared and no assertion metric is recorded.
func (asserter *Asserter) Reject(ctx context.Context, assertion string, err *fluent.InvalidArgumentError) error {
	ctx, logger, component, operation := asserter.values(ctx)

	if logger != nil {
		logger.Log(ctx, log.LevelWarn, "invalid assertion argument",
			log.String("assertion", assertion),
			log.String("parameter", err.Parameter),
			log.String("component", component),
			log.String("operation", operation),
			log.Err(err),
		)
	}

	return err
}

func (asserter *Asserter) values(ctx context.Context) (context.Context, Logger, string, string) {
	if asserter == nil {
		if ctx == nil {
			ctx = context.Background()
		}

		return ctx, nil, "", ""
	}

	if ctx == nil {
		ctx = asserter.ctx
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return ctx, asserter.logger, asserter.component, asserter.operation
}

func logAssertion(
	ctx context.Context,
	logger Logger,
	assertion string,
	code diag.Code,
	component, operation, message string,
	stack []byte,
) {
	if logger == nil {
		return
	}

	fields := []log.Field{
		log.String("assertion", assertion),
		log.String("code", code.String()),
		log.String("diagnostic", message),
	}

	if component != "" {
		fields = append(fields, log.String("component", component))
	}

	if operation != "" {
		fields = append(fields, log.String("operation", operation))
	}

	if len(stack) > 0 {
		fields = append(fields, log.String("stack", string(stack)))
	}

	logger.Log(ctx, log.LevelError, "assertion failed", fields...)
}
