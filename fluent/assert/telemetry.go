package assert

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	constant "github.com/LerianStudio/lib-fluent/fluent/constants"
	"github.com/LerianStudio/lib-fluent/fluent/diag"
	"github.com/LerianStudio/lib-fluent/fluent/log"
	"github.com/LerianStudio/lib-fluent/fluent/opentelemetry/metrics"
)

// AssertionSpanEventName is the event name used when recording assertion failures on spans.
const AssertionSpanEventName = constant.EventAssertionFailed

// AssertionMetrics counts failed assertions through a MetricsFactory.
type AssertionMetrics struct {
	factory *metrics.MetricsFactory
	logger  Logger
}

var assertionFailedMetric = metrics.Metric{
	Name:        constant.MetricAssertionFailedTotal,
	Unit:        "1",
	Description: "Total number of failed assertions",
}

var (
	assertionMetricsInstance *AssertionMetrics
	assertionMetricsMu       sync.RWMutex
)

// InitAssertionMetrics installs the process-wide assertion metrics.
// Only the first call with a non-nil factory takes effect.
// logger, when given, receives metric recording errors.
func InitAssertionMetrics(factory *metrics.MetricsFactory, logger ...Logger) {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	if factory == nil || assertionMetricsInstance != nil {
		return
	}

	am := &AssertionMetrics{factory: factory}
	if len(logger) > 0 {
		am.logger = logger[0]
	}

	assertionMetricsInstance = am
}

// GetAssertionMetrics returns the installed AssertionMetrics, or nil.
func GetAssertionMetrics() *AssertionMetrics {
	assertionMetricsMu.RLock()
	defer assertionMetricsMu.RUnlock()

	return assertionMetricsInstance
}

// ResetAssertionMetrics clears the assertion metrics singleton (useful for tests).
func ResetAssertionMetrics() {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	assertionMetricsInstance = nil
}

// RecordAssertionFailed increments assertion_failed_total with labels.
// A nil receiver or factory is a no-op.
func (am *AssertionMetrics) RecordAssertionFailed(ctx context.Context, component, operation, assertion string) {
	if am == nil || am.factory == nil {
		return
	}

	counter, err := am.factory.Counter(assertionFailedMetric)
	if err != nil {
		am.logError(ctx, "failed to create assertion metric counter", err)
		return
	}

	err = counter.
		WithLabels(map[string]string{
			"component": constant.SanitizeMetricLabel(component),
			"operation": constant.SanitizeMetricLabel(operation),
			"assertion": constant.SanitizeMetricLabel(assertion),
		}).
		AddOne(ctx)
	if err != nil {
		am.logError(ctx, "failed to record assertion metric", err)
	}
}

func (am *AssertionMetrics) logError(ctx context.Context, msg string, err error) {
	if am.logger != nil {
		am.logger.Log(ctx, log.LevelWarn, msg, log.Err(err))
	}
}

func recordAssertionObservability(
	ctx context.Context,
	assertion string,
	code diag.Code,
	message string,
	stack []byte,
	component, operation string,
) {
	GetAssertionMetrics().RecordAssertionFailed(ctx, component, operation, assertion)
	recordAssertionToSpan(ctx, assertion, code, message, stack, component, operation)
}

func recordAssertionToSpan(
	ctx context.Context,
	assertion string,
	code diag.Code,
	message string,
	stack []byte,
	component, operation string,
) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrAssertionName, assertion),
		attribute.String(constant.AttrAssertionCode, code.String()),
		attribute.String(constant.AttrAssertionMessage, message),
	}

	if component != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionComponent, component))
	}

	if operation != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionOperation, operation))
	}

	if len(stack) > 0 {
		attrs = append(attrs, attribute.String(constant.AttrAssertionStack, string(stack)))
	}

	span.AddEvent(AssertionSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: %s", ErrAssertionFailed, message))
	span.SetStatus(codes.Error, assertionStatusMessage(component, operation))
}

func assertionStatusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return fmt.Sprintf("assertion failed in %s/%s", component, operation)
	case component != "":
		return "assertion failed in " + component
	case operation != "":
		return "assertion failed in " + operation
	default:
		return "assertion failed"
	}
}
