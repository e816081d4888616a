package constant

// TelemetrySDKName identifies this library in OTEL instrumentation scopes.
const TelemetrySDKName = "lib-fluent"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
const MaxMetricLabelLength = 64

// AttrPrefixAssertion is the prefix for assertion event attributes.
const AttrPrefixAssertion = "assertion."

// Span event attribute keys for assertion failures.
const (
	AttrAssertionName      = AttrPrefixAssertion + "name"
	AttrAssertionCode      = AttrPrefixAssertion + "code"
	AttrAssertionMessage   = AttrPrefixAssertion + "message"
	AttrAssertionComponent = AttrPrefixAssertion + "component"
	AttrAssertionOperation = AttrPrefixAssertion + "operation"
	AttrAssertionStack     = AttrPrefixAssertion + "stack"
)

// MetricAssertionFailedTotal is the counter metric for failed assertions.
const MetricAssertionFailedTotal = "assertion_failed_total"

// EventAssertionFailed is the span event name for assertion failures.
const EventAssertionFailed = "assertion.failed"

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
