// Package metrics wraps an OpenTelemetry meter with a lazily populated cache of
// counters, used to count assertion failures by component, operation and
// assertion name.
package metrics
