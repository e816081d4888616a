package metrics

import (
	"context"
	"errors"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrNilCounter is returned when a counter builder has no instrument.
var ErrNilCounter = errors.New("counter instrument is nil")

// CounterBuilder records counter increments with optional labels.
// Builders are immutable; WithLabels returns a new builder.
type CounterBuilder struct {
	counter metric.Int64Counter
	name    string
	attrs   []attribute.KeyValue
}

// WithLabels adds labels to the counter. Labels are applied in key order.
func (c *CounterBuilder) WithLabels(labels map[string]string) *CounterBuilder {
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	builder := &CounterBuilder{
		counter: c.counter,
		name:    c.name,
		attrs:   make([]attribute.KeyValue, 0, len(c.attrs)+len(labels)),
	}

	builder.attrs = append(builder.attrs, c.attrs...)

	for _, key := range keys {
		builder.attrs = append(builder.attrs, attribute.String(key, labels[key]))
	}

	return builder
}

// Add records a counter increment.
func (c *CounterBuilder) Add(ctx context.Context, value int64) error {
	if c == nil || c.counter == nil {
		return ErrNilCounter
	}

	c.counter.Add(ctx, value, metric.WithAttributes(c.attrs...))

	return nil
}

// AddOne increments the counter by one.
func (c *CounterBuilder) AddOne(ctx context.Context) error {
	return c.Add(ctx, 1)
}
