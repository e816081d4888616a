package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/LerianStudio/lib-fluent/fluent/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// MetricsFactory creates and caches OpenTelemetry counters.
// It is safe for concurrent use.
type MetricsFactory struct {
	meter    metric.Meter
	counters sync.Map // string -> metric.Int64Counter
	logger   log.Logger
}

// ErrNilMeter indicates that a nil OTEL meter was provided.
var ErrNilMeter = errors.New("metric meter cannot be nil")

// Metric describes a counter instrument.
type Metric struct {
	Name        string
	Description string
	Unit        string
}

// NewMetricsFactory creates a new MetricsFactory instance.
func NewMetricsFactory(meter metric.Meter, logger log.Logger) (*MetricsFactory, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	if logger == nil {
		logger = log.NewNop()
	}

	return &MetricsFactory{
		meter:  meter,
		logger: logger,
	}, nil
}

// NewNopFactory returns a MetricsFactory backed by OpenTelemetry's no-op meter.
func NewNopFactory() *MetricsFactory {
	return &MetricsFactory{
		meter:  noop.NewMeterProvider().Meter("nop"),
		logger: log.NewNop(),
	}
}

// Counter creates or retrieves a counter metric and returns a builder for fluent API usage.
func (f *MetricsFactory) Counter(m Metric) (*CounterBuilder, error) {
	counter, err := f.getOrCreateCounter(m)
	if err != nil {
		return nil, err
	}

	return &CounterBuilder{
		counter: counter,
		name:    m.Name,
	}, nil
}

func (f *MetricsFactory) getOrCreateCounter(m Metric) (metric.Int64Counter, error) {
	if counter, exists := f.counters.Load(m.Name); exists {
		if c, ok := counter.(metric.Int64Counter); ok {
			return c, nil
		}

		return nil, fmt.Errorf("counter cache contains invalid type for %q", m.Name)
	}

	counter, err := f.meter.Int64Counter(m.Name, counterOptions(m)...)
	if err != nil {
		f.logger.Log(context.Background(), log.LevelError, "failed to create counter metric", log.String("metric_name", m.Name), log.Err(err))

		return nil, fmt.Errorf("create counter %q: %w", m.Name, err)
	}

	// Another goroutine may have stored one first; keep theirs.
	if actual, loaded := f.counters.LoadOrStore(m.Name, counter); loaded {
		if c, ok := actual.(metric.Int64Counter); ok {
			return c, nil
		}

		return nil, fmt.Errorf("counter cache contains invalid type for %q", m.Name)
	}

	return counter, nil
}

func counterOptions(m Metric) []metric.Int64CounterOption {
	var opts []metric.Int64CounterOption
	if m.Description != "" {
		opts = append(opts, metric.WithDescription(m.Description))
	}

	if m.Unit != "" {
		opts = append(opts, metric.WithUnit(m.Unit))
	}

	return opts
}
