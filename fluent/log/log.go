package log

import (
	"context"
	"fmt"
	"strings"
)

// Logger receives assertion failures (error level) and rejected arguments
// (warn level) from an assert.Asserter. Implementations must be safe for
// concurrent use; typed entry points may share one Asserter across goroutines.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level orders entries by severity, most severe first. A logger set to a
// level emits it and every level below it numerically, so a logger at
// LevelWarn shows failed assertions and rejected arguments only.
type Level uint8

// Assertion failures are logged at LevelError, rejected arguments at LevelWarn.
const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the lower-case level name used in configuration.
func (level Level) String() string {
	switch level {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel reads a level name such as "warn" (case and surrounding space
// are ignored; "warning" is accepted).
func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	return LevelError, fmt.Errorf("unknown log level %q", lvl)
}

// Field is one key/value pair on an entry, e.g. the assertion name or the
// diagnostic code.
type Field struct {
	Key   string
	Value any
}

// Any wraps a value of any type.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String wraps a string value.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int wraps an int value.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool wraps a bool value.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err stores err under the "error" key.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
