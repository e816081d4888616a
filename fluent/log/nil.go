package log

import "context"

// NopLogger discards every entry. It is what an Asserter built without a
// logger behaves like, and what the CLI uses before its settings are loaded.
type NopLogger struct{}

// NewNop returns a NopLogger.
//
//nolint:ireturn
func NewNop() Logger {
	return &NopLogger{}
}

func (l *NopLogger) Log(_ context.Context, _ Level, _ string, _ ...Field) {}

//nolint:ireturn
func (l *NopLogger) With(_ ...Field) Logger {
	return l
}

//nolint:ireturn
func (l *NopLogger) WithGroup(_ string) Logger {
	return l
}

// Enabled reports false for every level, so callers can skip building fields.
func (l *NopLogger) Enabled(_ Level) bool {
	return false
}

func (l *NopLogger) Sync(_ context.Context) error { return nil }
