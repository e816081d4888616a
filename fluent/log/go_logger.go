package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// logControlCharReplacer escapes control characters that can be used for log injection (CWE-117).
// Assertion diagnostics are multi-line, so every line break is escaped before it
// reaches a line-oriented sink.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// GoLogger is the Go built-in (log) implementation of Logger.
//
// All string values are sanitized to prevent log injection (CWE-117).
type GoLogger struct {
	Level  Level
	out    *stdlog.Logger
	group  string
	fields []Field
}

// Compile-time assertion: *GoLogger implements Logger.
var _ Logger = (*GoLogger)(nil)

// NewGoLogger creates a GoLogger writing to w at the given level.
// A nil writer falls back to os.Stderr.
func NewGoLogger(w io.Writer, level Level) *GoLogger {
	if w == nil {
		w = os.Stderr
	}

	return &GoLogger{
		Level: level,
		out:   stdlog.New(w, "", stdlog.LstdFlags),
	}
}

// Enabled checks if the given level is enabled.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Log implements Logger.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	l.writer().Print(l.hydrate(level, msg, fields))
}

// With returns a child logger carrying additional fields.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return &GoLogger{}
	}

	newFields := make([]Field, 0, len(l.fields)+len(fields))
	newFields = append(newFields, l.fields...)
	newFields = append(newFields, fields...)

	return &GoLogger{
		Level:  l.Level,
		out:    l.out,
		group:  l.group,
		fields: newFields,
	}
}

// WithGroup returns a child logger whose subsequent field keys are prefixed by name.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return &GoLogger{}
	}

	group := name
	if l.group != "" && name != "" {
		group = l.group + "." + name
	} else if name == "" {
		group = l.group
	}

	return &GoLogger{
		Level:  l.Level,
		out:    l.out,
		group:  group,
		fields: l.fields,
	}
}

// Sync is a no-op: the standard logger writes synchronously.
func (l *GoLogger) Sync(_ context.Context) error { return nil }

func (l *GoLogger) writer() *stdlog.Logger {
	if l.out == nil {
		return stdlog.Default()
	}

	return l.out
}

func (l *GoLogger) hydrate(level Level, msg string, fields []Field) string {
	parts := make([]string, 0, 3)
	parts = append(parts, fmt.Sprintf("[%s]", level.String()))

	if rendered := l.hydrateFields(fields); rendered != "" {
		parts = append(parts, rendered)
	}

	parts = append(parts, sanitizeLogString(msg))

	return strings.Join(parts, " ")
}

func (l *GoLogger) hydrateFields(extra []Field) string {
	if len(l.fields)+len(extra) == 0 {
		return ""
	}

	parts := make([]string, 0, len(l.fields)+len(extra))

	for _, f := range l.fields {
		parts = append(parts, l.renderField(f))
	}

	for _, f := range extra {
		parts = append(parts, l.renderField(f))
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

func (l *GoLogger) renderField(f Field) string {
	key := f.Key
	if l.group != "" {
		key = l.group + "." + key
	}

	return sanitizeLogString(fmt.Sprintf("%s=%v", key, f.Value))
}
