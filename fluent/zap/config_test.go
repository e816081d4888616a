//go:build unit

package zap

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	logpkg "github.com/LerianStudio/lib-fluent/fluent/log"
)

func TestNewRejectsInvalidEnvironment(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: Environment("banana")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestNewRejectsInvalidEncoding(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: EnvironmentLocal, Encoding: Encoding("xml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid encoding")
}

func TestNewAppliesEnvironmentDefaultLevel(t *testing.T) {
	t.Parallel()

	_, level, err := New(Config{Environment: EnvironmentDevelopment})
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	_, level, err = New(Config{Environment: EnvironmentProduction, OTelLibraryName: "lib-fluent"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestNewAppliesCustomLevel(t *testing.T) {
	t.Parallel()

	_, level, err := New(Config{Environment: EnvironmentProduction, Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, level.Level())
}

func TestNewRejectsInvalidCustomLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: EnvironmentProduction, Level: "invalid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}

func TestNewConsoleEncodingEnablesSanitizing(t *testing.T) {
	t.Parallel()

	logger, _, err := New(Config{Environment: EnvironmentLocal, Encoding: EncodingConsole})
	require.NoError(t, err)
	assert.True(t, logger.sanitize)

	logger, _, err = New(Config{Environment: EnvironmentLocal})
	require.NoError(t, err)
	assert.False(t, logger.sanitize)
}

func TestNewWritesToConfiguredOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	logger, _, err := New(Config{Environment: EnvironmentProduction, Output: &out})
	require.NoError(t, err)

	logger.Log(context.Background(), logpkg.LevelError, "assertion failed", logpkg.String("code", "ShouldBeAfter"))
	logger.Log(context.Background(), logpkg.LevelDebug, "filtered out")
	require.NoError(t, logger.Sync(context.Background()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &entry))
	assert.Equal(t, "assertion failed", entry["msg"])
	assert.Equal(t, "ShouldBeAfter", entry["code"])
	assert.Equal(t, "ERROR", entry["level"])
}

func TestNewConsoleOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	logger, _, err := New(Config{Environment: EnvironmentLocal, Encoding: EncodingConsole, Output: &out})
	require.NoError(t, err)

	logger.Log(context.Background(), logpkg.LevelInfo, "line one\nline two")

	assert.Contains(t, out.String(), "INFO")
	assert.Contains(t, out.String(), `line one\nline two`)
}
