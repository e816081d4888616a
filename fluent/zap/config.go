package zap

import (
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const callerSkipFrames = 1

// Environment controls the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Encoding selects the zap encoder.
type Encoding string

const (
	EncodingJSON    Encoding = "json"
	EncodingConsole Encoding = "console"
)

// Config contains the logger initialization inputs.
type Config struct {
	Environment Environment
	// Level overrides the environment default ("debug", "info", "warn", "error").
	Level string
	// Encoding defaults to json.
	Encoding Encoding
	// OTelLibraryName names the instrumentation scope of the OpenTelemetry log bridge.
	// Empty disables the bridge.
	OTelLibraryName string
	// Output receives encoded entries and internal logger errors.
	// Nil keeps zap's default of stderr.
	Output io.Writer
}

func (c Config) validate() error {
	switch c.Encoding {
	case "", EncodingJSON, EncodingConsole:
	default:
		return fmt.Errorf("invalid encoding %q", c.Encoding)
	}

	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentLocal:
		return nil
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
}

// New creates a structured logger and returns it with a runtime-adjustable level handle.
func New(cfg Config) (*Logger, zap.AtomicLevel, error) {
	if err := cfg.validate(); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid zap config: %w", err)
	}

	baseConfig := buildConfigByEnvironment(cfg.Environment, cfg.encoding())

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	baseConfig.Level = level
	baseConfig.DisableStacktrace = true

	coreOptions := []zap.Option{zap.AddCallerSkip(callerSkipFrames)}

	if cfg.OTelLibraryName != "" {
		coreOptions = append(coreOptions, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(cfg.OTelLibraryName))
		}))
	}

	built, err := build(baseConfig, cfg.Output, coreOptions)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Logger{logger: built, sanitize: cfg.encoding() == EncodingConsole}, level, nil
}

// build applies baseConfig, writing to output instead of the configured paths
// when output is set.
func build(baseConfig zap.Config, output io.Writer, options []zap.Option) (*zap.Logger, error) {
	if output == nil {
		return baseConfig.Build(options...)
	}

	encoder := zapcore.NewJSONEncoder(baseConfig.EncoderConfig)
	if baseConfig.Encoding == string(EncodingConsole) {
		encoder = zapcore.NewConsoleEncoder(baseConfig.EncoderConfig)
	}

	sink := zapcore.AddSync(output)
	options = append([]zap.Option{zap.ErrorOutput(sink)}, options...)

	if !baseConfig.DisableCaller {
		options = append(options, zap.AddCaller())
	}

	if baseConfig.Development {
		options = append(options, zap.Development())
	}

	return zap.New(zapcore.NewCore(encoder, sink, baseConfig.Level), options...), nil
}

func (c Config) encoding() Encoding {
	if c.Encoding == "" {
		return EncodingJSON
	}

	return c.Encoding
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(cfg.Level); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
		}

		return zap.NewAtomicLevelAt(parsed), nil
	}

	if cfg.Environment == EnvironmentDevelopment || cfg.Environment == EnvironmentLocal {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}

func buildConfigByEnvironment(environment Environment, encoding Encoding) zap.Config {
	cfg := zap.NewProductionConfig()
	if environment == EnvironmentDevelopment || environment == EnvironmentLocal {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Encoding = string(encoding)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
