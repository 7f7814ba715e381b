// Package logger wraps zap with a context-carried logger. Request handlers,
// workers and services attach fields to the context once and every log line
// further down the call chain carries them.
package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects the console encoder at debug level.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment selects the JSON encoder at info level.
	ProductionEnvironment = "production"
)

// Field keys shared by every package logging about domains and jobs.
const (
	DomainKey  = "domain"
	JobIDKey   = "jobID"
	JobKindKey = "jobKind"
	AttemptKey = "attempt"
)

//nolint: gochecknoglobals
var (
	defaultLogger = zap.NewNop()
	level         = zap.NewAtomicLevel()
)

// Setup replaces the default logger with one configured for environment.
// Unknown environments get the development configuration.
func Setup(environment string) {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}
	level.SetLevel(cfg.Level.Level())
	cfg.Level = level

	l, err := cfg.Build()
	if err != nil {
		return
	}
	defaultLogger = l
}

// SetLevel changes the level of the default logger, and of every logger
// derived from it, at runtime.
func SetLevel(name string) error {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("could not parse log level: %w", err)
	}
	level.SetLevel(lvl)

	return nil
}

type key struct{}

// Get returns the logger attached to ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields attaches a child of the current logger carrying fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// WithDomain tags every following log line with the domain name.
func WithDomain(ctx context.Context, domainName string) context.Context {
	return WithFields(ctx, zap.String(DomainKey, domainName))
}

// WithJob tags every following log line with the job being worked.
func WithJob(ctx context.Context, id int64, kind string, attempt int) context.Context {
	return WithFields(ctx, zap.Int64(JobIDKey, id), zap.String(JobKindKey, kind), zap.Int(AttemptKey, attempt))
}

// IsDebug reports whether the logger in ctx writes debug entries.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Level() == zap.DebugLevel
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
