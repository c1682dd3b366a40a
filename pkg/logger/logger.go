// Package logger wraps zap with a context-carried logger. Request scoped
// fields (request id, admin user) are attached with WithFields and picked up
// by every Get(ctx) further down the call chain.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human readable, colored console output at debug level.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs JSON at info level.
	ProductionEnvironment = "production"
)

var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Option customizes the logger built by Setup.
type Option func(cfg *zap.Config, fields *[]zapcore.Field)

// WithLevel overrides the environment's default level ("debug", "info", ...).
// Unknown levels are ignored.
func WithLevel(level string) Option {
	return func(cfg *zap.Config, _ *[]zapcore.Field) {
		if level == "" {
			return
		}
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return
		}
		cfg.Level = lvl
	}
}

// WithService tags every entry with the service name.
func WithService(name string) Option {
	return func(_ *zap.Config, fields *[]zapcore.Field) {
		*fields = append(*fields, zap.String("service", name))
	}
}

// Setup builds the default logger for the given environment.
func Setup(environment string, opts ...Option) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}

	var fields []zapcore.Field
	for _, opt := range opts {
		opt(&cfg, &fields)
	}

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewExample()
	}
	defaultLogger = l.With(fields...)
}

// Sync flushes buffered entries of the default logger.
func Sync() {
	_ = defaultLogger.Sync()
}

type key struct{}

// Get returns the logger stored in ctx, or the default one.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields returns a context whose logger carries fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

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

func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
