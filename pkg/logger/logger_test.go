package logger_test

import (
	"context"
	"testing"
	"travel/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(env, logger.WithService("travel"))
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestSetup_Level(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))

	logger.Setup(logger.DevelopmentEnvironment, logger.WithLevel("warn"))
	require.False(t, logger.IsDebug(context.Background()))
	require.Equal(t, zap.WarnLevel, logger.Get(context.Background()).Level())

	// unknown levels keep the environment default
	logger.Setup(logger.ProductionEnvironment, logger.WithLevel("loud"))
	require.Equal(t, zap.InfoLevel, logger.Get(context.Background()).Level())
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	custom := zap.NewNop()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("requestId", "abc"), zap.Int64("userId", 7))
	logger.Info(ctx, "destination created")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "destination created", entry.Message)
	require.Equal(t, "abc", entry.ContextMap()["requestId"])
	require.EqualValues(t, 7, entry.ContextMap()["userId"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	require.Equal(t, 4, logs.Len())
	require.Equal(t, zapcore.ErrorLevel, logs.All()[3].Level)
}
