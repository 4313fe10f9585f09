package logger_test

import (
	"context"
	"orgdash/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// setup should not panic
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})

			// get a logger from context to verify setup worked
			ctx := context.Background()
			l := logger.Get(ctx)
			require.NotNil(t, l)
		})
	}
}

func TestGet(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	// empty context falls back to the default logger
	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	// a logger placed in context is returned as-is
	custom := zap.NewNop()
	ctx = logger.WithLogger(ctx, custom)
	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	scoped := logger.WithFields(ctx, zapcore.Field{Key: "org", Type: zapcore.StringType, String: "acme"})

	require.NotSame(t, logger.Get(ctx), logger.Get(scoped))
}

func TestLogHelpersDoNotPanic(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := logger.WithLogger(context.Background(), zap.NewNop())

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug")
		logger.Info(ctx, "info")
		logger.Warn(ctx, "warn")
		logger.Error(ctx, "error")
	})
}
