package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplyhub/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		env         logger.Environment
		level       string
		expectedErr bool
	}{
		{name: "development with debug level", env: logger.Development, level: "debug"},
		{name: "production with info level", env: logger.Production, level: "info"},
		{name: "empty level defaults", env: logger.Development, level: ""},
		{name: "invalid level", env: logger.Development, level: "shouting", expectedErr: true},
	}

	for _, ttt := range tests {
		t.Run(ttt.name, func(t *testing.T) {
			log, err := logger.NewLogger(ttt.env, ttt.level)
			if ttt.expectedErr {
				require.Error(t, err)
				assert.Nil(t, log)
			} else {
				require.NoError(t, err)
				require.NotNil(t, log)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	t.Run("success - logger found", func(t *testing.T) {
		ctx := logger.NewContext(context.Background(), log)
		found, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, log, found)
	})

	t.Run("error - logger absent", func(t *testing.T) {
		found, err := logger.FromContext(context.Background())
		assert.Nil(t, found)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

// Log never returns nil: context logger first, then global, then fallback.
func TestLogPreferenceOrder(t *testing.T) {
	ctxLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	globalLog, err := logger.NewLogger(logger.Development, "info")
	require.NoError(t, err)

	assert.NotNil(t, logger.Log(context.Background()))

	logger.SetGlobalLogger(globalLog)
	defer logger.SetGlobalLogger(nil)
	assert.Same(t, globalLog, logger.Log(context.Background()))

	ctx := logger.NewContext(context.Background(), ctxLogger)
	assert.Same(t, ctxLogger, logger.Log(ctx))
}

func TestRequestIDContext(t *testing.T) {
	t.Run("given id is kept", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-123")
		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-123", id)
	})

	t.Run("empty id is generated", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")
		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("absent id reports false", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}
