package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pronunciationapp/backend/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("json logger at configured level", func(t *testing.T) {
		logger, err := New(config.Logging{Level: "warn", Format: "json"})
		require.NoError(t, err)

		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("console logger", func(t *testing.T) {
		logger, err := New(config.Logging{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := New(config.Logging{Level: "loud"})
		assert.Error(t, err)
	})
}
