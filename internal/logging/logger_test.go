package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("console debug", func(t *testing.T) {
		logger, err := New("debug", "console")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("json warn hides info", func(t *testing.T) {
		logger, err := New("WARN", "json")
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := New("loud", "json")
		require.Error(t, err)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := New("info", "xml")
		require.Error(t, err)
	})
}
