package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultLoggerIsNop(t *testing.T) {
	require.NotNil(t, Logger)
	// Must not panic before Initialize is called.
	Logger.Debugw("parse trace", "query", "a ellis")
	Logger.Warnw("fallback", "query", ":::")
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(false))
	assert.False(t, JSONOutput)
	require.NotNil(t, Logger)

	require.NoError(t, Initialize(true))
	assert.True(t, JSONOutput)
	require.NotNil(t, Logger)
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, Initialize(false))
	require.NoError(t, SetLevel(zapcore.DebugLevel))
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, SetLevel(zapcore.WarnLevel))
	assert.False(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))
}
