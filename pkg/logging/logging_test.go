package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLoggerRestores(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := SetLogger(zap.New(core))
	defer SetLogger(prev)

	Named("lottie").Debug("created", zap.String("id", "abc"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "lottie", entries[0].LoggerName)
	assert.Equal(t, "abc", entries[0].ContextMap()["id"])
}

func TestSetLoggerNil(t *testing.T) {
	prev := SetLogger(nil)
	defer SetLogger(prev)

	assert.NotNil(t, L())
}

func TestNew(t *testing.T) {
	l, err := New(zapcore.WarnLevel)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}
