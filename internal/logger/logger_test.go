package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiclex/crux-invoice/internal/logger"
)

func TestNew_DefaultLevel(t *testing.T) {
	log, err := logger.New("", false)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(-1), "debug should be disabled at the default level")
}

func TestNew_DebugLevel(t *testing.T) {
	log, err := logger.New("debug", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New("loud", false)
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NotNil(t, logger.Nop())
}
