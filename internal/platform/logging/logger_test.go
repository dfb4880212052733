package logging

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warn "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "globe.log")

	logger, closer := New(Config{Level: "info", File: path})
	require.NotNil(t, logger)
	logger.Info("hello", "k", "v")
	require.NoError(t, closer.Close())

	assert.FileExists(t, path)
}
