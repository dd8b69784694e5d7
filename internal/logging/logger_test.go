package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"addressbook/internal/config"
)

func TestNew_DisabledIsNop(t *testing.T) {
	ws := t.TempDir()
	logger, err := New(config.LoggingConfig{Level: "debug"}, ws, false)
	require.NoError(t, err)
	logger.Info("dropped")

	_, statErr := os.Stat(filepath.Join(ws, config.DirName))
	assert.True(t, os.IsNotExist(statErr), "no log directory in production mode")
}

func TestNew_WritesCategoryFile(t *testing.T) {
	ws := t.TempDir()
	logger, err := New(config.LoggingConfig{DebugMode: true, Level: "info", Format: "json"}, ws, false)
	require.NoError(t, err)

	For(logger, CategoryStore).Info("saved book", zap.Int("contacts", 3))
	For(logger, CategoryStore).Debug("below level")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(ws, config.DirName, "logs", "book.log"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"logger":"store"`)
	assert.Contains(t, out, `"msg":"saved book"`)
	assert.Contains(t, out, `"contacts":3`)
	assert.NotContains(t, out, "below level")
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	ws := t.TempDir()
	file := filepath.Join(ws, "verbose.log")
	logger, err := New(config.LoggingConfig{File: file}, ws, true)
	require.NoError(t, err)

	logger.Debug("debug entry")
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "debug entry"))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{DebugMode: true, Level: "loud"}, t.TempDir(), false)
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestFor_NamesChild(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	For(zap.New(core), CategoryCommand).Info("dispatched")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "command", entries[0].LoggerName)

	assert.NotNil(t, For(nil, CategoryBoot))
}
