package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"vera-homekit-bridge/internal/domain/model"
)

func TestNew_Level(t *testing.T) {
	l, err := New(model.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())

	l, err = New(model.LogConfig{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())

	_, err = New(model.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := WithComponent(NewWithWriter(&buf, zerolog.InfoLevel), "vera")

	l.Debug().Msg("hidden")
	l.Info().Int("devices", 2).Msg("Catalog fetched")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"component":"vera"`)
	assert.Contains(t, buf.String(), `"devices":2`)
}

func TestOutput(t *testing.T) {
	assert.Equal(t, os.Stdout, output(model.LogConfig{}))

	path := filepath.Join(t.TempDir(), "bridge.log")
	w, ok := output(model.LogConfig{File: path}).(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, path, w.Filename)
	assert.Equal(t, defaultMaxSizeMB, w.MaxSize)
	assert.Equal(t, defaultMaxBackups, w.MaxBackups)

	w, ok = output(model.LogConfig{File: path, MaxSizeMB: 1, MaxBackups: 7}).(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, 1, w.MaxSize)
	assert.Equal(t, 7, w.MaxBackups)
}
