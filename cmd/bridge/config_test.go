package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig([]string{"-host", "192.168.1.20"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.20", cfg.Controller.Host)
	assert.Equal(t, 3480, cfg.Controller.Port)
	assert.Equal(t, 10*time.Second, cfg.Controller.Timeout)
	assert.Equal(t, "00102003", cfg.PIN)
	assert.Equal(t, "http://192.168.1.20:3480/", cfg.Controller.BaseURL())
	assert.Empty(t, cfg.TemperatureFormula)
	assert.Empty(t, cfg.AdminAddr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseConfig_Env(t *testing.T) {
	t.Setenv("VERA_BRIDGE_HOST", "vera.local")
	t.Setenv("VERA_BRIDGE_TEMPERATURE_FORMULA", "x")
	t.Setenv("VERA_BRIDGE_ADMIN_ADDR", ":8080")

	cfg, err := parseConfig([]string{"-port", "3481"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "vera.local", cfg.Controller.Host)
	assert.Equal(t, 3481, cfg.Controller.Port)
	assert.Equal(t, "x", cfg.TemperatureFormula)
	assert.Equal(t, ":8080", cfg.AdminAddr)
}

func TestParseConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"host": "10.0.0.5", "pin": "11122333", "log-level": "debug"}`), 0600))

	cfg, err := parseConfig([]string{"-config", path, "-pin", "44455666"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.Controller.Host)
	assert.Equal(t, "44455666", cfg.PIN)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing host", nil},
		{"bad port", []string{"-host", "vera", "-port", "70000"}},
		{"bad pin", []string{"-host", "vera", "-pin", "1234"}},
		{"unknown flag", []string{"-host", "vera", "-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}
