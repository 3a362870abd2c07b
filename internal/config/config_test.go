package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "renamed", cfg.OutputDir)
	assert.Equal(t, int64(50), cfg.MaxUploadMB)
	assert.False(t, cfg.Debug)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RENAMER_PORT", "8081")
	t.Setenv("RENAMER_OUTPUT_DIR", "/tmp/out")
	t.Setenv("RENAMER_MAX_UPLOAD_MB", "8")
	t.Setenv("RENAMER_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, int64(8), cfg.MaxUploadMB)
	assert.True(t, cfg.Debug)
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("RENAMER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestDerived(t *testing.T) {
	cfg := &Config{Port: 3000, MaxUploadMB: 50}
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes())
}
