package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/uvwrap/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 60.0, cfg.SeamAngleThresholdDeg)
	assert.Equal(t, 0.02, cfg.PackingMargin)
	assert.Equal(t, 256, cfg.CoverageResolution)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seam_angle_threshold_deg: 45\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 45.0, cfg.SeamAngleThresholdDeg)
	assert.Equal(t, 0.02, cfg.PackingMargin) // untouched, still default
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))
	_, err := config.Load(path)
	assert.Error(t, err)
}
