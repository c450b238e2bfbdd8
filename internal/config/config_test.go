// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.ColumnWidth)
	assert.Equal(t, "gb", cfg.IDField)
	assert.Equal(t, 100, cfg.Complexity.WindowLength)
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columnWidth: 60\ncomplexity:\n  windowLength: 50\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.ColumnWidth)
	assert.Equal(t, 50, cfg.Complexity.WindowLength)
	// Untouched settings keep their defaults.
	assert.Equal(t, "gb", cfg.IDField)
	assert.Equal(t, 4, cfg.Complexity.AlphabetSize)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvFallbackIsSilent(t *testing.T) {
	t.Setenv("SEQSTAT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t:"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
