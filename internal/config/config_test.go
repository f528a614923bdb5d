package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCoreMatchesSpecDefaults(t *testing.T) {
	cfg := DefaultCore()

	assert.Equal(t, 3*time.Second, cfg.CombatRoundInterval)
	assert.Equal(t, 30*time.Second, cfg.RegenInterval)
	assert.InDelta(t, 0.67, cfg.ThreatDecayFactor, 0.0001)
	assert.InDelta(t, 1.10, cfg.ThreatGraceWindow, 0.0001)
}

func TestLoadCoreReturnsDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadCore(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultCore(), cfg)
}

func TestLoadCoreOverlaysYAMLOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "core.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threat_decay_factor: 0.5\nregen_interval: 45s\n"), 0o644))

	cfg, err := LoadCore(path)

	require.NoError(t, err)
	assert.InDelta(t, 0.5, cfg.ThreatDecayFactor, 0.0001)
	assert.Equal(t, 45*time.Second, cfg.RegenInterval)
	assert.Equal(t, 3*time.Second, cfg.CombatRoundInterval, "unset fields keep their default")
}

func TestLoadCorePropagatesParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threat_decay_factor: [not a number"), 0o644))

	_, err := LoadCore(path)

	assert.Error(t, err)
}
