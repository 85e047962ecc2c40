package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cachefabric/simfabric/sim"
)

func TestLoadConfigFile_OverlaysRecognizedFields(t *testing.T) {
	// GIVEN a YAML file overriding a subset of fields
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	err := os.WriteFile(path, []byte("nodes: 5\nchaos_enabled: true\n"), 0o644)
	assert.NoError(t, err)

	// WHEN it is loaded over the defaults
	cfg, err := loadConfigFile(path, sim.DefaultSimConfig())

	// THEN the named fields are overridden and the rest keep their base value
	assert.NoError(t, err)
	assert.Equal(t, 5, cfg.Nodes)
	assert.True(t, cfg.ChaosEnabled)
	assert.Equal(t, sim.DefaultSimConfig().CacheSize, cfg.CacheSize)
}

func TestLoadConfigFile_UnknownField_IsAHardError(t *testing.T) {
	// GIVEN a YAML file with a typo'd key
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	err := os.WriteFile(path, []byte("noeds: 5\n"), 0o644)
	assert.NoError(t, err)

	// WHEN it is loaded
	_, err = loadConfigFile(path, sim.DefaultSimConfig())

	// THEN it fails loudly rather than being silently ignored
	assert.Error(t, err)
}

func TestLoadConfigFile_MissingFile_ReturnsError(t *testing.T) {
	_, err := loadConfigFile("/nonexistent/path.yaml", sim.DefaultSimConfig())
	assert.Error(t, err)
}
