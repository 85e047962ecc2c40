package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cachefabric/simfabric/sim"
)

// loadConfigFile overlays a YAML file's fields onto base. Unknown keys are
// a hard error (decoder.KnownFields(true)), matching the teacher's
// defaults.yaml loader so a typo'd config key fails loudly rather than
// being silently ignored.
func loadConfigFile(path string, base sim.SimConfig) (sim.SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return base, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
