package sim

import "fmt"

// SimConfig groups the recognised configuration fields for a run (spec
// §6 "Configuration"). No persisted state: a simulation is built fresh
// from a SimConfig and discarded at run end.
type SimConfig struct {
	Nodes            int     `yaml:"nodes"`
	CacheSize        int     `yaml:"cache_size"`
	Duration         float64 `yaml:"duration"`
	ByzantineNodes   int     `yaml:"byzantine_nodes"`
	ChaosEnabled     bool    `yaml:"chaos_enabled"`
	KeySpace         int     `yaml:"key_space"`
	Seed             int64   `yaml:"seed"`
	TTL              float64 `yaml:"ttl"`
	ChunkSize        float64 `yaml:"chunk_size"`
	LatencyMin       float64 `yaml:"latency_min"`
	LatencyMax       float64 `yaml:"latency_max"`
	DropProb         float64 `yaml:"drop_prob"`
	ChaosKillProb    float64 `yaml:"chaos_kill_prob"`
	ByzantineCorrupt float64 `yaml:"byzantine_corrupt_prob"`
}

// DefaultSimConfig returns the driver's built-in defaults (spec §4.13:
// chunk size Delta = 20; §6 implicit key_space default of 10).
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Nodes:            3,
		CacheSize:        100,
		Duration:         1000,
		ByzantineNodes:   0,
		ChaosEnabled:     false,
		KeySpace:         10,
		Seed:             1,
		TTL:              500,
		ChunkSize:        20,
		LatencyMin:       1,
		LatencyMax:       5,
		DropProb:         0,
		ChaosKillProb:    0.1,
		ByzantineCorrupt: 0.2,
	}
}

// Validate rejects invalid configurations before a run starts (spec §7
// "Config error (invalid parameters): refuse to start").
func (c SimConfig) Validate() error {
	switch {
	case c.Nodes < 1:
		return fmt.Errorf("nodes must be >= 1, got %d", c.Nodes)
	case c.CacheSize < 1:
		return fmt.Errorf("cache_size must be >= 1, got %d", c.CacheSize)
	case c.Duration < 0:
		return fmt.Errorf("duration must be >= 0, got %v", c.Duration)
	case c.ByzantineNodes < 0:
		return fmt.Errorf("byzantine_nodes must be >= 0, got %d", c.ByzantineNodes)
	case c.ByzantineNodes > c.Nodes:
		return fmt.Errorf("byzantine_nodes (%d) cannot exceed nodes (%d)", c.ByzantineNodes, c.Nodes)
	case c.KeySpace < 1:
		return fmt.Errorf("key_space must be >= 1, got %d", c.KeySpace)
	case c.DropProb < 0 || c.DropProb > 1:
		return fmt.Errorf("drop_prob must be in [0,1], got %v", c.DropProb)
	case c.ChaosKillProb < 0 || c.ChaosKillProb > 1:
		return fmt.Errorf("chaos_kill_prob must be in [0,1], got %v", c.ChaosKillProb)
	case c.ByzantineCorrupt < 0 || c.ByzantineCorrupt > 1:
		return fmt.Errorf("byzantine_corrupt_prob must be in [0,1], got %v", c.ByzantineCorrupt)
	case c.ChunkSize <= 0:
		return fmt.Errorf("chunk_size must be > 0, got %v", c.ChunkSize)
	}
	return nil
}
