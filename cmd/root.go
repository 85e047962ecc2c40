// cmd/root.go
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cachefabric/simfabric/sim"
)

var (
	nodes            int
	cacheSize        int
	duration         float64
	byzantineNodes   int
	chaosEnabled     bool
	keySpace         int
	seed             int64
	ttl              float64
	chunkSize        float64
	latencyMin       float64
	latencyMax       float64
	dropProb         float64
	chaosKillProb    float64
	byzantineCorrupt float64
	logLevel         string
	configPath       string
)

var rootCmd = &cobra.Command{
	Use:   "cachesim",
	Short: "Discrete-event simulator for a distributed caching fabric",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cache-coherence simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.DefaultSimConfig()
		cfg.Nodes = nodes
		cfg.CacheSize = cacheSize
		cfg.Duration = duration
		cfg.ByzantineNodes = byzantineNodes
		cfg.ChaosEnabled = chaosEnabled
		cfg.KeySpace = keySpace
		cfg.Seed = seed
		cfg.TTL = ttl
		cfg.ChunkSize = chunkSize
		cfg.LatencyMin = latencyMin
		cfg.LatencyMax = latencyMax
		cfg.DropProb = dropProb
		cfg.ChaosKillProb = chaosKillProb
		cfg.ByzantineCorrupt = byzantineCorrupt

		if configPath != "" {
			cfg, err = loadConfigFile(configPath, cfg)
			if err != nil {
				logrus.Fatalf("Failed to load config: %v", err)
			}
		}

		logrus.Infof("Starting simulation: nodes=%d cache_size=%d duration=%.1f byzantine_nodes=%d chaos=%v key_space=%d seed=%d",
			cfg.Nodes, cfg.CacheSize, cfg.Duration, cfg.ByzantineNodes, cfg.ChaosEnabled, cfg.KeySpace, cfg.Seed)

		driver, err := sim.NewDriver(cfg)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		driver.Run(newStdoutSink())
		logrus.Info("Simulation complete.")
	},
}

// stdoutSink prints each telemetry record as a JSON line, a stand-in for
// the real WebSocket broadcaster described in spec §6 (out of core
// scope; see SPEC_FULL.md §6).
type stdoutSink struct{}

func newStdoutSink() *stdoutSink { return &stdoutSink{} }

func (s *stdoutSink) Emit(record any) {
	b, err := json.Marshal(record)
	if err != nil {
		logrus.WithError(err).Error("telemetry-sink failure: could not marshal record")
		return
	}
	fmt.Println(string(b))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := sim.DefaultSimConfig()

	runCmd.Flags().IntVar(&nodes, "nodes", defaults.Nodes, "Number of cache nodes")
	runCmd.Flags().IntVar(&cacheSize, "cache-size", defaults.CacheSize, "LRU capacity per cache node")
	runCmd.Flags().Float64Var(&duration, "duration", defaults.Duration, "Virtual-time horizon for the run")
	runCmd.Flags().IntVar(&byzantineNodes, "byzantine-nodes", defaults.ByzantineNodes, "How many of the first N nodes are Byzantine")
	runCmd.Flags().BoolVar(&chaosEnabled, "chaos", defaults.ChaosEnabled, "Enable the chaos monkey")
	runCmd.Flags().IntVar(&keySpace, "key-space", defaults.KeySpace, "Cardinality of keys pre-seeded and drawn by the client")
	runCmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Master RNG seed for reproducibility")
	runCmd.Flags().Float64Var(&ttl, "ttl", defaults.TTL, "Cache entry TTL in virtual-time units")
	runCmd.Flags().Float64Var(&chunkSize, "chunk", defaults.ChunkSize, "Virtual-time chunk size between telemetry emissions")
	runCmd.Flags().Float64Var(&latencyMin, "latency-min", defaults.LatencyMin, "Minimum network latency sample")
	runCmd.Flags().Float64Var(&latencyMax, "latency-max", defaults.LatencyMax, "Maximum network latency sample")
	runCmd.Flags().Float64Var(&dropProb, "drop-prob", defaults.DropProb, "Network message drop probability")
	runCmd.Flags().Float64Var(&chaosKillProb, "chaos-kill-prob", defaults.ChaosKillProb, "Per-tick probability the chaos monkey kills a node")
	runCmd.Flags().Float64Var(&byzantineCorrupt, "byzantine-corrupt-prob", defaults.ByzantineCorrupt, "Per-read probability a Byzantine node fabricates its response")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (debug, info, warn, error)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML config file overlaying these flags")

	rootCmd.AddCommand(runCmd)
}
