package cmd

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cachefabric/simfabric/sim"
)

func TestRunCmd_DefaultLogLevel_RemainsWarn(t *testing.T) {
	// GIVEN the run command with its registered flags
	flag := runCmd.Flags().Lookup("log")

	// WHEN we check the default value
	// THEN it must be "warn" so routine runs stay quiet by default
	assert.NotNil(t, flag, "log flag must be registered")
	assert.Equal(t, "warn", flag.DefValue)
}

func TestRunCmd_NodesFlag_DefaultMatchesSimDefaults(t *testing.T) {
	// GIVEN the run command with its registered flags
	flag := runCmd.Flags().Lookup("nodes")

	// THEN its default tracks sim.DefaultSimConfig(), not a hardcoded literal
	assert.NotNil(t, flag)
	assert.Equal(t, strconv.Itoa(sim.DefaultSimConfig().Nodes), flag.DefValue)
}

func TestRunCmd_AllConfigFlags_AreRegistered(t *testing.T) {
	for _, name := range []string{
		"nodes", "cache-size", "duration", "byzantine-nodes", "chaos",
		"key-space", "seed", "ttl", "chunk", "latency-min", "latency-max",
		"drop-prob", "chaos-kill-prob", "byzantine-corrupt-prob", "config",
	} {
		assert.NotNilf(t, runCmd.Flags().Lookup(name), "flag %q must be registered", name)
	}
}

func TestStdoutSink_Emit_MarshalsRecordAsJSON(t *testing.T) {
	sink := newStdoutSink()
	assert.NotPanics(t, func() {
		sink.Emit(map[string]any{"type": "SIM_UPDATE", "time": 1.0})
	})
}
