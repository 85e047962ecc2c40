package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObserver_Report_CacheHit_UpdatesGlobalAndPerNodeCounters(t *testing.T) {
	o := NewObserver("obs")

	o.Report(1, "CACHE_HIT", LogDetails{Node: "node_0", Key: "key_1"})

	assert.Equal(t, 1, o.Hits)
	assert.Equal(t, 1, o.TotalReads)
	assert.Equal(t, 0, o.Misses)
	assert.Equal(t, 1, o.AgentStats()["node_0"].Hits)
}

func TestObserver_Report_CacheMiss_UpdatesGlobalAndPerNodeCounters(t *testing.T) {
	o := NewObserver("obs")

	o.Report(1, "CACHE_MISS", LogDetails{Node: "node_0", Key: "key_1"})

	assert.Equal(t, 1, o.Misses)
	assert.Equal(t, 1, o.TotalReads)
	assert.Equal(t, 1, o.AgentStats()["node_0"].Misses)
}

func TestObserver_Report_CounterCoherence_TotalEqualsHitsPlusMisses(t *testing.T) {
	// spec §8 property 8
	o := NewObserver("obs")
	o.Report(1, "CACHE_HIT", LogDetails{Node: "node_0", Key: "key_1"})
	o.Report(2, "CACHE_MISS", LogDetails{Node: "node_0", Key: "key_2"})
	o.Report(3, "CACHE_HIT", LogDetails{Node: "node_1", Key: "key_3"})

	assert.Equal(t, o.Hits+o.Misses, o.TotalReads)
}

func TestObserver_Report_EventWithoutNode_DoesNotTouchHitMissCounters(t *testing.T) {
	o := NewObserver("obs")

	o.Report(1, "NODE_KILLED", LogDetails{})

	assert.Equal(t, 0, o.TotalReads)
	assert.Len(t, o.RecentLogs(), 1)
}

func TestObserver_RecentLogs_BoundedAndNewestFirst(t *testing.T) {
	o := NewObserver("obs")
	for i := 0; i < 30; i++ {
		o.Report(float64(i), "CACHE_MISS", LogDetails{Node: "node_0", Key: "key_1"})
	}

	logs := o.RecentLogs()
	assert.Len(t, logs, recentLogCap)
	assert.Equal(t, float64(29), logs[0].Time, "ring must be newest-first")
}

func TestObserver_RecentLogs_ReturnsACopyNotTheInternalSlice(t *testing.T) {
	o := NewObserver("obs")
	o.Report(1, "CACHE_HIT", LogDetails{Node: "node_0"})

	logs := o.RecentLogs()
	logs[0].Type = "MUTATED"

	assert.Equal(t, "CACHE_HIT", o.RecentLogs()[0].Type)
}

func TestObserver_Handle_IsANoOp(t *testing.T) {
	o := NewObserver("obs")
	e := NewEngine()
	assert.NotPanics(t, func() {
		o.Handle(e, NewMessage(nil, o, Payload{Type: PayloadRead}))
	})
}
