package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestNode(capacity int, ttl float64) (*ServiceNode, *Network, *Engine, *fakeAgent) {
	e := NewEngine()
	net := NewNetwork(NewPartitionedRNG(NewSimulationKey(1)), 1, 1, 0)
	db := newFakeAgent("db")
	node := NewServiceNode("node_0", capacity, ttl, net, db, nil)
	return node, net, e, db
}

func TestServiceNode_Read_ColdMiss_SendsReadDB(t *testing.T) {
	node, _, e, db := newTestNode(10, 500)
	requester := newFakeAgent("client")

	node.Handle(e, NewMessage(requester, node, Payload{Type: PayloadRead, Key: "key_1"}))
	e.Advance(10)

	assert.Len(t, db.received, 1)
	assert.Equal(t, PayloadReadDB, db.received[0].Payload.Type)
	assert.Contains(t, node.pending, "key_1")
}

func TestServiceNode_Read_SecondConcurrentMiss_DoesNotIssueSecondReadDB(t *testing.T) {
	// spec §4.7 single-flight + §9(c) last-writer-wins
	node, _, e, db := newTestNode(10, 500)
	r1 := newFakeAgent("r1")
	r2 := newFakeAgent("r2")

	node.Handle(e, NewMessage(r1, node, Payload{Type: PayloadRead, Key: "key_1"}))
	node.Handle(e, NewMessage(r2, node, Payload{Type: PayloadRead, Key: "key_1"}))
	e.Advance(10)

	// THEN only one READ_DB was sent
	assert.Len(t, db.received, 1)
	// AND the pending slot now holds the latest requester (r2), not r1
	assert.Equal(t, r2, node.pending["key_1"])
}

func TestServiceNode_ReadResponse_FillsCacheAndAnswersPendingRequester(t *testing.T) {
	node, _, e, _ := newTestNode(10, 500)
	requester := newFakeAgent("client")
	node.pending["key_1"] = requester

	node.Handle(e, NewMessage(nil, node, Payload{Type: PayloadReadResponse, Key: "key_1", Value: "v1", Version: 1}))
	e.Advance(10)

	entry, ok := node.cache.Get("key_1")
	assert.True(t, ok)
	assert.Equal(t, "v1", entry.Value)
	assert.NotContains(t, node.pending, "key_1")
	assert.Len(t, requester.received, 1)
	assert.Equal(t, "v1", requester.received[0].Payload.Value)
}

func TestServiceNode_Read_WarmHit_RepliesFromCacheNoReadDB(t *testing.T) {
	node, _, e, db := newTestNode(10, 500)
	requester := newFakeAgent("client")
	node.cache.Put(CacheEntry{Key: "key_1", Value: "v1", Version: 1, Expiry: 1000})

	node.Handle(e, NewMessage(requester, node, Payload{Type: PayloadRead, Key: "key_1"}))
	e.Advance(10)

	assert.Empty(t, db.received)
	assert.Len(t, requester.received, 1)
	assert.Equal(t, "v1", requester.received[0].Payload.Value)
}

func TestServiceNode_Read_ExpiredEntry_IsAMiss(t *testing.T) {
	node, _, e, db := newTestNode(10, 20)
	requester := newFakeAgent("client")
	node.cache.Put(CacheEntry{Key: "key_1", Value: "v1", Version: 1, Expiry: 5})

	e.Advance(30) // advance clock past expiry with nothing queued
	node.Handle(e, NewMessage(requester, node, Payload{Type: PayloadRead, Key: "key_1"}))
	e.Advance(40)

	assert.Len(t, db.received, 1)
}

func TestServiceNode_Invalidate_RemovesEntryUnconditionally(t *testing.T) {
	node, _, e, _ := newTestNode(10, 500)
	node.cache.Put(CacheEntry{Key: "key_1", Value: "v1", Version: 1, Expiry: 1000})

	node.Handle(e, NewMessage(nil, node, Payload{Type: PayloadInvalidate, Key: "key_1", Version: 99}))

	_, ok := node.cache.Get("key_1")
	assert.False(t, ok)
}

func TestServiceNode_Inactive_DropsAllMessagesSilently(t *testing.T) {
	// spec §8 property 7: dead-node silence
	node, _, e, db := newTestNode(10, 500)
	node.Deactivate()
	requester := newFakeAgent("client")

	node.Handle(e, NewMessage(requester, node, Payload{Type: PayloadRead, Key: "key_1"}))
	e.Advance(10)

	assert.Empty(t, db.received)
	assert.Empty(t, requester.received)
}

func TestServiceNode_Read_ReportsToObserver(t *testing.T) {
	e := NewEngine()
	net := NewNetwork(NewPartitionedRNG(NewSimulationKey(1)), 1, 1, 0)
	db := newFakeAgent("db")
	observer := NewObserver("obs")
	node := NewServiceNode("node_0", 10, 500, net, db, observer)
	requester := newFakeAgent("client")

	msg := NewMessage(requester, node, Payload{Type: PayloadRead, Key: "key_1"})
	node.Handle(e, msg)

	assert.Equal(t, 1, observer.Misses)
	assert.Equal(t, 1, observer.TotalReads)
	assert.Equal(t, msg.ID, observer.RecentLogs()[0].Details.MessageID,
		"the triggering message's correlation id must be threaded into the log record")
}
