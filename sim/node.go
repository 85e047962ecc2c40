package sim

// ServiceNode is a cache node (spec §4.7). It coalesces concurrent misses
// for the same key into a single outstanding READ_DB (single-flight),
// last-writer-wins on the stored requester if a second miss for the same
// key arrives before the first resolves (spec §9(c)).
type ServiceNode struct {
	id       string
	cache    *LRUCache
	network  *Network
	db       AgentHandle
	observer *Observer
	ttl      float64
	active   bool
	pending  map[string]AgentHandle
}

// NewServiceNode builds a cache node with the given cache capacity and
// per-entry TTL, wired to the shared network, database, and observer.
func NewServiceNode(id string, capacity int, ttl float64, network *Network, db AgentHandle, observer *Observer) *ServiceNode {
	return &ServiceNode{
		id:       id,
		cache:    NewLRUCache(capacity),
		network:  network,
		db:       db,
		observer: observer,
		ttl:      ttl,
		active:   true,
		pending:  make(map[string]AgentHandle),
	}
}

func (n *ServiceNode) ID() string   { return n.id }
func (n *ServiceNode) Active() bool { return n.active }
func (n *ServiceNode) Kind() Kind   { return KindServiceNode }

// Deactivate permanently retires the node (spec §3 "Lifecycle"; no
// resurrection in the core model).
func (n *ServiceNode) Deactivate() { n.active = false }

// Handle implements AgentHandle, dispatching READ, INVALIDATE, and
// READ_RESPONSE per the state machine in spec §4.7. A dead node drops
// every incoming message silently and reports nothing (spec §4.7,
// "Dead-node silence", testable property 7).
func (n *ServiceNode) Handle(e *Engine, msg Message) {
	if !n.active {
		return
	}
	switch msg.Payload.Type {
	case PayloadRead:
		n.handleRead(e, msg.Payload.Key, msg.Src, msg.ID)
	case PayloadInvalidate:
		n.cache.Invalidate(msg.Payload.Key)
	case PayloadReadResponse:
		n.handleDBResponse(e, msg.Payload)
	}
}

func (n *ServiceNode) handleRead(e *Engine, key string, requester AgentHandle, msgID string) {
	entry, ok := n.cache.Get(key)
	if ok && !entry.Expired(e.Time) {
		n.report(e, "CACHE_HIT", key, msgID)
		n.network.Send(e, NewMessage(n, requester, Payload{
			Type:    PayloadReadResponse,
			Key:     key,
			Value:   entry.Value,
			Version: entry.Version,
		}))
		return
	}

	n.report(e, "CACHE_MISS", key, msgID)
	_, inFlight := n.pending[key]
	// Single-flight: overwrite the stored requester so only the most
	// recent one is answered (last-writer-wins, spec §4.7, §9(c)); don't
	// issue a second READ_DB for the same key.
	n.pending[key] = requester
	if inFlight {
		return
	}
	n.network.Send(e, NewMessage(n, n.db, Payload{Type: PayloadReadDB, Key: key}))
}

func (n *ServiceNode) handleDBResponse(e *Engine, p Payload) {
	entry := CacheEntry{Key: p.Key, Value: p.Value, Version: p.Version, Expiry: e.Time + n.ttl}
	n.cache.Put(entry)
	requester, ok := n.pending[p.Key]
	if !ok {
		return
	}
	delete(n.pending, p.Key)
	n.network.Send(e, NewMessage(n, requester, Payload{
		Type:    PayloadReadResponse,
		Key:     p.Key,
		Value:   p.Value,
		Version: p.Version,
	}))
}

func (n *ServiceNode) report(e *Engine, eventType, key, msgID string) {
	if n.observer == nil {
		return
	}
	n.observer.Report(e.Time, eventType, LogDetails{Node: n.id, Key: key, MessageID: msgID})
}
