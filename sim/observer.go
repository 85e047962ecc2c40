package sim

// recentLogCap bounds the observer's recent-log ring (spec §3 "Observer
// Metrics": "a bounded deque of <= 21 most-recent log records").
const recentLogCap = 21

// LogDetails carries the structured fields a reported event may attach;
// Node/Key populate agent_stats and the "<key> on <node>" log line (spec
// §4.12, §13 "Per-node log message text"). MessageID threads the
// triggering Message's correlation id through to the emitted LOG record,
// so an external consumer can tie a telemetry line back to the specific
// READ that produced it.
type LogDetails struct {
	Node      string
	Key       string
	MessageID string
}

// LogRecord is one entry in the observer's recent-log ring.
type LogRecord struct {
	Time    float64
	Type    string
	Details LogDetails
}

// nodeStats is the per-node hit/miss breakdown (spec §3 "agent_stats").
type nodeStats struct {
	Hits   int
	Misses int
}

// Observer is the telemetry sink for in-simulation events (spec §4.12).
// It never replies to messages; reporting is push-only, called directly
// by service nodes rather than routed through the network.
type Observer struct {
	id         string
	Hits       int
	Misses     int
	TotalReads int
	counters   map[string]int
	agentStats map[string]*nodeStats
	recentLogs []LogRecord
}

// NewObserver builds an empty observer.
func NewObserver(id string) *Observer {
	return &Observer{
		id:         id,
		counters:   make(map[string]int),
		agentStats: make(map[string]*nodeStats),
	}
}

func (o *Observer) ID() string   { return o.id }
func (o *Observer) Active() bool { return true }
func (o *Observer) Kind() Kind   { return KindObserver }

// Handle: the observer never replies to messages (spec §4.12).
func (o *Observer) Handle(e *Engine, msg Message) {}

// Report atomically increments the counter for eventType, prepends a log
// record (truncating to recentLogCap), and — for CACHE_HIT/CACHE_MISS
// with a node in details — updates per-node and global hit/miss/total
// counters (spec §4.12, §8 property 8 "Counter coherence").
func (o *Observer) Report(now float64, eventType string, details LogDetails) {
	o.counters[eventType]++

	o.recentLogs = append([]LogRecord{{Time: now, Type: eventType, Details: details}}, o.recentLogs...)
	if len(o.recentLogs) > recentLogCap {
		o.recentLogs = o.recentLogs[:recentLogCap]
	}

	if details.Node == "" {
		return
	}
	switch eventType {
	case "CACHE_HIT":
		stats := o.nodeStatsFor(details.Node)
		stats.Hits++
		o.Hits++
		o.TotalReads++
	case "CACHE_MISS":
		stats := o.nodeStatsFor(details.Node)
		stats.Misses++
		o.Misses++
		o.TotalReads++
	}
}

func (o *Observer) nodeStatsFor(node string) *nodeStats {
	s, ok := o.agentStats[node]
	if !ok {
		s = &nodeStats{}
		o.agentStats[node] = s
	}
	return s
}

// AgentStats returns a snapshot of per-node hit/miss counters, keyed by
// node id.
func (o *Observer) AgentStats() map[string]NodeStatsSnapshot {
	out := make(map[string]NodeStatsSnapshot, len(o.agentStats))
	for id, s := range o.agentStats {
		out[id] = NodeStatsSnapshot{Hits: s.Hits, Misses: s.Misses}
	}
	return out
}

// NodeStatsSnapshot is the exported, copy-safe view of nodeStats.
type NodeStatsSnapshot struct {
	Hits   int
	Misses int
}

// RecentLogs returns the current recent-log ring, newest first.
func (o *Observer) RecentLogs() []LogRecord {
	out := make([]LogRecord, len(o.recentLogs))
	copy(out, o.recentLogs)
	return out
}
