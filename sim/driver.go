package sim

import (
	"strconv"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// cacheNode is the subset of ServiceNode/ByzantineNode the driver needs
// to report liveness and register chaos targets and database subscribers.
type cacheNode interface {
	AgentHandle
	Deactivatable
}

// Driver is the chunked harness (spec §4.13, C13): it builds the agent
// graph from a SimConfig, advances the engine in bounded windows, and
// streams progress/log/final records to an external TelemetrySink.
type Driver struct {
	cfg      SimConfig
	engine   *Engine
	rng      *PartitionedRNG
	network  *Network
	db       *Database
	nodes    []cacheNode
	lb       *LoadBalancer
	client   *Client
	chaos    *ChaosMonkey
	observer *Observer

	lastLogCount int
	stopped      atomic.Bool
}

// NewDriver builds the full agent graph for cfg: observer, network,
// seeded database, cache nodes (some Byzantine per config), load
// balancer, one client targeting the load balancer, and — if enabled —
// a chaos monkey. All cache nodes are registered as database subscribers
// (spec §4.13 steps 1-2).
func NewDriver(cfg SimConfig) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := NewEngine()
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	network := NewNetwork(rng, cfg.LatencyMin, cfg.LatencyMax, cfg.DropProb)

	db := NewDatabase("db", network)
	db.Seed(cfg.KeySpace)

	observer := NewObserver("observer")

	nodes := make([]cacheNode, cfg.Nodes)
	lbNodes := make([]ServiceNodeLike, cfg.Nodes)
	for i := 0; i < cfg.Nodes; i++ {
		base := NewServiceNode(nodeID(i), cfg.CacheSize, cfg.TTL, network, db, observer)
		if i < cfg.ByzantineNodes {
			node := NewByzantineNode(base, cfg.ByzantineCorrupt, rng)
			nodes[i] = node
			lbNodes[i] = node
		} else {
			nodes[i] = base
			lbNodes[i] = base
		}
		db.Subscribe(nodes[i])
	}

	lb := NewLoadBalancer("lb", lbNodes, network)

	client := NewClient(e, NewClientConfig{
		ID:       "client1",
		Network:  network,
		Target:   lb,
		MaxTime:  cfg.Duration,
		KeySpace: cfg.KeySpace,
		RNG:      rng,
	})

	d := &Driver{
		cfg:      cfg,
		engine:   e,
		rng:      rng,
		network:  network,
		db:       db,
		nodes:    nodes,
		lb:       lb,
		client:   client,
		observer: observer,
	}

	if cfg.ChaosEnabled {
		targets := make([]Deactivatable, len(nodes))
		for i, n := range nodes {
			targets[i] = n
		}
		d.chaos = NewChaosMonkey(e, "chaos_monkey", targets, cfg.ChaosKillProb, rng)
	}

	return d, nil
}

func nodeID(i int) string { return "node_" + strconv.Itoa(i) }

// InjectWrite sends a WRITE{key,value} to the database from an
// unspecified external sender, the way an out-of-core control plane
// would (spec §3 payload "WRITE"; §13 "External WRITE entry point").
func (d *Driver) InjectWrite(key, value string) {
	d.network.Send(d.engine, NewMessage(nil, d.db, Payload{Type: PayloadWrite, Key: key, Value: value}))
}

// Stop requests the run loop to halt at the next chunk boundary (spec
// §4.13 step 3: "Stop when ... an external stop signal is set"; §13
// "Stop signal"). It never interrupts mid-chunk.
func (d *Driver) Stop() { d.stopped.Store(true) }

// Engine exposes the underlying engine, e.g. for tests that want to
// drive Advance directly alongside a running driver.
func (d *Driver) Engine() *Engine { return d.engine }

// Observer exposes the observer for tests and direct metric inspection.
func (d *Driver) Observer() *Observer { return d.observer }

// Client exposes the single client agent, e.g. for tests that want to
// read Client.Reads() after a run.
func (d *Driver) Client() *Client { return d.client }

// Nodes exposes the cache node roster, e.g. for tests asserting on
// per-node liveness after chaos.
func (d *Driver) Nodes() []cacheNode { return d.nodes }

// Run executes the simulation in chunks of cfg.ChunkSize virtual-time
// units, emitting a StateUpdate and any new LogUpdates after each chunk,
// and a FinalUpdate when the run ends (spec §4.13 step 3-4).
func (d *Driver) Run(sink TelemetrySink) {
	duration := d.cfg.Duration
	for d.engine.Time < duration && !d.stopped.Load() {
		next := d.engine.Time + d.cfg.ChunkSize
		if next > duration {
			next = duration
		}
		d.engine.Advance(next)
		d.emitChunk(sink, duration)
	}
	d.emitFinal(sink)
}

func (d *Driver) emitChunk(sink TelemetrySink, duration float64) {
	progress := 100.0
	if duration > 0 {
		progress = min(100, d.engine.Time/duration*100)
	}

	agentStates := make(map[string]bool, len(d.nodes))
	for _, n := range d.nodes {
		agentStates[n.ID()] = n.Active()
	}

	sink.Emit(StateUpdate{
		Type:        "SIM_UPDATE",
		Time:        d.engine.Time,
		Progress:    progress,
		Metrics:     d.metricsSnapshot(),
		AgentStates: agentStates,
	})

	d.emitNewLogs(sink)
}

// emitNewLogs diffs recent_logs against the last emission and emits up to
// 10 new records, oldest first (spec §4.13 step c, §13).
func (d *Driver) emitNewLogs(sink TelemetrySink) {
	logs := d.observer.RecentLogs()
	// The ring stops growing once full, so count every report the observer
	// has taken (one log record each) rather than the ring's length.
	total := 0
	for _, c := range d.observer.counters {
		total += c
	}
	newCount := min(total-d.lastLogCount, len(logs))
	d.lastLogCount = total
	if newCount <= 0 {
		return
	}
	if newCount > 10 {
		newCount = 10
	}
	// logs is newest-first; take the newCount freshest, then reverse to
	// emit oldest-first.
	fresh := logs[:newCount]
	for i := len(fresh) - 1; i >= 0; i-- {
		rec := fresh[i]
		sink.Emit(LogUpdate{
			Type:      "LOG",
			Time:      rec.Time,
			LogType:   rec.Type,
			Msg:       logMsg(rec.Details),
			MessageID: rec.Details.MessageID,
		})
	}
}

func (d *Driver) emitFinal(sink TelemetrySink) {
	sink.Emit(FinalUpdate{
		Type:         "SIM_FINISHED",
		FinalMetrics: d.metricsSnapshot(),
		FinalTime:    d.engine.Time,
	})
	logrus.WithFields(logrus.Fields{
		"time":   d.engine.Time,
		"hits":   d.observer.Hits,
		"misses": d.observer.Misses,
	}).Info("simulation finished")
}

func (d *Driver) metricsSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Hits:       d.observer.Hits,
		Misses:     d.observer.Misses,
		TotalReads: d.observer.TotalReads,
		AgentStats: d.observer.AgentStats(),
		RecentLogs: d.observer.RecentLogs(),
	}
}
