package sim

import "math/rand"

// Network models a lossy, variable-latency transport (spec §4.4). It is
// not an AgentHandle: it has no identity a message is addressed to, only
// a Send operation agents call directly.
type Network struct {
	latency  UniformSampler
	dropProb float64
	rng      *rand.Rand
}

// NewNetwork builds a Network whose latency is drawn uniformly from
// [latencyMin, latencyMax) and whose drop probability is dropProb, with
// every draw routed through the network subsystem of rng (spec §5).
func NewNetwork(rng *PartitionedRNG, latencyMin, latencyMax, dropProb float64) *Network {
	src := rng.ForSubsystem(SubsystemNetwork)
	return &Network{
		latency:  NewUniformSampler(latencyMin, latencyMax, src),
		dropProb: dropProb,
		rng:      src,
	}
}

// Send draws a drop decision and, absent a drop, a latency sample, then
// schedules a DeliverAction at now+delay. Ordering between two Sends is
// not guaranteed: with variable latency, overtakes are permitted; equal
// delivery times fall back to FIFO tie-break in the event queue
// (spec §4.4).
func (n *Network) Send(e *Engine, msg Message) {
	if Coin(n.rng, n.dropProb) {
		return
	}
	delay := n.latency.Sample()
	if delay < 0 {
		delay = 0
	}
	e.Schedule(e.Time+delay, &DeliverAction{Msg: msg})
}
