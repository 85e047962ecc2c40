package sim

import "math/rand"

// ByzantineNode is a ServiceNode variant that, with probability q,
// bypasses the cache and database entirely and replies with a fabricated
// payload (spec §4.8). Corruption is detectable only by clients that
// check expected versions; the default client does not, by design, as a
// resilience-testing primitive rather than a bug.
type ByzantineNode struct {
	*ServiceNode
	q   float64
	rng *rand.Rand
}

// NewByzantineNode wraps a ServiceNode with a corruption probability q,
// drawn from the byzantine subsystem of rng (spec §5).
func NewByzantineNode(node *ServiceNode, q float64, rng *PartitionedRNG) *ByzantineNode {
	return &ByzantineNode{ServiceNode: node, q: q, rng: rng.ForSubsystem(SubsystemByzantine)}
}

func (b *ByzantineNode) Kind() Kind { return KindByzantineNode }

// Handle overrides ServiceNode's READ handling with the corruption coin;
// every other payload type (INVALIDATE, READ_RESPONSE) falls through to
// the embedded ServiceNode unchanged.
func (b *ByzantineNode) Handle(e *Engine, msg Message) {
	if !b.Active() {
		return
	}
	if msg.Payload.Type == PayloadRead && Coin(b.rng, b.q) {
		b.network.Send(e, NewMessage(b, msg.Src, Payload{
			Type:    PayloadReadResponse,
			Key:     msg.Payload.Key,
			Value:   "CORRUPTED",
			Version: -1,
		}))
		return
	}
	b.ServiceNode.Handle(e, msg)
}
