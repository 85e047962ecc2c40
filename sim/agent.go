package sim

// AgentHandle is the closed capability set every simulation participant
// implements: an identity, a liveness flag, and a message handler invoked
// synchronously by the engine (spec §3 "Agent Handle", §9 "dynamic
// dispatch over agents" — a closed sum type over a fixed roster, not open
// polymorphism).
type AgentHandle interface {
	// ID returns the agent's stable identity string.
	ID() string
	// Active reports whether the agent currently accepts messages.
	Active() bool
	// Kind identifies which member of the fixed agent roster this is.
	Kind() Kind
	// Handle processes one delivered message. It must be synchronous and
	// must not block; any further messages it needs to send go through
	// the network, which turns them into future events.
	Handle(e *Engine, msg Message)
}

// Kind enumerates the fixed agent roster named in spec §9.
type Kind int

const (
	KindClient Kind = iota
	KindServiceNode
	KindByzantineNode
	KindLoadBalancer
	KindDatabase
	KindChaos
	KindObserver
)
