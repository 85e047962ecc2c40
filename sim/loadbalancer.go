package sim

import "hash/fnv"

// LoadBalancer routes READ messages to cache nodes by a deterministic
// mod-N hash of the key, probing forward for the first live node (spec
// §4.9). Same-key stickiness maximizes cache hits; liveness probing
// tolerates chaos failures without a rehashing storm.
type LoadBalancer struct {
	id      string
	nodes   []ServiceNodeLike
	network *Network
}

// ServiceNodeLike is the subset of ServiceNode/ByzantineNode the load
// balancer needs: identity, liveness, and message handling.
type ServiceNodeLike interface {
	AgentHandle
}

// NewLoadBalancer builds a load balancer over the given ordered node
// list, forwarding through network. Order is significant: it defines the
// hash ring position of each node.
func NewLoadBalancer(id string, nodes []ServiceNodeLike, network *Network) *LoadBalancer {
	return &LoadBalancer{id: id, nodes: nodes, network: network}
}

func (lb *LoadBalancer) ID() string   { return lb.id }
func (lb *LoadBalancer) Active() bool { return true }
func (lb *LoadBalancer) Kind() Kind   { return KindLoadBalancer }

// Handle forwards READ messages, preserving the original client as Src
// (spec §4.9 step 3: "do not rewrite payload"). Non-READ payloads are
// ignored; the load balancer only ever sees READ traffic in this model.
func (lb *LoadBalancer) Handle(e *Engine, msg Message) {
	if msg.Payload.Type != PayloadRead || len(lb.nodes) == 0 {
		return
	}
	target := lb.route(msg.Payload.Key)
	forwarded := NewMessage(msg.Src, target, msg.Payload)
	lb.network.Send(e, forwarded)
}

// route computes the deterministic target node for key: stable_hash(key)
// mod N, then linear-probes forward for the first active node, falling
// back to the original position if every node is dead (spec §4.9 steps
// 1-2).
func (lb *LoadBalancer) route(key string) ServiceNodeLike {
	n := len(lb.nodes)
	h := int(stableHash(key) % uint64(n))
	for i := 0; i < n; i++ {
		candidate := lb.nodes[(h+i)%n]
		if candidate.Active() {
			return candidate
		}
	}
	return lb.nodes[h]
}

// stableHash is a deterministic hash independent of process start,
// required for cross-run reproducibility given a fixed seed (spec §4.9,
// §8 property 6). FNV-1a is used rather than Go's built-in map hash,
// which is randomized per process.
func stableHash(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}
