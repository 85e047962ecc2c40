// Package sim implements a discrete-event simulation of a distributed
// caching fabric: clients issuing reads through a load balancer to a tier
// of cache nodes that sit in front of a single authoritative database,
// with Byzantine nodes, chaos-induced failures, and an observer recording
// cache-hit telemetry.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the inspectable Action variants that drive the simulation
//   - queue.go: the (time, seq)-ordered event heap
//   - engine.go: the event loop and fault-isolated dispatch
//
// # Architecture
//
// Agents are a closed roster (agent.go): Client, ServiceNode,
// ByzantineNode, LoadBalancer, Database, ChaosMonkey, Observer. Every
// agent implements AgentHandle and is invoked synchronously by the
// engine; none owns a goroutine. Network (network.go) is the only way an
// agent schedules a future delivery — it is not itself an AgentHandle.
//
// Driver (driver.go) builds the agent graph from a SimConfig and runs it
// in bounded chunks, streaming StateUpdate/LogUpdate/FinalUpdate records
// to a TelemetrySink (sink.go).
//
// # Determinism
//
// Every stochastic draw — network drop and latency, chaos coin and
// target, Byzantine coin, client interval and key choice — is routed
// through a PartitionedRNG (rng.go) subsystem, so a fixed seed reproduces
// an identical event trace.
package sim
