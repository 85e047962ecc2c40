package sim

import "math/rand"

// Deactivatable is implemented by agents the chaos monkey can kill.
type Deactivatable interface {
	AgentHandle
	Deactivate()
}

// ChaosMonkey periodically deactivates a random target node (spec §4.11).
// Attacks are gated twice: by the inter-attack interval AND by kill_prob
// on each tick — a double gate that appears intentional in the source and
// is preserved rather than "fixed" (spec §9(d)).
type ChaosMonkey struct {
	id       string
	targets  []Deactivatable
	killProb float64
	interval UniformSampler
	rng      *rand.Rand
}

// NewChaosMonkey builds a chaos monkey over targets and schedules its
// first attack. Inter-attack interval defaults to Uniform(50, 200).
func NewChaosMonkey(e *Engine, id string, targets []Deactivatable, killProb float64, rng *PartitionedRNG) *ChaosMonkey {
	src := rng.ForSubsystem(SubsystemChaos)
	c := &ChaosMonkey{
		id:       id,
		targets:  targets,
		killProb: killProb,
		interval: NewUniformSampler(50, 200, src),
		rng:      src,
	}
	e.Schedule(e.Time+c.interval.Sample(), &ChaosTickAction{Chaos: c})
	return c
}

func (c *ChaosMonkey) ID() string   { return c.id }
func (c *ChaosMonkey) Active() bool { return true }
func (c *ChaosMonkey) Kind() Kind   { return KindChaos }

// Handle: the chaos monkey never receives messages; it only self-schedules.
func (c *ChaosMonkey) Handle(e *Engine, msg Message) {}

// Tick runs one attack attempt and reschedules the next one. Killed nodes
// are never resurrected in the core model (spec §3 "Lifecycle", §4.11).
func (c *ChaosMonkey) Tick(e *Engine) {
	if len(c.targets) > 0 && Coin(c.rng, c.killProb) {
		victim := c.targets[UniformInt(c.rng, len(c.targets))-1]
		victim.Deactivate()
	}
	e.Schedule(e.Time+c.interval.Sample(), &ChaosTickAction{Chaos: c})
}
