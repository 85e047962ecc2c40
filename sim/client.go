package sim

import "math/rand"

// Client is a self-scheduling read generator (spec §4.10). It bootstraps
// one read shortly after construction and then reschedules itself on
// every tick until max_time is exceeded.
type Client struct {
	id       string
	network  *Network
	target   AgentHandle
	maxTime  float64
	keySpace int
	interval UniformSampler
	rng      *rand.Rand
	reads    int
}

// NewClientConfig groups Client construction parameters.
type NewClientConfig struct {
	ID       string
	Network  *Network
	Target   AgentHandle
	MaxTime  float64
	KeySpace int
	RNG      *PartitionedRNG
}

// NewClient builds a client and schedules its first read at now+0.1
// (spec §4.10). Inter-arrival defaults to Uniform(5, 25).
func NewClient(e *Engine, cfg NewClientConfig) *Client {
	src := cfg.RNG.ForSubsystem(SubsystemClient)
	c := &Client{
		id:       cfg.ID,
		network:  cfg.Network,
		target:   cfg.Target,
		maxTime:  cfg.MaxTime,
		keySpace: cfg.KeySpace,
		interval: NewUniformSampler(5, 25, src),
		rng:      src,
	}
	e.Schedule(e.Time+0.1, &ClientTickAction{Client: c})
	return c
}

func (c *Client) ID() string   { return c.id }
func (c *Client) Active() bool { return true }
func (c *Client) Kind() Kind   { return KindClient }

// Handle accepts READ_RESPONSE traffic but performs no correctness check
// on it in the core (spec §4.10: "Responses are accepted but not acted
// upon beyond being countable").
func (c *Client) Handle(e *Engine, msg Message) {}

// Tick fires one read attempt, then reschedules itself at now+I() unless
// max_time has been exceeded (spec §4.10).
func (c *Client) Tick(e *Engine) {
	if e.Time > c.maxTime {
		return
	}
	key := keyName(UniformInt(c.rng, c.keySpace))
	c.reads++
	c.network.Send(e, NewMessage(c, c.target, Payload{Type: PayloadRead, Key: key}))

	next := e.Time + c.interval.Sample()
	if next > c.maxTime {
		return
	}
	e.Schedule(next, &ClientTickAction{Client: c})
}

// Reads returns the number of READ messages this client has sent.
func (c *Client) Reads() int { return c.reads }
