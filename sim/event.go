// sim/event.go
package sim

// Action is the inspectable unit of work carried by an Event. Concrete
// actions are small variant types rather than closures, so a queued event
// can be logged, diffed, or replayed without capturing mutable aliases.
type Action interface {
	// Execute runs the action against the engine at the event's dispatch
	// time. It must be synchronous: no blocking, no goroutines.
	Execute(e *Engine)
	// Kind names the action for observer/log records.
	Kind() string
}

// Event is (time, seq, action): the engine's queue element. seq is assigned
// at push time and breaks ties between events scheduled for the same
// virtual instant, in push order.
type Event struct {
	Time   float64
	Seq    uint64
	Action Action
}

// DeliverAction delivers a Message to its destination agent. This is how
// the network turns a send() into a future event (spec §4.4).
type DeliverAction struct {
	Msg Message
}

func (a *DeliverAction) Kind() string { return "DELIVER" }

func (a *DeliverAction) Execute(e *Engine) {
	a.Msg.Dst.Handle(e, a.Msg)
}

// ClientTickAction fires a client's next read attempt (spec §4.10).
type ClientTickAction struct {
	Client *Client
}

func (a *ClientTickAction) Kind() string { return "CLIENT_TICK" }

func (a *ClientTickAction) Execute(e *Engine) {
	a.Client.Tick(e)
}

// ChaosTickAction fires one chaos-monkey attack attempt (spec §4.11).
type ChaosTickAction struct {
	Chaos *ChaosMonkey
}

func (a *ChaosTickAction) Kind() string { return "CHAOS_TICK" }

func (a *ChaosTickAction) Execute(e *Engine) {
	a.Chaos.Tick(e)
}
