package sim

// fakeAgent is a minimal AgentHandle test double that records every
// message it receives.
type fakeAgent struct {
	id       string
	active   bool
	received []Message
}

func newFakeAgent(id string) *fakeAgent { return &fakeAgent{id: id, active: true} }

func (f *fakeAgent) ID() string   { return f.id }
func (f *fakeAgent) Active() bool { return f.active }
func (f *fakeAgent) Kind() Kind   { return KindClient }
func (f *fakeAgent) Handle(e *Engine, msg Message) {
	f.received = append(f.received, msg)
}

// Deactivate lets fakeAgent double as a Deactivatable chaos target.
func (f *fakeAgent) Deactivate() { f.active = false }
