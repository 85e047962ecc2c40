package sim

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
)

type noopAction struct{ name string }

func (a *noopAction) Execute(e *Engine) {}
func (a *noopAction) Kind() string      { return a.name }

func TestEventQueue_PopOrder_TimeThenSeq(t *testing.T) {
	// GIVEN events pushed out of time order, with two sharing a timestamp
	eq := make(EventQueue, 0)
	heap.Init(&eq)
	heap.Push(&eq, &Event{Time: 5, Seq: 2, Action: &noopAction{"b"}})
	heap.Push(&eq, &Event{Time: 1, Seq: 0, Action: &noopAction{"a"}})
	heap.Push(&eq, &Event{Time: 5, Seq: 1, Action: &noopAction{"c"}})

	// WHEN popped in order
	var order []string
	for !eq.Empty() {
		ev := heap.Pop(&eq).(*Event)
		order = append(order, ev.Action.Kind())
	}

	// THEN time 1 pops first, and among the two time-5 events the
	// lower-seq one (FIFO tie-break) pops before the higher-seq one
	assert.Equal(t, []string{"a", "c", "b"}, order)
}

func TestEventQueue_PeekAndEmpty(t *testing.T) {
	eq := make(EventQueue, 0)
	heap.Init(&eq)

	// GIVEN an empty queue
	assert.True(t, eq.Empty())
	assert.Nil(t, eq.Peek())

	// WHEN an event is pushed
	heap.Push(&eq, &Event{Time: 3, Seq: 0, Action: &noopAction{"x"}})

	// THEN Peek returns it without removing it
	assert.False(t, eq.Empty())
	assert.Equal(t, "x", eq.Peek().Action.Kind())
	assert.Equal(t, 1, eq.Len())
}
