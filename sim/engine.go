// sim/engine.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// Engine is the discrete-event kernel (spec §4.2): it owns virtual time,
// the event queue, and the monotonic sequence counter, and dispatches
// events strictly in (time, seq) order within a single Advance call.
type Engine struct {
	Time   float64
	queue  EventQueue
	seq    uint64
	Faults int
}

// NewEngine returns an Engine at virtual time zero with an empty queue.
func NewEngine() *Engine {
	e := &Engine{queue: make(EventQueue, 0)}
	heap.Init(&e.queue)
	return e
}

// Schedule pushes action to fire at the given virtual time. Zero-delay
// scheduling (time == e.Time) is legal: the event still waits its turn in
// FIFO order among any events already queued for that instant.
func (e *Engine) Schedule(time float64, action Action) {
	heap.Push(&e.queue, &Event{Time: time, Seq: e.seq, Action: action})
	e.seq++
}

// Advance drains the queue up to and including `until`, dispatching each
// event's action in strict (time, seq) order. Handlers may push new
// events during dispatch; those are considered in the same call if their
// time is <= until. If the queue empties before `until` is reached, time
// is forced forward to the chunk boundary. A handler panic is isolated:
// logged and counted, never propagated, and virtual time is never
// rewound (spec §4.2, §7 "handler fault").
func (e *Engine) Advance(until float64) {
	for !e.queue.Empty() && e.queue.Peek().Time <= until {
		ev := heap.Pop(&e.queue).(*Event)
		e.Time = ev.Time
		e.dispatch(ev)
	}
	if e.Time < until {
		e.Time = until
	}
}

func (e *Engine) dispatch(ev *Event) {
	defer func() {
		if r := recover(); r != nil {
			e.Faults++
			logrus.WithFields(logrus.Fields{
				"time":   ev.Time,
				"action": ev.Action.Kind(),
				"panic":  r,
			}).Error("handler fault; event dropped, simulation continues")
		}
	}()
	ev.Action.Execute(e)
}

// Pending reports the number of events still in the queue.
func (e *Engine) Pending() int { return e.queue.Len() }
