// sim/queue.go
package sim

import "container/heap"

// EventQueue is a min-heap of Events ordered by (Time, Seq), giving strict
// FIFO tie-break among events scheduled for the same virtual instant.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []*Event

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	if eq[i].Time != eq[j].Time {
		return eq[i].Time < eq[j].Time
	}
	return eq[i].Seq < eq[j].Seq
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(*Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*eq = old[0 : n-1]
	return item
}

// Peek returns the least event without removing it, or nil if empty.
func (eq EventQueue) Peek() *Event {
	if len(eq) == 0 {
		return nil
	}
	return eq[0]
}

// Empty reports whether the queue holds no events.
func (eq EventQueue) Empty() bool { return len(eq) == 0 }

var _ = heap.Interface(&EventQueue{})
