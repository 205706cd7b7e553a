package game

import (
	"github.com/gammazero/deque"
)

type Event int

const (
	RollEvent Event = iota
	AdvanceTurnEvent
	ResetEvent
)

func (event Event) String() string {
	switch event {
	case RollEvent:
		return "roll"
	case AdvanceTurnEvent:
		return "advance-turn"
	case ResetEvent:
		return "reset"
	default:
		return "unknown"
	}
}

// EventQueue buffers input events between frames
type EventQueue struct {
	events deque.Deque
}

func (queue *EventQueue) Push(event Event) {
	queue.events.PushBack(event)
}

func (queue *EventQueue) Len() int {
	return queue.events.Len()
}

// Drain applies every queued event to state, oldest first, and returns the
// number of events that changed it.
func (queue *EventQueue) Drain(state *State) int {
	applied := 0
	for queue.events.Len() > 0 {
		event := queue.events.PopFront().(Event)
		if state.Apply(event) {
			applied++
		}
	}
	return applied
}
