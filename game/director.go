package game

import (
	"errors"
	"fmt"
)

var ErrStalled = errors.New("game did not finish")

// Director raises events on behalf of the players
type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*State)

	/**
	 * Queue the next event(s)
	 */
	Act(*EventQueue)

	/**
	 * Stop acting
	 */
	End()
}

// PlayOut lets director drive state until somebody wins, giving up after
// maxEvents queued events.
func PlayOut(state *State, director Director, maxEvents int) (Snapshot, error) {
	director.Init(state)
	defer director.End()

	queue := EventQueue{}
	for numEvents := 0; state.Phase() != GameOver; {
		if numEvents >= maxEvents {
			return state.Snapshot(), fmt.Errorf("%w after %d events", ErrStalled, numEvents)
		}

		director.Act(&queue)
		if queue.Len() == 0 {
			return state.Snapshot(), fmt.Errorf("%w: director raised no events", ErrStalled)
		}
		numEvents += queue.Len()
		queue.Drain(state)
	}

	return state.Snapshot(), nil
}
