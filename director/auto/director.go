package auto

import (
	"github.com/they4kman/gosnakes/game"
)

// Director presses the keys for every player: it rolls, hands the turn over,
// and optionally starts a fresh game once someone has won.
type Director struct {
	// Restart queues a reset after a game ends
	Restart bool

	state *game.State
}

func (director *Director) Init(state *game.State) {
	director.state = state
}

func (director *Director) Act(queue *game.EventQueue) {
	if director.state == nil {
		return
	}

	switch director.state.Phase() {
	case game.AwaitingRoll:
		queue.Push(game.RollEvent)
	case game.AwaitingAdvance:
		queue.Push(game.AdvanceTurnEvent)
	case game.GameOver:
		if director.Restart {
			queue.Push(game.ResetEvent)
		}
	}
}

func (director *Director) End() {
	director.state = nil
}
