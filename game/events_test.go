package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueueDrainsInOrder(t *testing.T) {
	state := newTestState(t, DefaultBoard(), 3)
	queue := EventQueue{}

	queue.Push(RollEvent)
	queue.Push(RollEvent)
	queue.Push(AdvanceTurnEvent)
	assert.Equal(t, 3, queue.Len())

	assert.Equal(t, 2, queue.Drain(state))
	assert.Zero(t, queue.Len())
	assert.Equal(t, AwaitingRoll, state.Phase())
	assert.Equal(t, "Player 2", state.CurrentPlayer().Name)

	assert.Zero(t, queue.Drain(state))
}
