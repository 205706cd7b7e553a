package auto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gosnakes/game"
)

func newState(t *testing.T, seed int64) *game.State {
	t.Helper()
	state, err := game.NewState(game.DefaultBoard(), game.DefaultPlayers(), game.NewDice(seed))
	require.NoError(t, err)
	return state
}

func TestDirectorFollowsPhase(t *testing.T) {
	state := newState(t, 1)
	director := &Director{}
	director.Init(state)

	queue := game.EventQueue{}
	director.Act(&queue)
	require.Equal(t, 1, queue.Len())
	assert.Equal(t, 1, queue.Drain(state))
	assert.NotEqual(t, game.AwaitingRoll, state.Phase())

	if state.Phase() == game.AwaitingAdvance {
		director.Act(&queue)
		assert.Equal(t, 1, queue.Drain(state))
		assert.Equal(t, game.AwaitingRoll, state.Phase())
	}

	director.End()
	director.Act(&queue)
	assert.Zero(t, queue.Len())
}

func TestPlayOutFinishes(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		state := newState(t, seed)

		snapshot, err := game.PlayOut(state, &Director{}, 100000)
		require.NoError(t, err, "seed %d", seed)

		assert.True(t, snapshot.IsOver())
		assert.NotEmpty(t, snapshot.Winner)
		assert.Positive(t, snapshot.NumRolls)

		winner, won := state.Winner()
		require.True(t, won)
		assert.Equal(t, game.LastCell, winner.Position)
	}
}

func TestPlayOutIsReproducible(t *testing.T) {
	first, err := game.PlayOut(newState(t, 42), &Director{}, 100000)
	require.NoError(t, err)
	second, err := game.PlayOut(newState(t, 42), &Director{}, 100000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlayOutStalls(t *testing.T) {
	_, err := game.PlayOut(newState(t, 1), &Director{}, 3)
	assert.ErrorIs(t, err, game.ErrStalled)
}

func TestRestartAfterGameOver(t *testing.T) {
	state := newState(t, 3)
	_, err := game.PlayOut(state, &Director{}, 100000)
	require.NoError(t, err)

	director := &Director{Restart: true}
	director.Init(state)
	queue := game.EventQueue{}
	director.Act(&queue)

	assert.Equal(t, 1, queue.Drain(state))
	assert.Equal(t, game.AwaitingRoll, state.Phase())
	assert.Equal(t, game.FirstCell, state.CurrentPlayer().Position)
}
