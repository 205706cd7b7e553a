package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotPlayers(t *testing.T) {
	state := newTestState(t, DefaultBoard(), 3)
	require.True(t, state.Roll())

	snapshot := state.Snapshot()
	require.Len(t, snapshot.Players, 2)

	player := snapshot.CurrentPlayer()
	assert.Equal(t, "Player 1", player.Name)
	assert.Equal(t, "#ff0000", player.Color)
	assert.Equal(t, 4, player.Position)
	assert.Equal(t, Coordinate{Col: 6, Row: 9}, player.Coordinate)

	assert.Equal(t, "#0000ff", snapshot.Players[1].Color)
	assert.Equal(t, 1, snapshot.NumRolls)
	assert.False(t, snapshot.IsOver())
}

func TestSnapshotIsACopy(t *testing.T) {
	state := newTestState(t, DefaultBoard(), 3)
	require.True(t, state.Roll())

	snapshot := state.Snapshot()
	snapshot.LastMove.To = 99
	snapshot.Players[0].Position = 99

	assert.Equal(t, 4, state.Snapshot().LastMove.To)
	assert.Equal(t, 4, state.CurrentPlayer().Position)
}

func TestSnapshotSerialize(t *testing.T) {
	state := newTestState(t, DefaultBoard(), 4)
	state.players[0].Position = 96
	require.True(t, state.Roll())

	snapshot := state.Snapshot()
	out := snapshot.Serialize()

	assert.Contains(t, out, "phase: game-over")
	assert.Contains(t, out, "winner: Player 1")
	assert.Contains(t, out, "jump: none")
	assert.Contains(t, out, "ff0000")
}
