package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateTallies(t *testing.T) {
	tally, err := simulate(simulateOptions{numGames: 25, seed: 1, maxEvents: 100000})
	require.NoError(t, err)

	assert.Equal(t, []string{"Player 1", "Player 2"}, tally.names)
	assert.Equal(t, uint(25), tally.numGames)

	total := uint(0)
	for _, wins := range tally.wins {
		total += wins
	}
	assert.Equal(t, tally.numGames, total)
	assert.Greater(t, tally.averageRolls(), 0.0)
}

func TestSimulateReportsStalledGames(t *testing.T) {
	_, err := simulate(simulateOptions{numGames: 1, seed: 1, maxEvents: 2})
	assert.Error(t, err)
}
