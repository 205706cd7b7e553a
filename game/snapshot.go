package game

import (
	"gopkg.in/yaml.v2"
)

type PlayerSnapshot struct {
	Name       string     `yaml:"name"`
	Color      string     `yaml:"color"`
	Position   int        `yaml:"position"`
	Coordinate Coordinate `yaml:"coordinate,flow"`
}

// Snapshot is a read-only copy of everything the renderer needs
type Snapshot struct {
	Players  []PlayerSnapshot `yaml:"players"`
	Current  int              `yaml:"current"`
	Dice     int              `yaml:"dice"`
	Phase    Phase            `yaml:"phase"`
	Winner   string           `yaml:"winner,omitempty"`
	LastMove *Move            `yaml:"last_move,omitempty,flow"`
	NumRolls int              `yaml:"rolls"`
}

func (state *State) Snapshot() Snapshot {
	snapshot := Snapshot{
		Players:  make([]PlayerSnapshot, len(state.players)),
		Current:  state.current,
		Dice:     state.diceRoll,
		Phase:    state.phase,
		NumRolls: state.numRolls,
	}

	for i, player := range state.players {
		// Positions never leave the board, so this cannot fail
		coord, _ := CellToCoordinate(player.Position)
		snapshot.Players[i] = PlayerSnapshot{
			Name:       player.Name,
			Color:      hexColor(player.Color),
			Position:   player.Position,
			Coordinate: coord,
		}
	}

	if winner, ok := state.Winner(); ok {
		snapshot.Winner = winner.Name
	}

	if state.lastMove != nil {
		move := *state.lastMove
		snapshot.LastMove = &move
	}

	return snapshot
}

func (snapshot Snapshot) CurrentPlayer() PlayerSnapshot {
	return snapshot.Players[snapshot.Current]
}

func (snapshot Snapshot) IsOver() bool {
	return snapshot.Phase == GameOver
}

func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}
