package game

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

var ErrNoPlayers = errors.New("game needs at least one player")

type Move struct {
	Player int      `yaml:"player"`
	Roll   int      `yaml:"roll"`
	From   int      `yaml:"from"`
	Landed int      `yaml:"landed"`
	To     int      `yaml:"to"`
	Jump   JumpKind `yaml:"jump"`
}

// Overshot reports whether the roll would have carried the player past the
// last cell, leaving them in place.
func (move Move) Overshot() bool {
	return move.Roll > 0 && move.From+move.Roll > LastCell
}

// State is the whole of a running game. It only changes through Roll,
// AdvanceTurn and Reset; each is a no-op outside the phase it belongs to.
type State struct {
	board   *Board
	dice    Dice
	players []Player

	current  int
	diceRoll int
	phase    Phase
	winner   int

	lastMove *Move
	numRolls int
}

func NewState(board *Board, players []Player, dice Dice) (*State, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	state := State{
		board:   board,
		dice:    dice,
		players: append([]Player(nil), players...),
	}
	state.restart()
	return &state, nil
}

func (state *State) restart() {
	for i := range state.players {
		state.players[i].Position = FirstCell
	}
	state.current = 0
	state.diceRoll = 0
	state.phase = AwaitingRoll
	state.winner = -1
	state.lastMove = nil
	state.numRolls = 0
}

func (state *State) Board() *Board {
	return state.board
}

func (state *State) Phase() Phase {
	return state.phase
}

func (state *State) CurrentPlayer() Player {
	return state.players[state.current]
}

// Winner returns the winning player, once the game is over
func (state *State) Winner() (Player, bool) {
	if state.winner < 0 {
		return Player{}, false
	}
	return state.players[state.winner], true
}

func (state *State) Roll() bool {
	if state.phase != AwaitingRoll {
		return false
	}

	roll := state.dice.Roll()
	player := &state.players[state.current]
	move := Move{
		Player: state.current,
		Roll:   roll,
		From:   player.Position,
		Landed: player.Position,
		To:     player.Position,
		Jump:   NoJump,
	}

	if newPos := player.Position + roll; newPos <= LastCell {
		move.Landed = newPos
		move.To, move.Jump = state.board.Resolve(newPos)
		player.Position = move.To
	}

	state.diceRoll = roll
	state.lastMove = &move
	state.numRolls++

	logger := log.WithFields(log.Fields{
		"player": player.Name,
		"roll":   roll,
		"from":   move.From,
		"to":     move.To,
	})
	switch {
	case move.Overshot():
		logger.Debug("roll overshoots the last cell")
	case move.Jump != NoJump:
		logger.WithField("jump", move.Jump).Debugf("landed on %d", move.Landed)
	default:
		logger.Debug("moved")
	}

	if player.Position == LastCell {
		state.phase = GameOver
		state.winner = state.current
		log.WithField("player", player.Name).WithField("rolls", state.numRolls).Info("game won")
	} else {
		state.phase = AwaitingAdvance
	}
	return true
}

func (state *State) AdvanceTurn() bool {
	if state.phase != AwaitingAdvance {
		return false
	}

	state.current = (state.current + 1) % len(state.players)
	state.phase = AwaitingRoll
	return true
}

func (state *State) Reset() bool {
	if state.phase != GameOver {
		return false
	}

	state.restart()
	log.Debug("game reset")
	return true
}

// Apply dispatches an input event, reporting whether it changed the state
func (state *State) Apply(event Event) bool {
	switch event {
	case RollEvent:
		return state.Roll()
	case AdvanceTurnEvent:
		return state.AdvanceTurn()
	case ResetEvent:
		return state.Reset()
	default:
		return false
	}
}
