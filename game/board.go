package game

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/they4kman/gosnakes/util/collections"
)

var ErrInvalidJump = errors.New("invalid snake or ladder")

type Snake struct {
	Head, Tail int
}

type Ladder struct {
	Bottom, Top int
}

type Jump struct {
	To   int
	Kind JumpKind
}

type Board struct {
	snakes  []Snake
	ladders []Ladder

	jumps map[int]Jump
}

var (
	defaultSnakes = []Snake{
		{Head: 98, Tail: 28},
		{Head: 95, Tail: 24},
		{Head: 92, Tail: 51},
		{Head: 83, Tail: 19},
		{Head: 73, Tail: 1},
		{Head: 69, Tail: 33},
		{Head: 64, Tail: 36},
	}
	defaultLadders = []Ladder{
		{Bottom: 2, Top: 38},
		{Bottom: 7, Top: 14},
		{Bottom: 22, Top: 79},
		{Bottom: 42, Top: 99},
		{Bottom: 51, Top: 67},
	}
)

func DefaultBoard() *Board {
	board, err := NewBoard(defaultSnakes, defaultLadders)
	if err != nil {
		panic(err)
	}
	return board
}

func NewBoard(snakes []Snake, ladders []Ladder) (*Board, error) {
	board := Board{
		snakes:  append([]Snake(nil), snakes...),
		ladders: append([]Ladder(nil), ladders...),
		jumps:   make(map[int]Jump, len(snakes)+len(ladders)),
	}

	heads := collections.NewSet[int]()
	for _, snake := range snakes {
		if !IsValidCell(snake.Head) || !IsValidCell(snake.Tail) || snake.Head <= snake.Tail {
			return nil, fmt.Errorf("%w: snake %d -> %d", ErrInvalidJump, snake.Head, snake.Tail)
		}
		board.addJump(snake.Head, Jump{To: snake.Tail, Kind: SnakeJump})
		heads.Add(snake.Head)
	}

	bottoms := collections.NewSet[int]()
	for _, ladder := range ladders {
		if !IsValidCell(ladder.Bottom) || !IsValidCell(ladder.Top) || ladder.Top <= ladder.Bottom {
			return nil, fmt.Errorf("%w: ladder %d -> %d", ErrInvalidJump, ladder.Bottom, ladder.Top)
		}
		board.addJump(ladder.Bottom, Jump{To: ladder.Top, Kind: LadderJump})
		bottoms.Add(ladder.Bottom)
	}

	for cell := range heads.Intersection(bottoms) {
		log.WithField("cell", cell).Warn("cell is both a snake head and a ladder bottom; the snake takes precedence")
	}

	return &board, nil
}

// Earlier entries win, and snakes are added before ladders
func (board *Board) addJump(from int, jump Jump) {
	if _, exists := board.jumps[from]; !exists {
		board.jumps[from] = jump
	}
}

func (board *Board) Snakes() []Snake {
	return board.snakes
}

func (board *Board) Ladders() []Ladder {
	return board.ladders
}

// Resolve returns where a piece landing on cell ends up. It is a single
// lookup: the destination of a jump is never resolved again.
func (board *Board) Resolve(cell int) (int, JumpKind) {
	if jump, ok := board.jumps[cell]; ok {
		return jump.To, jump.Kind
	}
	return cell, NoJump
}
