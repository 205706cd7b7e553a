package game

import "math/rand"

type Dice interface {
	// Roll returns a value in [1, DiceFaces]
	Roll() int
}

type randomDice struct {
	rand *rand.Rand
}

// NewDice returns a fair die. Equal seeds produce equal sequences of rolls.
func NewDice(seed int64) Dice {
	return &randomDice{rand: rand.New(rand.NewSource(seed))}
}

func (dice *randomDice) Roll() int {
	return dice.rand.Intn(DiceFaces) + 1
}
