package game

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

type Player struct {
	Name     string
	Color    color.RGBA
	Position int
}

func DefaultPlayers() []Player {
	return []Player{
		{Name: "Player 1", Color: colornames.Red, Position: FirstCell},
		{Name: "Player 2", Color: colornames.Blue, Position: FirstCell},
	}
}

func (player Player) String() string {
	return fmt.Sprintf("%s@%d", player.Name, player.Position)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
