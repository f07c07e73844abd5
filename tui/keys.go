package tui

import "github.com/brensch/snekcore/game"

var keyDirections = map[string]game.Direction{
	"up": game.Up, "k": game.Up, "w": game.Up,
	"down": game.Down, "j": game.Down, "s": game.Down,
	"left": game.Left, "h": game.Left, "a": game.Left,
	"right": game.Right, "l": game.Right, "d": game.Right,
}
