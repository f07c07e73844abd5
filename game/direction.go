package game

import "fmt"

// Direction is a grid offset applied to the head on each step.
// Gameplay only uses the four unit directions, but any pair is valid.
type Direction struct {
	RowOffset int
	ColOffset int
}

var (
	Up    = Direction{RowOffset: -1, ColOffset: 0}
	Down  = Direction{RowOffset: 1, ColOffset: 0}
	Left  = Direction{RowOffset: 0, ColOffset: -1}
	Right = Direction{RowOffset: 0, ColOffset: 1}
)

func NewDirection(rowOffset, colOffset int) Direction {
	return Direction{RowOffset: rowOffset, ColOffset: colOffset}
}

// Opposite returns the direction with both offsets negated.
func (d Direction) Opposite() Direction {
	return Direction{RowOffset: -d.RowOffset, ColOffset: -d.ColOffset}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("(%d,%d)", d.RowOffset, d.ColOffset)
}
