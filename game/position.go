package game

import "fmt"

// Position is a grid coordinate. Row 0 is the top row.
type Position struct {
	Row int
	Col int
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Translate returns p moved by d. Bounds are the grid's concern.
func (p Position) Translate(d Direction) Position {
	return Position{Row: p.Row + d.RowOffset, Col: p.Col + d.ColOffset}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
