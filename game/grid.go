package game

// GridValue is the content of a single cell.
type GridValue uint8

const (
	Empty GridValue = iota
	Snake
	Food
	// Outside is never stored in the grid; WillHit returns it for
	// positions beyond the board.
	Outside
)

func (v GridValue) String() string {
	switch v {
	case Empty:
		return "empty"
	case Snake:
		return "snake"
	case Food:
		return "food"
	case Outside:
		return "outside"
	default:
		return "unknown"
	}
}

func newGrid(rows, cols int) [][]GridValue {
	cells := make([]GridValue, rows*cols)
	grid := make([][]GridValue, rows)
	for r := range grid {
		grid[r] = cells[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return grid
}
