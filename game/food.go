// food.go implements food placement.

package game

// emptyCells returns every Empty cell in row-major order.
func (s *GameState) emptyCells() []Position {
	free := make([]Position, 0, s.rows*s.cols-len(s.snake))
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if s.grid[r][c] == Empty {
				free = append(free, Position{Row: r, Col: c})
			}
		}
	}
	return free
}

// addFood marks one uniformly chosen Empty cell as Food.
// It returns false when the board has no room left.
func (s *GameState) addFood() bool {
	free := s.emptyCells()
	if len(free) == 0 {
		return false
	}
	p := free[s.rng.Intn(len(free))]
	s.grid[p.Row][p.Col] = Food
	s.food = p
	return true
}
