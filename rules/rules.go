// Package rules holds read-only move analysis on top of a game.GameState.
// It never mutates the state; callers feed its answers back through
// ChangeDirection.
package rules

import (
	"github.com/brensch/snekcore/game"
)

// Directions lists the four unit directions in a stable order.
var Directions = [4]game.Direction{game.Up, game.Down, game.Left, game.Right}

// SafeDirections returns the unit directions the head can take next tick
// without leaving the board or biting the body. The reversal of the current
// direction is never included because ChangeDirection would refuse it.
func SafeDirections(state *game.GameState) []game.Direction {
	if state.GameOver() {
		return nil
	}
	head := state.HeadPosition()
	back := state.Direction().Opposite()

	moves := make([]game.Direction, 0, len(Directions))
	for _, d := range Directions {
		if d == back {
			continue
		}
		if isSafe(state.WillHit(head.Translate(d))) {
			moves = append(moves, d)
		}
	}
	return moves
}

func isSafe(v game.GridValue) bool {
	return v == game.Empty || v == game.Food
}

// Reachable counts the cells reachable from start through cells the head
// could currently enter. start itself is counted when it is enterable.
func Reachable(state *game.GameState, start game.Position) int {
	if !isSafe(state.WillHit(start)) {
		return 0
	}
	seen := make(map[game.Position]struct{}, state.Rows()*state.Cols())
	seen[start] = struct{}{}
	queue := []game.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			n := p.Translate(d)
			if _, ok := seen[n]; ok {
				continue
			}
			if !isSafe(state.WillHit(n)) {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func distance(a, b game.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
