package rules

import (
	"github.com/brensch/snekcore/game"
)

// Greedy picks the next direction for an autopilot. Safe moves that keep at
// least a body length of room ahead are preferred over ones that box the
// snake in; among those the move closest to the food wins, ties going to the
// current direction. ok is false when no safe move exists.
func Greedy(state *game.GameState) (dir game.Direction, ok bool) {
	moves := SafeDirections(state)
	if len(moves) == 0 {
		return state.Direction(), false
	}

	head := state.HeadPosition()
	food, hasFood := state.FoodPosition()
	cur := state.Direction()

	type scored struct {
		dir  game.Direction
		room bool
		dist int
	}
	best := scored{dist: -1}
	for _, d := range moves {
		next := head.Translate(d)
		c := scored{dir: d, room: Reachable(state, next) >= state.Len()}
		if hasFood {
			c.dist = distance(next, food)
		}
		if best.dist < 0 || better(c.room, c.dist, c.dir == cur, best.room, best.dist, best.dir == cur) {
			best = c
		}
	}
	return best.dir, true
}

func better(room bool, dist int, straight bool, bestRoom bool, bestDist int, bestStraight bool) bool {
	if room != bestRoom {
		return room
	}
	if dist != bestDist {
		return dist < bestDist
	}
	return straight && !bestStraight
}
