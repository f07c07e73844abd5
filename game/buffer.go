package game

// maxPendingDirections caps how many turns can be queued between ticks.
const maxPendingDirections = 2

// directionBuffer is a fixed-capacity FIFO of queued turns.
type directionBuffer struct {
	items [maxPendingDirections]Direction
	n     int
}

func (b *directionBuffer) Len() int { return b.n }

func (b *directionBuffer) Full() bool { return b.n == maxPendingDirections }

// Push appends d and reports whether there was room for it.
func (b *directionBuffer) Push(d Direction) bool {
	if b.Full() {
		return false
	}
	b.items[b.n] = d
	b.n++
	return true
}

// Pop removes and returns the oldest entry.
func (b *directionBuffer) Pop() (Direction, bool) {
	if b.n == 0 {
		return Direction{}, false
	}
	d := b.items[0]
	copy(b.items[:], b.items[1:b.n])
	b.n--
	b.items[b.n] = Direction{}
	return d, true
}

// Last returns the newest entry.
func (b *directionBuffer) Last() (Direction, bool) {
	if b.n == 0 {
		return Direction{}, false
	}
	return b.items[b.n-1], true
}

func (b *directionBuffer) Slice() []Direction {
	out := make([]Direction, b.n)
	copy(out, b.items[:b.n])
	return out
}
