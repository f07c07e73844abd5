// Package game implements the rules of classic single-player Snake.
//
// A GameState owns the board, the snake and the score. It is advanced by a
// driver calling ChangeDirection on input and Move on every tick, and it
// performs no I/O: presentation layers poll its queries or register an
// Observer. A GameState is not safe for concurrent use.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidDimensions is returned by New for boards that cannot hold the
// initial snake.
var ErrInvalidDimensions = errors.New("invalid board dimensions")

const (
	initialLength = 3
	// minCols leaves room for the initial snake in columns 1..3.
	minCols = initialLength + 1
)

// WallPolicy decides what happens when the head would leave the board.
type WallPolicy uint8

const (
	// WallsBlock refuses the move and leaves the game running.
	WallsBlock WallPolicy = iota
	// WallsKill ends the game.
	WallsKill
)

func (p WallPolicy) String() string {
	switch p {
	case WallsBlock:
		return "block"
	case WallsKill:
		return "kill"
	default:
		return "unknown"
	}
}

// ParseWallPolicy converts "block" or "kill" to a WallPolicy.
func ParseWallPolicy(s string) (WallPolicy, error) {
	switch s {
	case "block":
		return WallsBlock, nil
	case "kill":
		return WallsKill, nil
	}
	return WallsBlock, fmt.Errorf("unknown wall policy %q", s)
}

type Option func(*GameState)

// WithRand sets the random source used for food placement. The state takes
// ownership of r; it must not be shared with another GameState.
func WithRand(r *rand.Rand) Option {
	return func(s *GameState) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed gives the state its own random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(s *GameState) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithWallPolicy(p WallPolicy) Option {
	return func(s *GameState) {
		s.walls = p
	}
}

func WithObserver(o Observer) Option {
	return func(s *GameState) {
		if o != nil {
			s.observer = o
		}
	}
}

// GameState is one game of Snake.
type GameState struct {
	rows int
	cols int
	grid [][]GridValue

	// snake is head-first and always matches the Snake cells in grid.
	snake   []Position
	pending directionBuffer
	dir     Direction

	food    Position
	hasFood bool

	score    int
	gameOver bool

	rng      *rand.Rand
	walls    WallPolicy
	observer Observer
}

// New creates a rows x cols game with a three cell snake on the middle row
// heading right and one piece of food.
func New(rows, cols int, opts ...Option) (*GameState, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if cols < minCols {
		return nil, fmt.Errorf("%w: need at least %d columns, got %d", ErrInvalidDimensions, minCols, cols)
	}

	s := &GameState{
		rows:     rows,
		cols:     cols,
		grid:     newGrid(rows, cols),
		snake:    make([]Position, 0, rows*cols),
		dir:      Right,
		walls:    WallsBlock,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.addSnake()
	s.hasFood = s.addFood()
	return s, nil
}

func (s *GameState) addSnake() {
	r := s.rows / 2
	for c := 1; c <= initialLength; c++ {
		s.addHead(Position{Row: r, Col: c})
	}
}

func (s *GameState) Rows() int { return s.rows }
func (s *GameState) Cols() int { return s.cols }

func (s *GameState) Score() int { return s.score }

func (s *GameState) GameOver() bool { return s.gameOver }

// Direction returns the direction applied on the most recent step.
func (s *GameState) Direction() Direction { return s.dir }

// Pending returns the buffered direction changes, oldest first.
func (s *GameState) Pending() []Direction { return s.pending.Slice() }

func (s *GameState) Len() int { return len(s.snake) }

func (s *GameState) HeadPosition() Position { return s.snake[0] }

func (s *GameState) TailPosition() Position { return s.snake[len(s.snake)-1] }

// SnakePositions returns a copy of the body, head first.
func (s *GameState) SnakePositions() []Position {
	out := make([]Position, len(s.snake))
	copy(out, s.snake)
	return out
}

// FoodPosition reports where the food is, if there is any.
func (s *GameState) FoodPosition() (Position, bool) {
	return s.food, s.hasFood
}

// Grid returns a copy of the board.
func (s *GameState) Grid() [][]GridValue {
	out := newGrid(s.rows, s.cols)
	for r := range s.grid {
		copy(out[r], s.grid[r])
	}
	return out
}

// Cell returns the stored value at p, or Outside when p is off the board.
func (s *GameState) Cell(p Position) GridValue {
	if s.outside(p) {
		return Outside
	}
	return s.grid[p.Row][p.Col]
}

// Won reports whether the snake fills the whole board.
func (s *GameState) Won() bool {
	return len(s.snake) == s.rows*s.cols
}

// ChangeDirection queues d for a future Move. Changes that repeat the last
// queued direction, reverse it, or overflow the buffer are ignored.
func (s *GameState) ChangeDirection(d Direction) {
	if s.gameOver || !s.canChangeDirection(d) {
		return
	}
	s.pending.Push(d)
}

func (s *GameState) lastDirection() Direction {
	if d, ok := s.pending.Last(); ok {
		return d
	}
	return s.dir
}

func (s *GameState) canChangeDirection(d Direction) bool {
	if s.pending.Full() {
		return false
	}
	last := s.lastDirection()
	return d != last && d != last.Opposite()
}

func (s *GameState) outside(p Position) bool {
	return p.Row < 0 || p.Row >= s.rows || p.Col < 0 || p.Col >= s.cols
}

// WillHit classifies what the head would run into at p. The current tail
// counts as Empty because it moves away during the same step.
func (s *GameState) WillHit(p Position) GridValue {
	if s.outside(p) {
		return Outside
	}
	if p == s.TailPosition() {
		return Empty
	}
	return s.grid[p.Row][p.Col]
}

func (s *GameState) addHead(p Position) {
	s.snake = append(s.snake, Position{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = p
	s.grid[p.Row][p.Col] = Snake
}

func (s *GameState) removeTail() {
	tail := s.snake[len(s.snake)-1]
	s.grid[tail.Row][tail.Col] = Empty
	s.snake = s.snake[:len(s.snake)-1]
}

func (s *GameState) end() {
	s.gameOver = true
	s.observer.GameOver(s.score)
}

// Move advances the game by one tick. It does nothing once the game is over.
func (s *GameState) Move() {
	if s.gameOver {
		return
	}
	if d, ok := s.pending.Pop(); ok {
		s.dir = d
	}

	newHead := s.HeadPosition().Translate(s.dir)

	switch s.WillHit(newHead) {
	case Outside:
		if s.walls == WallsKill {
			s.end()
		}
	case Snake:
		s.end()
	case Empty:
		s.removeTail()
		s.addHead(newHead)
	case Food:
		s.addHead(newHead)
		s.hasFood = false
		s.score++
		if s.addFood() {
			s.hasFood = true
		}
		s.observer.ScoreIncreased(s.score)
	}
}
