package tui

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/brensch/snekcore/game"
)

// session is one game plus the events its observer collected since the
// last tick was handled.
type session struct {
	id     string
	state  *game.GameState
	logger *slog.Logger
	ticks  int

	ate  bool
	died bool
}

func newSession(s Settings, n int, logger *slog.Logger) (*session, error) {
	sess := &session{id: uuid.NewString()}
	sess.logger = logger.With("game_id", sess.id)

	opts := []game.Option{
		game.WithWallPolicy(s.Walls),
		game.WithObserver(sess),
	}
	if s.Seed != 0 {
		// Successive games in one run stay reproducible but differ.
		opts = append(opts, game.WithSeed(s.Seed+int64(n)))
	}

	state, err := game.New(s.Rows, s.Cols, opts...)
	if err != nil {
		return nil, err
	}
	sess.state = state

	food, _ := state.FoodPosition()
	sess.logger.Info("game started",
		"rows", s.Rows,
		"cols", s.Cols,
		"walls", s.Walls,
		"seed", s.Seed,
		"food", food,
	)
	return sess, nil
}

func (s *session) ScoreIncreased(score int) {
	s.ate = true
	s.logger.Info("food eaten", "score", score, "length", s.state.Len(), "tick", s.ticks)
}

func (s *session) GameOver(score int) {
	s.died = true
	s.logger.Info("game over", "score", score, "length", s.state.Len(), "tick", s.ticks, "head", s.state.HeadPosition())
}

// drain returns and clears the collected events.
func (s *session) drain() (ate, died bool) {
	ate, died = s.ate, s.died
	s.ate, s.died = false, false
	return ate, died
}
