// Package tui drives a game.GameState from a terminal with bubbletea: ticks
// call Move, keys call ChangeDirection, and the board is redrawn from the
// state's queries after every message.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/snekcore/game"
	"github.com/brensch/snekcore/rules"
)

// Settings configures every game started by a Model.
type Settings struct {
	Rows     int
	Cols     int
	Tick     time.Duration
	Walls    game.WallPolicy
	Seed     int64 // 0 seeds each game from the clock
	Autoplay bool
}

type TickMsg time.Time

// Model is the bubbletea model for a run of games.
type Model struct {
	settings Settings
	logger   *slog.Logger
	bell     io.Writer

	sess   *session
	games  int
	best   int
	paused bool

	// flash counts down the ticks the "+1" marker stays visible.
	flash int
	err   error
}

// New starts the first game. bell receives a BEL byte when food is eaten and
// when a game ends; pass io.Discard to stay quiet.
func New(s Settings, logger *slog.Logger, bell io.Writer) (Model, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if bell == nil {
		bell = io.Discard
	}
	m := Model{settings: s, logger: logger, bell: bell}
	sess, err := newSession(s, 0, logger)
	if err != nil {
		return Model{}, fmt.Errorf("start game: %w", err)
	}
	m.sess = sess
	m.games = 1
	return m, nil
}

// State exposes the current game for callers that want to inspect it after
// the program exits.
func (m Model) State() *game.GameState { return m.sess.state }

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.settings.Tick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) ringCmd() tea.Cmd {
	w := m.bell
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return nil
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		cmd := m.step()
		return m, tea.Batch(cmd, m.tickCmd())
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		m.sess.logger.Info("quit", "score", m.sess.state.Score(), "games", m.games)
		return m, tea.Quit
	case "p", " ":
		m.paused = !m.paused
		return m, nil
	case "r":
		m.restart()
		return m, nil
	}

	if d, ok := keyDirections[key]; ok && !m.paused {
		m.sess.state.ChangeDirection(d)
		m.sess.logger.Debug("direction", "key", key, "dir", d, "pending", len(m.sess.state.Pending()))
	}
	return m, nil
}

func (m *Model) restart() {
	sess, err := newSession(m.settings, m.games, m.logger)
	if err != nil {
		m.err = err
		m.logger.Error("restart failed", "err", err)
		return
	}
	m.sess = sess
	m.games++
	m.paused = false
	m.flash = 0
}

// step advances the current game by one tick and returns a command for any
// sound the tick produced.
func (m *Model) step() tea.Cmd {
	if m.flash > 0 {
		m.flash--
	}
	st := m.sess.state
	if m.paused || st.GameOver() || st.Won() {
		return nil
	}

	if m.settings.Autoplay && len(st.Pending()) == 0 {
		if d, ok := rules.Greedy(st); ok {
			st.ChangeDirection(d)
		}
	}

	m.sess.ticks++
	st.Move()

	if st.Score() > m.best {
		m.best = st.Score()
	}

	ate, died := m.sess.drain()
	if ate {
		m.flash = 5
	}
	if st.Won() {
		m.sess.logger.Info("board filled", "score", st.Score(), "tick", m.sess.ticks)
	}
	if ate || died {
		return m.ringCmd()
	}
	return nil
}
