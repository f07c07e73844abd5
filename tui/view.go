package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brensch/snekcore/game"
)

// Each cell is two columns wide so the board looks square.
var (
	emptyCell = lipgloss.NewStyle().Background(lipgloss.Color("235")).Render("  ")
	bodyCell  = lipgloss.NewStyle().Background(lipgloss.Color("34")).Render("  ")
	headCell  = lipgloss.NewStyle().Background(lipgloss.Color("46")).Render("  ")
	deadCell  = lipgloss.NewStyle().Background(lipgloss.Color("160")).Render("  ")
	foodCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("235")).Render("()")

	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Bold(true)
	flashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func (m Model) View() string {
	st := m.sess.state

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(boardStyle.Render(renderBoard(st)))
	b.WriteByte('\n')

	switch {
	case m.err != nil:
		b.WriteString(overStyle.Render("error: " + m.err.Error()))
	case st.Won():
		b.WriteString(flashStyle.Render("Board cleared! r to play again, q to quit"))
	case st.GameOver():
		b.WriteString(overStyle.Render("GAME OVER") + helpStyle.Render("  r to restart, q to quit"))
	case m.paused:
		b.WriteString(flashStyle.Render("PAUSED") + helpStyle.Render("  p to resume"))
	default:
		help := "arrows/hjkl/wasd move  p pause  r restart  q quit"
		if m.settings.Autoplay {
			help = "autoplay  " + help
		}
		b.WriteString(helpStyle.Render(help))
	}
	b.WriteByte('\n')
	return b.String()
}

func (m Model) statusLine() string {
	st := m.sess.state
	s := statusStyle.Render(fmt.Sprintf("Score: %d", st.Score()))
	s += fmt.Sprintf("   Best: %d   Length: %d   Game: %d", m.best, st.Len(), m.games)
	if m.flash > 0 {
		s += "   " + flashStyle.Render("+1")
	}
	return s
}

func renderBoard(st *game.GameState) string {
	grid := st.Grid()
	head := st.HeadPosition()

	var b strings.Builder
	for r := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range grid[r] {
			switch {
			case v == game.Snake && head == game.Position{Row: r, Col: c}:
				if st.GameOver() {
					b.WriteString(deadCell)
				} else {
					b.WriteString(headCell)
				}
			case v == game.Snake:
				b.WriteString(bodyCell)
			case v == game.Food:
				b.WriteString(foodCell)
			default:
				b.WriteString(emptyCell)
			}
		}
	}
	return b.String()
}
