package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kosukenoda/tetriscore/internal/settings"
	"github.com/kosukenoda/tetriscore/tetris"
)

type tickMsg struct{}

func tickCmd(interval int) tea.Cmd {
	return tea.Tick(time.Duration(interval)*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Model drives a tetris.GameState with a greedy best-evaluation policy and
// renders it. It holds no engine logic of its own: every decision is made
// by calling into the tetris package.
type Model struct {
	state    *tetris.GameState
	weights  tetris.Weights
	interval int
	palette  settings.Palette

	totalAttack int
	moves       int
	gameOver    bool

	width, height int
	done          bool
}

// New builds a fresh spectator model seeded deterministically, rendering
// the board in theme's color palette.
func New(seed uint64, interval int, theme settings.Theme) Model {
	return Model{
		state:    tetris.NewGameState(seed),
		weights:  tetris.DefaultWeights(),
		interval: interval,
		palette:  settings.PaletteFor(theme),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.gameOver {
			return m, nil
		}
		m.step()
		if m.gameOver {
			return m, nil
		}
		return m, tickCmd(m.interval)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.done = true
			return m, tea.Quit
		case "n":
			m.state = tetris.NewGameState(uint64(time.Now().UnixNano()))
			m.totalAttack = 0
			m.moves = 0
			m.gameOver = false
			return m, tickCmd(m.interval)
		}
	}
	return m, nil
}

// step picks the landing with the highest EvaluateLanding score among every
// legal move this turn and applies it.
func (m *Model) step() {
	if tetris.IsDeadState(m.state) {
		m.gameOver = true
		return
	}
	moves := tetris.LegalMoves(m.state)
	if len(moves) == 0 {
		m.gameOver = true
		return
	}

	best := moves[0]
	bestScore := tetris.EvaluateLanding(best, m.weights)
	for _, l := range moves[1:] {
		if s := tetris.EvaluateLanding(l, m.weights); s > bestScore {
			best, bestScore = l, s
		}
	}

	m.state = tetris.ApplyMove(m.state, best)
	m.totalAttack += best.Attack
	m.moves++
}

func (m Model) View() string {
	var sections []string
	sections = append(sections, titleStyle.Render("T E T R I S  —  B O T"))
	sections = append(sections,
		infoStyle.Render(fmt.Sprintf("Moves: %d   Attack sent: %d", m.moves, m.totalAttack)),
		"",
	)

	sections = append(sections, m.renderBoard(), "")

	if m.gameOver {
		sections = append(sections, gameOverStyle.Render("TOPPED OUT"), "")
	}

	sections = append(sections, footerStyle.Render("N New | Q Quit"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderBoard draws the locked cells of the bottom twenty rows of the board.
// No falling piece is drawn: the bot commits placements instantly, so there
// is nothing airborne to draw between ticks.
func (m Model) renderBoard() string {
	const visibleRows = 20
	board := m.state.Board

	var rows strings.Builder
	border := borderStyle.Render("+" + strings.Repeat("--", tetris.BoardWidth) + "+")
	rows.WriteString(border)
	rows.WriteString("\n")

	for y := visibleRows - 1; y >= 0; y-- {
		rows.WriteString(borderStyle.Render("|"))
		for x := 0; x < tetris.BoardWidth; x++ {
			cell := board[y][x]
			if cell == tetris.CellEmpty {
				rows.WriteString(emptyStyle.Render(" ."))
			} else {
				rows.WriteString(m.cellStyle(cell).Render("[]"))
			}
		}
		rows.WriteString(borderStyle.Render("|"))
		rows.WriteString("\n")
	}
	rows.WriteString(border)
	return rows.String()
}

// cellStyle colors a locked cell by the piece kind that placed it, using
// m's palette, falling back to the palette's garbage color for anything
// that isn't a recognized piece kind.
func (m Model) cellStyle(cell tetris.Cell) lipgloss.Style {
	base := lipgloss.NewStyle()
	if cell < 1 || int(cell) > 7 {
		return base.Foreground(lipgloss.Color(m.palette[7]))
	}
	return base.Foreground(lipgloss.Color(m.palette[int(cell)-1]))
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#DCFFDC"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DCFFDC"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
