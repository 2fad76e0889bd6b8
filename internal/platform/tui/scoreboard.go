package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/immortal00111/4096base/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 40  // Minimum table width
	maxScores     = 100 // Max scores to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	gameID    string
	gameTitle string
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, gameID, gameTitle string, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:    gameID,
		gameTitle: gameTitle,
		store:     store,
		keys:      keys,
		help:      h,
		width:     width,
		height:    height,
	}

	m.table = m.createTable()
	m.loadScores()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	tableWidth := m.width - 4 // Margins
	if tableWidth > tableMinWidth {
		columns[1].Width = 12
		columns[2].Width = tableWidth - 22
		if columns[2].Width > 20 {
			columns[2].Width = 20
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-9), // Leave room for title, stats, help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads scores and aggregate stats from the store.
func (m *ScoreboardModel) loadScores() {
	if m.store == nil {
		m.scores = nil
		m.updateTableRows()
		return
	}

	scores, err := m.store.TopScores(m.gameID, maxScores)
	if err != nil {
		m.scores = nil
	} else {
		m.scores = scores
	}

	if stats, err := m.store.GetGameStats(m.gameID); err == nil {
		m.stats = stats
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("HIGH SCORES - %s", m.gameTitle)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	// Stats line
	if m.stats != nil && m.stats.GamesCount > 0 {
		statsStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
		statsLine := fmt.Sprintf("Games: %d   Best: %d   Avg: %.0f",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
		b.WriteString(statsStyle.Render(centerText(statsLine, m.width)))
		b.WriteString("\n")
	}

	// Help bar
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers a possibly multi-line string within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the high score screen.
// Returns true if user wants to go back, false if quitting.
func RunScoreboard(store *storage.Store, gameID, gameTitle string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, gameID, gameTitle, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
