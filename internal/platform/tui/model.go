package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/immortal00111/4096base/internal/core"
	"github.com/immortal00111/4096base/internal/game"
	"github.com/immortal00111/4096base/internal/host"
	"github.com/immortal00111/4096base/internal/storage"
)

// Model is the Bubble Tea model driving a puzzle session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      storage.ScoreStore
	notifier   host.Notifier
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game session.
// store and notifier may be nil; the game runs without persistence or a
// host handshake in that case.
func NewModel(g *game.Game, store storage.ScoreStore, notifier host.Notifier, cfg core.RuntimeConfig) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := &Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		notifier:   notifier,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.loadBest()
	return m
}

// WithLogger attaches a logger used for best-effort diagnostics.
func (m *Model) WithLogger(logger *log.Logger) *Model {
	m.logger = logger
	return m
}

// loadBest seeds the session's best score from the store.
func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		if m.logger != nil {
			m.logger.Debug("loading high score failed", "error", err)
		}
		return
	}
	m.game.SetBest(best)
}

// Init initializes the model and starts the game.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	host.NotifyReady(m.notifier, m.logger)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Restart is gated in handleTick:
// it only takes effect after a loss, so a stray keypress cannot wipe a run.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The board survives a
// resize; only the render surface changes.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.SetScreenSize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.saveScore()
		// Reset seed for the new run
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScore persists the current score. Best-effort: a broken store never
// interrupts play.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		if m.logger != nil {
			m.logger.Debug("saving score failed", "error", err)
		}
		return
	}
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a puzzle session.
func Run(g *game.Game, store storage.ScoreStore, notifier host.Notifier, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, store, notifier, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
